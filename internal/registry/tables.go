package registry

import "github.com/moamenhredeen/contentapi/internal/models"

// Operation ids of the content delivery table
const (
	OpGetContentByReference = "get-content-by-reference"
	OpGetContentByGUID      = "get-content-by-guid"
	OpGetContent            = "get-content"
	OpGetContentByURL       = "get-content-by-url"
	OpGetChildren           = "get-children"
	OpGetAncestors          = "get-ancestors"
	OpListSites             = "list-sites"
	OpGetSite               = "get-site"
	OpGetContentType        = "get-content-type"

	OpExportManifest   = "export-manifest"
	OpListContentTypes = "list-content-types"
)

// Parameter names
const (
	ParamContentReference   = "contentReference"
	ParamContentGUID        = "contentGuid"
	ParamContentURL         = "contentUrl"
	ParamMatchExact         = "matchExact"
	ParamSiteID             = "siteId"
	ParamContentTypeID      = "contentTypeId"
	ParamIncludeSystemTypes = "includeSystemTypes"
	ParamTop                = "top"
	ParamExpand             = "expand"
	ParamSelect             = "select"
)

func byReferenceOrGUID(suffix string) []models.Route {
	return []models.Route{
		{PathTemplate: "/content/{contentReference}" + suffix, RequiredParams: []string{ParamContentReference}},
		{PathTemplate: "/content/{contentGuid}" + suffix, RequiredParams: []string{ParamContentGUID}},
	}
}

var content = New([]models.OperationSpec{
	{
		ID:     OpGetContentByReference,
		Routes: []models.Route{{PathTemplate: "/content/{contentReference}", RequiredParams: []string{ParamContentReference}}},
	},
	{
		ID:     OpGetContentByGUID,
		Routes: []models.Route{{PathTemplate: "/content/{contentGuid}", RequiredParams: []string{ParamContentGUID}}},
	},
	{
		ID:     OpGetContent,
		Routes: byReferenceOrGUID(""),
	},
	{
		ID:     OpGetContentByURL,
		Routes: []models.Route{{PathTemplate: "/content", RequiredParams: []string{ParamContentURL}}},
		Query: []models.QueryParam{
			{Param: ParamContentURL, Key: "contentUrl"},
			{Param: ParamMatchExact, Key: "matchExact"},
		},
	},
	{
		ID:     OpGetChildren,
		Routes: byReferenceOrGUID("/children"),
		Query:  []models.QueryParam{{Param: ParamTop, Key: "top"}},
	},
	{
		ID:     OpGetAncestors,
		Routes: byReferenceOrGUID("/ancestors"),
	},
	{
		ID:     OpListSites,
		Routes: []models.Route{{PathTemplate: "/site"}},
	},
	{
		ID:     OpGetSite,
		Routes: []models.Route{{PathTemplate: "/site/{siteId}", RequiredParams: []string{ParamSiteID}}},
	},
	{
		ID:     OpGetContentType,
		Routes: []models.Route{{PathTemplate: "/contenttypes/{contentTypeId}", RequiredParams: []string{ParamContentTypeID}}},
	},
},
	models.QueryParam{Param: ParamExpand, Key: "expand"},
	models.QueryParam{Param: ParamSelect, Key: "select"},
)

// Content returns the content delivery operation table
func Content() *Registry {
	return content
}

// ManifestExport is the single operation of the manifest export adapter
var ManifestExport = models.OperationSpec{
	ID:     OpExportManifest,
	Routes: []models.Route{{PathTemplate: "/manifest"}},
}

// ContentTypeListing is the single operation of the content type listing adapter
var ContentTypeListing = models.OperationSpec{
	ID:     OpListContentTypes,
	Routes: []models.Route{{PathTemplate: "/contenttypes"}},
	Query: []models.QueryParam{
		{Param: ParamIncludeSystemTypes, Key: "includeSystemTypes"},
		{Param: ParamTop, Key: "top"},
	},
}
