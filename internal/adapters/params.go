package adapters

import (
	"strconv"

	"github.com/moamenhredeen/contentapi/internal/registry"
)

// ContentParams is the parameter bag of the content adapter
type ContentParams struct {
	BaseURL          string `json:"baseUrl,omitempty" jsonschema:"origin of the content API, e.g. https://example.com"`
	Operation        string `json:"operation" jsonschema:"operation id, e.g. get-content-by-reference, get-children, list-sites"`
	AccessToken      string `json:"accessToken,omitempty" jsonschema:"optional bearer token, anonymous access when empty"`
	ContentReference string `json:"contentReference,omitempty" jsonschema:"content reference, e.g. 5"`
	ContentGUID      string `json:"contentGuid,omitempty" jsonschema:"content GUID"`
	ContentURL       string `json:"contentUrl,omitempty" jsonschema:"absolute or relative URL of the content"`
	MatchExact       *bool  `json:"matchExact,omitempty" jsonschema:"require an exact URL match"`
	SiteID           string `json:"siteId,omitempty" jsonschema:"site id"`
	ContentTypeID    string `json:"contentTypeId,omitempty" jsonschema:"content type id"`
	Locale           string `json:"locale,omitempty" jsonschema:"language sent as Accept-Language"`
	Expand           string `json:"expand,omitempty" jsonschema:"properties to expand, e.g. *"`
	Select           string `json:"select,omitempty" jsonschema:"comma separated properties to select"`
	Top              int    `json:"top,omitempty" jsonschema:"maximum number of children to return"`
}

// Request converts the bag into an adapter request
func (p ContentParams) Request() Request {
	params := registry.Params{
		registry.ParamContentReference: p.ContentReference,
		registry.ParamContentGUID:      p.ContentGUID,
		registry.ParamContentURL:       p.ContentURL,
		registry.ParamSiteID:           p.SiteID,
		registry.ParamContentTypeID:    p.ContentTypeID,
		registry.ParamExpand:           p.Expand,
		registry.ParamSelect:           p.Select,
		registry.ParamMatchExact:       formatBool(p.MatchExact),
		registry.ParamTop:              formatTop(p.Top),
	}
	return Request{
		BaseURL:     p.BaseURL,
		AccessToken: p.AccessToken,
		Locale:      p.Locale,
		Operation:   p.Operation,
		Params:      params,
	}
}

// ManifestParams is the parameter bag of the manifest export adapter
type ManifestParams struct {
	BaseURL     string `json:"baseUrl,omitempty" jsonschema:"origin of the content API"`
	AccessToken string `json:"accessToken,omitempty" jsonschema:"bearer token with access to content definitions"`
}

// Request converts the bag into an adapter request
func (p ManifestParams) Request() Request {
	return Request{
		BaseURL:     p.BaseURL,
		AccessToken: p.AccessToken,
		Params:      registry.Params{},
	}
}

// ContentTypeParams is the parameter bag of the content type listing adapter
type ContentTypeParams struct {
	BaseURL            string `json:"baseUrl,omitempty" jsonschema:"origin of the content API"`
	AccessToken        string `json:"accessToken,omitempty" jsonschema:"bearer token with access to content definitions"`
	IncludeSystemTypes *bool  `json:"includeSystemTypes,omitempty" jsonschema:"include built-in system content types"`
	Top                int    `json:"top,omitempty" jsonschema:"maximum number of content types to return"`
}

// Request converts the bag into an adapter request
func (p ContentTypeParams) Request() Request {
	return Request{
		BaseURL:     p.BaseURL,
		AccessToken: p.AccessToken,
		Params: registry.Params{
			registry.ParamIncludeSystemTypes: formatBool(p.IncludeSystemTypes),
			registry.ParamTop:                formatTop(p.Top),
		},
	}
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

// formatTop treats zero and negative limits as unset
func formatTop(top int) string {
	if top <= 0 {
		return ""
	}
	return strconv.Itoa(top)
}
