package registry

import (
	"strings"

	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/moamenhredeen/contentapi/internal/models"
)

// Resolved is an operation bound to concrete parameters
type Resolved struct {
	Operation string
	Path      string
	Query     []client.QueryPair
}

// Resolve looks up id and binds it to params. It never touches the network.
func (r *Registry) Resolve(id string, params Params) (*Resolved, error) {
	spec, ok := r.Lookup(id)
	if !ok {
		return nil, client.UnknownOperation(id)
	}
	return Resolve(spec, params, r.common...)
}

// Resolve binds a single operation to params. The first route whose required
// parameters are all present selects the path template.
func Resolve(spec models.OperationSpec, params Params, common ...models.QueryParam) (*Resolved, error) {
	route, ok := selectRoute(spec.Routes, params)
	if !ok {
		return nil, client.MissingParameter(spec.ID, spec.RequiredParams()...)
	}

	query := appendQuery(nil, spec.Query, params)
	query = appendQuery(query, common, params)

	return &Resolved{
		Operation: spec.ID,
		Path:      APIPrefix + expandTemplate(route, params),
		Query:     query,
	}, nil
}

func selectRoute(routes []models.Route, params Params) (models.Route, bool) {
	for _, route := range routes {
		matched := true
		for _, name := range route.RequiredParams {
			if !params.Has(name) {
				matched = false
				break
			}
		}
		if matched {
			return route, true
		}
	}
	return models.Route{}, false
}

// expandTemplate fills {param} slots verbatim
func expandTemplate(route models.Route, params Params) string {
	if len(route.RequiredParams) == 0 {
		return route.PathTemplate
	}
	pairs := make([]string, 0, 2*len(route.RequiredParams))
	for _, name := range route.RequiredParams {
		pairs = append(pairs, "{"+name+"}", params[name])
	}
	return strings.NewReplacer(pairs...).Replace(route.PathTemplate)
}

func appendQuery(dst []client.QueryPair, decl []models.QueryParam, params Params) []client.QueryPair {
	for _, q := range decl {
		if params.Has(q.Param) {
			dst = append(dst, client.QueryPair{Key: q.Key, Value: params[q.Param]})
		}
	}
	return dst
}
