package models

// Route is one path shape an operation can resolve to
type Route struct {
	PathTemplate   string   // relative to the API prefix, with {param} slots
	RequiredParams []string // all must be present for this route to be selected
}

// QueryParam maps a caller parameter to the query key it is sent as
type QueryParam struct {
	Param string
	Key   string
}

// OperationSpec is a named, read-only request shape against the content API
type OperationSpec struct {
	ID     string
	Routes []Route      // alternatives in priority order
	Query  []QueryParam // operation-specific query parameters in declaration order
}

// RequiredParams returns the identifying parameters of every route, deduplicated,
// in declaration order.
func (s OperationSpec) RequiredParams() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range s.Routes {
		for _, p := range r.RequiredParams {
			if !seen[p] {
				seen[p] = true
				names = append(names, p)
			}
		}
	}
	return names
}
