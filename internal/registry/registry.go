// Package registry holds the fixed tables of read-only operations and resolves
// an operation id plus a parameter bag into a concrete path and query.
package registry

import (
	"fmt"

	"github.com/moamenhredeen/contentapi/internal/models"
)

// APIPrefix is the versioned root every operation path is resolved under
const APIPrefix = "/api/episerver/v3.0"

// Params is the caller's parameter bag. Empty values count as absent.
type Params map[string]string

// Has reports whether name carries a non-empty value
func (p Params) Has(name string) bool {
	return p[name] != ""
}

// Registry is an immutable operation table
type Registry struct {
	ops    map[string]models.OperationSpec
	order  []string
	common []models.QueryParam
}

// New builds a registry from specs. common query parameters are appended to
// every resolved operation after its own. Duplicate ids panic, the tables are
// static and a duplicate is a programming error.
func New(specs []models.OperationSpec, common ...models.QueryParam) *Registry {
	r := &Registry{
		ops:    make(map[string]models.OperationSpec, len(specs)),
		order:  make([]string, 0, len(specs)),
		common: common,
	}
	for _, s := range specs {
		if _, dup := r.ops[s.ID]; dup {
			panic(fmt.Sprintf("registry: duplicate operation %q", s.ID))
		}
		r.ops[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

// Lookup returns the operation registered under id (case-sensitive)
func (r *Registry) Lookup(id string) (models.OperationSpec, bool) {
	s, ok := r.ops[id]
	return s, ok
}

// Operations returns all operations in declaration order
func (r *Registry) Operations() []models.OperationSpec {
	specs := make([]models.OperationSpec, 0, len(r.order))
	for _, id := range r.order {
		specs = append(specs, r.ops[id])
	}
	return specs
}

// CommonQuery returns the query parameters appended to every operation
func (r *Registry) CommonQuery() []models.QueryParam {
	return append([]models.QueryParam(nil), r.common...)
}
