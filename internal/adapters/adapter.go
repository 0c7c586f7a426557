// Package adapters implements the callable read-only operations against the
// content API. Each adapter resolves its request through the registry, runs it
// through a client and returns the normalized envelope.
package adapters

import (
	"context"
	"time"

	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/moamenhredeen/contentapi/internal/models"
	"github.com/moamenhredeen/contentapi/internal/registry"
	"github.com/rs/zerolog"
)

// Adapter names
const (
	NameContent          = "content"
	NameExportManifest   = "export-manifest"
	NameListContentTypes = "list-content-types"
)

// Request is one invocation of an adapter
type Request struct {
	BaseURL     string
	AccessToken string
	Locale      string
	Operation   string // only used by multi-operation adapters
	Params      registry.Params
}

// Adapter is either a multi-operation adapter backed by a registry or a
// single-purpose adapter with one implicit operation
type Adapter struct {
	name          string
	description   string
	tokenRequired bool

	registry *registry.Registry
	single   *models.OperationSpec

	client *client.Client
	logger zerolog.Logger
	now    func() time.Time
}

// NewContent creates the multi-operation content delivery adapter.
// Its bearer token is optional.
func NewContent(exec client.Executor, logger zerolog.Logger) *Adapter {
	return newAdapter(NameContent, "Content delivery request failed", exec, logger, func(a *Adapter) {
		a.description = "Read content, children, ancestors, sites and content types from the content delivery API"
		a.registry = registry.Content()
	})
}

// NewManifestExport creates the manifest export adapter
func NewManifestExport(exec client.Executor, logger zerolog.Logger) *Adapter {
	return newAdapter(NameExportManifest, "Manifest export failed", exec, logger, func(a *Adapter) {
		a.description = "Export the content definitions manifest"
		a.tokenRequired = true
		spec := registry.ManifestExport
		a.single = &spec
	})
}

// NewContentTypes creates the content type listing adapter
func NewContentTypes(exec client.Executor, logger zerolog.Logger) *Adapter {
	return newAdapter(NameListContentTypes, "Content type listing failed", exec, logger, func(a *Adapter) {
		a.description = "List the content types defined in the content definitions API"
		a.tokenRequired = true
		spec := registry.ContentTypeListing
		a.single = &spec
	})
}

// All creates every adapter sharing one executor
func All(exec client.Executor, logger zerolog.Logger) []*Adapter {
	return []*Adapter{
		NewContent(exec, logger),
		NewManifestExport(exec, logger),
		NewContentTypes(exec, logger),
	}
}

// Find returns the adapter with the given name
func Find(adapters []*Adapter, name string) (*Adapter, bool) {
	for _, a := range adapters {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}

func newAdapter(name, label string, exec client.Executor, logger zerolog.Logger, opt func(*Adapter)) *Adapter {
	l := logger.With().Str("adapter", name).Logger()
	a := &Adapter{
		name:   name,
		client: client.New(label, exec, l),
		logger: l,
		now:    time.Now,
	}
	opt(a)
	return a
}

// Name returns the adapter name
func (a *Adapter) Name() string { return a.name }

// Description returns a human-readable summary
func (a *Adapter) Description() string { return a.description }

// TokenRequired reports whether calls without a bearer token are rejected
func (a *Adapter) TokenRequired() bool { return a.tokenRequired }

// Operations returns the operations this adapter can dispatch to
func (a *Adapter) Operations() []models.OperationSpec {
	if a.single != nil {
		return []models.OperationSpec{*a.single}
	}
	return a.registry.Operations()
}

// CommonQuery returns the query parameters shared by all operations
func (a *Adapter) CommonQuery() []models.QueryParam {
	if a.registry == nil {
		return nil
	}
	return a.registry.CommonQuery()
}

// Call validates the request, performs one GET and returns the envelope.
// A nil error means the backend answered; check Envelope.Success.
func (a *Adapter) Call(ctx context.Context, req Request) (*models.Envelope, error) {
	rc, op, err := a.prepare(req)
	if err != nil {
		a.logger.Debug().Err(err).Str("operation", req.Operation).Msg("request rejected before sending")
		return nil, err
	}

	if req.AccessToken != "" {
		if exp, expired := tokenExpired(req.AccessToken, a.now()); expired {
			a.logger.Warn().Time("expired_at", exp).Msg("access token has expired, backend will likely reject the call")
		}
	}

	a.logger.Debug().Str("operation", op).Msg("dispatching")
	return a.client.Do(ctx, rc)
}

// Resolve returns the request URL a call would use without sending it
func (a *Adapter) Resolve(req Request) (string, error) {
	rc, _, err := a.prepare(req)
	if err != nil {
		return "", err
	}
	return rc.URL(), nil
}

func (a *Adapter) prepare(req Request) (*client.RequestContext, string, error) {
	if req.BaseURL == "" {
		return nil, "", client.MissingParameter(a.name, "baseUrl")
	}
	if a.tokenRequired && req.AccessToken == "" {
		return nil, "", client.MissingParameter(a.name, "accessToken")
	}

	resolved, err := a.resolve(req)
	if err != nil {
		return nil, "", err
	}

	rc := client.NewRequestContext(req.BaseURL, resolved.Path, resolved.Query, client.Credentials{
		AccessToken: req.AccessToken,
		Locale:      req.Locale,
	})
	return rc, resolved.Operation, nil
}

func (a *Adapter) resolve(req Request) (*registry.Resolved, error) {
	if a.single == nil {
		return a.registry.Resolve(req.Operation, req.Params)
	}
	if req.Operation != "" && req.Operation != a.single.ID {
		return nil, client.UnknownOperation(req.Operation)
	}
	return registry.Resolve(*a.single, req.Params)
}

// Defaults are connection settings applied when a request leaves them empty
type Defaults struct {
	BaseURL     string
	AccessToken string
	Locale      string
}

// WithDefaults fills empty connection settings of r from d
func (r Request) WithDefaults(d Defaults) Request {
	if r.BaseURL == "" {
		r.BaseURL = d.BaseURL
	}
	if r.AccessToken == "" {
		r.AccessToken = d.AccessToken
	}
	if r.Locale == "" {
		r.Locale = d.Locale
	}
	return r
}
