package parser

import (
	"fmt"
	"os"
	"regexp"

	"github.com/moamenhredeen/contentapi/internal/models"
	"github.com/pb33f/libopenapi"
)

// Parser handles parsing OpenAPI descriptions of the content API
type Parser struct {
	document libopenapi.Document
}

// ParseFile parses an OpenAPI specification file and returns a Parser instance
func ParseFile(filePath string) (*Parser, error) {
	specBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI file: %w", err)
	}
	return Parse(specBytes)
}

// Parse parses an OpenAPI document held in memory
func Parse(specBytes []byte) (*Parser, error) {
	document, err := libopenapi.NewDocument(specBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	return &Parser{document: document}, nil
}

// GetServerURLs returns the server URLs from the OpenAPI spec
func (p *Parser) GetServerURLs() ([]string, error) {
	model, errs := p.document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	urls := make([]string, 0, len(model.Model.Servers))
	for _, server := range model.Model.Servers {
		if server != nil && server.URL != "" {
			urls = append(urls, server.URL)
		}
	}

	return urls, nil
}

// GetReadPaths returns every path that declares a GET operation, in document order
func (p *Parser) GetReadPaths() ([]string, error) {
	model, errs := p.document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	var paths []string
	if model.Model.Paths == nil || model.Model.Paths.PathItems == nil {
		return paths, nil
	}

	for pair := model.Model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		item := pair.Value()
		if item == nil || item.Get == nil {
			continue
		}
		paths = append(paths, pair.Key())
	}

	return paths, nil
}

// RouteFinding reports whether one route of an operation is described by the document
type RouteFinding struct {
	Operation string
	Template  string
	Found     bool
	Matched   string // document path that matched, if any
}

// VerifyRoutes checks every route of specs against the document's GET paths.
// A document path matches when it equals the template with or without the API
// prefix; placeholder names are ignored.
func (p *Parser) VerifyRoutes(specs []models.OperationSpec, prefix string) ([]RouteFinding, error) {
	paths, err := p.GetReadPaths()
	if err != nil {
		return nil, err
	}

	index := make(map[string]string, len(paths))
	for _, path := range paths {
		index[shape(path)] = path
	}

	var findings []RouteFinding
	for _, spec := range specs {
		for _, route := range spec.Routes {
			f := RouteFinding{Operation: spec.ID, Template: route.PathTemplate}
			for _, candidate := range []string{prefix + route.PathTemplate, route.PathTemplate} {
				if matched, ok := index[shape(candidate)]; ok {
					f.Found = true
					f.Matched = matched
					break
				}
			}
			findings = append(findings, f)
		}
	}

	return findings, nil
}

var placeholder = regexp.MustCompile(`\{[^}]*\}`)

// shape replaces placeholder names so /content/{id} and /content/{ref} compare equal
func shape(path string) string {
	return placeholder.ReplaceAllString(path, "{}")
}
