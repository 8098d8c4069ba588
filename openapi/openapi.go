package openapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Gobd/unindent"
	"github.com/getkin/kin-openapi/openapi3"
)

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(title string, description unindent.Viewer, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Description: description.Value(),
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// Describe appends text to the schema description, separated by a space.
func Describe(ref *openapi3.SchemaRef, text unindent.Viewer) {
	if ref.Value == nil {
		ref.Value = openapi3.NewSchema()
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += text.Value()
}

// Operation returns an operation with an empty response set.
func Operation(operationID, summary string, description unindent.Viewer) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: operationID,
		Summary:     summary,
		Description: description.Value(),
		Responses:   openapi3.NewResponses(),
	}
}

// Respond sets the description of the response for status on op, creating
// the response if needed.
func Respond(op *openapi3.Operation, status string, description unindent.Viewer) {
	if op.Responses == nil {
		op.Responses = openapi3.NewResponses()
	}
	desc := description.Value()
	if r := op.Responses.Value(status); r != nil && r.Value != nil {
		r.Value.Description = &desc
		return
	}
	op.Responses.Set(status, &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(desc),
	})
}

// AddPath adds an operation to the OpenAPI spec at the given path and method.
func AddPath(s *openapi3.T, path, method string, op *openapi3.Operation) error {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	default:
		return errors.New("unsupported method " + method)
	}

	s.Paths.Set(path, p)
	return nil
}

// Validate checks the document against the OpenAPI 3 rules.
func Validate(ctx context.Context, s *openapi3.T) error {
	return s.Validate(ctx)
}
