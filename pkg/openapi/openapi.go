// Package openapi builds forms from OpenAPI 3 documents. The request body
// schema of an operation becomes a form.Form whose fields follow the schema
// properties, plus a form.RuleSet derived from the schema constraints. The
// kin-openapi types stay internal to this package.
package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formlayout/pkg/form"
)

// ErrOperationNotFound is returned when no operation matches the requested id.
var ErrOperationNotFound = errors.New("operation not found")

// Operation summarises an operation of a loaded document.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
	HasBody bool
}

// Operations lists the operations of the document sorted by id. Operations
// without an operationId are keyed as `method:path`.
func Operations(ctx context.Context, data []byte, opts ...Option) ([]Operation, error) {
	doc, err := load(ctx, data, newConfig(opts))
	if err != nil {
		return nil, err
	}

	var out []Operation
	for id, entry := range collect(doc) {
		out = append(out, Operation{
			ID:      id,
			Method:  entry.method,
			Path:    entry.path,
			Summary: entry.op.Summary,
			HasBody: entry.op.RequestBody != nil,
		})
	}
	slices.SortFunc(out, func(a, b Operation) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

// FormFromOperation loads the document and builds the form for the request
// body of operationID. The returned rules are already attached to the fields
// through Form.Validate.
func FormFromOperation(ctx context.Context, data []byte, operationID string, opts ...Option) (*form.Form, form.RuleSet, error) {
	cfg := newConfig(opts)
	doc, err := load(ctx, data, cfg)
	if err != nil {
		return nil, nil, err
	}

	entry, ok := collect(doc)[operationID]
	if !ok {
		return nil, nil, fmt.Errorf("openapi: operation %q: %w", operationID, ErrOperationNotFound)
	}

	schema := requestSchema(entry.op.RequestBody, cfg.mediaTypes)
	b := newBuilder(cfg)
	if schema != nil {
		b.object(schema, "", "", 0)
	}
	f := b.finish()
	f.SetAttr("method", strings.ToLower(entry.method))
	f.SetAttr("action", entry.path)
	if entry.op.Summary != "" {
		f.SetContext("summary", entry.op.Summary)
	}
	return f, b.rules, nil
}

type operationEntry struct {
	method string
	path   string
	op     *openapi3.Operation
}

func load(ctx context.Context, data []byte, cfg config) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return doc, nil
}

func collect(doc *openapi3.T) map[string]operationEntry {
	out := make(map[string]operationEntry)
	if doc.Paths == nil {
		return out
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out[id] = operationEntry{method: method, path: path, op: op}
		}
	}
	return out
}

func requestSchema(body *openapi3.RequestBodyRef, mediaTypes []string) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range mediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mediaType := range slices.Sorted(maps.Keys(content)) {
		if mt := content[mediaType]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
