// Package schema validates candidate objects against named shape
// declarations. The shapes are owned outside the request-handling core and
// embedded as a single JSON-schema document with one definition per shape.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed shapes.json
var shapesJSON []byte

// Shape names known to the embedded document.
const (
	ShapeBook            = "Book"
	ShapeCastQueryParams = "BookCastMemberQueryParams"
)

// Result is the outcome of a single validation. Diagnostics lists every
// violation, not just the first.
type Result struct {
	Valid       bool
	Diagnostics []string
}

// Validator compiles each named definition once at construction and is safe
// for concurrent use. Validation itself is pure: no I/O, no mutation.
type Validator struct {
	shapes map[string]*gojsonschema.Schema
}

func NewValidator() (*Validator, error) {
	var doc struct {
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal(shapesJSON, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse shapes document: %w", err)
	}
	shapes := make(map[string]*gojsonschema.Schema, len(doc.Definitions))
	for name, raw := range doc.Definitions {
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("schema: compile shape %q: %w", name, err)
		}
		shapes[name] = s
	}
	return &Validator{shapes: shapes}, nil
}

// Validate checks candidate against the named shape. The error return is
// reserved for unknown shapes or schema-engine failures; shape violations
// come back in the Result.
func (v *Validator) Validate(candidate any, shape string) (*Result, error) {
	s, ok := v.shapes[shape]
	if !ok {
		return nil, fmt.Errorf("schema: unknown shape %q", shape)
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(candidate))
	if err != nil {
		return nil, fmt.Errorf("schema: validate against %q: %w", shape, err)
	}
	out := &Result{Valid: res.Valid()}
	for _, e := range res.Errors() {
		out.Diagnostics = append(out.Diagnostics, e.String())
	}
	return out, nil
}
