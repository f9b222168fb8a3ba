package pipeline

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://seqgen-pipeline.json"

func idProperty() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func kindNode(kind Kind, required []string, extra map[string]any) map[string]any {
	props := map[string]any{
		"id":   idProperty(),
		"kind": map[string]any{"const": string(kind)},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]any{
		"type":                 "object",
		"required":             append([]string{"kind"}, required...),
		"additionalProperties": false,
		"properties":           props,
	}
}

// schemaDefinition is the JSON Schema every definition document must satisfy.
var schemaDefinition = map[string]any{
	"title":                "seqgen pipeline",
	"type":                 "object",
	"required":             []string{"generators"},
	"additionalProperties": false,
	"properties": map[string]any{
		"generators": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"$ref": "#/$defs/node"},
		},
	},
	"$defs": map[string]any{
		"node": map[string]any{
			"oneOf": []any{
				map[string]any{"$ref": "#/$defs/ref"},
				map[string]any{"$ref": "#/$defs/base"},
				map[string]any{"$ref": "#/$defs/adapter"},
				map[string]any{"$ref": "#/$defs/composite"},
				map[string]any{"$ref": "#/$defs/decorated"},
			},
		},
		"ref": map[string]any{
			"type":                 "object",
			"required":             []string{"ref"},
			"additionalProperties": false,
			"properties": map[string]any{
				"ref": idProperty(),
			},
		},
		"base": kindNode(KindBase, nil, nil),
		"adapter": kindNode(KindAdapter, []string{"source"}, map[string]any{
			"source": map[string]any{"$ref": "#/$defs/node"},
		}),
		"composite": kindNode(KindComposite, nil, map[string]any{
			"children": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/node"},
			},
		}),
		"decorated": kindNode(KindDecorated, []string{"source"}, map[string]any{
			"source": map[string]any{"$ref": "#/$defs/node"},
		}),
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles schemaDefinition on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON values, not typed Go maps.
		raw, err := json.Marshal(schemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Schema returns the definition JSON Schema, indented for display.
func Schema() ([]byte, error) {
	return json.MarshalIndent(schemaDefinition, "", "  ")
}

// Validate checks raw JSON against the definition schema.
func Validate(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidDefinition{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile pipeline schema: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return &ErrInvalidDefinition{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
