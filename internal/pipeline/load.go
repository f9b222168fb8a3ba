package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse validates raw against the schema and decodes it.
func Parse(raw []byte) (Definition, error) {
	if err := Validate(raw); err != nil {
		return Definition{}, err
	}
	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return Definition{}, &ErrInvalidDefinition{Err: fmt.Errorf("decode: %w", err)}
	}
	return def, nil
}

// Load reads and parses the definition file at path.
func Load(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read pipeline file: %w", err)
	}
	return Parse(raw)
}

// Demo returns the reference wiring: a base generator shared by an
// adapter, a composite of both, and a decorator.
func Demo() Definition {
	return Definition{Generators: []Node{
		{ID: "base", Kind: KindBase},
		{ID: "adapter", Kind: KindAdapter, Source: &Node{Ref: "base"}},
		{ID: "composite", Kind: KindComposite, Children: []Node{{Ref: "base"}, {Ref: "adapter"}}},
		{ID: "decorated", Kind: KindDecorated, Source: &Node{Ref: "base"}},
	}}
}

// ForKind returns the demo wiring trimmed to the generator of one kind.
// The result's last entry is that generator.
func ForKind(kind Kind) (Definition, error) {
	demo := Demo()
	for i, n := range demo.Generators {
		if n.Kind == kind {
			return Definition{Generators: demo.Generators[:i+1]}, nil
		}
	}
	return Definition{}, &ErrInvalidDefinition{Err: fmt.Errorf("unknown kind %q", kind)}
}
