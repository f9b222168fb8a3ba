package pipeline

import (
	"errors"
	"fmt"

	"github.com/abhisek/seqgen/internal/numgen"
	"go.uber.org/zap"
)

// Entry is one top-level generator of a built pipeline.
type Entry struct {
	Name      string
	Generator numgen.Generator
}

// Pipeline is a built definition.
type Pipeline struct {
	Entries []Entry
	byName  map[string]numgen.Generator
}

// Lookup returns the top-level generator called name.
func (p *Pipeline) Lookup(name string) (numgen.Generator, bool) {
	g, ok := p.byName[name]
	return g, ok
}

// Last returns the final top-level generator.
func (p *Pipeline) Last() Entry {
	return p.Entries[len(p.Entries)-1]
}

// Option configures Build.
type Option func(*builder)

// WithLogger wraps every top-level generator with numgen.WithLogging.
func WithLogger(logger *zap.Logger) Option {
	return func(b *builder) { b.logger = logger }
}

type builder struct {
	ids    map[string]numgen.Generator
	logger *zap.Logger
}

// Build constructs the generators of def. Refs resolve only to ids
// registered earlier in document order, so the result is always acyclic.
func Build(def Definition, opts ...Option) (*Pipeline, error) {
	if len(def.Generators) == 0 {
		return nil, &ErrInvalidDefinition{Err: errors.New("no generators defined")}
	}

	b := &builder{ids: make(map[string]numgen.Generator)}
	for _, opt := range opts {
		opt(b)
	}

	p := &Pipeline{byName: make(map[string]numgen.Generator)}
	for i, node := range def.Generators {
		path := fmt.Sprintf("generators[%d]", i)
		g, err := b.build(node, path)
		if err != nil {
			return nil, err
		}

		name := entryName(node, i)
		if _, dup := p.byName[name]; dup {
			return nil, &ErrInvalidDefinition{Path: path, Err: fmt.Errorf("duplicate generator name %q", name)}
		}
		if b.logger != nil {
			g = numgen.WithLogging(g, name, b.logger)
		}
		p.byName[name] = g
		p.Entries = append(p.Entries, Entry{Name: name, Generator: g})
	}
	return p, nil
}

func entryName(n Node, i int) string {
	switch {
	case n.ID != "":
		return n.ID
	case n.Ref != "":
		return n.Ref
	default:
		return fmt.Sprintf("%s-%d", n.Kind, i)
	}
}

func (b *builder) build(n Node, path string) (numgen.Generator, error) {
	if n.Ref != "" {
		if n.Kind != "" || n.ID != "" {
			return nil, &ErrInvalidDefinition{Path: path, Err: errors.New("ref nodes cannot set kind or id")}
		}
		g, ok := b.ids[n.Ref]
		if !ok {
			return nil, &ErrInvalidDefinition{Path: path, Err: fmt.Errorf("unknown ref %q", n.Ref)}
		}
		return g, nil
	}

	var (
		g   numgen.Generator
		err error
	)
	switch n.Kind {
	case KindBase:
		g = numgen.NewBaseGenerator()
	case KindAdapter:
		g, err = b.buildAdapter(n, path)
	case KindComposite:
		g, err = b.buildComposite(n, path)
	case KindDecorated:
		g, err = b.buildDecorated(n, path)
	default:
		return nil, &ErrInvalidDefinition{Path: path, Err: fmt.Errorf("unknown kind %q", n.Kind)}
	}
	if err != nil {
		return nil, err
	}

	if n.ID != "" {
		if _, dup := b.ids[n.ID]; dup {
			return nil, &ErrInvalidDefinition{Path: path, Err: fmt.Errorf("duplicate id %q", n.ID)}
		}
		b.ids[n.ID] = g
	}
	return g, nil
}

func (b *builder) buildAdapter(n Node, path string) (numgen.Generator, error) {
	src, err := b.source(n, path)
	if err != nil {
		return nil, err
	}
	base, ok := src.(*numgen.BaseGenerator)
	if !ok {
		return nil, &ErrInvalidDefinition{Path: path + ".source", Err: errors.New("adapter source must be a base generator")}
	}
	return numgen.NewAdapter(base), nil
}

func (b *builder) buildComposite(n Node, path string) (numgen.Generator, error) {
	c := numgen.NewComposite()
	for i, child := range n.Children {
		g, err := b.build(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		c.Add(g)
	}
	return c, nil
}

func (b *builder) buildDecorated(n Node, path string) (numgen.Generator, error) {
	src, err := b.source(n, path)
	if err != nil {
		return nil, err
	}
	return numgen.Decorate(src), nil
}

func (b *builder) source(n Node, path string) (numgen.Generator, error) {
	if n.Source == nil {
		return nil, &ErrInvalidDefinition{Path: path, Err: fmt.Errorf("%s node requires a source", n.Kind)}
	}
	return b.build(*n.Source, path+".source")
}
