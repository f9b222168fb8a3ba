package pipeline

// Kind names a generator variant.
type Kind string

const (
	KindBase      Kind = "base"
	KindAdapter   Kind = "adapter"
	KindComposite Kind = "composite"
	KindDecorated Kind = "decorated"
)

// Kinds lists every buildable kind in a stable order.
var Kinds = []Kind{KindBase, KindAdapter, KindComposite, KindDecorated}

// Definition describes a set of generators. Later generators may refer to
// earlier ones by id, which makes them share a single instance.
type Definition struct {
	Generators []Node `json:"generators"`
}

// Node is one generator in a definition. A node is either a reference
// (only Ref set) or a constructor (Kind set).
type Node struct {
	// ID registers the built generator for later refs.
	ID string `json:"id,omitempty"`

	// Ref reuses a generator registered earlier in document order.
	Ref string `json:"ref,omitempty"`

	Kind Kind `json:"kind,omitempty"`

	// Source is the wrapped generator for adapter and decorated nodes.
	// An adapter's source must resolve to a base generator.
	Source *Node `json:"source,omitempty"`

	// Children are the composite's members in concatenation order.
	Children []Node `json:"children,omitempty"`
}
