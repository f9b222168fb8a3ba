package numgen

// CompositeGenerator treats an ordered group of generators as one.
// Children are shared references; the composite never copies or closes them.
type CompositeGenerator struct {
	children []Generator
}

// NewComposite returns a composite holding children in the given order.
func NewComposite(children ...Generator) *CompositeGenerator {
	c := &CompositeGenerator{}
	for _, g := range children {
		c.Add(g)
	}
	return c
}

// Add appends g. Duplicates are allowed.
func (c *CompositeGenerator) Add(g Generator) {
	c.children = append(c.children, g)
}

// Len returns the number of registered children.
func (c *CompositeGenerator) Len() int {
	return len(c.children)
}

// Generate concatenates every child's sequence in registration order.
// The first child error aborts the call.
func (c *CompositeGenerator) Generate(count int) ([]int, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	out := make([]int, 0, count*len(c.children))
	for _, g := range c.children {
		seq, err := g.Generate(count)
		if err != nil {
			return nil, err
		}
		out = append(out, seq...)
	}
	return out, nil
}

// Display prints the composite header, then lets each child display itself.
func (c *CompositeGenerator) Display(p Printer) error {
	if err := p.Header(HeaderComposite); err != nil {
		return err
	}
	for _, g := range c.children {
		if err := g.Display(p); err != nil {
			return err
		}
	}
	return nil
}
