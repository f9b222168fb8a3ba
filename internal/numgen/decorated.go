package numgen

// Increment is added to every term by DecoratedGenerator.
const Increment = 1

// DecoratedGenerator adds Increment to every term of the wrapped generator.
type DecoratedGenerator struct {
	inner Generator
}

// Decorate wraps g. The wrapped generator cannot be replaced afterwards.
func Decorate(g Generator) *DecoratedGenerator {
	return &DecoratedGenerator{inner: g}
}

func (d *DecoratedGenerator) Generate(count int) ([]int, error) {
	seq, err := d.inner.Generate(count)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(seq))
	for i, v := range seq {
		out[i] = v + Increment
	}
	return out, nil
}

// Display always generates DisplayCount terms.
func (d *DecoratedGenerator) Display(p Printer) error {
	seq, err := d.Generate(DisplayCount)
	if err != nil {
		return err
	}
	return printBlock(p, HeaderDecorated, seq)
}
