package numgen

// Divisor rescales base terms into multiples of 2.
const Divisor = 3

// AdapterGenerator exposes a BaseGenerator's multiples of 6 as multiples
// of 2 without changing the base.
type AdapterGenerator struct {
	base *BaseGenerator
}

// NewAdapter wraps base.
func NewAdapter(base *BaseGenerator) *AdapterGenerator {
	return &AdapterGenerator{base: base}
}

// Generate returns base.Generate(count) with every term divided by Divisor
// (Go integer division, truncating toward zero).
func (a *AdapterGenerator) Generate(count int) ([]int, error) {
	seq, err := a.base.Generate(count)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(seq))
	for i, v := range seq {
		out[i] = v / Divisor
	}
	return out, nil
}

// Display always generates DisplayCount terms.
func (a *AdapterGenerator) Display(p Printer) error {
	seq, err := a.Generate(DisplayCount)
	if err != nil {
		return err
	}
	return printBlock(p, HeaderAdapter, seq)
}
