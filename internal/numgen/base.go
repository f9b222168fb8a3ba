package numgen

import "sync"

// Step is the difference between consecutive BaseGenerator terms.
const Step = 6

// BaseGenerator produces the progression 6, 12, 18, ... and keeps the most
// recent sequence for Display.
type BaseGenerator struct {
	mu   sync.Mutex
	last []int
}

// NewBaseGenerator returns a BaseGenerator with nothing generated yet.
func NewBaseGenerator() *BaseGenerator {
	return &BaseGenerator{}
}

// Generate returns Step*1 .. Step*count. The cached sequence is replaced,
// never appended to.
func (b *BaseGenerator) Generate(count int) ([]int, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	seq := make([]int, count)
	for i := range seq {
		seq[i] = Step * (i + 1)
	}

	b.mu.Lock()
	b.last = seq
	b.mu.Unlock()

	out := make([]int, count)
	copy(out, seq)
	return out, nil
}

// Last returns a copy of the most recently generated sequence.
func (b *BaseGenerator) Last() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]int, len(b.last))
	copy(out, b.last)
	return out
}

// Display prints the most recently generated sequence. It prints only the
// header when Generate was never called.
func (b *BaseGenerator) Display(p Printer) error {
	return printBlock(p, HeaderBase, b.Last())
}
