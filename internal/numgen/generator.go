// Package numgen implements the base, adapter, composite and decorated
// number generators behind a single Generator interface.
package numgen

// Generator is the common capability shared by every number generator.
// Base, adapter, composite and decorated generators are interchangeable
// wherever a Generator is expected.
type Generator interface {
	// Generate returns a freshly allocated sequence for count terms.
	// A count outside [0, MaxCount] fails with *ErrInvalidArgument; zero
	// yields an empty sequence.
	Generate(count int) ([]int, error)

	// Display writes the generator's block to p.
	Display(p Printer) error
}

// Printer receives display output. Implementations decide the formatting.
type Printer interface {
	Header(title string) error
	Value(v int) error
}

// DisplayCount is the fixed count used by the adapter and decorator
// displays, independent of any earlier Generate call.
const DisplayCount = 5

// MaxCount is the largest count a generator accepts.
const MaxCount = 1 << 20

// Display headers.
const (
	HeaderBase      = "Numbers divisible by 6:"
	HeaderAdapter   = "Numbers divisible by 2 (via adapter):"
	HeaderComposite = "Composite number list:"
	HeaderDecorated = "Numbers with modification (decorator):"
)

func checkCount(count int) error {
	if count < 0 || count > MaxCount {
		return &ErrInvalidArgument{Count: count}
	}
	return nil
}

// printBlock writes a header followed by one value per call.
func printBlock(p Printer, header string, values []int) error {
	if err := p.Header(header); err != nil {
		return err
	}
	for _, v := range values {
		if err := p.Value(v); err != nil {
			return err
		}
	}
	return nil
}
