package numgen

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// block is one header and the values printed under it.
type block struct {
	Header string
	Values []int
}

// recorder is an in-memory Printer.
type recorder struct {
	blocks []block
	failOn string
}

func (r *recorder) Header(title string) error {
	if r.failOn != "" && title == r.failOn {
		return errors.New("printer closed")
	}
	r.blocks = append(r.blocks, block{Header: title})
	return nil
}

func (r *recorder) Value(v int) error {
	if len(r.blocks) == 0 {
		return errors.New("value before header")
	}
	last := &r.blocks[len(r.blocks)-1]
	last.Values = append(last.Values, v)
	return nil
}

// failingGenerator always returns err.
type failingGenerator struct {
	err error
}

func (f *failingGenerator) Generate(int) ([]int, error) { return nil, f.err }
func (f *failingGenerator) Display(Printer) error { return f.err }

func TestGenerators_Interchangeable(t *testing.T) {
	base := NewBaseGenerator()
	gens := map[string]Generator{
		"base":      base,
		"adapter":   NewAdapter(base),
		"composite": NewComposite(base),
		"decorated": Decorate(base),
		"logging":   WithLogging(base, "base", nil),
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			seq, err := g.Generate(3)
			require.NoError(t, err)
			assert.Len(t, seq, 3)
		})
	}
}

func TestGenerators_NegativeCount(t *testing.T) {
	base := NewBaseGenerator()
	gens := map[string]Generator{
		"base":            base,
		"adapter":         NewAdapter(base),
		"composite":       NewComposite(base, NewAdapter(base)),
		"empty composite": NewComposite(),
		"decorated":       Decorate(NewAdapter(base)),
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			seq, err := g.Generate(-1)
			require.Error(t, err)
			assert.Nil(t, seq)

			var invalid *ErrInvalidArgument
			require.True(t, errors.As(err, &invalid), "expected *ErrInvalidArgument, got %T", err)
			assert.Equal(t, -1, invalid.Count)
		})
	}
}

func TestGenerators_CountTooLarge(t *testing.T) {
	base := NewBaseGenerator()
	gens := map[string]Generator{
		"base":      base,
		"adapter":   NewAdapter(base),
		"composite": NewComposite(base, base, base, base),
		"decorated": Decorate(base),
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			for _, count := range []int{MaxCount + 1, math.MaxInt/2 + 1, math.MaxInt} {
				seq, err := g.Generate(count)
				require.Error(t, err)
				assert.Nil(t, seq)

				var invalid *ErrInvalidArgument
				require.True(t, errors.As(err, &invalid), "expected *ErrInvalidArgument, got %T", err)
				assert.Equal(t, count, invalid.Count)
			}
		})
	}
}

func TestGenerators_MaxCountAccepted(t *testing.T) {
	seq, err := NewBaseGenerator().Generate(MaxCount)
	require.NoError(t, err)
	require.Len(t, seq, MaxCount)
	assert.Equal(t, Step*MaxCount, seq[MaxCount-1])
}

func TestGenerators_ZeroCount(t *testing.T) {
	base := NewBaseGenerator()
	gens := []Generator{base, NewAdapter(base), NewComposite(base, base), Decorate(base)}
	for _, g := range gens {
		seq, err := g.Generate(0)
		require.NoError(t, err)
		assert.NotNil(t, seq)
		assert.Empty(t, seq)
	}
}

func TestErrInvalidArgument_Message(t *testing.T) {
	err := &ErrInvalidArgument{Count: -3}
	assert.Equal(t, "invalid argument: count must be non-negative, got -3", err.Error())

	err = &ErrInvalidArgument{Count: MaxCount + 1}
	assert.Equal(t, fmt.Sprintf("invalid argument: count must be at most %d, got %d", MaxCount, MaxCount+1), err.Error())
}
