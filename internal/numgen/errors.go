package numgen

import "fmt"

// ErrInvalidArgument indicates a generator was asked for a negative count
// or one above MaxCount.
type ErrInvalidArgument struct {
	Count int
}

func (e *ErrInvalidArgument) Error() string {
	if e.Count < 0 {
		return fmt.Sprintf("invalid argument: count must be non-negative, got %d", e.Count)
	}
	return fmt.Sprintf("invalid argument: count must be at most %d, got %d", MaxCount, e.Count)
}
