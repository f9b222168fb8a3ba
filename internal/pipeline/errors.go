package pipeline

import "fmt"

// ErrInvalidDefinition indicates a definition failed schema validation or
// could not be built.
type ErrInvalidDefinition struct {
	// Path locates the offending node, e.g. "generators[2].children[0]".
	// Empty when the document as a whole is rejected.
	Path string
	Err  error
}

func (e *ErrInvalidDefinition) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid pipeline definition: %v", e.Err)
	}
	return fmt.Sprintf("invalid pipeline definition at %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidDefinition) Unwrap() error { return e.Err }
