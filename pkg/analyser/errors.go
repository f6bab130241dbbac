package analyser

import (
	"errors"
	"fmt"
)

// ErrLoad is matched by every error returned when a document cannot be
// fetched or parsed.
var ErrLoad = errors.New("document load failed")

// LoadError carries the loader's failure for one source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}
