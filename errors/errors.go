// Package errors defines the error kinds raised by tabular contracts and a
// small utility for accumulating multiple errors into one.
package errors

import "errors"

var (
	// ErrValidation indicates that a contract's predicate failed and either
	// coercion was disabled or the coerced container still failed the recheck.
	ErrValidation = errors.New("validation failed")

	// ErrShape indicates that a contract was applied to the wrong container
	// kind, for example a column-set contract given a series instead of a frame.
	ErrShape = errors.New("wrong container shape")

	// ErrConfiguration indicates that a contract or binding was set up with
	// unusable parameters, for example an unknown monotonic direction or an
	// argument name absent from the wrapped call.
	ErrConfiguration = errors.New("invalid configuration")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a
// single combined error. Suite evaluation uses it to report every failing
// contract rather than stopping at the first.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
