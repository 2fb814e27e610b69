package report

import "errors"

var (
	// ErrShape indicates the dataset or options value is not well-formed.
	ErrShape = errors.New("malformed input")
	// ErrEmptyCollection indicates a required input collection is empty.
	ErrEmptyCollection = errors.New("empty collection")
	// ErrMissingStrategy indicates a required calculation strategy was not supplied.
	ErrMissingStrategy = errors.New("missing calculation strategy")
	// ErrInvalidRecord indicates a record failed field-level validation.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidType indicates a numeric field holds a non-finite value.
	ErrInvalidType = errors.New("invalid numeric value")
	// ErrIndexOutOfRange indicates a bonus strategy was invoked with a rank
	// outside [0, total).
	ErrIndexOutOfRange = errors.New("rank index out of range")
)
