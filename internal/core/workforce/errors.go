package workforce

import "errors"

var (
	ErrConfiguration      = errors.New("workforce: invalid configuration")
	ErrInvalidDate        = errors.New("workforce: invalid date")
	ErrInsufficientData   = errors.New("workforce: insufficient data")
	ErrNotDerived         = errors.New("workforce: metrics not derived")
	ErrInvalidRecord      = errors.New("workforce: invalid record")
	ErrCrossCheckMismatch = errors.New("workforce: relational query disagrees with aggregator")
)
