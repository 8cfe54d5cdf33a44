package sliceutils

import "github.com/pkg/errors"

var (
	ErrNilSlice     = errors.New("slice must not be nil")
	ErrNilPredicate = errors.New("zero predicate must not be nil")
)
