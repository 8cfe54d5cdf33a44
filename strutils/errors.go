package strutils

import "github.com/pkg/errors"

var (
	ErrNegativeLength    = errors.New("max length must not be negative")
	ErrAnnotationTooLong = errors.New("trailing annotation does not fit into max length")
)
