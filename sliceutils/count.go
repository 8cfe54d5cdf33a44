package sliceutils

import (
	"github.com/pkg/errors"

	"github.com/denismitr/extensions/utils"
)

// CountNonDefault counts the items that are not equal to the zero value of T.
func CountNonDefault[T comparable](items []T) (int, error) {
	return CountNonDefaultFunc(items, utils.IsZero[T])
}

// CountNonDefaultFunc counts the items for which isZero returns false.
// Use it for element types that are not comparable, e.g. slices or maps.
func CountNonDefaultFunc[T any](items []T, isZero func(T) bool) (int, error) {
	if items == nil {
		return 0, errors.Wrap(ErrNilSlice, "items")
	}
	if isZero == nil {
		return 0, ErrNilPredicate
	}

	count := 0
	for _, item := range items {
		if !isZero(item) {
			count++
		}
	}

	return count, nil
}
