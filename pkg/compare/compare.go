// Package compare expresses three-way comparison for the kit packages.
package compare

import (
	"strings"

	"go.llib.dev/collkit/internal/constraints"
)

// Func is a three-way comparator function.
//
// It returns:
//   - a negative number if a is less than b,
//   - zero if they are equal,
//   - a positive number if a is greater than b.
//
// A Func passed to an ordered operation must define a total order
// over the values the operation works with.
type Func[T any] func(a, b T) int

// Interface defines how comparison can be implemented by a type itself.
//
// Types implementing this interface must provide a Compare method
// that defines the ordering or equivalence of values.
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return 0 < cmp
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return 0 <= cmp
}

func Numbers[T constraints.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}
