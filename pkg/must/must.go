// Package must is a syntax sugar package to make the use of `Must` functions.
//
// The `must` package provides an easy way to make functions panic on error.
// This is typically used where returning an error is inconvenient
// and meaningful error recovery isn't possible due to it being a programming error.
//
// Dot import can be used since the package is intentionally kept small and focused on this specific topic:
//
//	Must(strconv.Atoi("42"))
package must

// Must is a syntax sugar to express things like must.Must(regexp.Compile(`regexp`))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Must2[A, B any](a A, b B, err error) (A, B) {
	if err != nil {
		panic(err)
	}
	return a, b
}
