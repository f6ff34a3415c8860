// Package opt provides an explicit optional value type.
//
// An Opt tags a result either as present or as absent,
// so a present but zero value is never confused with a missing one.
// Checking the discriminant is always explicit;
// truthiness of the wrapped value plays no role in the API.
package opt

// Opt represents an optional value of type T.
// The zero Opt is absent.
type Opt[T any] struct {
	value   T
	present bool
}

// Some returns an Opt that holds the given value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, present: true}
}

// None returns the absent Opt of type T.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Of adapts a comma-ok pair into an Opt.
func Of[T any](v T, ok bool) Opt[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the Opt holds a value.
func (o Opt[T]) IsSome() bool { return o.present }

// IsNone reports whether the Opt is absent.
func (o Opt[T]) IsNone() bool { return !o.present }

// Lookup returns the held value and whether it is present.
func (o Opt[T]) Lookup() (T, bool) {
	return o.value, o.present
}

// Get returns the held value, or the zero value of T when absent.
func (o Opt[T]) Get() T { return o.value }

// OrElse returns the held value, or the given fallback when absent.
func (o Opt[T]) OrElse(v T) T {
	if o.present {
		return o.value
	}
	return v
}

// Map applies fn to the held value, when there is one.
func Map[To, From any](o Opt[From], fn func(From) To) Opt[To] {
	if o.IsNone() {
		return None[To]()
	}
	return Some(fn(o.Get()))
}
