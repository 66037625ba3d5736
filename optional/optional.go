// Package optional provides a type-safe Optional type for representing values
// that may or may not be present. It explicitly models presence instead of
// overloading pointers or zero values.
package optional

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the contained value and true, or the zero value and false when empty.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the contained value if present, otherwise defaultValue.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// GetOrElseFunc returns the contained value if present, otherwise the result
// of calling defaultFunc. Use this when computing the default is not free.
func (o Value[T]) GetOrElseFunc(defaultFunc func() T) T {
	if o.isSet {
		return o.value
	}

	return defaultFunc()
}

// Map transforms the contained value with f, producing a new Value.
// An empty input stays empty.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
