package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON value that remembers whether it was present in the payload
// and whether it was an explicit null. The zero Field is absent.
type Field[T any] struct {
	value T
	set   bool
	null  bool
}

func Of[T any](value T) Field[T] {
	return Field[T]{value: value, set: true}
}

func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the field was present, null or not.
func (f Field[T]) IsSet() bool {
	return f.set
}

func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// HasValue reports whether the field was present with a non-null value.
func (f Field[T]) HasValue() bool {
	return f.set && !f.null
}

// Value returns the carried value, or the zero value when absent or null.
func (f Field[T]) Value() T {
	return f.value
}

// Ptr returns a pointer to a copy of the value, nil when absent or null.
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.value
	return &v
}

// ValidationValue exposes the value to struct validators. Absent and null
// fields report nil so "omitempty" rules skip them.
func (f Field[T]) ValidationValue() any {
	if !f.HasValue() {
		return nil
	}
	return f.value
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value = zero
		f.null = true
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
