package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a request field that distinguishes absent from explicit null.
// An absent key leaves the target untouched; null overwrites it with the
// zero value.
type Optional[T any] struct {
	Set   bool
	Valid bool // false when the client sent null
	Value T
}

func Opt[T any](v T) Optional[T] { return Optional[T]{Set: true, Valid: true, Value: v} }

func OptNull[T any]() Optional[T] { return Optional[T]{Set: true} }

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
