package model

import "encoding/json"

// Optional records whether a JSON key was present at all, separately
// from its value. A present null leaves Value nil with Set true.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func (o Optional[T]) IsZero() bool {
	return !o.Set
}
