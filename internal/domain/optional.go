package domain

import (
	"github.com/bytedance/sonic"
)

// Presence is implemented by patch fields that know whether the payload carried them
// Presence 由能区分"未提供"与"显式 null"的补丁字段实现
type Presence interface {
	IsSet() bool
	IsNull() bool
	Any() any
}

// Optional is a patch field with three states: absent, explicit null, value
// Optional 三态补丁字段：未提供、显式 null、有值
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns a present value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an explicit null
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// Get returns the value and whether a non-null value is present
// Get 返回值以及是否存在非 null 值
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// Or returns the value, or def when absent or null
func (o Optional[T]) Or(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

func (o Optional[T]) Any() any {
	return o.value
}

// UnmarshalJSON is only invoked when the key is present, which marks the field as set
// UnmarshalJSON 仅在键存在时被调用，因此调用即视为已提供
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return sonic.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return sonic.Marshal(o.value)
}
