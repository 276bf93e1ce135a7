package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRelationNotFound a referenced category, subject or tag does not exist
// ErrRelationNotFound 引用的分类、主题或标签不存在
var ErrRelationNotFound = errors.New("referenced record not found")

// FieldError a rejected input value, carries the field name for per-field detail
// FieldError 被拒绝的输入值，携带字段名用于逐字段提示
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// NewFieldError 创建字段错误
func NewFieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Enum is a closed set of allowed values for a field
// Enum 字段允许取值的封闭集合
type Enum struct {
	Field  string
	Values []string
}

// Contains reports whether v is a member
func (e Enum) Contains(v string) bool {
	for _, x := range e.Values {
		if x == v {
			return true
		}
	}
	return false
}

// Check returns a FieldError naming the allowed values when v is not a member
// Check 当 v 不在集合中时返回列出允许值的 FieldError
func (e Enum) Check(v string) error {
	if e.Contains(v) {
		return nil
	}
	return NewFieldError(e.Field, "must be one of [%s], got %q", strings.Join(e.Values, ", "), v)
}
