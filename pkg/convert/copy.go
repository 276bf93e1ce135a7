package convert

import (
	"github.com/jinzhu/copier"
)

// StructAssign copies same-named fields from src into dst and returns dst
// StructAssign 将 src 中同名字段复制到 dst 并返回 dst
func StructAssign[T any](src any, dst *T) (*T, error) {
	if err := copier.CopyWithOption(dst, src, copier.Option{IgnoreEmpty: false, DeepCopy: true}); err != nil {
		return nil, err
	}
	return dst, nil
}
