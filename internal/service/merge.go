package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
)

// Struct tag on patch fields. `merge:"-"` skips the field, `merge:"nonnull"` rejects explicit null.
// 补丁字段的结构体标签：`merge:"-"` 跳过该字段，`merge:"nonnull"` 拒绝显式 null。
const mergeTag = "merge"

// protected fields are never copied from a patch
var protected = map[string]bool{
	"ID":          true,
	"CreatedTime": true,
	"UpdatedTime": true,
}

var presenceType = reflect.TypeOf((*domain.Presence)(nil)).Elem()

// Merge copies every present field of patch onto the same-named field of dst
// Merge 将补丁中已提供的字段复制到 dst 的同名字段
//
// Absent fields keep the stored value, explicit null stores the zero value
// (NULL for pointer fields), any other value overwrites.
// 未提供的字段保持原值，显式 null 写入零值（指针字段为 NULL），其余情况覆盖。
func Merge(dst any, patch any) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("merge: dst must be a pointer to struct, got %T", dst)
	}

	pv := reflect.Indirect(reflect.ValueOf(patch))
	if !pv.IsValid() {
		return nil
	}
	if pv.Kind() != reflect.Struct {
		return fmt.Errorf("merge: patch must be a struct, got %T", patch)
	}
	return mergeStruct(dv.Elem(), pv)
}

// mergeStruct walks patch fields, descending into embedded patch groups
// mergeStruct 遍历补丁字段，内嵌的补丁分组递归处理
func mergeStruct(dv, pv reflect.Value) error {
	pt := pv.Type()
	for i := 0; i < pt.NumField(); i++ {
		sf := pt.Field(i)
		opt := sf.Tag.Get(mergeTag)
		if opt == "-" || protected[sf.Name] {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && !sf.Type.Implements(presenceType) {
			if err := mergeStruct(dv, pv.Field(i)); err != nil {
				return err
			}
			continue
		}
		if !sf.IsExported() || !sf.Type.Implements(presenceType) {
			continue
		}

		p := pv.Field(i).Interface().(domain.Presence)
		if !p.IsSet() {
			continue
		}

		target := dv.FieldByName(sf.Name)
		if !target.IsValid() || !target.CanSet() {
			return fmt.Errorf("merge: %s has no field %s", dv.Type(), sf.Name)
		}

		if p.IsNull() {
			if opt == "nonnull" {
				return domain.NewFieldError(fieldName(sf), "must not be null")
			}
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		if err := assign(target, reflect.ValueOf(p.Any())); err != nil {
			return domain.NewFieldError(fieldName(sf), "%v", err)
		}
	}
	return nil
}

// assign handles same types, pointer columns and convertible scalars
// assign 处理同类型、指针列与可转换的标量
func assign(target, v reflect.Value) error {
	if !v.IsValid() {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	tt := target.Type()
	switch {
	case v.Type().AssignableTo(tt):
		target.Set(v)
	case tt.Kind() == reflect.Pointer && v.Type().AssignableTo(tt.Elem()):
		ptr := reflect.New(tt.Elem())
		ptr.Elem().Set(v)
		target.Set(ptr)
	case tt.Kind() == reflect.Pointer && v.Type().ConvertibleTo(tt.Elem()):
		ptr := reflect.New(tt.Elem())
		ptr.Elem().Set(v.Convert(tt.Elem()))
		target.Set(ptr)
	case v.Type().ConvertibleTo(tt) && (v.Kind() != reflect.String || tt.Kind() == reflect.String):
		target.Set(v.Convert(tt))
	default:
		return fmt.Errorf("cannot assign %s to %s", v.Type(), tt)
	}
	return nil
}

func fieldName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}
