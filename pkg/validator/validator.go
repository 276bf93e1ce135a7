// Package validator installs go-playground/validator as gin's binding validator
// Package validator 将 go-playground/validator 注册为 gin 的绑定验证器
package validator

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/util"
)

// CustomValidator implements binding.StructValidator
// CustomValidator 实现 binding.StructValidator 接口
type CustomValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = (*CustomValidator)(nil)

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

// ValidateStruct validates structs, pointers to structs and slices of them
// ValidateStruct 验证结构体、结构体指针及其切片
func (v *CustomValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.ValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		v.lazyinit()
		return v.validate.Struct(obj)
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := v.ValidateStruct(value.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Engine returns the underlying *validator.Validate
// Engine 返回底层的 *validator.Validate
func (v *CustomValidator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")
	})
}

// RegisterCustom registers the project specific tags on gin's current validator
// RegisterCustom 在 gin 当前验证器上注册项目自定义标签
//
//	username: 3-20 letters, digits or underscores
func RegisterCustom() {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return util.IsValidUsername(fl.Field().String())
	})
}
