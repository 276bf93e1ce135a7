package service

import (
	"errors"
	"fmt"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"gorm.io/gorm"
)

// mapError translates repository and domain errors to response codes
// mapError 将仓储与领域错误转换为响应码
//
// Storage failures keep the cause wrapped for logging, the code is what errors.As finds.
// 存储错误保留原始原因用于日志，errors.As 取到的是响应码。
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var c *code.Code
	if errors.As(err, &c) {
		return err
	}

	var fe *domain.FieldError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return code.ErrorRecordNotFound.Clone()
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return code.ErrorConflict.Clone().WithDetails(err.Error())
	case errors.As(err, &fe):
		return code.ErrorInvalidParams.Clone().
			WithDetails(fe.Error()).
			WithData(map[string]string{fe.Field: fe.Message})
	case errors.Is(err, domain.ErrRelationNotFound):
		return code.ErrorRelationNotFound.Clone().WithDetails(err.Error())
	}
	return fmt.Errorf("%w: %w", code.ErrorDBQuery.Clone(), err)
}
