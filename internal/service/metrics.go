package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
)

// entityOperations counts service calls by entity kind, operation and outcome
// entityOperations 按实体类型、操作与结果统计服务调用次数
var entityOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pim",
	Name:      "entity_operations_total",
	Help:      "Entity service operations by entity, operation and result.",
}, []string{"entity", "op", "result"})

func observe(kind, op string, err error) {
	entityOperations.WithLabelValues(kind, op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, code.ErrorRecordNotFound):
		return "not_found"
	case errors.Is(err, code.ErrorInvalidParams), errors.Is(err, code.ErrorRelationNotFound):
		return "invalid"
	case errors.Is(err, code.ErrorConflict):
		return "conflict"
	default:
		return "error"
	}
}
