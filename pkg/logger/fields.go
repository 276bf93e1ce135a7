package logger

// 统一的日志字段命名常量
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldEntity 实体类型字段
	FieldEntity = "entity"

	// FieldID 记录 ID 字段
	FieldID = "id"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldTotal 总数字段
	FieldTotal = "total"
)
