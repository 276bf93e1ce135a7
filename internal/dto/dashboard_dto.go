package dto

// DashboardStatsDTO record counts per entity type
// DashboardStatsDTO 各实体类型的记录数
type DashboardStatsDTO struct {
	Counts map[string]int64 `json:"counts"` // Keyed by entity kind // 以实体类型为键
	Total  int64            `json:"total"`  // Sum of all counts // 总数
}

// HealthDTO 健康检查结果
type HealthDTO struct {
	Status   string `json:"status"`   // "ok" or "degraded"
	Database string `json:"database"` // Database ping result // 数据库连通状态
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
}
