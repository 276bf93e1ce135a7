// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
)

// ListQuery common list request parameters
// ListQuery 通用列表请求参数
type ListQuery struct {
	Page       int    `json:"page" form:"page,default=0"`   // Page number, zero based // 页码，从 0 开始
	Size       int    `json:"size" form:"size"`             // Page size // 每页数量
	SortBy     string `json:"sortBy" form:"sortBy"`         // Sort token, e.g. createdTime-desc // 排序标识
	SearchText string `json:"searchText" form:"searchText"` // Free text keyword // 全文关键字
}

// ToListParams combines the bound query with the raw filter parameters
// ToListParams 将绑定的查询参数与原始过滤参数合并
func (q *ListQuery) ToListParams(filters map[string]string) domain.ListParams {
	return domain.ListParams{
		SearchText: q.SearchText,
		Filters:    filters,
		SortBy:     q.SortBy,
		Page:       q.Page,
		Size:       q.Size,
	}
}

// IDRequest path id parameter
// IDRequest 路径 ID 参数
type IDRequest struct {
	ID int64 `uri:"id" binding:"required,gt=0"` // Record ID // 记录 ID
}
