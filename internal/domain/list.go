package domain

// ListParams raw list request: free text, filter parameters by name, sort token, paging
// ListParams 列表请求原始参数：全文关键字、按名称的过滤参数、排序标识与分页
type ListParams struct {
	SearchText string
	Filters    map[string]string
	SortBy     string
	// Page zero based
	Page int
	Size int
}

// Query a validated list query handed to a repository
// Query 交给仓储执行的已校验列表查询
type Query struct {
	Where  Predicate
	Order  SortKey
	Offset int
	Limit  int
}

// Page 分页结果
type Page[T any] struct {
	Items         []*T  `json:"items"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
}

// NewPage computes totalPages = ceil(total/size)
// NewPage 计算 totalPages = ceil(total/size)
func NewPage[T any](items []*T, total int64, page, size int) *Page[T] {
	if items == nil {
		items = []*T{}
	}
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Items:         items,
		TotalElements: total,
		TotalPages:    pages,
		PageNumber:    page,
		PageSize:      size,
	}
}
