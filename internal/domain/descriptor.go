package domain

import "strings"

// FilterKind decides how a list filter parameter is parsed and when it is inactive
// FilterKind 决定列表过滤参数的解析方式以及何时视为未启用
type FilterKind int

const (
	// FilterID numeric id, 0 or empty means unconstrained
	// FilterID 数字 ID，0 或空表示不限制
	FilterID FilterKind = iota
	// FilterEnum closed set, "all" or empty means unconstrained
	// FilterEnum 枚举，"all" 或空表示不限制
	FilterEnum
	// FilterValue plain integer, 0 or empty means unconstrained
	// FilterValue 普通整数，0 或空表示不限制
	FilterValue
)

// SentinelAll enum filter value meaning unconstrained
const SentinelAll = "all"

// TagField relation path matched through the tag join table
// TagField 通过标签中间表匹配的关联路径
const TagField = "tags.id"

// Filter one equality filter accepted by a list endpoint
// Filter 列表接口接受的一个等值过滤
type Filter struct {
	// Param query parameter name, e.g. "categoryId"
	Param string
	// Field predicate field, e.g. "category_id" or "tags.id"
	Field string
	Kind  FilterKind
	// Enum allowed values for FilterEnum
	Enum Enum
}

// SortKey 排序列与方向
type SortKey struct {
	Column string
	Desc   bool
}

const (
	// DefaultSort token used when sortBy is empty or unknown
	DefaultSort = "createdTime-desc"
)

var createdSorts = map[string]SortKey{
	"createdTime-asc":  {Column: "created_time"},
	"createdTime-desc": {Column: "created_time", Desc: true},
}

// Descriptor describes how an entity type is searched, filtered and sorted
// Descriptor 描述实体类型的搜索、过滤与排序方式
type Descriptor struct {
	// Kind entity name used in logs and metrics
	Kind string
	// Search columns matched by the free-text OR group
	Search []string
	// Filters in the order their predicates are built
	Filters []Filter
	// Sorts whitelisted sort tokens besides createdTime-asc/desc
	Sorts map[string]SortKey
	// Preload associations loaded with every read
	Preload []string
}

// Sort resolves a sort token, unknown tokens fall back to DefaultSort
// Sort 解析排序标识，未知标识回退到 DefaultSort
func (d Descriptor) Sort(token string) (SortKey, string) {
	token = strings.TrimSpace(token)
	if k, ok := d.Sorts[token]; ok {
		return k, token
	}
	if k, ok := createdSorts[token]; ok {
		return k, token
	}
	return createdSorts[DefaultSort], DefaultSort
}

// SortTokens lists every accepted token
func (d Descriptor) SortTokens() []string {
	out := make([]string, 0, len(d.Sorts)+len(createdSorts))
	for k := range createdSorts {
		out = append(out, k)
	}
	for k := range d.Sorts {
		out = append(out, k)
	}
	return out
}

// HasTags reports whether the entity is filtered through the tag relation
func (d Descriptor) HasTags() bool {
	for _, f := range d.Filters {
		if f.Field == TagField {
			return true
		}
	}
	return false
}

// CategoryFilter 分类过滤
func CategoryFilter() Filter {
	return Filter{Param: "categoryId", Field: "category_id", Kind: FilterID}
}

// TagFilter 标签过滤
func TagFilter() Filter {
	return Filter{Param: "tagId", Field: TagField, Kind: FilterID}
}

// EnumFilter 枚举过滤，参数名与枚举字段名一致
func EnumFilter(column string, e Enum) Filter {
	return Filter{Param: e.Field, Field: column, Kind: FilterEnum, Enum: e}
}
