package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
)

// BuildQuery turns raw list parameters into a validated repository query
// BuildQuery 将原始列表参数转换为已校验的仓储查询
//
// Active predicates are ANDed in this order: the free-text OR group over
// the descriptor's search columns, then each filter in declaration order.
// 启用的条件按以下顺序 AND 组合：全文检索的 OR 组，然后按声明顺序的各过滤条件。
func BuildQuery(desc domain.Descriptor, p domain.ListParams, maxSize int) (domain.Query, error) {
	if p.Page < 0 {
		return domain.Query{}, domain.NewFieldError("page", "must be >= 0, got %d", p.Page)
	}
	if p.Size < 1 {
		return domain.Query{}, domain.NewFieldError("size", "must be >= 1, got %d", p.Size)
	}
	size := p.Size
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}

	preds := make([]domain.Predicate, 0, len(desc.Filters)+1)

	if text := strings.TrimSpace(p.SearchText); text != "" {
		group := make([]domain.Predicate, 0, len(desc.Search))
		for _, col := range desc.Search {
			group = append(group, domain.Contains{Field: col, Text: text})
		}
		preds = append(preds, domain.AnyOf(group...))
	}

	for _, f := range desc.Filters {
		pred, err := filterPredicate(f, p.Filters[f.Param])
		if err != nil {
			return domain.Query{}, err
		}
		preds = append(preds, pred)
	}

	order, _ := desc.Sort(p.SortBy)

	return domain.Query{
		Where:  domain.AllOf(preds...),
		Order:  order,
		Offset: pageOffset(p.Page, size),
		Limit:  size,
	}, nil
}

// pageOffset saturates at math.MaxInt so a huge page lands past the end instead of overflowing
// pageOffset 溢出时取 math.MaxInt，超大页码落在末尾之后而不是回绕为负数
func pageOffset(page, size int) int {
	if page > math.MaxInt/size {
		return math.MaxInt
	}
	return page * size
}

// filterPredicate returns nil when the raw value is a sentinel
// filterPredicate 当原始值为哨兵值时返回 nil
func filterPredicate(f domain.Filter, raw string) (domain.Predicate, error) {
	raw = strings.TrimSpace(raw)

	switch f.Kind {
	case domain.FilterID, domain.FilterValue:
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, domain.NewFieldError(f.Param, "must be an integer, got %q", raw)
		}
		if n == 0 {
			return nil, nil
		}
		if f.Kind == domain.FilterID && n < 0 {
			return nil, domain.NewFieldError(f.Param, "must be a positive id, got %d", n)
		}
		return domain.Equals{Field: f.Field, Value: n}, nil

	case domain.FilterEnum:
		if raw == "" || strings.EqualFold(raw, domain.SentinelAll) {
			return nil, nil
		}
		if err := f.Enum.Check(raw); err != nil {
			return nil, err
		}
		return domain.Equals{Field: f.Field, Value: raw}, nil
	}
	return nil, nil
}
