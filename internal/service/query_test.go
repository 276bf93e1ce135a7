package service

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name      string
		desc      domain.Descriptor
		params    domain.ListParams
		wantWhere string
		wantOrder domain.SortKey
		wantField string
	}{
		{
			name:      "no filters",
			desc:      model.MemoDescriptor,
			params:    domain.ListParams{Size: 10},
			wantOrder: domain.SortKey{Column: "created_time", Desc: true},
		},
		{
			name:      "sentinels are inactive",
			desc:      model.TodoDescriptor,
			params:    domain.ListParams{Size: 10, Filters: map[string]string{"categoryId": "0", "tagId": "", "status": "all", "priority": "0"}},
			wantOrder: domain.SortKey{Column: "created_time", Desc: true},
		},
		{
			name:      "search text ors the search columns",
			desc:      model.MemoDescriptor,
			params:    domain.ListParams{Size: 10, SearchText: " go "},
			wantWhere: "(title LIKE %go% OR content LIKE %go%)",
			wantOrder: domain.SortKey{Column: "created_time", Desc: true},
		},
		{
			name:      "filters follow declaration order",
			desc:      model.TodoDescriptor,
			params:    domain.ListParams{Size: 10, SearchText: "x", Filters: map[string]string{"priority": "2", "status": "PENDING", "tagId": "7", "categoryId": "3"}},
			wantWhere: "((title LIKE %x% OR content LIKE %x%) AND category_id = 3 AND tags.id = 7 AND status = PENDING AND priority = 2)",
			wantOrder: domain.SortKey{Column: "created_time", Desc: true},
		},
		{
			name:      "single predicate is not wrapped",
			desc:      model.ArticleDescriptor,
			params:    domain.ListParams{Size: 10, Filters: map[string]string{"status": "PUBLISHED", "visibility": "all"}},
			wantWhere: "status = PUBLISHED",
			wantOrder: domain.SortKey{Column: "created_time", Desc: true},
		},
		{
			name:      "whitelisted sort",
			desc:      model.TodoDescriptor,
			params:    domain.ListParams{Size: 10, SortBy: "priority-desc"},
			wantOrder: domain.SortKey{Column: "priority", Desc: true},
		},
		{
			name:      "unknown sort falls back",
			desc:      model.TodoDescriptor,
			params:    domain.ListParams{Size: 10, SortBy: "views-desc"},
			wantOrder: domain.SortKey{Column: "created_time", Desc: true},
		},
		{
			name:      "bad enum",
			desc:      model.ArticleDescriptor,
			params:    domain.ListParams{Size: 10, Filters: map[string]string{"status": "DRAFT"}},
			wantField: "status",
		},
		{
			name:      "enum is case sensitive",
			desc:      model.DiaryDescriptor,
			params:    domain.ListParams{Size: 10, Filters: map[string]string{"mood": "happy"}},
			wantField: "mood",
		},
		{
			name:      "non numeric id",
			desc:      model.MemoDescriptor,
			params:    domain.ListParams{Size: 10, Filters: map[string]string{"categoryId": "abc"}},
			wantField: "categoryId",
		},
		{
			name:      "negative page",
			desc:      model.MemoDescriptor,
			params:    domain.ListParams{Page: -1, Size: 10},
			wantField: "page",
		},
		{
			name:      "zero size",
			desc:      model.MemoDescriptor,
			params:    domain.ListParams{Size: 0},
			wantField: "size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildQuery(tt.desc, tt.params, 100)
			if tt.wantField != "" {
				var fe *domain.FieldError
				require.True(t, errors.As(err, &fe), "want FieldError, got %v", err)
				assert.Equal(t, tt.wantField, fe.Field)
				return
			}
			require.NoError(t, err)
			if tt.wantWhere == "" {
				assert.Nil(t, q.Where)
			} else {
				require.NotNil(t, q.Where)
				assert.Equal(t, tt.wantWhere, q.Where.String())
			}
			assert.Equal(t, tt.wantOrder, q.Order)
		})
	}
}

func TestBuildQuery_BadEnumNamesAllowedValues(t *testing.T) {
	_, err := BuildQuery(model.ArticleDescriptor, domain.ListParams{Size: 1, Filters: map[string]string{"visibility": "SECRET"}}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUBLIC")
	assert.Contains(t, err.Error(), "PRIVATE")
}

func TestBuildQuery_HugePageLandsPastTheEnd(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
	}{
		{"just over", math.MaxInt/10 + 1, 10},
		{"max page", math.MaxInt, 1},
		{"max page with clamp", math.MaxInt / 5, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildQuery(model.MemoDescriptor, domain.ListParams{Page: tt.page, Size: tt.size}, 100)
			require.NoError(t, err)
			assert.Equal(t, math.MaxInt, q.Offset)
			assert.Positive(t, q.Limit)
		})
	}

	q, err := BuildQuery(model.MemoDescriptor, domain.ListParams{Page: math.MaxInt / 10, Size: 10}, 100)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/10*10, q.Offset)
}

func TestBuildQuery_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// 偏移量等于页码乘以截断后的分页大小
	properties.Property("offset is page times clamped size", prop.ForAll(
		func(page, size, max int) bool {
			q, err := BuildQuery(model.MemoDescriptor, domain.ListParams{Page: page, Size: size}, max)
			if err != nil {
				return false
			}
			want := size
			if size > max {
				want = max
			}
			return q.Limit == want && q.Offset == page*want
		},
		gen.IntRange(0, 1000),
		gen.IntRange(1, 500),
		gen.IntRange(1, 200),
	))

	// 任意合法页码都不会产生负偏移
	properties.Property("offset never wraps negative", prop.ForAll(
		func(page int) bool {
			q, err := BuildQuery(model.MemoDescriptor, domain.ListParams{Page: page, Size: 10}, 100)
			return err == nil && q.Offset >= 0
		},
		gen.IntRange(0, math.MaxInt),
	))

	// 非法分页参数总是被拒绝
	properties.Property("negative page or non positive size is rejected", prop.ForAll(
		func(page, size int) bool {
			_, err := BuildQuery(model.MemoDescriptor, domain.ListParams{Page: page, Size: size}, 100)
			var fe *domain.FieldError
			return errors.As(err, &fe)
		},
		gen.IntRange(-1000, -1),
		gen.IntRange(-10, 10),
	))

	// 未知排序标识回退到默认排序且不报错
	properties.Property("unknown sort token falls back to createdTime-desc", prop.ForAll(
		func(token string) bool {
			q, err := BuildQuery(model.TodoDescriptor, domain.ListParams{Size: 5, SortBy: "zz" + token}, 100)
			return err == nil && q.Order == domain.SortKey{Column: "created_time", Desc: true}
		},
		gen.AlphaString(),
	))

	// 枚举过滤：集合内的值产生等值条件，集合外的值被拒绝
	properties.Property("enum filter accepts members and rejects others", prop.ForAll(
		func(v string) bool {
			q, err := BuildQuery(model.TodoDescriptor, domain.ListParams{Size: 5, Filters: map[string]string{"status": v}}, 100)
			if model.TodoStatus.Contains(v) {
				return err == nil && q.Where == domain.Equals{Field: "status", Value: v}
			}
			return err != nil
		},
		gen.OneGenOf(
			gen.OneConstOf("PENDING", "IN_PROGRESS", "COMPLETED"),
			gen.Identifier().SuchThat(func(v string) bool { return v != domain.SentinelAll }),
		),
	))

	properties.TestingRun(t)
}
