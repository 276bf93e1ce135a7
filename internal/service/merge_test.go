package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func storedTodo() *model.Todo {
	return &model.Todo{
		Info: model.Info{
			Entity:  model.Entity{ID: 42},
			Title:   "write report",
			Content: "quarterly numbers",
		},
		Status:     "PENDING",
		Priority:   2,
		CategoryID: ptr(int64(5)),
		Tags:       []model.Tag{{Entity: model.Entity{ID: 1}, Name: "work"}},
	}
}

func decodeTodoPatch(t *testing.T, body string) *dto.TodoPatch {
	t.Helper()
	p := &dto.TodoPatch{}
	require.NoError(t, json.Unmarshal([]byte(body), p))
	return p
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		check     func(t *testing.T, got *model.Todo)
		wantField string
	}{
		{
			name: "absent fields keep stored values",
			body: `{"title":"write summary"}`,
			check: func(t *testing.T, got *model.Todo) {
				assert.Equal(t, "write summary", got.Title)
				assert.Equal(t, "quarterly numbers", got.Content)
				assert.Equal(t, 2, got.Priority)
				assert.Equal(t, int64(5), *got.CategoryID)
			},
		},
		{
			name: "null clears",
			body: `{"content":null,"categoryId":null,"deadline":null}`,
			check: func(t *testing.T, got *model.Todo) {
				assert.Equal(t, "", got.Content)
				assert.Nil(t, got.CategoryID)
				assert.True(t, got.Deadline.IsZero())
				assert.Equal(t, "write report", got.Title)
			},
		},
		{
			name: "values overwrite",
			body: `{"categoryId":9,"priority":5,"status":"COMPLETED","deadline":"2024-01-02 03:04:05"}`,
			check: func(t *testing.T, got *model.Todo) {
				assert.Equal(t, int64(9), *got.CategoryID)
				assert.Equal(t, 5, got.Priority)
				assert.Equal(t, "COMPLETED", got.Status)
				assert.Equal(t, "2024-01-02 03:04:05", got.Deadline.String())
			},
		},
		{
			name: "tag ids are not merged onto the record",
			body: `{"tagIds":[]}`,
			check: func(t *testing.T, got *model.Todo) {
				assert.Len(t, got.Tags, 1)
			},
		},
		{
			name:      "null title is rejected",
			body:      `{"title":null}`,
			wantField: "title",
		},
		{
			name:      "null priority is rejected",
			body:      `{"priority":null}`,
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := storedTodo()
			err := Merge(rec, decodeTodoPatch(t, tt.body))
			if tt.wantField != "" {
				var fe *domain.FieldError
				require.True(t, errors.As(err, &fe), "want FieldError, got %v", err)
				assert.Equal(t, tt.wantField, fe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), rec.ID)
			tt.check(t, rec)
		})
	}
}

func TestMerge_ProtectedFields(t *testing.T) {
	type patch struct {
		ID          domain.Optional[int64]
		CreatedTime domain.Optional[timex.Time]
		Title       domain.Optional[string]
	}

	created := timex.Time(time.Date(2023, 5, 1, 8, 0, 0, 0, time.Local))
	rec := storedTodo()
	rec.CreatedTime = created

	err := Merge(rec, patch{
		ID:          domain.Some(int64(7)),
		CreatedTime: domain.Some(timex.Now()),
		Title:       domain.Some("renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.ID)
	assert.True(t, rec.CreatedTime.Equal(created))
	assert.Equal(t, "renamed", rec.Title)
}

func TestMerge_TypeMismatch(t *testing.T) {
	type patch struct {
		Priority domain.Optional[string] `json:"priority"`
	}
	err := Merge(storedTodo(), patch{Priority: domain.Some("high")})

	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "priority", fe.Field)
}

func TestMerge_InvalidArguments(t *testing.T) {
	assert.Error(t, Merge(model.Todo{}, dto.TodoPatch{}))
	assert.Error(t, Merge(&model.Todo{}, 3))
	assert.NoError(t, Merge(&model.Todo{}, (*dto.TodoPatch)(nil)))
}

func TestMerge_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// 空补丁不改变记录
	properties.Property("empty patch is identity", prop.ForAll(
		func(title, content string, priority int, category int64) bool {
			rec := &model.Todo{Info: model.Info{Title: title, Content: content}, Priority: priority, CategoryID: &category}
			before := *rec
			if err := Merge(rec, &dto.TodoPatch{}); err != nil {
				return false
			}
			return rec.Title == before.Title && rec.Content == before.Content &&
				rec.Priority == before.Priority && rec.CategoryID == before.CategoryID
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(1, 5),
		gen.Int64Range(1, 1<<40),
	))

	// 提供的值覆盖原值，未提供的字段保持不变
	properties.Property("present values overwrite and absent values stay", prop.ForAll(
		func(oldTitle, newTitle, content string) bool {
			rec := &model.Memo{Info: model.Info{Title: oldTitle, Content: content}}
			p := &dto.MemoPatch{}
			p.Title = domain.Some(newTitle)
			if err := Merge(rec, p); err != nil {
				return false
			}
			return rec.Title == newTitle && rec.Content == content
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	// 显式 null 清空可空字段
	properties.Property("null clears nullable fields", prop.ForAll(
		func(content string, category int64) bool {
			rec := &model.Memo{Info: model.Info{Title: "t", Content: content}, CategoryID: &category}
			p := &dto.MemoPatch{}
			p.Content = domain.Null[string]()
			p.CategoryID = domain.Null[int64]()
			if err := Merge(rec, p); err != nil {
				return false
			}
			return rec.Content == "" && rec.CategoryID == nil && rec.Title == "t"
		},
		gen.AlphaString(),
		gen.Int64Range(1, 1<<40),
	))

	properties.TestingRun(t)
}
