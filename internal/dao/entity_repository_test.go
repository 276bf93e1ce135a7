package dao

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	dao      *Dao
	memos    domain.EntityRepository[model.Memo]
	articles domain.EntityRepository[model.Article]
	tags     domain.EntityRepository[model.Tag]
	cats     domain.EntityRepository[model.Category]
	subjects domain.EntityRepository[model.Subject]
}

func newFixture(t *testing.T) *fixture {
	d := newTestDao(t)
	return &fixture{
		dao:      d,
		memos:    NewEntityRepository[model.Memo](d, model.MemoDescriptor),
		articles: NewEntityRepository[model.Article](d, model.ArticleDescriptor),
		tags:     NewEntityRepository[model.Tag](d, model.TagDescriptor),
		cats:     NewEntityRepository[model.Category](d, model.CategoryDescriptor),
		subjects: NewEntityRepository[model.Subject](d, model.SubjectDescriptor),
	}
}

func (f *fixture) tag(t *testing.T, name string) *model.Tag {
	t.Helper()
	tag, err := f.tags.Create(context.Background(), &model.Tag{Name: name}, domain.TagChange{})
	require.NoError(t, err)
	return tag
}

func (f *fixture) category(t *testing.T, name string) *model.Category {
	t.Helper()
	c, err := f.cats.Create(context.Background(), &model.Category{Name: name, EntityType: "MEMO"}, domain.TagChange{})
	require.NoError(t, err)
	return c
}

func (f *fixture) memo(t *testing.T, title string, categoryID *int64, tagIDs ...int64) *model.Memo {
	t.Helper()
	m := &model.Memo{Info: model.Info{Title: title, Content: "content of " + title}, CategoryID: categoryID}
	out, err := f.memos.Create(context.Background(), m, domain.TagChange{Set: len(tagIDs) > 0, IDs: tagIDs})
	require.NoError(t, err)
	return out
}

func byCreatedDesc() domain.SortKey {
	return domain.SortKey{Column: "created_time", Desc: true}
}

func TestCreateLoadsAssociations(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "work")
	go1 := f.tag(t, "go")
	db1 := f.tag(t, "db")

	m := f.memo(t, "standup", &cat.ID, go1.ID, db1.ID, go1.ID)
	dumpOnFailure(t, m)

	assert.NotZero(t, m.ID)
	assert.False(t, m.CreatedTime.IsZero())
	assert.True(t, m.CreatedTime.Equal(m.UpdatedTime))
	require.NotNil(t, m.Category)
	assert.Equal(t, "work", m.Category.Name)
	assert.Len(t, m.Tags, 2)

	got, err := f.memos.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Title, got.Title)
	assert.Len(t, got.Tags, 2)
}

func TestCreateRejectsMissingRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	missing := int64(999)
	_, err := f.memos.Create(ctx, &model.Memo{Info: model.Info{Title: "a", Content: "b"}, CategoryID: &missing}, domain.TagChange{})
	assert.ErrorIs(t, err, domain.ErrRelationNotFound)
	assert.Contains(t, err.Error(), "categoryId=999")

	_, err = f.memos.Create(ctx, &model.Memo{Info: model.Info{Title: "a", Content: "b"}}, domain.TagChange{Set: true, IDs: []int64{42}})
	assert.ErrorIs(t, err, domain.ErrRelationNotFound)

	// 失败的创建不留下任何记录
	n, err := f.memos.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFindFiltersAndPages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "notes")
	tag := f.tag(t, "go")

	for i := 0; i < 15; i++ {
		var tags []int64
		if i%3 == 0 {
			tags = []int64{tag.ID}
		}
		var catID *int64
		if i%2 == 0 {
			catID = &cat.ID
		}
		f.memo(t, fmt.Sprintf("memo %02d", i), catID, tags...)
	}

	t.Run("second page", func(t *testing.T) {
		items, total, err := f.memos.Find(ctx, domain.Query{Order: byCreatedDesc(), Offset: 10, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 15, total)
		assert.Len(t, items, 5)
	})

	t.Run("past the end", func(t *testing.T) {
		items, total, err := f.memos.Find(ctx, domain.Query{Order: byCreatedDesc(), Offset: 20, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 15, total)
		assert.Empty(t, items)
	})

	t.Run("saturated offset", func(t *testing.T) {
		items, total, err := f.memos.Find(ctx, domain.Query{Order: byCreatedDesc(), Offset: math.MaxInt, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 15, total)
		assert.Empty(t, items)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, _, err := f.memos.Find(ctx, domain.Query{Order: byCreatedDesc(), Offset: -10, Limit: 10})
		assert.Error(t, err)
	})

	t.Run("tag through join table", func(t *testing.T) {
		items, total, err := f.memos.Find(ctx, domain.Query{
			Where: domain.Equals{Field: domain.TagField, Value: tag.ID},
			Order: byCreatedDesc(), Limit: 10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		for _, m := range items {
			require.Len(t, m.Tags, 1)
			assert.Equal(t, tag.ID, m.Tags[0].ID)
		}
	})

	t.Run("and of category and tag", func(t *testing.T) {
		_, total, err := f.memos.Find(ctx, domain.Query{
			Where: domain.AllOf(
				domain.Equals{Field: "category_id", Value: cat.ID},
				domain.Equals{Field: domain.TagField, Value: tag.ID},
			),
			Order: byCreatedDesc(), Limit: 10,
		})
		require.NoError(t, err)
		// i in {0, 6, 12}
		assert.EqualValues(t, 3, total)
	})

	t.Run("free text or group", func(t *testing.T) {
		items, total, err := f.memos.Find(ctx, domain.Query{
			Where: domain.AllOf(domain.AnyOf(
				domain.Contains{Field: "title", Text: "memo 1"},
				domain.Contains{Field: "content", Text: "memo 03"},
			)),
			Order: domain.SortKey{Column: "title"}, Limit: 10,
		})
		require.NoError(t, err)
		// memo 10..14 and memo 03
		assert.EqualValues(t, 6, total)
		assert.Equal(t, "memo 03", items[0].Title)
	})

	t.Run("no match", func(t *testing.T) {
		items, total, err := f.memos.Find(ctx, domain.Query{
			Where: domain.Contains{Field: "title", Text: "nothing like this"},
			Order: byCreatedDesc(), Limit: 10,
		})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func titlesOf(items []*model.Memo) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.Title)
	}
	sort.Strings(out)
	return out
}

func TestFindSearchIsLiteralAndCaseSensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, title := range []string{"abc", "a_c", "100 items", "1%s", "HELLO", "hello world", `a\b`} {
		f.memo(t, title, nil)
	}

	search := func(text string) []string {
		items, _, err := f.memos.Find(ctx, domain.Query{
			Where: domain.Contains{Field: "title", Text: text},
			Order: byCreatedDesc(), Limit: 100,
		})
		require.NoError(t, err)
		return titlesOf(items)
	}

	tests := []struct {
		text string
		want []string
	}{
		{"a_c", []string{"a_c"}},
		{"1%s", []string{"1%s"}},
		{"%", []string{"1%s"}},
		{"_", []string{"a_c"}},
		{`\`, []string{`a\b`}},
		{"hello", []string{"hello world"}},
		{"HELLO", []string{"HELLO"}},
		{"ABC", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, search(tt.text))
		})
	}
}

func TestFindAgreesWithMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alphabet := []string{"a", "A", "b", "_", "%", `\`}
	var corpus []string
	for _, x := range alphabet {
		for _, y := range alphabet {
			corpus = append(corpus, x+y)
		}
	}
	corpus = append(corpus, "a_b%", "Ab_", `%\a`)
	for _, title := range corpus {
		f.memo(t, title, nil)
	}

	// n 编码 1 到 3 个字母表字符
	searchText := gen.IntRange(0, 3*6*6*6-1).Map(func(n int) string {
		length := 1 + n%3
		n /= 3
		var b strings.Builder
		for i := 0; i < length; i++ {
			b.WriteString(alphabet[n%6])
			n /= 6
		}
		return b.String()
	})

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("search returns exactly the in-memory matches", prop.ForAll(
		func(text string) bool {
			where := domain.AnyOf(
				domain.Contains{Field: "title", Text: text},
				domain.Contains{Field: "content", Text: text},
			)
			items, total, err := f.memos.Find(ctx, domain.Query{Where: where, Order: byCreatedDesc(), Limit: 1000})
			if err != nil {
				return false
			}

			want := []string{}
			for _, title := range corpus {
				rec := map[string][]any{"title": {title}, "content": {"content of " + title}}
				if domain.Match(where, func(field string) []any { return rec[field] }) {
					want = append(want, title)
				}
			}
			sort.Strings(want)

			got := titlesOf(items)
			return int(total) == len(want) && strings.Join(got, "\x00") == strings.Join(want, "\x00")
		},
		searchText,
	))

	properties.TestingRun(t)
}

func TestFindOrderIsDeterministic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		f.memo(t, "same", nil)
	}

	var seen []int64
	for offset := 0; offset < 6; offset += 2 {
		items, _, err := f.memos.Find(ctx, domain.Query{Order: domain.SortKey{Column: "title"}, Offset: offset, Limit: 2})
		require.NoError(t, err)
		for _, m := range items {
			seen = append(seen, m.ID)
		}
	}
	require.Len(t, seen, 6)
	for i := 1; i < len(seen); i++ {
		assert.Less(t, seen[i-1], seen[i])
	}
}

func TestFindRejectsUnknownColumns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.memos.Find(ctx, domain.Query{Where: domain.Equals{Field: "password", Value: 1}, Order: byCreatedDesc(), Limit: 1})
	assert.Error(t, err)

	_, _, err = f.memos.Find(ctx, domain.Query{Order: domain.SortKey{Column: "nope"}, Limit: 1})
	assert.Error(t, err)

	_, _, err = f.memos.Find(ctx, domain.Query{Where: domain.Equals{Field: "tags.name", Value: "go"}, Order: byCreatedDesc(), Limit: 1})
	assert.Error(t, err)
}

func TestUpdateMergesAndReplacesTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.tag(t, "a")
	b := f.tag(t, "b")
	m := f.memo(t, "before", nil, a.ID)

	out, err := f.memos.Update(ctx, m.ID, func(rec *model.Memo) (domain.TagChange, error) {
		rec.Title = "after"
		return domain.TagChange{Set: true, IDs: []int64{b.ID}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "after", out.Title)
	assert.Equal(t, m.Content, out.Content)
	require.Len(t, out.Tags, 1)
	assert.Equal(t, b.ID, out.Tags[0].ID)
	assert.True(t, out.CreatedTime.Equal(m.CreatedTime))
	assert.False(t, out.UpdatedTime.Before(m.UpdatedTime))

	out, err = f.memos.Update(ctx, m.ID, func(rec *model.Memo) (domain.TagChange, error) {
		return domain.TagChange{}, nil
	})
	require.NoError(t, err)
	assert.Len(t, out.Tags, 1, "unset tag change keeps tags")

	out, err = f.memos.Update(ctx, m.ID, func(rec *model.Memo) (domain.TagChange, error) {
		return domain.TagChange{Set: true}, nil
	})
	require.NoError(t, err)
	assert.Empty(t, out.Tags)
}

func TestUpdateIsAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.memo(t, "keep", nil)

	boom := errors.New("boom")
	_, err := f.memos.Update(ctx, m.ID, func(rec *model.Memo) (domain.TagChange, error) {
		rec.Title = "lost"
		return domain.TagChange{}, boom
	})
	assert.ErrorIs(t, err, boom)

	missing := int64(404)
	_, err = f.memos.Update(ctx, m.ID, func(rec *model.Memo) (domain.TagChange, error) {
		rec.Title = "lost"
		rec.CategoryID = &missing
		return domain.TagChange{}, nil
	})
	assert.ErrorIs(t, err, domain.ErrRelationNotFound)

	got, err := f.memos.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Title)

	_, err = f.memos.Update(ctx, 12345, func(rec *model.Memo) (domain.TagChange, error) {
		t.Fatal("merge must not run for a missing record")
		return domain.TagChange{}, nil
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRemovesJoinRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tag := f.tag(t, "x")
	m := f.memo(t, "gone", nil, tag.ID)

	require.NoError(t, f.memos.Delete(ctx, m.ID))

	_, err := f.memos.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var joins int64
	require.NoError(t, f.dao.DB(ctx).Table("memo_tag").Count(&joins).Error)
	assert.Zero(t, joins)

	// 标签本身保留
	_, err = f.tags.GetByID(ctx, tag.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.memos.Delete(ctx, m.ID), gorm.ErrRecordNotFound)
}

func TestArticleSubjectAndEnums(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	subject, err := f.subjects.Create(ctx, &model.Subject{Name: "golang"}, domain.TagChange{})
	require.NoError(t, err)

	a := &model.Article{Info: model.Info{Title: "A"}, Status: "PUBLISHED", Visibility: "PUBLIC", SubjectID: &subject.ID}
	created, err := f.articles.Create(ctx, a, domain.TagChange{})
	require.NoError(t, err)
	require.NotNil(t, created.Subject)
	assert.Equal(t, "golang", created.Subject.Name)

	for status, want := range map[string]int64{"PUBLISHED": 1, "UNPUBLISHED": 0} {
		_, total, err := f.articles.Find(ctx, domain.Query{
			Where: domain.Equals{Field: "status", Value: status},
			Order: byCreatedDesc(), Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, want, total, status)
	}

	all, err := f.articles.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
