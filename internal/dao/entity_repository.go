package dao

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const tagsRelation = "Tags"

// entityRepository 实现 domain.EntityRepository 的通用仓储
type entityRepository[T any, PT interface {
	*T
	model.Record
}] struct {
	dao  *Dao
	desc domain.Descriptor
}

// NewEntityRepository creates the repository for one model type
// NewEntityRepository 创建某一模型类型的仓储
func NewEntityRepository[T any, PT interface {
	*T
	model.Record
}](dao *Dao, desc domain.Descriptor) domain.EntityRepository[T] {
	return &entityRepository[T, PT]{dao: dao, desc: desc}
}

func (r *entityRepository[T, PT]) schema(db *gorm.DB) (*schema.Schema, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, err
	}
	return stmt.Schema, nil
}

func (r *entityRepository[T, PT]) preload(db *gorm.DB) *gorm.DB {
	for _, p := range r.desc.Preload {
		db = db.Preload(p)
	}
	return db
}

// GetByID 根据ID获取
func (r *entityRepository[T, PT]) GetByID(ctx context.Context, id int64) (*T, error) {
	rec := new(T)
	if err := r.preload(r.dao.DB(ctx)).First(rec, id).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// FindAll 获取全部记录，按主键升序
func (r *entityRepository[T, PT]) FindAll(ctx context.Context) ([]*T, error) {
	var items []*T
	err := r.preload(r.dao.DB(ctx)).Order(clause.OrderByColumn{Column: clause.PrimaryColumn}).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Find 分页查询并返回总数
func (r *entityRepository[T, PT]) Find(ctx context.Context, q domain.Query) ([]*T, int64, error) {
	if q.Offset < 0 || q.Limit < 1 {
		return nil, 0, fmt.Errorf("invalid page window offset=%d limit=%d", q.Offset, q.Limit)
	}

	db := r.dao.DB(ctx)
	sch, err := r.schema(db)
	if err != nil {
		return nil, 0, err
	}

	where, err := buildExpression(sch, db.Dialector.Name(), q.Where)
	if err != nil {
		return nil, 0, err
	}
	order, err := orderBy(sch, q.Order)
	if err != nil {
		return nil, 0, err
	}

	base := db.Model(new(T))
	if where != nil {
		base = base.Where(where)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []*T{}
	if total == 0 || int64(q.Offset) >= total {
		return items, total, nil
	}

	err = r.preload(base).Order(order).Offset(q.Offset).Limit(q.Limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Count 记录总数
func (r *entityRepository[T, PT]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.dao.DB(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

// Create 在事务中插入记录、写入标签并重新加载
func (r *entityRepository[T, PT]) Create(ctx context.Context, rec *T, tags domain.TagChange) (*T, error) {
	PT(rec).Stamp(timex.Now(), true)

	out := new(T)
	err := r.dao.DB(ctx).Transaction(func(tx *gorm.DB) error {
		sch, err := r.schema(tx)
		if err != nil {
			return err
		}
		if err := checkBelongsTo(ctx, tx, sch, rec); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		if err := applyTags(tx, sch, rec, tags); err != nil {
			return err
		}
		return r.preload(tx).First(out, PT(rec).GetID()).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update loads the stored record, merges it and saves it as a whole
// Update 加载已存储记录，合并后整体保存
func (r *entityRepository[T, PT]) Update(ctx context.Context, id int64, merge func(rec *T) (domain.TagChange, error)) (*T, error) {
	out := new(T)
	err := r.dao.DB(ctx).Transaction(func(tx *gorm.DB) error {
		sch, err := r.schema(tx)
		if err != nil {
			return err
		}

		rec := new(T)
		if err := tx.First(rec, id).Error; err != nil {
			return err
		}

		tags, err := merge(rec)
		if err != nil {
			return err
		}
		PT(rec).Stamp(timex.Now(), false)

		if err := checkBelongsTo(ctx, tx, sch, rec); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(rec).Error; err != nil {
			return err
		}
		if err := applyTags(tx, sch, rec, tags); err != nil {
			return err
		}
		return r.preload(tx).First(out, id).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete 物理删除，先清除标签关联
func (r *entityRepository[T, PT]) Delete(ctx context.Context, id int64) error {
	return r.dao.DB(ctx).Transaction(func(tx *gorm.DB) error {
		sch, err := r.schema(tx)
		if err != nil {
			return err
		}

		rec := new(T)
		if err := tx.First(rec, id).Error; err != nil {
			return err
		}
		if _, ok := sch.Relationships.Relations[tagsRelation]; ok {
			if err := tx.Model(rec).Association(tagsRelation).Clear(); err != nil {
				return err
			}
		}
		return tx.Delete(rec).Error
	})
}

// checkBelongsTo verifies that every non-null foreign key points at an existing row
// checkBelongsTo 校验每个非空外键都指向已存在的记录
func checkBelongsTo(ctx context.Context, tx *gorm.DB, sch *schema.Schema, rec any) error {
	rv := reflect.ValueOf(rec)
	for _, rel := range sch.Relationships.BelongsTo {
		for _, ref := range rel.References {
			val, zero := ref.ForeignKey.ValueOf(ctx, rv)
			if zero {
				continue
			}
			val = reflect.Indirect(reflect.ValueOf(val)).Interface()

			var n int64
			err := tx.Table(rel.FieldSchema.Table).
				Where(clause.Eq{Column: clause.Column{Name: ref.PrimaryKey.DBName}, Value: val}).
				Count(&n).Error
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("%w: %s=%v", domain.ErrRelationNotFound, jsonName(ref.ForeignKey), val)
			}
		}
	}
	return nil
}

// applyTags replaces the tag set when requested, unknown tag ids are rejected
// applyTags 按需替换标签集合，不存在的标签 ID 会被拒绝
func applyTags(tx *gorm.DB, sch *schema.Schema, rec any, change domain.TagChange) error {
	if !change.Set {
		return nil
	}
	if _, ok := sch.Relationships.Relations[tagsRelation]; !ok {
		return nil
	}

	assoc := tx.Model(rec).Association(tagsRelation)
	ids := uniqueIDs(change.IDs)
	if len(ids) == 0 {
		return assoc.Clear()
	}

	var tags []model.Tag
	if err := tx.Where(clause.IN{Column: clause.PrimaryColumn, Values: toAny(ids)}).Find(&tags).Error; err != nil {
		return err
	}
	if len(tags) != len(ids) {
		found := make([]int64, 0, len(tags))
		for _, t := range tags {
			found = append(found, t.ID)
		}
		for _, id := range ids {
			if !slices.Contains(found, id) {
				return fmt.Errorf("%w: tagIds=%d", domain.ErrRelationNotFound, id)
			}
		}
	}
	return assoc.Replace(tags)
}

func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func toAny(ids []int64) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func jsonName(f *schema.Field) string {
	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" {
		return name
	}
	return f.DBName
}
