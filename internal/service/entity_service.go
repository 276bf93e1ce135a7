package service

import (
	"context"
	"errors"
	"time"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/logger"
	"go.uber.org/zap"
)

// TagPatcher is implemented by patches that carry tag ids
// TagPatcher 由携带标签 ID 的补丁实现
type TagPatcher interface {
	Tags() domain.TagChange
}

// EntityService generic CRUD business service for one entity type
// EntityService 单一实体类型的通用 CRUD 业务服务
type EntityService[T any] interface {
	// Descriptor search, filter and sort description of the entity
	Descriptor() domain.Descriptor

	// Create applies patch on a record with defaults, validates and inserts it
	// Create 将补丁作用于带默认值的新记录，校验后插入
	Create(ctx context.Context, patch any) (*T, error)

	// Update merges patch onto the stored record and saves it atomically
	// Update 将补丁合并到已存储记录并原子保存
	Update(ctx context.Context, id int64, patch any) (*T, error)

	// Delete 删除记录
	Delete(ctx context.Context, id int64) error

	// Get 根据ID获取
	Get(ctx context.Context, id int64) (*T, error)

	// FindAll 获取全部记录
	FindAll(ctx context.Context) ([]*T, error)

	// Fetch filtered, sorted and paged list
	// Fetch 过滤、排序并分页的列表
	Fetch(ctx context.Context, params domain.ListParams) (*domain.Page[T], error)

	// Count 记录总数
	Count(ctx context.Context) (int64, error)
}

// entityService 实现 EntityService 接口
type entityService[T any, PT interface {
	*T
	model.Record
}] struct {
	repo   domain.EntityRepository[T]
	desc   domain.Descriptor
	logger *zap.Logger
	config *ServiceConfig
}

// NewEntityService 创建 EntityService 实例
func NewEntityService[T any, PT interface {
	*T
	model.Record
}](repo domain.EntityRepository[T], desc domain.Descriptor, logger *zap.Logger, config *ServiceConfig) EntityService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &entityService[T, PT]{
		repo:   repo,
		desc:   desc,
		logger: logger,
		config: config,
	}
}

func (s *entityService[T, PT]) Descriptor() domain.Descriptor {
	return s.desc
}

func (s *entityService[T, PT]) Create(ctx context.Context, patch any) (rec *T, err error) {
	defer func() { observe(s.desc.Kind, "create", err) }()

	rec = new(T)
	if d, ok := any(PT(rec)).(model.Defaulter); ok {
		d.ApplyDefaults()
	}
	if err = s.apply(rec, patch); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, rec, tagChange(patch))
	if err != nil {
		return nil, s.fail(ctx, "Create", 0, err)
	}

	s.logger.Debug("record created",
		zap.String(logger.FieldEntity, s.desc.Kind),
		zap.Int64(logger.FieldID, PT(created).GetID()))
	return created, nil
}

func (s *entityService[T, PT]) Update(ctx context.Context, id int64, patch any) (rec *T, err error) {
	defer func() { observe(s.desc.Kind, "update", err) }()

	rec, err = s.repo.Update(ctx, id, func(stored *T) (domain.TagChange, error) {
		if err := s.apply(stored, patch); err != nil {
			return domain.TagChange{}, err
		}
		return tagChange(patch), nil
	})
	if err != nil {
		return nil, s.fail(ctx, "Update", id, err)
	}
	return rec, nil
}

func (s *entityService[T, PT]) Delete(ctx context.Context, id int64) (err error) {
	defer func() { observe(s.desc.Kind, "delete", err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "Delete", id, err)
	}
	return nil
}

func (s *entityService[T, PT]) Get(ctx context.Context, id int64) (rec *T, err error) {
	defer func() { observe(s.desc.Kind, "get", err) }()

	if rec, err = s.repo.GetByID(ctx, id); err != nil {
		return nil, s.fail(ctx, "Get", id, err)
	}
	return rec, nil
}

func (s *entityService[T, PT]) FindAll(ctx context.Context) (list []*T, err error) {
	defer func() { observe(s.desc.Kind, "find_all", err) }()

	if list, err = s.repo.FindAll(ctx); err != nil {
		return nil, s.fail(ctx, "FindAll", 0, err)
	}
	if list == nil {
		list = []*T{}
	}
	return list, nil
}

func (s *entityService[T, PT]) Fetch(ctx context.Context, params domain.ListParams) (page *domain.Page[T], err error) {
	defer func() { observe(s.desc.Kind, "fetch", err) }()

	if params.Size == 0 && s.config != nil && s.config.App.DefaultPageSize > 0 {
		params.Size = s.config.App.DefaultPageSize
	}

	q, err := BuildQuery(s.desc, params, s.config.maxPageSize())
	if err != nil {
		return nil, mapError(err)
	}

	start := time.Now()
	items, total, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, s.fail(ctx, "Fetch", 0, err)
	}

	s.logger.Debug("records fetched",
		zap.String(logger.FieldEntity, s.desc.Kind),
		zap.Int64(logger.FieldTotal, total),
		zap.Duration(logger.FieldDuration, time.Since(start)))

	return domain.NewPage(items, total, params.Page, q.Limit), nil
}

func (s *entityService[T, PT]) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.fail(ctx, "Count", 0, err)
	}
	return n, nil
}

// apply merges patch and validates the result
// apply 合并补丁并校验结果
func (s *entityService[T, PT]) apply(rec *T, patch any) error {
	if err := Merge(rec, patch); err != nil {
		return mapError(err)
	}
	if v, ok := any(PT(rec)).(model.Validator); ok {
		if err := v.Validate(); err != nil {
			return mapError(err)
		}
	}
	return nil
}

// fail maps err and logs storage failures
// fail 转换错误并记录存储层失败
func (s *entityService[T, PT]) fail(ctx context.Context, method string, id int64, err error) error {
	mapped := mapError(err)
	if errors.Is(mapped, code.ErrorDBQuery) {
		s.logger.Error("entity operation failed",
			zap.String(logger.FieldEntity, s.desc.Kind),
			zap.String(logger.FieldMethod, method),
			zap.Int64(logger.FieldID, id),
			zap.Error(err))
	}
	return mapped
}

func tagChange(patch any) domain.TagChange {
	if tp, ok := patch.(TagPatcher); ok {
		return tp.Tags()
	}
	return domain.TagChange{}
}
