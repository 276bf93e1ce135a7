// Package model gorm models for every stored record type
// Package model 所有持久化记录的 gorm 模型
package model

import (
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
	"gorm.io/gorm"
)

// Record is implemented by every entity model through the embedded Entity
// Record 所有实体模型通过内嵌 Entity 实现
type Record interface {
	GetID() int64
	// Stamp refreshes updatedTime, and createdTime when create is true
	// Stamp 刷新更新时间，create 为 true 时同时设置创建时间
	Stamp(now timex.Time, create bool)
}

// Defaulter fills default values on a new record
// Defaulter 为新记录填充默认值
type Defaulter interface {
	ApplyDefaults()
}

// Validator checks a record before it is persisted
// Validator 持久化前校验记录
type Validator interface {
	Validate() error
}

// Entity id and timestamps shared by all records
// Entity 所有记录共有的 ID 与时间戳
type Entity struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	CreatedTime timex.Time `gorm:"column:created_time;index;autoCreateTime:false" json:"createdTime" form:"createdTime"`
	UpdatedTime timex.Time `gorm:"column:updated_time;autoUpdateTime:false" json:"updatedTime" form:"updatedTime"`
}

func (e *Entity) GetID() int64 {
	return e.ID
}

func (e *Entity) Stamp(now timex.Time, create bool) {
	if create || e.CreatedTime.IsZero() {
		e.CreatedTime = now
	}
	e.UpdatedTime = now
}

// Info title and content shared by the content types
// Info 内容类记录共有的标题与正文
type Info struct {
	Entity
	Title   string `gorm:"column:title;size:255" json:"title" form:"title"`
	Content string `gorm:"column:content;type:text" json:"content" form:"content"`
}

func (i *Info) validateTitle() error {
	if strings.TrimSpace(i.Title) == "" {
		return domain.NewFieldError("title", "is required")
	}
	return nil
}

func (i *Info) validateContent() error {
	if strings.TrimSpace(i.Content) == "" {
		return domain.NewFieldError("content", "is required")
	}
	return nil
}

// All returns one value of every model in migration order
// All 按迁移顺序返回全部模型
func All() []any {
	return []any{
		&Category{}, &Tag{}, &Subject{}, &User{},
		&Article{}, &Diary{}, &Memo{}, &Todo{},
		&Video{}, &Audio{}, &Website{}, &Expense{},
		&TravelPlan{}, &StudyCheckIn{},
	}
}

// AutoMigrate 自动迁移全部表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

func checkOptionalEnum(e domain.Enum, v string) error {
	if v == "" {
		return nil
	}
	return e.Check(v)
}
