package model

import (
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
)

const (
	TableNameCategory = "categories"
	TableNameTag      = "tags"
	TableNameSubject  = "subjects"
)

// CategoryEntityType the content type a category groups
// CategoryEntityType 分类所归属的内容类型
var CategoryEntityType = domain.Enum{
	Field:  "entityType",
	Values: []string{"MEMO", "STUDY_CHECKIN", "AUDIO", "WEBSITE", "EXPENSE", "TRAVEL_PLAN", "VIDEO"},
}

// Category mapped from table <categories>
type Category struct {
	Entity
	Name        string `gorm:"column:name;size:100;not null" json:"name" form:"name"`
	Description string `gorm:"column:description;size:500" json:"description" form:"description"`
	EntityType  string `gorm:"column:entity_type;size:20;not null;index" json:"entityType" form:"entityType"`
}

func (*Category) TableName() string {
	return TableNameCategory
}

func (c *Category) Validate() error {
	if err := requireName(c.Name); err != nil {
		return err
	}
	return CategoryEntityType.Check(c.EntityType)
}

// Tag mapped from table <tags>
type Tag struct {
	Entity
	Name string `gorm:"column:name;size:50;not null" json:"name" form:"name"`
}

func (*Tag) TableName() string {
	return TableNameTag
}

func (t *Tag) Validate() error {
	return requireName(t.Name)
}

// Subject mapped from table <subjects>, groups articles
// Subject 文章所属主题
type Subject struct {
	Entity
	Name        string `gorm:"column:name;size:100;not null" json:"name" form:"name"`
	Description string `gorm:"column:description;size:500" json:"description" form:"description"`
}

func (*Subject) TableName() string {
	return TableNameSubject
}

func (s *Subject) Validate() error {
	return requireName(s.Name)
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewFieldError("name", "is required")
	}
	return nil
}
