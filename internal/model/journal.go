package model

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
)

const (
	TableNameDiary = "diaries"
	TableNameMemo  = "memos"
	TableNameTodo  = "todos"
)

var (
	DiaryMood = domain.Enum{Field: "mood", Values: []string{"HAPPY", "SAD", "EXCITED", "CALM", "ANGRY", "ANXIOUS"}}

	DiaryWeather = domain.Enum{Field: "weather", Values: []string{"SUNNY", "CLOUDY", "RAINY", "SNOWY", "WINDY"}}

	TodoStatus = domain.Enum{Field: "status", Values: []string{"PENDING", "IN_PROGRESS", "COMPLETED"}}
)

const (
	TodoPriorityMin     = 1
	TodoPriorityMax     = 5
	TodoPriorityDefault = 3
)

// Diary mapped from table <diaries>
type Diary struct {
	Info
	Mood       string    `gorm:"column:mood;size:20;index" json:"mood" form:"mood"`
	Weather    string    `gorm:"column:weather;size:20;index" json:"weather" form:"weather"`
	CategoryID *int64    `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags       []Tag     `gorm:"many2many:diary_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Diary) TableName() string {
	return TableNameDiary
}

func (d *Diary) Validate() error {
	if err := d.validateTitle(); err != nil {
		return err
	}
	if err := d.validateContent(); err != nil {
		return err
	}
	if err := checkOptionalEnum(DiaryMood, d.Mood); err != nil {
		return err
	}
	return checkOptionalEnum(DiaryWeather, d.Weather)
}

// Memo mapped from table <memos>
type Memo struct {
	Info
	CategoryID *int64    `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags       []Tag     `gorm:"many2many:memo_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Memo) TableName() string {
	return TableNameMemo
}

func (m *Memo) Validate() error {
	if err := m.validateTitle(); err != nil {
		return err
	}
	return m.validateContent()
}

// Todo mapped from table <todos>
type Todo struct {
	Info
	Status     string     `gorm:"column:status;size:20;not null;index" json:"status" form:"status"`
	Deadline   timex.Time `gorm:"column:deadline" json:"deadline" form:"deadline"`
	Priority   int        `gorm:"column:priority;not null;default:3;index" json:"priority" form:"priority"`
	CategoryID *int64     `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category   *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags       []Tag      `gorm:"many2many:todo_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Todo) TableName() string {
	return TableNameTodo
}

func (t *Todo) ApplyDefaults() {
	if t.Status == "" {
		t.Status = "PENDING"
	}
	if t.Priority == 0 {
		t.Priority = TodoPriorityDefault
	}
}

func (t *Todo) Validate() error {
	if err := t.validateTitle(); err != nil {
		return err
	}
	if err := t.validateContent(); err != nil {
		return err
	}
	if err := TodoStatus.Check(t.Status); err != nil {
		return err
	}
	if t.Priority < TodoPriorityMin || t.Priority > TodoPriorityMax {
		return domain.NewFieldError("priority", "must be between %d and %d, got %d", TodoPriorityMin, TodoPriorityMax, t.Priority)
	}
	return nil
}
