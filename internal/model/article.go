package model

import "github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"

const TableNameArticle = "articles"

var (
	ArticleStatus = domain.Enum{Field: "status", Values: []string{"PUBLISHED", "UNPUBLISHED"}}

	ArticleVisibility = domain.Enum{Field: "visibility", Values: []string{"PUBLIC", "PRIVATE"}}
)

// Article mapped from table <articles>
type Article struct {
	Info
	Status     string   `gorm:"column:status;size:20;not null;index" json:"status" form:"status"`
	Visibility string   `gorm:"column:visibility;size:20;not null" json:"visibility" form:"visibility"`
	Views      int64    `gorm:"column:views;not null;default:0" json:"views" form:"views"`
	SubjectID  *int64   `gorm:"column:subject_id;index" json:"subjectId" form:"subjectId"`
	Subject    *Subject `gorm:"foreignKey:SubjectID;constraint:OnDelete:SET NULL" json:"subject"`
	Tags       []Tag    `gorm:"many2many:article_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Article) TableName() string {
	return TableNameArticle
}

func (a *Article) ApplyDefaults() {
	if a.Status == "" {
		a.Status = "UNPUBLISHED"
	}
	if a.Visibility == "" {
		a.Visibility = "PUBLIC"
	}
}

func (a *Article) Validate() error {
	if err := a.validateTitle(); err != nil {
		return err
	}
	if err := ArticleStatus.Check(a.Status); err != nil {
		return err
	}
	if a.Views < 0 {
		return domain.NewFieldError("views", "must not be negative")
	}
	return ArticleVisibility.Check(a.Visibility)
}
