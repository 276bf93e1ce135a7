package model

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
)

const (
	TableNameTravelPlan   = "travel_plans"
	TableNameStudyCheckIn = "study_checkins"
)

// TravelPlan mapped from table <travel_plans>
// The stored fields describe a study session: content, minutes, progress percent and check-in state.
// 存储的是学习计划字段：学习内容、时长（分钟）、进度百分比与打卡状态。
type TravelPlan struct {
	Info
	StudyContent  string    `gorm:"column:study_content;type:text" json:"studyContent" form:"studyContent"`
	StudyDuration int       `gorm:"column:study_duration" json:"studyDuration" form:"studyDuration"`
	Progress      int       `gorm:"column:progress" json:"progress" form:"progress"`
	CheckInStatus string    `gorm:"column:check_in_status;size:20" json:"checkInStatus" form:"checkInStatus"`
	CategoryID    *int64    `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category      *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags          []Tag     `gorm:"many2many:travel_plan_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*TravelPlan) TableName() string {
	return TableNameTravelPlan
}

func (t *TravelPlan) Validate() error {
	if err := t.validateTitle(); err != nil {
		return err
	}
	if t.Progress < 0 || t.Progress > 100 {
		return domain.NewFieldError("progress", "must be between 0 and 100, got %d", t.Progress)
	}
	if t.StudyDuration < 0 {
		return domain.NewFieldError("studyDuration", "must not be negative")
	}
	return nil
}

// StudyCheckIn mapped from table <study_checkins>
// The stored fields describe a trip: destination, date, transport and attractions.
// 存储的是出行字段：目的地、日期、交通方式与景点。
type StudyCheckIn struct {
	Info
	Destination string     `gorm:"column:destination;size:200" json:"destination" form:"destination"`
	TravelDate  timex.Date `gorm:"column:travel_date;type:date" json:"travelDate" form:"travelDate"`
	Transport   string     `gorm:"column:transport;size:50" json:"transport" form:"transport"`
	Attractions string     `gorm:"column:attractions;type:text" json:"attractions" form:"attractions"`
	CategoryID  *int64     `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category    *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags        []Tag      `gorm:"many2many:study_checkin_tag;joinForeignKey:StudyCheckinID;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*StudyCheckIn) TableName() string {
	return TableNameStudyCheckIn
}

func (s *StudyCheckIn) Validate() error {
	return s.validateTitle()
}
