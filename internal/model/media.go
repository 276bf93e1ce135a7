package model

import (
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
)

const (
	TableNameVideo   = "videos"
	TableNameAudio   = "audios"
	TableNameWebsite = "websites"
)

// Video mapped from table <videos>, duration in seconds
// Video 视频，时长单位为秒
type Video struct {
	Info
	Duration     int64     `gorm:"column:duration" json:"duration" form:"duration"`
	Resolution   string    `gorm:"column:resolution;size:20" json:"resolution" form:"resolution"`
	Source       string    `gorm:"column:source;size:100" json:"source" form:"source"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;size:500" json:"thumbnailUrl" form:"thumbnailUrl"`
	CategoryID   *int64    `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category     *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags         []Tag     `gorm:"many2many:video_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Video) TableName() string {
	return TableNameVideo
}

func (v *Video) Validate() error {
	if err := v.validateTitle(); err != nil {
		return err
	}
	if v.Duration < 0 {
		return domain.NewFieldError("duration", "must not be negative")
	}
	return nil
}

// Audio mapped from table <audios>
type Audio struct {
	Info
	Format     string    `gorm:"column:format;size:20" json:"format" form:"format"`
	Artist     string    `gorm:"column:artist;size:100" json:"artist" form:"artist"`
	Album      string    `gorm:"column:album;size:100" json:"album" form:"album"`
	Bitrate    string    `gorm:"column:bitrate;size:20" json:"bitrate" form:"bitrate"`
	CategoryID *int64    `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags       []Tag     `gorm:"many2many:audio_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Audio) TableName() string {
	return TableNameAudio
}

func (a *Audio) Validate() error {
	return a.validateTitle()
}

// Website mapped from table <websites>
type Website struct {
	Info
	URL         string    `gorm:"column:url;size:500;not null" json:"url" form:"url"`
	Description string    `gorm:"column:description;type:text" json:"description" form:"description"`
	CategoryID  *int64    `gorm:"column:category_id;index" json:"categoryId" form:"categoryId"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Tags        []Tag     `gorm:"many2many:website_tag;constraint:OnDelete:CASCADE" json:"tags"`
}

func (*Website) TableName() string {
	return TableNameWebsite
}

func (w *Website) Validate() error {
	if err := w.validateTitle(); err != nil {
		return err
	}
	if strings.TrimSpace(w.URL) == "" {
		return domain.NewFieldError("url", "is required")
	}
	return nil
}
