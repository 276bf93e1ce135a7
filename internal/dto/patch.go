package dto

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
)

// Patch request bodies
//
// Every field is a domain.Optional so the payload can tell an absent key from
// an explicit null. The same structs serve create (applied on a record with
// defaults) and partial update (applied on the stored record).
// 所有字段均为 domain.Optional，以区分缺省键与显式 null。
// 同一结构既用于创建（作用于带默认值的新记录），也用于部分更新（作用于已存储记录）。

// InfoPatch title and content
type InfoPatch struct {
	Title   domain.Optional[string] `json:"title" merge:"nonnull"`
	Content domain.Optional[string] `json:"content"`
}

// TagsPatch tag ids, absent keeps the stored tags, null or [] clears them
// TagsPatch 标签 ID 列表，缺省保留原标签，null 或 [] 清空
type TagsPatch struct {
	TagIDs domain.Optional[[]int64] `json:"tagIds" merge:"-"`
}

// Tags converts the payload to a repository tag change
// Tags 将请求中的标签转换为仓储的标签变更
func (p TagsPatch) Tags() domain.TagChange {
	if !p.TagIDs.IsSet() {
		return domain.TagChange{}
	}
	ids, _ := p.TagIDs.Get()
	return domain.TagChange{Set: true, IDs: ids}
}

// CategorizedPatch content record with category and tags
// CategorizedPatch 带分类与标签的内容记录
type CategorizedPatch struct {
	InfoPatch
	CategoryID domain.Optional[int64] `json:"categoryId"`
	TagsPatch
}

// ArticlePatch 文章
type ArticlePatch struct {
	InfoPatch
	Status     domain.Optional[string] `json:"status" merge:"nonnull"`
	Visibility domain.Optional[string] `json:"visibility" merge:"nonnull"`
	Views      domain.Optional[int64]  `json:"views"`
	SubjectID  domain.Optional[int64]  `json:"subjectId"`
	TagsPatch
}

// DiaryPatch 日记
type DiaryPatch struct {
	CategorizedPatch
	Mood    domain.Optional[string] `json:"mood"`
	Weather domain.Optional[string] `json:"weather"`
}

// MemoPatch 备忘录
type MemoPatch struct {
	CategorizedPatch
}

// TodoPatch 待办
type TodoPatch struct {
	CategorizedPatch
	Status   domain.Optional[string]     `json:"status" merge:"nonnull"`
	Deadline domain.Optional[timex.Time] `json:"deadline"`
	Priority domain.Optional[int]        `json:"priority" merge:"nonnull"`
}

// VideoPatch 视频
type VideoPatch struct {
	CategorizedPatch
	Duration     domain.Optional[int64]  `json:"duration"`
	Resolution   domain.Optional[string] `json:"resolution"`
	Source       domain.Optional[string] `json:"source"`
	ThumbnailURL domain.Optional[string] `json:"thumbnailUrl"`
}

// AudioPatch 音频
type AudioPatch struct {
	CategorizedPatch
	Format  domain.Optional[string] `json:"format"`
	Artist  domain.Optional[string] `json:"artist"`
	Album   domain.Optional[string] `json:"album"`
	Bitrate domain.Optional[string] `json:"bitrate"`
}

// WebsitePatch 网站
type WebsitePatch struct {
	CategorizedPatch
	URL         domain.Optional[string] `json:"url" merge:"nonnull"`
	Description domain.Optional[string] `json:"description"`
}

// ExpensePatch 支出
type ExpensePatch struct {
	CategorizedPatch
	Amount        domain.Optional[float64] `json:"amount" merge:"nonnull"`
	PaymentMethod domain.Optional[string]  `json:"paymentMethod"`
	Merchant      domain.Optional[string]  `json:"merchant"`
	ExpenseType   domain.Optional[string]  `json:"expenseType"`
}

// TravelPlanPatch 学习计划
type TravelPlanPatch struct {
	CategorizedPatch
	StudyContent  domain.Optional[string] `json:"studyContent"`
	StudyDuration domain.Optional[int]    `json:"studyDuration"`
	Progress      domain.Optional[int]    `json:"progress"`
	CheckInStatus domain.Optional[string] `json:"checkInStatus"`
}

// StudyCheckInPatch 出行打卡
type StudyCheckInPatch struct {
	CategorizedPatch
	Destination domain.Optional[string]     `json:"destination"`
	TravelDate  domain.Optional[timex.Date] `json:"travelDate"`
	Transport   domain.Optional[string]     `json:"transport"`
	Attractions domain.Optional[string]     `json:"attractions"`
}

// CategoryPatch 分类
type CategoryPatch struct {
	Name        domain.Optional[string] `json:"name" merge:"nonnull"`
	Description domain.Optional[string] `json:"description"`
	EntityType  domain.Optional[string] `json:"entityType" merge:"nonnull"`
}

// TagPatch 标签
type TagPatch struct {
	Name domain.Optional[string] `json:"name" merge:"nonnull"`
}

// SubjectPatch 主题
type SubjectPatch struct {
	Name        domain.Optional[string] `json:"name" merge:"nonnull"`
	Description domain.Optional[string] `json:"description"`
}
