package model

import "github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"

var contentPreload = []string{"Category", "Tags"}

func titleAsc() domain.SortKey {
	return domain.SortKey{Column: "title"}
}

// Descriptors of every entity exposed through the generic CRUD endpoints
// 通用 CRUD 接口暴露的各实体描述
var (
	ArticleDescriptor = domain.Descriptor{
		Kind:   "article",
		Search: []string{"title", "content"},
		Filters: []domain.Filter{
			domain.EnumFilter("status", ArticleStatus),
			domain.EnumFilter("visibility", ArticleVisibility),
			{Param: "subjectId", Field: "subject_id", Kind: domain.FilterID},
			domain.TagFilter(),
		},
		Sorts: map[string]domain.SortKey{
			"views-desc": {Column: "views", Desc: true},
		},
		Preload: []string{"Subject", "Tags"},
	}

	VideoDescriptor = domain.Descriptor{
		Kind:    "video",
		Search:  []string{"title", "resolution", "source"},
		Filters: []domain.Filter{domain.CategoryFilter(), domain.TagFilter()},
		Sorts: map[string]domain.SortKey{
			"duration-asc":  {Column: "duration"},
			"duration-desc": {Column: "duration", Desc: true},
		},
		Preload: contentPreload,
	}

	AudioDescriptor = domain.Descriptor{
		Kind:    "audio",
		Search:  []string{"title", "artist"},
		Filters: []domain.Filter{domain.CategoryFilter(), domain.TagFilter()},
		Sorts: map[string]domain.SortKey{
			"title-asc":  titleAsc(),
			"artist-asc": {Column: "artist"},
		},
		Preload: contentPreload,
	}

	WebsiteDescriptor = domain.Descriptor{
		Kind:    "website",
		Search:  []string{"title", "url", "description"},
		Filters: []domain.Filter{domain.CategoryFilter(), domain.TagFilter()},
		Sorts:   map[string]domain.SortKey{"title-asc": titleAsc()},
		Preload: contentPreload,
	}

	TravelPlanDescriptor = domain.Descriptor{
		Kind:    "travelPlan",
		Search:  []string{"title", "study_content", "check_in_status"},
		Filters: []domain.Filter{domain.CategoryFilter(), domain.TagFilter()},
		Sorts: map[string]domain.SortKey{
			"progress-asc":  {Column: "progress"},
			"progress-desc": {Column: "progress", Desc: true},
		},
		Preload: contentPreload,
	}

	MemoDescriptor = domain.Descriptor{
		Kind:    "memo",
		Search:  []string{"title", "content"},
		Filters: []domain.Filter{domain.CategoryFilter(), domain.TagFilter()},
		Sorts:   map[string]domain.SortKey{"title-asc": titleAsc()},
		Preload: contentPreload,
	}

	TodoDescriptor = domain.Descriptor{
		Kind:   "todo",
		Search: []string{"title", "content"},
		Filters: []domain.Filter{
			domain.CategoryFilter(),
			domain.TagFilter(),
			domain.EnumFilter("status", TodoStatus),
			{Param: "priority", Field: "priority", Kind: domain.FilterValue},
		},
		Sorts: map[string]domain.SortKey{
			"title-asc":     titleAsc(),
			"deadline-asc":  {Column: "deadline"},
			"priority-desc": {Column: "priority", Desc: true},
		},
		Preload: contentPreload,
	}

	DiaryDescriptor = domain.Descriptor{
		Kind:   "diary",
		Search: []string{"title", "content"},
		Filters: []domain.Filter{
			domain.CategoryFilter(),
			domain.TagFilter(),
			domain.EnumFilter("mood", DiaryMood),
			domain.EnumFilter("weather", DiaryWeather),
		},
		Sorts:   map[string]domain.SortKey{"title-asc": titleAsc()},
		Preload: contentPreload,
	}

	ExpenseDescriptor = domain.Descriptor{
		Kind:    "expense",
		Search:  []string{"title", "merchant", "expense_type"},
		Filters: []domain.Filter{domain.CategoryFilter(), domain.TagFilter()},
		Sorts: map[string]domain.SortKey{
			"amount-asc":  {Column: "amount"},
			"amount-desc": {Column: "amount", Desc: true},
		},
		Preload: contentPreload,
	}

	StudyCheckInDescriptor = domain.Descriptor{
		Kind:    "studyCheckIn",
		Search:  []string{"title", "destination"},
		Filters: []domain.Filter{domain.CategoryFilter(), domain.TagFilter()},
		Sorts: map[string]domain.SortKey{
			"travelDate-asc":  {Column: "travel_date"},
			"travelDate-desc": {Column: "travel_date", Desc: true},
		},
		Preload: contentPreload,
	}

	CategoryDescriptor = domain.Descriptor{
		Kind:    "category",
		Search:  []string{"name", "description"},
		Filters: []domain.Filter{domain.EnumFilter("entity_type", CategoryEntityType)},
		Sorts:   map[string]domain.SortKey{"name-asc": {Column: "name"}},
	}

	TagDescriptor = domain.Descriptor{
		Kind:   "tag",
		Search: []string{"name"},
		Sorts:  map[string]domain.SortKey{"name-asc": {Column: "name"}},
	}

	SubjectDescriptor = domain.Descriptor{
		Kind:   "subject",
		Search: []string{"name", "description"},
		Sorts:  map[string]domain.SortKey{"name-asc": {Column: "name"}},
	}
)
