package common

import (
	"fmt"
	"strings"
	"time"
)

type SortOption string

const (
	SortByTitle    SortOption = "title"
	SortByDueDate  SortOption = "due_date"
	SortByCreated  SortOption = "created_date"
	SortByPriority SortOption = "priority"
	SortByStatus   SortOption = "status"
	SortByBrand    SortOption = "brand"
)

// RequirementFilters is the transient query object for the manager's
// filtered view. It has no identity and is replaced wholesale on every
// filter change; empty criteria are pass-throughs.
type RequirementFilters struct {
	Statuses   []RequirementStatus   `json:"statuses,omitempty"`
	Types      []RequirementType     `json:"types,omitempty"`
	Priorities []RequirementPriority `json:"priorities,omitempty"`
	Brands     []string              `json:"brands,omitempty"`
	Campaigns  []string              `json:"campaigns,omitempty"`
	Platforms  []SocialPlatform      `json:"platforms,omitempty"`

	OverdueOnly   bool `json:"overdueOnly,omitempty"`
	CompletedOnly bool `json:"completedOnly,omitempty"`

	// Unix timestamps bounding createdAt, inclusive; zero means unbounded.
	StartDate int64 `json:"startDate,omitempty"`
	EndDate   int64 `json:"endDate,omitempty"`

	SearchText string     `json:"searchText,omitempty"`
	SortBy     SortOption `json:"sortBy,omitempty"`
}

func (f *RequirementFilters) String() string {
	var parts []string
	if len(f.Statuses) > 0 {
		parts = append(parts, fmt.Sprintf("statuses: %v", f.Statuses))
	}
	if len(f.Types) > 0 {
		parts = append(parts, fmt.Sprintf("types: %v", f.Types))
	}
	if len(f.Priorities) > 0 {
		parts = append(parts, fmt.Sprintf("priorities: %v", f.Priorities))
	}
	if len(f.Brands) > 0 {
		parts = append(parts, "brands: "+strings.Join(f.Brands, ", "))
	}
	if len(f.Campaigns) > 0 {
		parts = append(parts, "campaigns: "+strings.Join(f.Campaigns, ", "))
	}
	if len(f.Platforms) > 0 {
		parts = append(parts, fmt.Sprintf("platforms: %v", f.Platforms))
	}
	if f.OverdueOnly {
		parts = append(parts, "overdue only")
	}
	if f.CompletedOnly {
		parts = append(parts, "completed only")
	}
	if f.StartDate != 0 {
		parts = append(parts, "start: "+time.Unix(f.StartDate, 0).Format("2006-01-02"))
	}
	if f.EndDate != 0 {
		parts = append(parts, "end: "+time.Unix(f.EndDate, 0).Format("2006-01-02"))
	}
	if f.SearchText != "" {
		parts = append(parts, "search: "+f.SearchText)
	}
	parts = append(parts, "sort: "+string(f.Sort()))
	return strings.Join(parts, " | ")
}

// Sort returns the effective sort key, defaulting to due date.
func (f *RequirementFilters) Sort() SortOption {
	if f.SortBy == "" {
		return SortByDueDate
	}
	return f.SortBy
}
