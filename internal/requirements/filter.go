package requirements

import (
	"sort"
	"strings"

	"github.com/pierson-davis/on-brand-ios-sub000/internal/common"
)

// applyFilters narrows the collection stage by stage in a fixed order, then
// sorts by the selected key. Empty criteria pass everything through. It is a
// pure function of (collection, filters).
func applyFilters(reqs []*common.Requirement, f *common.RequirementFilters) []*common.Requirement {
	filtered := make([]*common.Requirement, 0, len(reqs))

	for _, r := range reqs {
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, r.Status) {
			continue
		}
		if len(f.Types) > 0 && !containsType(f.Types, r.Type) {
			continue
		}
		if len(f.Priorities) > 0 && !containsPriority(f.Priorities, r.Priority) {
			continue
		}
		// Brand selections match exactly, as stored
		if len(f.Brands) > 0 && !containsString(f.Brands, r.BrandName) {
			continue
		}
		if len(f.Campaigns) > 0 && (r.CampaignName == "" || !containsString(f.Campaigns, r.CampaignName)) {
			continue
		}
		if len(f.Platforms) > 0 && !onAnyPlatform(r, f.Platforms) {
			continue
		}
		if f.OverdueOnly && !r.IsOverdue() {
			continue
		}
		if f.CompletedOnly && !r.IsCompleted() {
			continue
		}
		if f.StartDate != 0 && r.CreatedAt < f.StartDate {
			continue
		}
		if f.EndDate != 0 && r.CreatedAt > f.EndDate {
			continue
		}
		if f.SearchText != "" && !matchesSearch(r, f.SearchText) {
			continue
		}
		filtered = append(filtered, r)
	}

	sortRequirements(filtered, f.Sort())
	return filtered
}

// matchesSearch does a case-insensitive substring match against the title,
// description, brand and campaign.
func matchesSearch(r *common.Requirement, text string) bool {
	text = strings.ToLower(text)
	return strings.Contains(strings.ToLower(r.Title), text) ||
		strings.Contains(strings.ToLower(r.Description), text) ||
		strings.Contains(strings.ToLower(r.BrandName), text) ||
		(r.CampaignName != "" && strings.Contains(strings.ToLower(r.CampaignName), text))
}

func sortRequirements(reqs []*common.Requirement, by common.SortOption) {
	switch by {
	case common.SortByTitle:
		sort.SliceStable(reqs, func(i, j int) bool {
			return reqs[i].Title < reqs[j].Title
		})
	case common.SortByDueDate:
		// Dated items first in ascending order; undated items last,
		// falling back to title order among themselves.
		sort.SliceStable(reqs, func(i, j int) bool {
			a, b := reqs[i], reqs[j]
			switch {
			case a.DueDate == 0 && b.DueDate == 0:
				return a.Title < b.Title
			case a.DueDate == 0:
				return false
			case b.DueDate == 0:
				return true
			default:
				return a.DueDate < b.DueDate
			}
		})
	case common.SortByCreated:
		sort.SliceStable(reqs, func(i, j int) bool {
			return reqs[i].CreatedAt > reqs[j].CreatedAt
		})
	case common.SortByPriority:
		sort.SliceStable(reqs, func(i, j int) bool {
			return reqs[i].Priority.Ordinal() > reqs[j].Priority.Ordinal()
		})
	case common.SortByStatus:
		sort.SliceStable(reqs, func(i, j int) bool {
			return reqs[i].Status.Ordinal() < reqs[j].Status.Ordinal()
		})
	case common.SortByBrand:
		sort.SliceStable(reqs, func(i, j int) bool {
			return reqs[i].BrandName < reqs[j].BrandName
		})
	}
}

func containsStatus(hay []common.RequirementStatus, s common.RequirementStatus) bool {
	for _, v := range hay {
		if v == s {
			return true
		}
	}
	return false
}

func containsType(hay []common.RequirementType, t common.RequirementType) bool {
	for _, v := range hay {
		if v == t {
			return true
		}
	}
	return false
}

func containsPriority(hay []common.RequirementPriority, p common.RequirementPriority) bool {
	for _, v := range hay {
		if v == p {
			return true
		}
	}
	return false
}

func containsString(hay []string, s string) bool {
	for _, v := range hay {
		if v == s {
			return true
		}
	}
	return false
}

func onAnyPlatform(r *common.Requirement, platforms []common.SocialPlatform) bool {
	for _, p := range platforms {
		if r.OnPlatform(p) {
			return true
		}
	}
	return false
}
