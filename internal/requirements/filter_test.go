package requirements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pierson-davis/on-brand-ios-sub000/internal/common"
)

func req(title, brand string) *common.Requirement {
	return common.NewRequirement(common.InstagramPost, title, "", brand)
}

func titles(reqs []*common.Requirement) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Title)
	}
	return out
}

func TestApplyFiltersEmptyPassesEverything(t *testing.T) {
	reqs := []*common.Requirement{req("A", "Nike"), req("B", "Adidas")}
	got := applyFilters(reqs, &common.RequirementFilters{})
	assert.Len(t, got, 2)
}

func TestApplyFiltersIdempotent(t *testing.T) {
	reqs := []*common.Requirement{req("B", "Nike"), req("A", "Nike"), req("C", "Adidas")}
	f := &common.RequirementFilters{Brands: []string{"Nike"}, SortBy: common.SortByTitle}

	once := applyFilters(reqs, f)
	twice := applyFilters(once, f)
	assert.Equal(t, titles(once), titles(twice))
	assert.Equal(t, []string{"A", "B"}, titles(once))
}

func TestApplyFiltersStages(t *testing.T) {
	a := req("A", "Nike")
	a.Status = common.StatusCompleted
	a.Priority = common.PriorityHigh

	b := req("B", "Nike")
	b.CampaignName = "Summer"

	c := req("C", "Adidas")
	c.DueDate = time.Now().Add(-time.Hour).Unix()

	reqs := []*common.Requirement{a, b, c}

	got := applyFilters(reqs, &common.RequirementFilters{Statuses: []common.RequirementStatus{common.StatusCompleted}})
	assert.Equal(t, []string{"A"}, titles(got))

	got = applyFilters(reqs, &common.RequirementFilters{Priorities: []common.RequirementPriority{common.PriorityHigh}})
	assert.Equal(t, []string{"A"}, titles(got))

	// brand selections are exact, not case-folded
	got = applyFilters(reqs, &common.RequirementFilters{Brands: []string{"nike"}})
	assert.Empty(t, got)

	// a campaign filter drops requirements without a campaign
	got = applyFilters(reqs, &common.RequirementFilters{Campaigns: []string{"Summer"}})
	assert.Equal(t, []string{"B"}, titles(got))

	got = applyFilters(reqs, &common.RequirementFilters{OverdueOnly: true})
	assert.Equal(t, []string{"C"}, titles(got))

	got = applyFilters(reqs, &common.RequirementFilters{CompletedOnly: true})
	assert.Equal(t, []string{"A"}, titles(got))
}

func TestApplyFiltersDateWindow(t *testing.T) {
	old := req("Old", "Nike")
	old.CreatedAt = 1000
	mid := req("Mid", "Nike")
	mid.CreatedAt = 2000
	recent := req("Recent", "Nike")
	recent.CreatedAt = 3000

	reqs := []*common.Requirement{old, mid, recent}

	// bounds are inclusive
	got := applyFilters(reqs, &common.RequirementFilters{StartDate: 2000, EndDate: 3000, SortBy: common.SortByTitle})
	assert.Equal(t, []string{"Mid", "Recent"}, titles(got))
}

func TestApplyFiltersSearch(t *testing.T) {
	a := req("Launch post", "Nike")
	b := req("Unboxing", "Adidas")
	b.Description = "mention Nike Air"
	c := req("Giveaway", "Puma")

	got := applyFilters([]*common.Requirement{a, b, c}, &common.RequirementFilters{SearchText: "nike", SortBy: common.SortByTitle})
	assert.Equal(t, []string{"Launch post", "Unboxing"}, titles(got))
}

func TestSortByDueDate(t *testing.T) {
	now := time.Now().Unix()

	a := req("A", "Nike") // undated, goes last
	b := req("B", "Nike")
	b.DueDate = now + 7200
	c := req("C", "Nike")
	c.DueDate = now + 3600

	got := applyFilters([]*common.Requirement{a, b, c}, &common.RequirementFilters{})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "B", "A"}, titles(got))
}

func TestSortByDueDateUndatedFallback(t *testing.T) {
	a := req("B", "Nike") // undated
	b := req("A", "Nike") // undated
	c := req("C", "Nike")
	c.DueDate = time.Now().AddDate(0, 0, 1).Unix()

	// dated first; the undated pair falls back to title order
	got := applyFilters([]*common.Requirement{a, b, c}, &common.RequirementFilters{})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "A", "B"}, titles(got))
}

func TestSortByPriorityAndStatus(t *testing.T) {
	low := req("Low", "Nike")
	low.Priority = common.PriorityLow
	crit := req("Crit", "Nike")
	crit.Priority = common.PriorityCritical

	got := applyFilters([]*common.Requirement{low, crit}, &common.RequirementFilters{SortBy: common.SortByPriority})
	assert.Equal(t, []string{"Crit", "Low"}, titles(got))

	done := req("Done", "Nike")
	done.Status = common.StatusVerified
	pend := req("Pend", "Nike")

	got = applyFilters([]*common.Requirement{done, pend}, &common.RequirementFilters{SortBy: common.SortByStatus})
	assert.Equal(t, []string{"Pend", "Done"}, titles(got))
}
