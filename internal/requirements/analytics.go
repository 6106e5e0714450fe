package requirements

type Analytics struct {
	TotalRequirements      int     `json:"totalRequirements"`
	CompletedRequirements  int     `json:"completedRequirements"`
	PendingRequirements    int     `json:"pendingRequirements"`
	InProgressRequirements int     `json:"inProgressRequirements"`
	OverdueRequirements    int     `json:"overdueRequirements"`
	CompletionRate         float64 `json:"completionRate"`

	// Mean of completedAt-createdAt over completed items, in seconds.
	// Nil when nothing has been completed yet.
	AverageCompletionTime *float64 `json:"averageCompletionTime,omitempty"`

	RequirementsByType     map[string]int `json:"requirementsByType"`
	RequirementsByStatus   map[string]int `json:"requirementsByStatus"`
	RequirementsByPriority map[string]int `json:"requirementsByPriority"`
	RequirementsByBrand    map[string]int `json:"requirementsByBrand"`
	RequirementsByCampaign map[string]int `json:"requirementsByCampaign"`
}

// Analytics computes a snapshot over the full collection, ignoring the
// current filters.
func (m *Manager) Analytics() Analytics {
	m.mux.RLock()
	defer m.mux.RUnlock()

	a := Analytics{
		TotalRequirements:      len(m.requirements),
		CompletedRequirements:  m.completedCount,
		PendingRequirements:    m.pendingCount,
		InProgressRequirements: m.inProgressCount,
		OverdueRequirements:    m.overdueCount,
		RequirementsByType:     make(map[string]int),
		RequirementsByStatus:   make(map[string]int),
		RequirementsByPriority: make(map[string]int),
		RequirementsByBrand:    make(map[string]int),
		RequirementsByCampaign: make(map[string]int),
	}

	if len(m.requirements) > 0 {
		a.CompletionRate = float64(m.completedCount) / float64(len(m.requirements))
	}

	var completionTotal, completionN int64
	for _, r := range m.requirements {
		a.RequirementsByType[string(r.Type)]++
		a.RequirementsByStatus[string(r.Status)]++
		a.RequirementsByPriority[string(r.Priority)]++
		a.RequirementsByBrand[r.BrandName]++
		if r.CampaignName != "" {
			a.RequirementsByCampaign[r.CampaignName]++
		}
		if r.IsCompleted() && r.CompletedAt != 0 {
			completionTotal += r.CompletedAt - r.CreatedAt
			completionN++
		}
	}
	if completionN > 0 {
		avg := float64(completionTotal) / float64(completionN)
		a.AverageCompletionTime = &avg
	}

	return a
}
