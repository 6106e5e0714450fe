package requirements

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/pierson-davis/on-brand-ios-sub000/internal/common"
	"github.com/pierson-davis/on-brand-ios-sub000/misc"
)

// The whole collection is stored as one JSON blob under this key and
// rewritten on every mutation. Read once at construction; in-memory state
// is authoritative for the running session.
const collectionKey = "creator_requirements"

// Manager is the sole authority over the requirement collection: CRUD,
// status transitions, filtering, analytics and import/export. Persistence
// and notifications are best effort and never fail a mutation.
type Manager struct {
	mux    sync.RWMutex
	db     *bolt.DB
	bucket string
	notify Notifier

	requirements []*common.Requirement
	filtered     []*common.Requirement
	filters      common.RequirementFilters

	overdueCount    int
	completedCount  int
	pendingCount    int
	inProgressCount int
}

func New(db *bolt.DB, bucket string, n Notifier) *Manager {
	if n == nil {
		n = NoopNotifier{}
	}
	m := &Manager{
		db:     db,
		bucket: bucket,
		notify: n,
	}
	m.load()
	m.recompute()
	return m
}

// Add appends the requirement, filling in identity and lifecycle defaults
// when the caller left them zero.
func (m *Manager) Add(r *common.Requirement) {
	now := time.Now().Unix()
	if r.Id == "" {
		r.Id = uuid.NewString()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = now
	}
	if r.UpdatedAt == 0 {
		r.UpdatedAt = now
	}
	if r.Status == "" {
		r.Status = common.StatusPending
	}
	if r.Priority == "" {
		r.Priority = common.PriorityMedium
	}

	m.mux.Lock()
	m.requirements = append(m.requirements, r)
	m.save()
	m.recompute()
	m.mux.Unlock()
}

// Update replaces the stored requirement with the same id and reports
// whether one was found. Missing ids are not an error; the caller decides.
func (m *Manager) Update(r *common.Requirement) bool {
	r.UpdatedAt = time.Now().Unix()
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.update(r)
}

func (m *Manager) update(r *common.Requirement) bool {
	for i, cur := range m.requirements {
		if cur.Id == r.Id {
			m.requirements[i] = r
			m.save()
			m.recompute()
			return true
		}
	}
	return false
}

// Delete removes every entry matching the id.
func (m *Manager) Delete(id string) bool {
	m.mux.Lock()
	defer m.mux.Unlock()

	out := m.requirements[:0]
	var found bool
	for _, r := range m.requirements {
		if r.Id == id {
			found = true
			continue
		}
		out = append(out, r)
	}
	if !found {
		return false
	}
	m.requirements = out
	m.save()
	m.recompute()
	return true
}

func (m *Manager) Get(id string) (*common.Requirement, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	for _, r := range m.requirements {
		if r.Id == id {
			return r, true
		}
	}
	return nil, false
}

func (m *Manager) MarkCompleted(id string) (*common.Requirement, bool) {
	m.mux.Lock()
	r, ok := m.byId(id)
	if !ok {
		m.mux.Unlock()
		return nil, false
	}
	r.MarkCompleted()
	m.update(r)
	m.mux.Unlock()

	m.send(Event{
		Kind:          EventCompletion,
		Title:         "Requirement Completed",
		Body:          fmt.Sprintf("%s has been marked as completed", r.Title),
		RequirementId: r.Id,
	})
	return r, true
}

func (m *Manager) MarkVerified(id, by string, method common.VerificationMethod) (*common.Requirement, bool) {
	m.mux.Lock()
	r, ok := m.byId(id)
	if !ok {
		m.mux.Unlock()
		return nil, false
	}
	r.MarkVerified(by, method)
	m.update(r)
	m.mux.Unlock()

	m.send(Event{
		Kind:          EventVerification,
		Title:         "Requirement Verified",
		Body:          fmt.Sprintf("%s has been verified by %s", r.Title, by),
		RequirementId: r.Id,
	})
	return r, true
}

func (m *Manager) AddComment(id, text, author string, fromBrand bool) (*common.Requirement, bool) {
	m.mux.Lock()
	r, ok := m.byId(id)
	if !ok {
		m.mux.Unlock()
		return nil, false
	}
	r.AddComment(text, author, fromBrand)
	m.update(r)
	m.mux.Unlock()

	m.send(Event{
		Kind:          EventComment,
		Title:         "New Comment",
		Body:          fmt.Sprintf("%s commented on %s", author, r.Title),
		RequirementId: r.Id,
	})
	return r, true
}

func (m *Manager) UpdateStatus(id string, status common.RequirementStatus) (*common.Requirement, bool) {
	m.mux.Lock()
	r, ok := m.byId(id)
	if !ok {
		m.mux.Unlock()
		return nil, false
	}
	r.SetStatus(status)
	m.update(r)
	m.mux.Unlock()

	m.send(Event{
		Kind:          EventStatus,
		Title:         "Status Updated",
		Body:          fmt.Sprintf("%s status changed to %s", r.Title, status.DisplayName()),
		RequirementId: r.Id,
	})
	return r, true
}

func (m *Manager) ApplyFilters(f common.RequirementFilters) {
	m.mux.Lock()
	m.filters = f
	m.recompute()
	m.mux.Unlock()
	log.Println("applied filters:", f.String())
}

func (m *Manager) ClearFilters() {
	m.mux.Lock()
	m.filters = common.RequirementFilters{}
	m.recompute()
	m.mux.Unlock()
}

func (m *Manager) Filters() common.RequirementFilters {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return m.filters
}

// All returns a copy of the full collection.
func (m *Manager) All() []*common.Requirement {
	m.mux.RLock()
	defer m.mux.RUnlock()
	out := make([]*common.Requirement, len(m.requirements))
	copy(out, m.requirements)
	return out
}

// Filtered returns a copy of the current filtered, sorted view.
func (m *Manager) Filtered() []*common.Requirement {
	m.mux.RLock()
	defer m.mux.RUnlock()
	out := make([]*common.Requirement, len(m.filtered))
	copy(out, m.filtered)
	return out
}

type Counts struct {
	Overdue    int `json:"overdue"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
}

func (m *Manager) Counts() Counts {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return Counts{
		Overdue:    m.overdueCount,
		Completed:  m.completedCount,
		Pending:    m.pendingCount,
		InProgress: m.inProgressCount,
	}
}

// ForBrand matches the brand name case-insensitively.
func (m *Manager) ForBrand(brand string) []*common.Requirement {
	return m.collect(func(r *common.Requirement) bool {
		return common.IsInList([]string{r.BrandName}, brand)
	})
}

// ForCampaign matches the campaign name case-insensitively; requirements
// without a campaign never match.
func (m *Manager) ForCampaign(campaign string) []*common.Requirement {
	return m.collect(func(r *common.Requirement) bool {
		return r.CampaignName != "" && common.IsInList([]string{r.CampaignName}, campaign)
	})
}

func (m *Manager) OfType(t common.RequirementType) []*common.Requirement {
	return m.collect(func(r *common.Requirement) bool { return r.Type == t })
}

func (m *Manager) WithStatus(s common.RequirementStatus) []*common.Requirement {
	return m.collect(func(r *common.Requirement) bool { return r.Status == s })
}

func (m *Manager) WithPriority(p common.RequirementPriority) []*common.Requirement {
	return m.collect(func(r *common.Requirement) bool { return r.Priority == p })
}

func (m *Manager) Overdue() []*common.Requirement {
	return m.collect(func(r *common.Requirement) bool { return r.IsOverdue() })
}

// DueSoon returns incomplete requirements whose due date falls within the
// given number of days from now.
func (m *Manager) DueSoon(days int) []*common.Requirement {
	cutoff := time.Now().AddDate(0, 0, days).Unix()
	return m.collect(func(r *common.Requirement) bool {
		return r.DueDate != 0 && r.DueDate <= cutoff && !r.IsCompleted()
	})
}

func (m *Manager) OnPlatform(p common.SocialPlatform) []*common.Requirement {
	return m.collect(func(r *common.Requirement) bool { return r.OnPlatform(p) })
}

func (m *Manager) collect(match func(*common.Requirement) bool) []*common.Requirement {
	m.mux.RLock()
	defer m.mux.RUnlock()
	out := []*common.Requirement{}
	for _, r := range m.requirements {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Export serializes the full collection. On encode failure it logs and
// returns nil rather than erroring out.
func (m *Manager) Export() []byte {
	m.mux.RLock()
	defer m.mux.RUnlock()
	b, err := json.Marshal(m.requirements)
	if err != nil {
		log.Println("failed to export requirements:", err)
		return nil
	}
	return b
}

// Import decodes a collection and appends it to the existing one. It never
// replaces or dedupes.
func (m *Manager) Import(data []byte) bool {
	var imported []*common.Requirement
	if err := json.Unmarshal(data, &imported); err != nil {
		log.Println("failed to import requirements:", err)
		return false
	}

	m.mux.Lock()
	m.requirements = append(m.requirements, imported...)
	m.save()
	m.recompute()
	m.mux.Unlock()
	return true
}

func (m *Manager) ClearAll() {
	m.mux.Lock()
	m.requirements = nil
	m.save()
	m.recompute()
	m.mux.Unlock()
}

// StartOverdueWatch periodically rechecks for overdue requirements and
// emits a summary notification when any exist. It never mutates state.
// The returned func stops the watch.
func (m *Manager) StartOverdueWatch(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				if overdue := m.Overdue(); len(overdue) > 0 {
					m.send(Event{
						Kind:  EventOverdue,
						Title: "Overdue Requirements",
						Body:  fmt.Sprintf("You have %d overdue requirements", len(overdue)),
					})
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}

func (m *Manager) byId(id string) (*common.Requirement, bool) {
	for _, r := range m.requirements {
		if r.Id == id {
			return r, true
		}
	}
	return nil, false
}

func (m *Manager) send(e Event) {
	if err := m.notify.Notify(e); err != nil {
		log.Println("failed to send notification:", err)
	}
}

// load reads the persisted collection once. Decode failures start the
// session empty; they do not fail construction.
func (m *Manager) load() {
	if m.db == nil {
		return
	}
	var reqs []*common.Requirement
	if err := m.db.View(func(tx *bolt.Tx) error {
		if v := misc.GetBucket(tx, m.bucket).Get([]byte(collectionKey)); len(v) == 0 {
			return nil
		}
		return misc.GetTxJson(tx, m.bucket, collectionKey, &reqs)
	}); err != nil {
		log.Println("error loading requirements:", err)
		reqs = nil
	}
	m.requirements = reqs
}

// save overwrites the whole persisted collection. Failures are logged and
// swallowed; in-memory state stays authoritative.
func (m *Manager) save() {
	if m.db == nil {
		return
	}
	if err := m.db.Update(func(tx *bolt.Tx) error {
		return misc.PutTxJson(tx, m.bucket, collectionKey, m.requirements)
	}); err != nil {
		log.Println("error saving requirements:", err)
	}
}

func (m *Manager) recompute() {
	m.filtered = applyFilters(m.requirements, &m.filters)

	var overdue, completed, pending, inProgress int
	for _, r := range m.requirements {
		if r.IsOverdue() {
			overdue++
		}
		if r.IsCompleted() {
			completed++
		}
		switch r.Status {
		case common.StatusPending:
			pending++
		case common.StatusInProgress:
			inProgress++
		}
	}
	m.overdueCount, m.completedCount = overdue, completed
	m.pendingCount, m.inProgressCount = pending, inProgress
}
