package listing

import (
	"context"
	"strings"
	"sync"
	"time"

	"luminavenues/internal/domain"
)

// Recommender translates a free-text query into a ranked subset of venue IDs.
// It never fails: unavailability and call errors collapse into an empty ID
// list with an explanatory reasoning string.
type Recommender interface {
	Recommend(ctx context.Context, query string, venues []domain.VenueSummary) domain.Recommendation
}

// Snapshot is the displayable browse state at a point in time.
type Snapshot struct {
	Venues    []domain.Venue `json:"venues"`
	Category  string         `json:"category"`
	Query     string         `json:"query"`
	Reasoning string         `json:"reasoning,omitempty"`
	Loading   bool           `json:"loading"`
}

// Session holds one client's browse state: category filter, text query and
// the latest recommendation result. Recommendation searches run
// asynchronously; each is tagged with a monotonically increasing sequence
// number and only the most recently issued request's response may update
// state. Responses to superseded requests are discarded on arrival.
type Session struct {
	mu          sync.Mutex
	catalog     []domain.Venue
	summaries   []domain.VenueSummary
	recommender Recommender

	category string
	query    string
	rec      *domain.Recommendation
	loading  bool
	seq      uint64

	onChange   func(Snapshot)
	lastAccess time.Time
}

func NewSession(catalog []domain.Venue, recommender Recommender) *Session {
	summaries := make([]domain.VenueSummary, 0, len(catalog))
	for _, v := range catalog {
		summaries = append(summaries, v.Summary())
	}
	return &Session{
		catalog:     catalog,
		summaries:   summaries,
		recommender: recommender,
		category:    CategoryAll,
		lastAccess:  time.Now(),
	}
}

// OnChange registers a single subscriber notified after every state change.
// The callback runs synchronously with the session lock held, so snapshots
// arrive in state-change order; it must not block and must not call back
// into the session.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Session) SetCategory(category string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
	return s.changedLocked()
}

func (s *Session) SetQuery(query string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	return s.changedLocked()
}

// Search starts an asynchronous recommendation request for the current query
// and returns the loading snapshot. A later Search supersedes this one even
// if this one's response arrives afterwards. A blank query issues no request
// at all; the current snapshot is returned unchanged.
func (s *Session) Search(ctx context.Context) Snapshot {
	s.mu.Lock()
	query := s.query
	if strings.TrimSpace(query) == "" {
		s.lastAccess = time.Now()
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	s.seq++
	seq := s.seq
	s.loading = true
	s.rec = nil
	snap := s.changedLocked()
	s.mu.Unlock()

	go func() {
		rec := s.recommender.Recommend(ctx, query, s.summaries)
		s.apply(seq, rec)
	}()

	return snap
}

func (s *Session) apply(seq uint64, rec domain.Recommendation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// a newer search was issued while this one was in flight
		return
	}
	s.loading = false
	s.rec = &rec
	// recommended venues must not be hidden by an older category filter
	s.category = CategoryAll
	s.changedLocked()
}

// Reset clears the query, recommendation and category back to the
// unfiltered catalog. Any in-flight search is superseded.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = false
	s.rec = nil
	s.query = ""
	s.category = CategoryAll
	return s.changedLocked()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = time.Now()
	return s.snapshotLocked()
}

// IdleSince reports the time of the last client access.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Venues:   Merge(s.catalog, s.category, s.query, s.rec),
		Category: s.category,
		Query:    s.query,
		Loading:  s.loading,
	}
	if s.rec != nil {
		snap.Reasoning = s.rec.Reasoning
	}
	return snap
}

func (s *Session) changedLocked() Snapshot {
	s.lastAccess = time.Now()
	snap := s.snapshotLocked()
	if s.onChange != nil {
		// synchronous so subscribers see snapshots in state-change order
		s.onChange(snap)
	}
	return snap
}
