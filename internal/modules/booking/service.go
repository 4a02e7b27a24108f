package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"luminavenues/internal/catalog"
	"luminavenues/internal/domain"
	"luminavenues/internal/workflow"
)

// Service manages booking workflow sessions and reads the booking store.
// Each session is one client's pass through Details -> Payment -> Confirmed;
// closing it discards all workflow state.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*workflow.Workflow

	catalog  *catalog.Catalog
	store    BookingStore
	delay    time.Duration
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewService(c *catalog.Catalog, store BookingStore, delay, ttl time.Duration) *Service {
	s := &Service{
		sessions: make(map[string]*workflow.Workflow),
		catalog:  c,
		store:    store,
		delay:    delay,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Open starts a fresh workflow for a venue, at the Details step with
// default values.
func (s *Service) Open(venueID string) (string, workflow.State, error) {
	v, err := s.catalog.GetByID(venueID)
	if err != nil {
		return "", workflow.State{}, ErrVenueNotFound
	}

	id := uuid.NewString()
	wf := workflow.New(*v, s.store, s.delay)

	s.mu.Lock()
	s.sessions[id] = wf
	s.mu.Unlock()

	return id, wf.State(), nil
}

func (s *Service) Get(id string) (*workflow.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wf, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return wf, nil
}

// Close discards a workflow session. Closing after Confirmed is the normal
// exit; the stored booking is unaffected.
func (s *Service) Close(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.store.ReadAll(ctx)
}

func (s *Service) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Service) janitor() {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.reapIdle()
		}
	}
}

func (s *Service) reapIdle() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, wf := range s.sessions {
		if wf.IdleSince().Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
