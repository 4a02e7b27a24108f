package browse

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"luminavenues/internal/catalog"
	"luminavenues/internal/listing"
)

var ErrSessionNotFound = errors.New("browse session not found")

// Service keeps the server-held browse sessions. Each session owns one
// client's filter/search state; idle sessions are reaped by a janitor loop.
type Service struct {
	mu          sync.RWMutex
	sessions    map[string]*listing.Session
	catalog     *catalog.Catalog
	recommender listing.Recommender
	hub         *Hub
	ttl         time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

func NewService(c *catalog.Catalog, recommender listing.Recommender, hub *Hub, ttl time.Duration) *Service {
	s := &Service{
		sessions:    make(map[string]*listing.Session),
		catalog:     c,
		recommender: recommender,
		hub:         hub,
		ttl:         ttl,
		stop:        make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *Service) Create() (string, listing.Snapshot) {
	id := uuid.NewString()
	sess := listing.NewSession(s.catalog.All(), s.recommender)
	sess.OnChange(func(snap listing.Snapshot) {
		s.hub.Broadcast(id, snapshotMessage(snap))
	})

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return id, sess.Snapshot()
}

func (s *Service) Get(id string) (*listing.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	s.hub.CloseSession(id)
}

func (s *Service) Close() {
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
	var expired []string
	for id, sess := range s.sessions {
		if sess.IdleSince().Before(cutoff) {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		s.hub.CloseSession(id)
	}
}
