package listing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luminavenues/internal/domain"
)

// blockingRecommender answers each Recommend call with the next result from
// the queue, but only after the matching release channel is closed. This
// lets tests control which in-flight request resolves first.
type blockingRecommender struct {
	mu      sync.Mutex
	queue   []domain.Recommendation
	release []chan struct{}
	calls   int
}

func (r *blockingRecommender) expect(rec domain.Recommendation) chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan struct{})
	r.queue = append(r.queue, rec)
	r.release = append(r.release, ch)
	return ch
}

func (r *blockingRecommender) Recommend(ctx context.Context, query string, venues []domain.VenueSummary) domain.Recommendation {
	r.mu.Lock()
	i := r.calls
	r.calls++
	rec := r.queue[i]
	ch := r.release[i]
	r.mu.Unlock()

	<-ch
	return rec
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSession_SearchAppliesResultAndResetsCategory(t *testing.T) {
	rec := &blockingRecommender{}
	sess := NewSession(testCatalog(), rec)

	sess.SetCategory(string(domain.VenueWedding))
	sess.SetQuery("industrial vibe for 50 people")

	release := rec.expect(domain.Recommendation{VenueIDs: []string{"v3", "v2"}, Reasoning: "industrial picks"})
	snap := sess.Search(context.Background())
	assert.True(t, snap.Loading)

	close(release)
	waitFor(t, func() bool { return !sess.Snapshot().Loading })

	snap = sess.Snapshot()
	assert.Equal(t, []string{"v3", "v2", "v1", "v4", "v5"}, ids(snap.Venues))
	assert.Equal(t, "industrial picks", snap.Reasoning)
	assert.Equal(t, CategoryAll, snap.Category, "category must reset when a search completes")
}

func TestSession_BlankQuerySearchIsNoOp(t *testing.T) {
	// no expect() calls: touching the recommender at all fails the test
	rec := &blockingRecommender{}
	sess := NewSession(testCatalog(), rec)

	snap := sess.Search(context.Background())
	assert.False(t, snap.Loading)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, ids(snap.Venues))

	sess.SetQuery("   ")
	snap = sess.Search(context.Background())
	assert.False(t, snap.Loading)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Zero(t, rec.calls)
}

func TestSession_LastRequestWins(t *testing.T) {
	rec := &blockingRecommender{}
	sess := NewSession(testCatalog(), rec)

	releaseA := rec.expect(domain.Recommendation{VenueIDs: []string{"v1"}, Reasoning: "stale answer"})
	releaseB := rec.expect(domain.Recommendation{VenueIDs: []string{"v5"}, Reasoning: "fresh answer"})

	sess.Search(context.Background()) // request A
	sess.Search(context.Background()) // request B supersedes A

	// B resolves first, then A arrives late
	close(releaseB)
	waitFor(t, func() bool { return !sess.Snapshot().Loading })
	close(releaseA)

	// give the stale response a chance to (incorrectly) apply
	time.Sleep(50 * time.Millisecond)

	snap := sess.Snapshot()
	assert.Equal(t, "fresh answer", snap.Reasoning)
	assert.Equal(t, "v5", snap.Venues[0].ID)
	assert.False(t, snap.Loading)
}

func TestSession_EmptyRecommendationShowsFullCatalog(t *testing.T) {
	rec := &blockingRecommender{}
	sess := NewSession(testCatalog(), rec)

	release := rec.expect(domain.Recommendation{
		VenueIDs:  []string{},
		Reasoning: "I'm having trouble connecting to the concierge service right now.",
	})
	sess.Search(context.Background())
	close(release)
	waitFor(t, func() bool { return !sess.Snapshot().Loading })

	snap := sess.Snapshot()
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, ids(snap.Venues))
	assert.Equal(t, "I'm having trouble connecting to the concierge service right now.", snap.Reasoning)
}

func TestSession_ResetClearsEverythingAndSupersedesInFlight(t *testing.T) {
	rec := &blockingRecommender{}
	sess := NewSession(testCatalog(), rec)

	sess.SetQuery("garden wedding")
	release := rec.expect(domain.Recommendation{VenueIDs: []string{"v5"}, Reasoning: "late"})
	sess.Search(context.Background())

	snap := sess.Reset()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Query)
	assert.Empty(t, snap.Reasoning)
	assert.Equal(t, CategoryAll, snap.Category)

	// the in-flight response must be discarded on arrival
	close(release)
	time.Sleep(50 * time.Millisecond)
	snap = sess.Snapshot()
	assert.Empty(t, snap.Reasoning)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, ids(snap.Venues))
}

func TestSession_OnChangeNotifiesSubscriber(t *testing.T) {
	rec := &blockingRecommender{}
	sess := NewSession(testCatalog(), rec)

	var mu sync.Mutex
	var got []Snapshot
	sess.OnChange(func(s Snapshot) {
		mu.Lock()
		got = append(got, s)
		mu.Unlock()
	})

	sess.SetCategory(string(domain.VenueParty))
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) >= 1
	})

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, got)
	assert.Equal(t, string(domain.VenueParty), got[len(got)-1].Category)
}
