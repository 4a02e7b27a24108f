package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"luminavenues/internal/catalog"
	"luminavenues/internal/domain"
	"luminavenues/internal/workflow"
)

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Append(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) ReadAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func newTestService(store BookingStore) *Service {
	return NewService(catalog.NewSeeded(), store, time.Millisecond, time.Hour)
}

func TestOpen_UnknownVenue(t *testing.T) {
	svc := newTestService(new(MockBookingStore))
	defer svc.Shutdown()

	_, _, err := svc.Open("does-not-exist")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestOpen_StartsFreshWorkflow(t *testing.T) {
	svc := newTestService(new(MockBookingStore))
	defer svc.Shutdown()

	id, state, err := svc.Open("v1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, workflow.StepDetails, state.Step)
	assert.Equal(t, "v1", state.Venue.ID)

	wf, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, workflow.StepDetails, wf.State().Step)
}

func TestGet_UnknownSession(t *testing.T) {
	svc := newTestService(new(MockBookingStore))
	defer svc.Shutdown()

	_, err := svc.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestClose_DiscardsWorkflowState(t *testing.T) {
	svc := newTestService(new(MockBookingStore))
	defer svc.Shutdown()

	id, _, err := svc.Open("v1")
	require.NoError(t, err)

	svc.Close(id)

	_, err = svc.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitThroughService_AppendsExactlyOnce(t *testing.T) {
	store := new(MockBookingStore)
	store.On("Append", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()

	svc := newTestService(store)
	defer svc.Shutdown()

	id, _, err := svc.Open("v1")
	require.NoError(t, err)

	wf, err := svc.Get(id)
	require.NoError(t, err)

	date := "2026-06-01"
	_, err = wf.UpdateDetails(workflow.DetailsUpdate{Date: &date})
	require.NoError(t, err)
	_, err = wf.ContinueToPayment()
	require.NoError(t, err)

	b, err := wf.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)

	store.AssertExpectations(t)
}

func TestListBookings_DelegatesToStore(t *testing.T) {
	store := new(MockBookingStore)
	want := []domain.Booking{{ID: "b1"}, {ID: "b2"}}
	store.On("ReadAll", mock.Anything).Return(want, nil)

	svc := newTestService(store)
	defer svc.Shutdown()

	got, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	store.AssertExpectations(t)
}
