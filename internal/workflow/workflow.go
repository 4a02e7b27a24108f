package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"luminavenues/internal/domain"
	"luminavenues/internal/pkg/validator"
)

type Step string

const (
	StepDetails   Step = "details"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

const (
	defaultStartTime = "09:00"
	defaultDuration  = 4
	defaultGuests    = 50

	firstSlotHour = 9
	lastSlotHour  = 18
)

// Durations is the fixed set of bookable durations, in hours.
var Durations = []int{2, 4, 6, 8, 10}

// StartSlots returns the fixed hour slots from 09:00 to 18:00.
func StartSlots() []string {
	out := make([]string, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h))
	}
	return out
}

// BookingStore receives the finished booking record.
type BookingStore interface {
	Append(ctx context.Context, b *domain.Booking) error
}

// Details is the state gathered in the first step. Guests is soft-bounded by
// venue capacity: exceeding it is allowed, the capacity is a display hint
// only.
type Details struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Guests    int    `json:"guests"`
}

// DetailsUpdate carries partial changes to the details step.
type DetailsUpdate struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	Duration  *int    `json:"duration"`
	Guests    *int    `json:"guests"`
}

// State is a read-only view of the workflow for rendering.
type State struct {
	Step       Step            `json:"step"`
	Venue      domain.Venue    `json:"venue"`
	Details    Details         `json:"details"`
	Total      float64         `json:"total"`
	Processing bool            `json:"processing"`
	Booking    *domain.Booking `json:"booking,omitempty"`
}

// Workflow is the linear booking flow: Details -> Payment -> Confirmed.
// Confirmed is terminal; Payment may go back to Details. A fresh workflow
// always starts at Details with default values.
type Workflow struct {
	mu         sync.Mutex
	venue      domain.Venue
	store      BookingStore
	delay      time.Duration
	step       Step
	details    Details
	processing bool
	booking    *domain.Booking
	lastAccess time.Time
}

// New opens a workflow for one venue. delay is the simulated payment
// processing time.
func New(venue domain.Venue, store BookingStore, delay time.Duration) *Workflow {
	return &Workflow{
		venue: venue,
		store: store,
		delay: delay,
		step:  StepDetails,
		details: Details{
			StartTime: defaultStartTime,
			Duration:  defaultDuration,
			Guests:    defaultGuests,
		},
		lastAccess: time.Now(),
	}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastAccess = time.Now()
	return w.stateLocked()
}

func (w *Workflow) stateLocked() State {
	return State{
		Step:       w.step,
		Venue:      w.venue,
		Details:    w.details,
		Total:      w.totalLocked(),
		Processing: w.processing,
		Booking:    w.booking,
	}
}

// Total is the current price: price per hour x duration. It is recalculated
// on every duration change; once a booking is created its TotalPrice is
// frozen and this value no longer applies to it.
func (w *Workflow) Total() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.totalLocked()
}

func (w *Workflow) totalLocked() float64 {
	return w.venue.PricePerHour * float64(w.details.Duration)
}

// UpdateDetails applies a partial details change. Only valid at the Details
// step.
func (w *Workflow) UpdateDetails(u DetailsUpdate) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepDetails {
		return w.stateLocked(), ErrInvalidStep
	}

	if u.StartTime != nil {
		if _, ok := parseSlot(*u.StartTime); !ok {
			return w.stateLocked(), ErrInvalidStartTime
		}
	}
	if u.Duration != nil && !validDuration(*u.Duration) {
		return w.stateLocked(), ErrInvalidDuration
	}
	if u.Guests != nil && *u.Guests < 1 {
		return w.stateLocked(), ErrInvalidGuests
	}

	if u.Date != nil {
		w.details.Date = *u.Date
	}
	if u.StartTime != nil {
		w.details.StartTime = *u.StartTime
	}
	if u.Duration != nil {
		w.details.Duration = *u.Duration
	}
	if u.Guests != nil {
		w.details.Guests = *u.Guests
	}

	w.lastAccess = time.Now()
	return w.stateLocked(), nil
}

// ContinueToPayment moves Details -> Payment. It is unavailable (not an
// error state for the client, just a disabled action) until a date is set.
func (w *Workflow) ContinueToPayment() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepDetails {
		return w.stateLocked(), ErrInvalidStep
	}
	if w.details.Date == "" {
		return w.stateLocked(), ErrDateRequired
	}

	w.step = StepPayment
	w.lastAccess = time.Now()
	return w.stateLocked(), nil
}

// BackToDetails moves Payment -> Details. Blocked while a submission is
// processing.
func (w *Workflow) BackToDetails() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepPayment {
		return w.stateLocked(), ErrInvalidStep
	}
	if w.processing {
		return w.stateLocked(), ErrProcessing
	}

	w.step = StepDetails
	w.lastAccess = time.Now()
	return w.stateLocked(), nil
}

// Submit runs the simulated payment and, on completion, appends exactly one
// confirmed booking to the store and moves to Confirmed. A second Submit
// while processing is rejected, so one submission window can never produce
// two records.
func (w *Workflow) Submit(ctx context.Context) (*domain.Booking, error) {
	w.mu.Lock()
	if w.step != StepPayment {
		w.mu.Unlock()
		return nil, ErrInvalidStep
	}
	if w.processing {
		w.mu.Unlock()
		return nil, ErrProcessing
	}
	w.processing = true
	details := w.details
	w.mu.Unlock()

	// simulated processing delay, no real transaction behind it
	select {
	case <-time.After(w.delay):
	case <-ctx.Done():
		w.mu.Lock()
		w.processing = false
		w.mu.Unlock()
		return nil, ctx.Err()
	}

	startHour, _ := parseSlot(details.StartTime)
	b := &domain.Booking{
		ID:         uuid.NewString(),
		VenueID:    w.venue.ID,
		VenueName:  w.venue.Name,
		Date:       details.Date,
		StartTime:  details.StartTime,
		EndTime:    fmt.Sprintf("%02d:00", startHour+details.Duration),
		TotalPrice: w.venue.PricePerHour * float64(details.Duration),
		GuestCount: details.Guests,
		Status:     domain.BookingConfirmed,
		CreatedAt:  time.Now().UTC(),
	}

	if errs := validator.Validate(b); errs != nil {
		w.mu.Lock()
		w.processing = false
		w.mu.Unlock()
		return nil, fmt.Errorf("booking failed validation: %v", errs)
	}

	if err := w.store.Append(ctx, b); err != nil {
		w.mu.Lock()
		w.processing = false
		w.mu.Unlock()
		return nil, err
	}

	w.mu.Lock()
	w.processing = false
	w.step = StepConfirmed
	w.booking = b
	w.lastAccess = time.Now()
	w.mu.Unlock()

	return b, nil
}

// IdleSince reports the time of the last client interaction.
func (w *Workflow) IdleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastAccess
}

func parseSlot(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if m != 0 || h < firstSlotHour || h > lastSlotHour {
		return 0, false
	}
	return h, true
}

func validDuration(d int) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}
