package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is created once by the booking workflow and never mutated.
// TotalPrice is fixed at creation time (price per hour x duration) and is
// never recomputed afterwards. VenueID is a weak reference: the store
// outlives any single catalog load, so no foreign key is enforced.
type Booking struct {
	ID         string        `json:"id"`
	VenueID    string        `json:"venue_id" validate:"required"`
	VenueName  string        `json:"venue_name"`
	Date       string        `json:"date" validate:"required"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	TotalPrice float64       `json:"total_price" validate:"gte=0"`
	GuestCount int           `json:"guest_count"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
