package booking

import (
	"context"

	"luminavenues/internal/domain"
)

// BookingStore is the persisted, append-only booking list.
type BookingStore interface {
	Append(ctx context.Context, b *domain.Booking) error
	ReadAll(ctx context.Context) ([]domain.Booking, error)
}
