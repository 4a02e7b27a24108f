package booking

import "errors"

var (
	ErrSessionNotFound = errors.New("booking session not found")
	ErrVenueNotFound   = errors.New("venue not found")
)
