package workflow

import "errors"

var (
	ErrInvalidStep      = errors.New("action not valid at this step")
	ErrDateRequired     = errors.New("date is required")
	ErrInvalidStartTime = errors.New("start time must be an hour slot between 09:00 and 18:00")
	ErrInvalidDuration  = errors.New("duration must be one of 2, 4, 6, 8 or 10 hours")
	ErrInvalidGuests    = errors.New("guest count must be at least 1")
	ErrProcessing       = errors.New("payment is already processing")
)
