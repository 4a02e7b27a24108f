package booking

type OpenSessionRequest struct {
	VenueID string `json:"venue_id" validate:"required"`
}

// UpdateDetailsRequest carries partial changes to the details step. Omitted
// fields are left untouched.
type UpdateDetailsRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	Duration  *int    `json:"duration"`
	Guests    *int    `json:"guests"`
}

// PaymentRequest mirrors the simulated payment form. The fields are accepted
// and discarded: no validation, no transaction. Placeholder card data is the
// expected input.
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}
