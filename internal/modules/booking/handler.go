package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luminavenues/internal/pkg/response"
	"luminavenues/internal/pkg/validator"
	"luminavenues/internal/workflow"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/sessions", h.OpenSession)
	rg.GET("/bookings/sessions/:id", h.GetSession)
	rg.PATCH("/bookings/sessions/:id/details", h.UpdateDetails)
	rg.POST("/bookings/sessions/:id/payment", h.ContinueToPayment)
	rg.POST("/bookings/sessions/:id/payment/back", h.BackToDetails)
	rg.POST("/bookings/sessions/:id/submit", h.Submit)
	rg.DELETE("/bookings/sessions/:id", h.CloseSession)
	rg.GET("/bookings", h.ListBookings)
}

// OpenSession handles POST /api/v1/bookings/sessions
func (h *Handler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", errs)
		return
	}

	id, state, err := h.service.Open(req.VenueID)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open booking session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"session_id":  id,
		"state":       state,
		"start_slots": workflow.StartSlots(),
		"durations":   workflow.Durations,
	})
}

// GetSession handles GET /api/v1/bookings/sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	wf, ok := h.workflow(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"state": wf.State()})
}

// UpdateDetails handles PATCH /api/v1/bookings/sessions/:id/details
func (h *Handler) UpdateDetails(c *gin.Context) {
	wf, ok := h.workflow(c)
	if !ok {
		return
	}

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	state, err := wf.UpdateDetails(workflow.DetailsUpdate{
		Date:      req.Date,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Guests:    req.Guests,
	})
	if err != nil {
		h.workflowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": state})
}

// ContinueToPayment handles POST /api/v1/bookings/sessions/:id/payment
func (h *Handler) ContinueToPayment(c *gin.Context) {
	wf, ok := h.workflow(c)
	if !ok {
		return
	}

	state, err := wf.ContinueToPayment()
	if err != nil {
		h.workflowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": state})
}

// BackToDetails handles POST /api/v1/bookings/sessions/:id/payment/back
func (h *Handler) BackToDetails(c *gin.Context) {
	wf, ok := h.workflow(c)
	if !ok {
		return
	}

	state, err := wf.BackToDetails()
	if err != nil {
		h.workflowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": state})
}

// Submit handles POST /api/v1/bookings/sessions/:id/submit. The payment form
// body is accepted and ignored (simulated payment); the call blocks for the
// simulated processing delay and returns the confirmed booking.
func (h *Handler) Submit(c *gin.Context) {
	wf, ok := h.workflow(c)
	if !ok {
		return
	}

	var req PaymentRequest
	_ = c.ShouldBindJSON(&req)

	b, err := wf.Submit(c.Request.Context())
	if err != nil {
		h.workflowError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"state":   wf.State(),
		"booking": b,
	})
}

// CloseSession handles DELETE /api/v1/bookings/sessions/:id
func (h *Handler) CloseSession(c *gin.Context) {
	h.service.Close(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"closed": true})
}

// ListBookings handles GET /api/v1/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

func (h *Handler) workflow(c *gin.Context) (*workflow.Workflow, bool) {
	wf, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking session not found")
			return nil, false
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking session")
		return nil, false
	}
	return wf, true
}

func (h *Handler) workflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workflow.ErrDateRequired):
		response.Error(c, http.StatusUnprocessableEntity, "DATE_REQUIRED", "A date is required before continuing to payment")
	case errors.Is(err, workflow.ErrInvalidStartTime),
		errors.Is(err, workflow.ErrInvalidDuration),
		errors.Is(err, workflow.ErrInvalidGuests):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, workflow.ErrInvalidStep):
		response.Error(c, http.StatusConflict, "INVALID_STEP", "Action not valid at the current step")
	case errors.Is(err, workflow.ErrProcessing):
		response.Error(c, http.StatusConflict, "ALREADY_PROCESSING", "Payment is already processing")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking failed")
	}
}
