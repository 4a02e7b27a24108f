package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luminavenues/internal/catalog"
	"luminavenues/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues", h.ListVenues)
	rg.GET("/venues/:id", h.GetVenue)
	rg.GET("/categories", h.ListCategories)
}

// ListVenues handles GET /api/v1/venues?category=&q=
func (h *Handler) ListVenues(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")

	venues, err := h.service.List(category, query)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown venue category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list venues")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"venues": venues,
		"count":  len(venues),
	})
}

// GetVenue handles GET /api/v1/venues/:id
func (h *Handler) GetVenue(c *gin.Context) {
	v, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get venue")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"venue": v})
}

// ListCategories handles GET /api/v1/categories
func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": h.service.Categories()})
}
