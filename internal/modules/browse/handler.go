package browse

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"luminavenues/internal/domain"
	"luminavenues/internal/listing"
	"luminavenues/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// dev setting; tighten per deployment origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/browse", h.CreateSession)
	rg.GET("/browse/:id", h.GetSnapshot)
	rg.PUT("/browse/:id/category", h.SetCategory)
	rg.PUT("/browse/:id/query", h.SetQuery)
	rg.POST("/browse/:id/search", h.Search)
	rg.POST("/browse/:id/reset", h.Reset)
	rg.DELETE("/browse/:id", h.DeleteSession)
	rg.GET("/browse/:id/ws", h.HandleWebSocket)
}

// CreateSession handles POST /api/v1/browse
func (h *Handler) CreateSession(c *gin.Context) {
	id, snap := h.service.Create()
	response.Success(c, http.StatusCreated, gin.H{
		"session_id": id,
		"snapshot":   snap,
	})
}

// GetSnapshot handles GET /api/v1/browse/:id
func (h *Handler) GetSnapshot(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"snapshot": sess.Snapshot()})
}

// SetCategory handles PUT /api/v1/browse/:id/category
func (h *Handler) SetCategory(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req SetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Category != listing.CategoryAll {
		if _, valid := domain.ParseVenueType(req.Category); !valid {
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown venue category")
			return
		}
	}

	response.Success(c, http.StatusOK, gin.H{"snapshot": sess.SetCategory(req.Category)})
}

// SetQuery handles PUT /api/v1/browse/:id/query
func (h *Handler) SetQuery(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req SetQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"snapshot": sess.SetQuery(req.Query)})
}

// Search handles POST /api/v1/browse/:id/search. The recommendation call is
// asynchronous; the returned snapshot has loading=true and the final state
// arrives via polling or the WebSocket push. The search must outlive this
// request, so it is not bound to the request context. A blank query starts
// no search at all: the current snapshot comes back with 200.
func (h *Handler) Search(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	snap := sess.Search(context.Background())
	status := http.StatusAccepted
	if !snap.Loading {
		status = http.StatusOK
	}
	response.Success(c, status, gin.H{"snapshot": snap})
}

// Reset handles POST /api/v1/browse/:id/reset
func (h *Handler) Reset(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"snapshot": sess.Reset()})
}

// DeleteSession handles DELETE /api/v1/browse/:id
func (h *Handler) DeleteSession(c *gin.Context) {
	h.service.Delete(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// HandleWebSocket handles GET /api/v1/browse/:id/ws. The server pushes a
// snapshot message after every session state change; client messages are
// ignored. The hub owns all writes on the connection.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	id := c.Param("id")
	sess, err := h.service.Get(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Browse session not found")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("browse: websocket upgrade failed: %v", err)
		return
	}

	// blocks until the client disconnects
	h.hub.ServeWS(id, conn, sess.Snapshot())
}

func (h *Handler) session(c *gin.Context) (*listing.Session, bool) {
	sess, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Browse session not found")
			return nil, false
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load browse session")
		return nil, false
	}
	return sess, true
}
