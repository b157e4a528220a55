package handlers

import (
	"net/http"

	"github.com/bikefight/bikefight.github.io/internal/metrics"
	"github.com/bikefight/bikefight.github.io/internal/store"
	"github.com/bikefight/bikefight.github.io/internal/ws"

	"github.com/gin-gonic/gin"
)

type PresenceHandler struct {
	presence store.PresenceStore
	hub      *ws.Hub
}

func NewPresenceHandler(presence store.PresenceStore, hub *ws.Hub) *PresenceHandler {
	return &PresenceHandler{presence: presence, hub: hub}
}

type UpdateLocationRequest struct {
	ID   string `json:"id" binding:"required" example:"device-3f2a"`
	Name string `json:"name" example:"Sam"`
	// Pointers so 0 binds as a value and a missing coordinate is rejected.
	Lat *float64 `json:"lat" binding:"required" example:"37.0"`
	Lng *float64 `json:"lng" binding:"required" example:"-122.0"`
}

// ListUsers godoc
// @Summary      List all participants
// @Description  Last-known position, name and points of every participant ever seen
// @Tags         presence
// @Produce      json
// @Success      200 {array} Participant
// @Router       /api/users [get]
func (h *PresenceHandler) ListUsers(c *gin.Context) {
	users, err := h.presence.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: "failed to list participants"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateLocation godoc
// @Summary      Report a participant's position
// @Description  Upserts the participant and broadcasts the new position to every live connection
// @Tags         presence
// @Accept       json
// @Produce      json
// @Param        request body UpdateLocationRequest true "Position report"
// @Success      200 {object} StatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/update [post]
func (h *PresenceHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
		return
	}

	p, err := h.presence.Upsert(c.Request.Context(), req.ID, req.Name, *req.Lat, *req.Lng)
	if err != nil {
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	metrics.PresenceUpdates.Inc()

	h.hub.BroadcastAll(ws.PresenceUpdate{
		ID:      p.ID,
		Name:    p.Name,
		Lat:     p.Lat,
		Lng:     p.Lng,
		Updated: p.Updated,
	})

	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
