package handlers

import (
	"log"
	"net/http"

	"github.com/bikefight/bikefight.github.io/internal/metrics"
	"github.com/bikefight/bikefight.github.io/internal/services"
	"github.com/bikefight/bikefight.github.io/internal/store"
	"github.com/bikefight/bikefight.github.io/internal/ws"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challenges store.ChallengeStore
	presence   store.PresenceStore
	scoring    *services.ScoringService
	hub        *ws.Hub
}

func NewChallengeHandler(challenges store.ChallengeStore, presence store.PresenceStore, scoring *services.ScoringService, hub *ws.Hub) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges, presence: presence, scoring: scoring, hub: hub}
}

type CreateChallengeRequest struct {
	FromID string `json:"from_id" binding:"required" example:"device-3f2a"`
	ToID   string `json:"to_id" binding:"required" example:"device-9c41"`
	Image  string `json:"image" binding:"required" example:"data:image/png;base64,iVBOR..."`
}

type CreateChallengeResponse struct {
	ID uint `json:"id" example:"7"`
}

type RespondChallengeRequest struct {
	ID         uint  `json:"id" binding:"required" example:"7"`
	Accepted   *bool `json:"accepted" binding:"required" example:"true"`
	Beauty     int   `json:"beauty" example:"5"`
	Creativity int   `json:"creativity" example:"5"`
	Creepiness int   `json:"creepiness" example:"1"`
}

type RespondChallengeResponse struct {
	Status string `json:"status" example:"ok"`
	Points int    `json:"points" example:"15"`
}

// CreateChallenge godoc
// @Summary      Photograph another participant
// @Description  Persists the challenge and pushes it to the target's live connections, if any
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Param        request body CreateChallengeRequest true "Challenge data"
// @Success      200 {object} CreateChallengeResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/challenge [post]
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
		return
	}

	ch, err := h.challenges.Create(c.Request.Context(), req.FromID, req.ToID, req.Image)
	if err != nil {
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	metrics.ChallengesCreated.Inc()

	// Live delivery only. If the target is offline the challenge stays
	// pending in the store but is not replayed on reconnect.
	h.hub.SendTo(ch.ToID, ws.NewChallengeMessage(ch))

	c.JSON(http.StatusOK, CreateChallengeResponse{ID: ch.ID})
}

// RespondChallenge godoc
// @Summary      Rate a received photo
// @Description  Resolves a pending challenge exactly once; an accepted rating awards points to the photographer
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Param        request body RespondChallengeRequest true "Rating data"
// @Success      200 {object} RespondChallengeResponse
// @Failure      400 {object} ErrorResponse "invalid payload or already resolved"
// @Failure      404 {object} ErrorResponse "unknown challenge id"
// @Router       /api/response [post]
func (h *ChallengeHandler) RespondChallenge(c *gin.Context) {
	var req RespondChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
		return
	}
	accepted := *req.Accepted

	// Ratings that will feed scoring are validated before any write so a bad
	// triple cannot burn the challenge's single transition.
	points := 0
	if accepted {
		var err error
		points, err = h.scoring.Score(req.Beauty, req.Creativity, req.Creepiness)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	ch, err := h.challenges.Respond(c.Request.Context(), req.ID, accepted, req.Beauty, req.Creativity, req.Creepiness)
	if err != nil {
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	metrics.ChallengesResolved.WithLabelValues(ch.Status).Inc()

	if accepted {
		if _, err := h.presence.AddPoints(c.Request.Context(), ch.FromID, points); err != nil {
			// The challenge already resolved; surface the award failure
			// instead of pretending the points landed.
			log.Printf("challenge %d resolved but award failed: %v", ch.ID, err)
			c.JSON(storeErrorStatus(err), ErrorResponse{Error: "challenge resolved but points were not awarded"})
			return
		}
	}

	result := ws.NewChallengeResultMessage(ch, points)
	h.hub.SendTo(ch.FromID, result)
	h.hub.SendTo(ch.ToID, result)

	c.JSON(http.StatusOK, RespondChallengeResponse{Status: "ok", Points: points})
}
