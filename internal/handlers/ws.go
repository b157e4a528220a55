package handlers

import (
	"log"
	"net/http"

	"github.com/bikefight/bikefight.github.io/internal/store"
	"github.com/bikefight/bikefight.github.io/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub      *ws.Hub
	presence store.PresenceStore
}

func NewWSHandler(hub *ws.Hub, presence store.PresenceStore) *WSHandler {
	return &WSHandler{hub: hub, presence: presence}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      Realtime channel
// @Description  Connect with ?uid=<participant id> to receive presence broadcasts and directed challenge messages. The first message is an init snapshot of all participants.
// @Tags         websocket
// @Param        uid query string true "Participant ID (self-asserted)"
// @Router       /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing uid"})
		return
	}

	users, err := h.presence.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: "failed to load snapshot"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	// Snapshot goes out before the conn is registered: the hub is the only
	// writer after registration, and a fresh client reconciles from the
	// snapshot instead of waiting for the next broadcast.
	if err := conn.WriteJSON(ws.NewInitMessage(users)); err != nil {
		log.Printf("websocket init write error: %v", err)
		conn.Close()
		return
	}

	h.hub.Register(conn, uid)
	defer h.hub.Unregister(conn)

	// The channel is server→client only; client frames are drained and
	// dropped until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
