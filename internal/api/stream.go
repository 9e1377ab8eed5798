package api

import (
	"net/http"
	"time"

	"github.com/Drakonfox/Hard-to-Die/internal/constants"
	"github.com/Drakonfox/Hard-to-Die/internal/logging"
	"github.com/Drakonfox/Hard-to-Die/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The server is same-origin only; no cross-origin clients exist.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// StreamRun upgrades the request to a websocket and pushes run snapshots at
// the simulation tick rate until the client disconnects. Snapshots are deep
// copies, so a slow consumer never blocks or observes the live simulation.
func (h *RunHandler) StreamRun(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrFailedUpgradeWebsocket})
		return
	}
	go h.streamSnapshots(conn, s, c.Param("runID"))
}

// streamSnapshots owns the connection: it is the only writer. A companion
// read loop drains client frames so pings are answered and disconnects are
// noticed promptly.
func (h *RunHandler) streamSnapshots(conn *websocket.Conn, s *service.Session, runID string) {
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(service.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(s.Snapshot()); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logging.Info("snapshot stream closed", logging.Fields{
						constants.LogFieldRunID:  runID,
						constants.LogFieldSource: err.Error(),
					})
				}
				return
			}
		}
	}
}
