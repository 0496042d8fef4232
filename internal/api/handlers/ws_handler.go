package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/danuartha/notaris-go/internal/api/middleware"
	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/pkg/response"
	"github.com/danuartha/notaris-go/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// How often the track is re-derived and compared against the last
	// payload sent to this connection.
	trackPollInterval = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Println("WebSocket Origin:", r.Header.Get("Origin"))
		return true
	},
}

type WSHandler struct {
	flow *application.FlowService
}

func NewWSHandler(flow *application.FlowService) *WSHandler {
	return &WSHandler{flow: flow}
}

// wsIdentity authenticates a websocket request. Browsers cannot set the
// Authorization header on the upgrade request, so the token comes from a
// query parameter or the session cookie.
func wsIdentity(c *gin.Context) (uint, user.Role, bool) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
	}
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
		return 0, user.RoleUnknown, false
	}

	claims, err := middleware.ParseToken(tokenStr)
	if err != nil || claims == nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token"})
		return 0, user.RoleUnknown, false
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
		return 0, user.RoleUnknown, false
	}
	return claims.UserID, user.RoleFromID(claims.RoleID), true
}

// WatchActivityTrack streams the activity's step track over a websocket. The
// full detail payload is sent on connect and whenever the derived track
// changes, so the dashboard never has to poll the REST endpoint.
func (h *WSHandler) WatchActivityTrack(c *gin.Context) {
	activityID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}

	userID, role, ok := wsIdentity(c)
	if !ok {
		return
	}

	// Check access before upgrading so a forbidden request gets a proper
	// HTTP status instead of a dropped socket.
	if _, err := h.flow.GetDetail(activityID, userID, role); err != nil {
		writeServiceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go func() {
		defer func() { _ = conn.Close() }()

		pingTicker := time.NewTicker(pingPeriod)
		defer pingTicker.Stop()

		pollTicker := time.NewTicker(trackPollInterval)
		defer pollTicker.Stop()

		var lastSent []byte

		send := func() error {
			detail, err := h.flow.GetDetail(activityID, userID, role)
			if err != nil {
				return err
			}
			data, err := json.Marshal(detail)
			if err != nil {
				return err
			}
			if bytes.Equal(data, lastSent) {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return err
			}
			lastSent = data
			return nil
		}

		if err := send(); err != nil {
			cancel()
			return
		}

		for {
			select {
			case <-pollTicker.C:
				if err := send(); err != nil {
					cancel()
					return
				}

			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					cancel()
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}
