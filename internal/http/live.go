package http

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ghassen-kharrat/portfolio/internal/notify"
	"github.com/ghassen-kharrat/portfolio/internal/sections"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin only: the socket carries per-visitor UI state.
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type   string             `json:"type"` // "visibility", "dismiss" or "ping"
	Ratios map[string]float64 `json:"ratios,omitempty"`
	ID     string             `json:"id,omitempty"`
}

// liveEvent is the outgoing WebSocket message format.
type liveEvent struct {
	Type          string                `json:"type"` // "notifications", "active_section", "pong" or "error"
	Notifications []notify.Notification `json:"notifications,omitempty"`
	Active        string                `json:"active,omitempty"`
	Fragment      string                `json:"fragment,omitempty"`
	Error         string                `json:"error,omitempty"`
}

// LiveController pushes notification stack and active section changes to
// the browser over a WebSocket, and accepts visibility reports on the same
// connection.
type LiveController struct{}

func NewLiveController() *LiveController {
	return &LiveController{}
}

func (l *LiveController) Handle(c *gin.Context) {
	sess := GetShell(c)
	if sess == nil {
		respondInternalError(c, errNoShell, "live")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// Serializes writes: subscription callbacks and the read loop both send.
	var writeMu sync.Mutex
	send := func(event liveEvent) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("live: websocket write: %v", err)
		}
	}

	unsubBus := sess.Bus.OnChange(func() {
		send(liveEvent{Type: "notifications", Notifications: sess.Bus.List()})
	})
	defer unsubBus()

	unsubTracker := sess.Tracker.OnActiveChange(func(change sections.Change) {
		send(liveEvent{Type: "active_section", Active: change.ID, Fragment: change.Fragment})
	})
	defer unsubTracker()

	// Initial state so the client renders without a separate fetch.
	send(liveEvent{Type: "notifications", Notifications: sess.Bus.List()})
	if active := sess.Tracker.ActiveSection(); active != "" {
		send(liveEvent{Type: "active_section", Active: active, Fragment: "#" + active})
	}

	for {
		var req liveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: websocket read: %v", err)
			}
			return
		}

		sess.Touch()

		switch req.Type {
		case "visibility":
			if id, bad := outOfRangeRatio(req.Ratios); bad {
				send(liveEvent{Type: "error", Error: "ratio out of range for section " + id})
			} else {
				sess.Tracker.ReportVisibility(req.Ratios)
			}
		case "dismiss":
			sess.Bus.Dismiss(req.ID)
		case "ping":
			send(liveEvent{Type: "pong"})
		default:
			send(liveEvent{Type: "error", Error: "unknown message type: " + req.Type})
		}
	}
}
