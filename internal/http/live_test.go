package http

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialLive(t *testing.T, visitorID string) (*websocket.Conn, func()) {
	t.Helper()

	router, shells := testShellRouter(visitorID)
	router.GET("/ws", NewLiveController().Handle)

	server := httptest.NewServer(router)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	return conn, func() {
		conn.Close()
		server.Close()
		shells.Close()
	}
}

func TestLiveController_VisibilityReports(t *testing.T) {
	conn, cleanup := dialLive(t, "visitor-live-visibility")
	defer cleanup()

	// The first push is the initial notification state.
	var event liveEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "notifications", event.Type)

	t.Run("out-of-range ratio is rejected without reaching the tracker", func(t *testing.T) {
		report := liveRequest{Type: "visibility", Ratios: map[string]float64{"about": 1.5}}
		require.NoError(t, conn.WriteJSON(report))

		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, "error", event.Type)
		assert.Contains(t, event.Error, "about")
	})

	t.Run("valid report activates the section", func(t *testing.T) {
		report := liveRequest{Type: "visibility", Ratios: map[string]float64{"about": 0.7}}
		require.NoError(t, conn.WriteJSON(report))

		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, "active_section", event.Type)
		assert.Equal(t, "about", event.Active)
		assert.Equal(t, "#about", event.Fragment)
	})
}

func TestLiveController_UnknownMessageType(t *testing.T) {
	conn, cleanup := dialLive(t, "visitor-live-unknown")
	defer cleanup()

	var event liveEvent
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, "notifications", event.Type)

	require.NoError(t, conn.WriteJSON(liveRequest{Type: "telemetry"}))
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "error", event.Type)
	assert.Contains(t, event.Error, "telemetry")
}
