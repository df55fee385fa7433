package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewNotifyHub() // Run intentionally not started

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.Publish("order", gin.H{"n": i})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with a saturated hub")
	}
}

func TestHubDeliversFrames(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewNotifyHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// give the register a moment to land
	time.Sleep(50 * time.Millisecond)

	hub.Publish("booking", gin.H{"id": 1})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame Notification
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "booking", frame.Type)
}
