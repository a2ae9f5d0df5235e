package realtime_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/realtime"
)

func hubHandler(hub *realtime.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Subscribe(w, r)
	}
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := realtime.NewHub(slog.Default())
	defer hub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(portssvc.ChangeEvent{Collection: "transactions", Action: "create", ID: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked with no subscribers")
	}
}

func TestSubscriberReceivesEvents(t *testing.T) {
	hub := realtime.NewHub(slog.Default())
	defer hub.Close()

	s := httptest.NewServer(hubHandler(hub))
	defer s.Close()

	url := "ws" + strings.TrimPrefix(s.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Wait for the hub to register the client before publishing.
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(portssvc.ChangeEvent{Collection: "suppliers", Action: "create", ID: "abc"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var evt portssvc.ChangeEvent
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, "suppliers", evt.Collection)
	assert.Equal(t, "create", evt.Action)
	assert.Equal(t, "abc", evt.ID)
}

func TestCloseDropsClients(t *testing.T) {
	hub := realtime.NewHub(slog.Default())

	s := httptest.NewServer(hubHandler(hub))
	defer s.Close()

	url := "ws" + strings.TrimPrefix(s.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()

	assert.Equal(t, 0, hub.ClientCount())
}
