package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepwatch/engine/internal/store"
)

func TestStream_DeliversValidSweeps(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		msgs := []string{
			`{"market_slug": "rate-cut", "title": "Fed cuts rates?", "outcome": "YES", "usd_amount": 1500, "timestamp": 1700000000}`,
			`not json`,
			`{"market_slug": "blank", "title": "  ", "outcome": "YES", "usd_amount": 10, "timestamp": 1700000001}`,
			`{"market_slug": "btc-100k", "title": "Bitcoin to 100k?", "outcome": "NO", "usd_amount": 2000, "timestamp": 1700000002}`,
		}
		for _, m := range msgs {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
				return
			}
		}
		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	got := make(chan store.Sweep, 8)
	stream := NewStream("ws"+strings.TrimPrefix(srv.URL, "http"), func(s store.Sweep) {
		got <- s
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream.Start(ctx)
	defer stream.Stop()

	// Malformed and invalid messages are skipped silently.
	first := waitSweep(t, got)
	assert.Equal(t, "rate-cut", first.MarketSlug)
	second := waitSweep(t, got)
	assert.Equal(t, "btc-100k", second.MarketSlug)
}

func waitSweep(t *testing.T, ch <-chan store.Sweep) store.Sweep {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for streamed sweep")
		return store.Sweep{}
	}
}

func TestStream_StopWithoutConnection(t *testing.T) {
	stream := NewStream("ws://127.0.0.1:1/nowhere", nil)
	ctx, cancel := context.WithCancel(context.Background())
	stream.Start(ctx)
	cancel()
	require.NotPanics(t, stream.Stop)
}
