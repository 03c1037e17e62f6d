package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sweepwatch/engine/internal/store"
)

// Reconnection backoff bounds for the live stream.
const (
	streamInitialBackoff = 1 * time.Second
	streamMaxBackoff     = 60 * time.Second
	streamReadTimeout    = 90 * time.Second
)

// Stream is an optional low-latency feed of individual sweeps pushed by
// the source over a WebSocket. Streamed sweeps never enter the working
// set — change tracking stays strictly poll-based — they only feed the
// live ticker in the status bar.
type Stream struct {
	url     string
	onSweep func(store.Sweep)

	mu      sync.Mutex
	conn    *websocket.Conn
	backoff time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewStream creates a Stream that calls onSweep for every valid sweep
// received.
func NewStream(url string, onSweep func(store.Sweep)) *Stream {
	return &Stream{
		url:     url,
		onSweep: onSweep,
		backoff: streamInitialBackoff,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start runs the connect/read/reconnect loop in its own goroutine.
func (s *Stream) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop closes the stream and waits for the loop to exit.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.closeConn()
	})
	<-s.done
}

func (s *Stream) run(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		default:
		}

		if err := s.connect(ctx); err != nil {
			slog.Warn("stream_connect_failed", "error", err, "backoff", s.backoff)
			if !s.waitBackoff(ctx) {
				return
			}
			continue
		}

		if err := s.readLoop(); err != nil {
			slog.Debug("stream_read_ended", "error", err)
		}
		s.closeConn()

		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		default:
			if !s.waitBackoff(ctx) {
				return
			}
		}
	}
}

func (s *Stream) connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.backoff = streamInitialBackoff
	slog.Info("stream_connected", "endpoint", s.url)
	return nil
}

func (s *Stream) readLoop() error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var sweep store.Sweep
		if err := json.Unmarshal(msg, &sweep); err != nil {
			slog.Debug("stream_bad_message", "error", err)
			continue
		}
		if !sweep.Valid() {
			continue
		}
		if s.onSweep != nil {
			s.onSweep(sweep)
		}
	}
}

func (s *Stream) waitBackoff(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-s.stop:
		return false
	case <-time.After(s.backoff):
	}
	s.backoff *= 2
	if s.backoff > streamMaxBackoff {
		s.backoff = streamMaxBackoff
	}
	return true
}

func (s *Stream) closeConn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
}
