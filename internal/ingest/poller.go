package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/sweepwatch/engine/internal/store"
)

// DefaultPollInterval is how often the dashboard refreshes.
const DefaultPollInterval = 5 * time.Second

// Poller drives the ingestion cycle: every tick it fetches both
// collections, runs them through the change tracker, and hands the
// resulting snapshot to OnSnapshot. A failed tick calls OnError instead
// and leaves the tracker untouched; the regular interval is the only
// retry mechanism.
type Poller struct {
	client   *Client
	tracker  *store.Tracker
	interval time.Duration

	// Paused reports whether ticks should be skipped entirely, e.g.
	// while the user is inspecting a row. Optional.
	Paused func() bool

	// OnSnapshot receives the working set after each successful tick.
	OnSnapshot func(store.Snapshot)

	// OnError receives the failure of an aborted tick.
	OnError func(error)
}

// NewPoller creates a Poller over the given client and tracker.
func NewPoller(client *Client, tracker *store.Tracker, interval time.Duration) *Poller {
	if interval == 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		client:   client,
		tracker:  tracker,
		interval: interval,
	}
}

// Start polls until the context is cancelled, beginning with an
// immediate tick. Blocking; run it in its own goroutine.
func (p *Poller) Start(ctx context.Context) {
	slog.Info("poller_started", "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("poller_stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick runs one poll cycle. The update is all-or-nothing: the tracker
// and the delivered snapshot only change when both fetches succeed.
func (p *Poller) tick(ctx context.Context) {
	if p.Paused != nil && p.Paused() {
		slog.Debug("tick_skipped", "reason", "paused")
		return
	}

	raw, expiring, err := p.client.FetchAll(ctx)
	if err != nil {
		slog.Warn("tick_failed", "error", err)
		if p.OnError != nil {
			p.OnError(err)
		}
		return
	}

	snap := store.Snapshot{
		Sweeps:    p.tracker.Ingest(raw),
		Expiring:  expiring,
		FetchedAt: time.Now(),
	}
	slog.Debug("snapshot_applied",
		"sweeps", len(snap.Sweeps),
		"dropped", len(raw)-len(snap.Sweeps),
		"expiring", len(snap.Expiring),
	)
	if p.OnSnapshot != nil {
		p.OnSnapshot(snap)
	}
}
