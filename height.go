package electionmaps

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff"
)

// Sender delivers the document height to the embedding page.
type Sender interface {
	SendHeight()
}

// HeightReporter decides when to send the document height. Bursts of
// triggers are coalesced, and after the initial layout the height is sent
// repeatedly for a while to catch late reflows.
type HeightReporter struct {
	// Window is how long triggers are coalesced.
	Window time.Duration
	// BurstDuration and BurstInterval shape the retry burst after Ready.
	BurstDuration time.Duration
	BurstInterval time.Duration
	// OrientationBurst is the length of the burst after an orientation
	// change.
	OrientationBurst time.Duration

	sender Sender

	mu      sync.Mutex
	pending *time.Timer
	bursts  map[*backoff.Ticker]struct{}
	stopped bool
}

// NewHeightReporter returns a reporter sending to s with a 100ms window
// and a 1.8s burst every 150ms.
func NewHeightReporter(s Sender) *HeightReporter {
	return &HeightReporter{
		Window:           100 * time.Millisecond,
		BurstDuration:    1800 * time.Millisecond,
		BurstInterval:    150 * time.Millisecond,
		OrientationBurst: time.Second,
		sender:           s,
		bursts:           make(map[*backoff.Ticker]struct{}),
	}
}

// Trigger asks for a height report. Triggers within Window of the first
// one produce a single report.
func (h *HeightReporter) Trigger() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped || h.pending != nil {
		return
	}
	h.pending = time.AfterFunc(h.Window, func() {
		h.mu.Lock()
		h.pending = nil
		stopped := h.stopped
		h.mu.Unlock()
		if !stopped {
			h.sender.SendHeight()
		}
	})
}

// Ready reports the height once the page has finished its first layout
// and then keeps reporting for BurstDuration.
func (h *HeightReporter) Ready() {
	h.Burst(h.BurstDuration)
}

// Orientation reports after a device orientation change.
func (h *HeightReporter) Orientation() {
	h.Burst(h.OrientationBurst)
}

// Burst reports the height now and then every BurstInterval for d.
func (h *HeightReporter) Burst(d time.Duration) {
	interval := h.BurstInterval
	if interval <= 0 {
		interval = 150 * time.Millisecond
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(d/interval))
	t := backoff.NewTicker(b)
	h.bursts[t] = struct{}{}
	go func() {
		for range t.C {
			h.mu.Lock()
			stopped := h.stopped
			h.mu.Unlock()
			if stopped {
				break
			}
			h.sender.SendHeight()
		}
		h.mu.Lock()
		delete(h.bursts, t)
		h.mu.Unlock()
	}()
}

// Stop cancels pending reports and bursts.
func (h *HeightReporter) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = true
	if h.pending != nil {
		h.pending.Stop()
		h.pending = nil
	}
	for t := range h.bursts {
		t.Stop()
	}
}

// ReadyGate holds back a reporter's Ready burst until every named
// condition is done. Until then each completed condition only triggers a
// coalesced report.
type ReadyGate struct {
	h *HeightReporter

	mu      sync.Mutex
	pending map[string]bool
	fired   bool
}

// Gate returns a gate that calls Ready once every condition has been
// passed to Done.
func (h *HeightReporter) Gate(conditions ...string) *ReadyGate {
	g := &ReadyGate{h: h, pending: make(map[string]bool)}
	for _, c := range conditions {
		g.pending[c] = true
	}
	return g
}

// Done marks a condition as met. Unknown and repeated conditions are
// ignored, so it may be wired to events that fire more than once.
func (g *ReadyGate) Done(condition string) {
	g.mu.Lock()
	if g.fired || !g.pending[condition] {
		g.mu.Unlock()
		return
	}
	delete(g.pending, condition)
	ready := len(g.pending) == 0
	g.fired = ready
	g.mu.Unlock()
	if ready {
		g.h.Ready()
	} else {
		g.h.Trigger()
	}
}

// Force calls Ready if the gate has not opened yet.
func (g *ReadyGate) Force() {
	g.mu.Lock()
	fired := g.fired
	g.fired = true
	g.pending = nil
	g.mu.Unlock()
	if !fired {
		g.h.Ready()
	}
}

// Opened reports whether Ready has been called.
func (g *ReadyGate) Opened() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fired
}

// PymMessage formats a message of the pym.js embedding protocol.
func PymMessage(id, messageType, message string) string {
	const delim = "xPYMx"
	return "pym" + delim + id + delim + messageType + delim + message
}
