package services

import (
	"math"
	"sync"
	"time"
)

const (
	// scrollAnchor is added to the raw scroll offset before comparing against
	// heading positions, so the "active" category is the one whose heading has
	// just passed under the sticky header.
	scrollAnchor = 96

	// scrollSettleWindow is how long scroll-driven updates stay suppressed
	// after a programmatic scroll. There is no reliable animation-end signal,
	// so the window is sized to outlast the smooth-scroll animation.
	scrollSettleWindow = 800 * time.Millisecond
)

// NavSync keeps the navigation rail's active category consistent with the
// scrollable content pane. Two inputs write the same active index: continuous
// scroll events and explicit rail clicks. A click suppresses scroll-driven
// updates for a settle window so the rail does not flicker through the
// categories the animated scroll passes over.
type NavSync struct {
	mu         sync.Mutex
	active     int
	headings   []float64 // recorded heading offsets, indexed by category
	hasHeading []bool
	suppressed bool
	timer      *time.Timer
	window     time.Duration
}

func NewNavSync() *NavSync {
	return &NavSync{window: scrollSettleWindow}
}

// SetHeadingOffset records the vertical position of a category heading.
// Categories without a recorded heading are skipped by HandleScroll.
func (n *NavSync) SetHeadingOffset(index int, offset float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for len(n.headings) <= index {
		n.headings = append(n.headings, 0)
		n.hasHeading = append(n.hasHeading, false)
	}
	n.headings[index] = offset
	n.hasHeading[index] = true
}

// ActiveCategory returns the current active category index.
func (n *NavSync) ActiveCategory() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// ScrollToCategory handles a rail click: the active index moves immediately so
// the rail highlights without waiting for the scroll to land, and scroll
// events are suppressed until the settle window elapses. A second click
// restarts the window.
func (n *NavSync) ScrollToCategory(index int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = index
	n.suppressed = true
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.window, func() {
		n.mu.Lock()
		n.suppressed = false
		n.mu.Unlock()
	})
}

// HandleScroll recomputes the active category from a scroll offset. During
// a programmatic scroll it is a no-op. Otherwise the category whose recorded
// heading is nearest to offset+anchor wins, ties going to the lowest index.
func (n *NavSync) HandleScroll(offset float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.suppressed {
		return
	}
	anchor := offset + scrollAnchor
	closest := 0
	closestDistance := math.Inf(1)
	for i, y := range n.headings {
		if !n.hasHeading[i] {
			continue
		}
		if d := math.Abs(y - anchor); d < closestDistance {
			closestDistance = d
			closest = i
		}
	}
	if math.IsInf(closestDistance, 1) {
		// No heading recorded yet; keep the current active index.
		return
	}
	n.active = closest
}

// Close cancels the settle timer. Call on controller teardown so a stale
// callback cannot write into a discarded session.
func (n *NavSync) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
