// Package sections tracks which content section is active based on
// viewport visibility reports from the rendered page.
//
// The page reports per-section intersection ratios (its IntersectionObserver
// output); the tracker arbitrates: a section becomes active when its ratio
// exceeds the threshold and no other section reports a strictly higher
// ratio, with ties broken by registration order. Duplicate outcomes from
// successive reports are suppressed.
package sections

import (
	"sync"
)

// ActiveThreshold is the minimum visible-intersection ratio for a section
// to become active.
const ActiveThreshold = 0.35

// HeaderOffset is the fixed header height in pixels that scroll targets
// align below.
const HeaderOffset = 80

// ScrollTarget describes where the viewport should scroll for a section.
type ScrollTarget struct {
	ID           string `json:"id"`
	Fragment     string `json:"fragment"`
	HeaderOffset int    `json:"header_offset"`
	Smooth       bool   `json:"smooth"`
}

// Change describes an activation handed to OnActiveChange subscribers.
// Fragment is the location hash for a passive history update; applying it
// must not trigger another scroll.
type Change struct {
	ID       string
	Fragment string
}

// Tracker arbitrates the active section for one visitor.
type Tracker struct {
	mu      sync.Mutex
	order   []string
	known   map[string]int
	active  string
	subs    map[int]func(Change)
	nextSub int
}

// NewTracker creates a tracker with no registered sections.
func NewTracker() *Tracker {
	return &Tracker{
		known: make(map[string]int),
		subs:  make(map[int]func(Change)),
	}
}

// RegisterSections declares the observed sections in display order,
// replacing any prior registration. The active section resets if it is no
// longer registered.
func (t *Tracker) RegisterSections(ids []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.order = append([]string(nil), ids...)
	t.known = make(map[string]int, len(ids))
	for i, id := range ids {
		t.known[id] = i
	}
	if _, ok := t.known[t.active]; !ok {
		t.active = ""
	}
}

// Sections returns the registered section ids in order.
func (t *Tracker) Sections() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// ReportVisibility ingests a visibility snapshot mapping section id to its
// current intersection ratio (0..1). Unregistered ids are ignored. If the
// arbitration outcome differs from the current active section, subscribers
// fire once with the new activation; identical outcomes are suppressed.
func (t *Tracker) ReportVisibility(ratios map[string]float64) {
	t.mu.Lock()

	best := ""
	bestRatio := 0.0
	bestOrder := 0
	for id, ratio := range ratios {
		order, ok := t.known[id]
		if !ok || ratio <= ActiveThreshold {
			continue
		}
		if best == "" || ratio > bestRatio || (ratio == bestRatio && order < bestOrder) {
			best = id
			bestRatio = ratio
			bestOrder = order
		}
	}

	if best == "" || best == t.active {
		t.mu.Unlock()
		return
	}

	t.active = best
	change := Change{ID: best, Fragment: "#" + best}
	subs := make([]func(Change), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(change)
	}
}

// ActiveSection returns the current active section id, or "" when none has
// crossed the threshold yet.
func (t *Tracker) ActiveSection() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// OnActiveChange registers a callback fired on every activation of a new
// section. The returned function unsubscribes.
func (t *Tracker) OnActiveChange(fn func(Change)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextSub++
	id := t.nextSub
	t.subs[id] = fn

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

// ScrollTo returns the scroll target for a registered section, aligning it
// below the fixed header. Unknown ids return nil (a no-op for the caller).
func (t *Tracker) ScrollTo(id string) *ScrollTarget {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.known[id]; !ok {
		return nil
	}
	return &ScrollTarget{
		ID:           id,
		Fragment:     "#" + id,
		HeaderOffset: HeaderOffset,
		Smooth:       true,
	}
}

// Close detaches all subscribers.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = make(map[int]func(Change))
}
