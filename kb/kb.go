package kb

import (
	"fmt"
	"sync"

	"github.com/MDStebel/OrbitMath/core"
	"github.com/MDStebel/OrbitMath/model"
)

// EventType indicates what kind of change happened in the catalog.
type EventType int

const (
	EventOrientationUpdated EventType = iota
)

// Event is emitted to subscribers when a ring state changes.
type Event struct {
	Type  EventType
	State core.RingState
}

// RingCatalog is an in-memory, thread-safe store for body profiles and
// their most recent ring states. The renderer subscribes to it and
// applies each published orientation to the ring node it owns.
type RingCatalog struct {
	mu sync.RWMutex

	profiles map[model.Body]model.OrbitingBodyProfile
	states   map[model.Body]core.RingState

	// subs is keyed by a monotonically increasing token so that any
	// subscriber can unsubscribe in any order without disturbing the
	// others.
	subs      map[int]func(Event)
	nextSubID int
}

// NewRingCatalog constructs an empty catalog.
func NewRingCatalog() *RingCatalog {
	return &RingCatalog{
		profiles: make(map[model.Body]model.OrbitingBodyProfile),
		states:   make(map[model.Body]core.RingState),
		subs:     make(map[int]func(Event)),
	}
}

// AddBody registers a profile. It returns an error if the profile fails
// its construction invariants or the body is already present.
func (c *RingCatalog) AddBody(p model.OrbitingBodyProfile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("profile for %q: %w", p.Body, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.profiles[p.Body]; exists {
		return fmt.Errorf("body %q already registered", p.Body)
	}
	c.profiles[p.Body] = p
	return nil
}

// Profile returns the profile for the given body.
func (c *RingCatalog) Profile(body model.Body) (model.OrbitingBodyProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.profiles[body]
	return p, ok
}

// Profiles returns a snapshot slice of all registered profiles.
func (c *RingCatalog) Profiles() []model.OrbitingBodyProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]model.OrbitingBodyProfile, 0, len(c.profiles))
	for _, p := range c.profiles {
		res = append(res, p)
	}
	return res
}

// Orientation returns the most recent ring state for the body, if any
// step has produced one yet.
func (c *RingCatalog) Orientation(body model.Body) (core.RingState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.states[body]
	return s, ok
}

// UpdateOrientation stores a freshly computed ring state, replacing the
// previous one, and notifies subscribers. It implements
// core.OrientationSink.
func (c *RingCatalog) UpdateOrientation(state core.RingState) error {
	c.mu.Lock()
	if _, ok := c.profiles[state.Body]; !ok {
		c.mu.Unlock()
		return fmt.Errorf("body %q not registered", state.Body)
	}
	c.states[state.Body] = state
	event := Event{
		Type:  EventOrientationUpdated,
		State: state,
	}
	subs := make([]func(Event), 0, len(c.subs))
	for _, sub := range c.subs {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// Subscribe registers a callback for catalog events. It returns an
// unsubscribe function; calling it more than once is harmless.
func (c *RingCatalog) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}
