package transport

import (
	"fmt"
	"sync"

	"github.com/goalmesh/goalmesh/core"
)

// InMemory is a volatile core.Transport implementation keeping every channel
// in process-local memory. It is safe for concurrent access and best suited
// for tests, examples and single-process deployments. Opened channels stay
// addressable through Request and Broadcast so the client side of a pair can
// be driven directly.
type InMemory struct {
	mu         sync.Mutex
	requests   map[string]*RequestQueue
	broadcasts map[string]*BroadcastHub
}

var _ core.Transport = (*InMemory)(nil)

// NewInMemory constructs an empty in-memory transport.
func NewInMemory() *InMemory {
	return &InMemory{
		requests:   make(map[string]*RequestQueue),
		broadcasts: make(map[string]*BroadcastHub),
	}
}

func channelName(action string, kind core.ChannelKind) string {
	return action + "/" + kind.String()
}

// OpenRequestChannel creates (or reopens) the request/response queue for the
// given action and kind.
func (t *InMemory) OpenRequestChannel(action string, kind core.ChannelKind, qos core.QoSProfile) (core.RequestChannel, error) {
	if qos.History == core.KeepLast && qos.Depth <= 0 {
		return nil, fmt.Errorf("open %s: keep-last depth %d: %w", channelName(action, kind), qos.Depth, core.ErrInvalidArgument)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	q := newRequestQueue(qos)
	t.requests[channelName(action, kind)] = q
	return q, nil
}

// OpenBroadcastChannel creates (or reopens) the broadcast hub for the given
// action and kind.
func (t *InMemory) OpenBroadcastChannel(action string, kind core.ChannelKind, qos core.QoSProfile) (core.BroadcastChannel, error) {
	if qos.History == core.KeepLast && qos.Depth <= 0 {
		return nil, fmt.Errorf("open %s: keep-last depth %d: %w", channelName(action, kind), qos.Depth, core.ErrInvalidArgument)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	h := newBroadcastHub(qos)
	t.broadcasts[channelName(action, kind)] = h
	return h, nil
}

// Request returns the queue previously opened for the action/kind pair, or
// nil if none exists. Intended for the client side in tests and examples.
func (t *InMemory) Request(action string, kind core.ChannelKind) *RequestQueue {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests[channelName(action, kind)]
}

// Broadcast returns the hub previously opened for the action/kind pair, or
// nil if none exists.
func (t *InMemory) Broadcast(action string, kind core.ChannelKind) *BroadcastHub {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.broadcasts[channelName(action, kind)]
}

// queue is a depth-bounded FIFO honoring the history setting: keep-last drops
// the oldest entry on overflow, keep-all grows without bound.
type queue struct {
	qos  core.QoSProfile
	msgs []any
}

func (q *queue) push(msg any) {
	if q.qos.History == core.KeepLast && len(q.msgs) >= q.qos.Depth {
		q.msgs = q.msgs[1:]
	}
	q.msgs = append(q.msgs, msg)
}

func (q *queue) pop() (any, bool) {
	if len(q.msgs) == 0 {
		return nil, false
	}
	msg := q.msgs[0]
	q.msgs = q.msgs[1:]
	return msg, true
}

// RequestQueue is one request/response pair: the server takes requests and
// sends responses, the client submits requests and takes responses. Both
// directions share the channel's quality-of-service profile.
type RequestQueue struct {
	mu        sync.Mutex
	requests  queue
	responses queue
	closed    bool
}

var _ core.RequestChannel = (*RequestQueue)(nil)

func newRequestQueue(qos core.QoSProfile) *RequestQueue {
	return &RequestQueue{requests: queue{qos: qos}, responses: queue{qos: qos}}
}

// Submit enqueues a request from the client side.
func (q *RequestQueue) Submit(req any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return core.ErrChannelClosed
	}
	q.requests.push(req)
	return nil
}

// Take removes and returns the oldest pending request. With nothing pending
// it fails with core.ErrChannelEmpty.
func (q *RequestQueue) Take() (any, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, core.ErrChannelClosed
	}
	msg, ok := q.requests.pop()
	if !ok {
		return nil, core.ErrChannelEmpty
	}
	return msg, nil
}

// Respond enqueues a response toward the client side.
func (q *RequestQueue) Respond(resp any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return core.ErrChannelClosed
	}
	q.responses.push(resp)
	return nil
}

// TakeResponse removes and returns the oldest pending response. With nothing
// pending it fails with core.ErrChannelEmpty.
func (q *RequestQueue) TakeResponse() (any, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, core.ErrChannelClosed
	}
	msg, ok := q.responses.pop()
	if !ok {
		return nil, core.ErrChannelEmpty
	}
	return msg, nil
}

// Valid reports whether the queue is open.
func (q *RequestQueue) Valid() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.closed
}

// Close marks the queue unusable and drops any pending messages. Idempotent.
func (q *RequestQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.requests.msgs = nil
	q.responses.msgs = nil
	return nil
}

// BroadcastHub fans published samples out to every subscriber. With
// transient-local durability, retained samples (bounded by the profile depth)
// are replayed to late subscribers.
type BroadcastHub struct {
	mu       sync.Mutex
	qos      core.QoSProfile
	subs     []*Subscription
	retained queue
	closed   bool
}

var _ core.BroadcastChannel = (*BroadcastHub)(nil)

func newBroadcastHub(qos core.QoSProfile) *BroadcastHub {
	return &BroadcastHub{qos: qos, retained: queue{qos: qos}}
}

// Publish delivers a sample to every current subscriber, retaining it for
// late subscribers when durability is transient-local.
func (h *BroadcastHub) Publish(msg any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return core.ErrChannelClosed
	}
	if h.qos.Durability == core.TransientLocal {
		h.retained.push(msg)
	}
	for _, sub := range h.subs {
		sub.deliver(msg)
	}
	return nil
}

// Subscribe registers a new subscriber using the hub's profile for its own
// queue bound, replaying retained samples when durability allows.
func (h *BroadcastHub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	sub := &Subscription{pending: queue{qos: h.qos}}
	if h.qos.Durability == core.TransientLocal {
		for _, msg := range h.retained.msgs {
			sub.deliver(msg)
		}
	}
	h.subs = append(h.subs, sub)
	return sub
}

// Valid reports whether the hub is open.
func (h *BroadcastHub) Valid() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed
}

// Close marks the hub unusable and detaches every subscriber. Idempotent.
func (h *BroadcastHub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.subs = nil
	h.retained.msgs = nil
	return nil
}

// Subscription is one subscriber's view of a broadcast channel.
type Subscription struct {
	mu      sync.Mutex
	pending queue
}

func (s *Subscription) deliver(msg any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.push(msg)
}

// Take removes and returns the oldest delivered sample, or fails with
// core.ErrChannelEmpty when none is pending.
func (s *Subscription) Take() (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.pending.pop()
	if !ok {
		return nil, core.ErrChannelEmpty
	}
	return msg, nil
}
