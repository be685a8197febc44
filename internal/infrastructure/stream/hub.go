package stream

import (
	"sync"

	"user-hub/internal/domain"
)

// Hub broadcasts newly created users to any number of live subscribers.
// One Hub exists per process; the create-user path publishes into it and
// every open stream connection holds a subscription.
//
// Each subscriber owns an unbounded FIFO backlog drained by its own pump
// goroutine, so a slow consumer absorbs backpressure in its backlog instead
// of delaying Publish or any other subscriber.
// Implements domain.UserStream.
type Hub struct {
	mu   sync.Mutex
	subs map[*subscription]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*subscription]struct{})}
}

// Publish hands the event to every current subscriber. It never blocks on a
// consumer: delivery is an append to each subscriber's backlog. Events are
// observed by all subscribers in the same order they were published.
func (h *Hub) Publish(user domain.User) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		s.enqueue(user)
	}
}

// Subscribe registers a new subscriber and returns its event channel plus a
// cancel function. The channel only carries events published after this call;
// there is no replay. Cancelling deregisters the subscriber, closes the
// channel and discards any undrained backlog.
func (h *Hub) Subscribe() (<-chan domain.User, func()) {
	s := &subscription{
		hub:  h,
		wake: make(chan struct{}, 1),
		out:  make(chan domain.User),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	go s.pump()
	return s.out, s.close
}

// subscriberCount reports the number of registered subscribers.
func (h *Hub) subscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// subscription is a single consumer's cursor into the broadcast.
type subscription struct {
	hub       *Hub
	mu        sync.Mutex
	backlog   []domain.User
	wake      chan struct{}
	out       chan domain.User
	done      chan struct{}
	closeOnce sync.Once
}

// enqueue appends an event to the backlog and nudges the pump. Called with
// the hub lock held, which is what serializes delivery order across
// subscribers.
func (s *subscription) enqueue(user domain.User) {
	s.mu.Lock()
	s.backlog = append(s.backlog, user)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pump moves events from the backlog to the out channel in FIFO order until
// the subscription is closed.
func (s *subscription) pump() {
	defer close(s.out)

	for {
		s.mu.Lock()
		if len(s.backlog) == 0 {
			s.mu.Unlock()
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}
		next := s.backlog[0]
		s.backlog = s.backlog[1:]
		s.mu.Unlock()

		select {
		case s.out <- next:
		case <-s.done:
			return
		}
	}
}

// close deregisters the subscription and releases its backlog. Safe to call
// more than once.
func (s *subscription) close() {
	s.closeOnce.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		s.hub.mu.Unlock()

		close(s.done)

		s.mu.Lock()
		s.backlog = nil
		s.mu.Unlock()
	})
}
