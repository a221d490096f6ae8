// Package extensionstore holds the in-memory browser state shared with the
// extension runtime: the pending prompt request and the known extensions.
package extensionstore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/logging"
)

// ErrPromptRequestPending is returned when a prompt is published while another one
// has not been consumed yet.
var ErrPromptRequestPending = errors.New("a prompt request is already pending")

// Store is a subscribable browser store. Every state change is delivered to
// every subscriber in order.
type Store struct {
	mu         sync.Mutex
	prompt     entity.PromptRequest
	extensions map[string]entity.Extension
	subs       map[*subscription]struct{}
}

// New creates an empty store.
func New() *Store {
	return &Store{
		extensions: make(map[string]entity.Extension),
		subs:       make(map[*subscription]struct{}),
	}
}

// SetPromptRequest publishes a prompt request.
func (s *Store) SetPromptRequest(ctx context.Context, req entity.PromptRequest) error {
	if req == nil {
		return errors.New("prompt request cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prompt != nil {
		return ErrPromptRequestPending
	}

	logging.FromContext(ctx).Debug().
		Str("request_id", req.RequestID()).
		Str("kind", entity.PromptKind(req)).
		Msg("prompt request published")

	s.prompt = req
	s.emitLocked()
	return nil
}

// PromptRequest returns the live pending request, or nil.
func (s *Store) PromptRequest() entity.PromptRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// ConsumePromptRequest clears the pending request.
func (s *Store) ConsumePromptRequest(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prompt != nil {
		logging.FromContext(ctx).Debug().
			Str("request_id", s.prompt.RequestID()).
			Msg("prompt request consumed")
	}

	s.prompt = nil
	s.emitLocked()
}

// UpsertExtension records an extension. Subscribers are notified even though the
// prompt slot did not change.
func (s *Store) UpsertExtension(ext entity.Extension) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.extensions[ext.ID] = ext
	s.emitLocked()
}

// Extensions returns the known extensions sorted by id.
func (s *Store) Extensions() []entity.Extension {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Extension, 0, len(s.extensions))
	for _, ext := range s.extensions {
		out = append(out, ext)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Subscribe implements port.ExtensionPromptStore.
func (s *Store) Subscribe(ctx context.Context) <-chan entity.PromptRequest {
	sub := newSubscription()
	out := make(chan entity.PromptRequest)

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	sub.push(s.prompt)
	s.mu.Unlock()

	go func() {
		defer close(out)
		defer s.unsubscribe(sub)

		for {
			req, ok := sub.pop()
			if !ok {
				select {
				case <-ctx.Done():
					return
				case <-sub.notify:
					continue
				}
			}

			select {
			case out <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// WaitIdle blocks until no prompt request is pending.
func (s *Store) WaitIdle(ctx context.Context) error {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for req := range s.Subscribe(subCtx) {
		if req == nil {
			return nil
		}
	}
	return ctx.Err()
}

func (s *Store) unsubscribe(sub *subscription) {
	s.mu.Lock()
	delete(s.subs, sub)
	s.mu.Unlock()
}

func (s *Store) emitLocked() {
	for sub := range s.subs {
		sub.push(s.prompt)
	}
}

// subscription is an unbounded mailbox so publishers never block on readers.
type subscription struct {
	mu     sync.Mutex
	queue  []entity.PromptRequest
	notify chan struct{}
}

func newSubscription() *subscription {
	return &subscription{notify: make(chan struct{}, 1)}
}

func (s *subscription) push(req entity.PromptRequest) {
	s.mu.Lock()
	s.queue = append(s.queue, req)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscription) pop() (entity.PromptRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil, false
	}
	req := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return req, true
}

var _ port.ExtensionPromptStore = (*Store)(nil)
