package loader

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type RequestId string

// Request is the handle for one load attempt. Cancelling stops callback
// delivery and aborts an in-flight HTTP fetch through its context; work
// already running is otherwise left to finish and its result dropped.
type Request struct {
	id     RequestId
	ctx    context.Context
	cancel context.CancelFunc

	mux       sync.Mutex
	cancelled bool
	delivered bool
}

func newRequest() *Request {
	ctx, cancel := context.WithCancel(context.Background())
	return &Request{
		id:     RequestId(uuid.New().String()),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Request) Id() RequestId {
	return s.id
}

func (s *Request) Context() context.Context {
	return s.ctx
}

func (s *Request) Cancel() {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.cancelled = true
	s.cancel()
}

func (s *Request) IsCancelled() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.cancelled
}

// markDelivered claims the single callback slot. False means the
// request was cancelled or a callback already fired.
func (s *Request) markDelivered() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.cancelled || s.delivered {
		return false
	}
	s.delivered = true
	return true
}
