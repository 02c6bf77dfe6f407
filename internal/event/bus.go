package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Handler reacts to one event. Returning an error marks the delivery as
// failed; the remaining handlers still run.
type Handler func(ctx context.Context, e Event) error

// Bus fans events out to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, e Event) error
	Subscribe(t Type, h Handler)
}

// MemoryBus delivers synchronously, in subscription order
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Subscribe appends h to the handlers for t
func (b *MemoryBus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	b.handlers[t] = append(b.handlers[t], h)
	b.mu.Unlock()
}

// Publish runs every handler for e.Type and joins their errors. A panicking
// handler is reported as an error instead of taking the publisher down.
func (b *MemoryBus) Publish(ctx context.Context, e Event) error {
	b.mu.RLock()
	handlers := b.handlers[e.Type]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := deliver(ctx, h, e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgHandlersFailed, len(errs), e.Type, errors.Join(errs...))
}

func deliver(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(ErrMsgHandlerPanicked, e.Type, r)
		}
	}()
	return h(ctx, e)
}
