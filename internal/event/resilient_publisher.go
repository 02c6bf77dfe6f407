package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GreenMap_Go/internal/logger"
)

type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter
// file. Publishing never fails the caller once the event is accepted.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	onFailure func(Type)
}

// NewResilientPublisher starts the retry worker.
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		stop:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// OnPublishFailure registers fn to run after every failed delivery attempt.
// Call it before the first Publish.
func (p *ResilientPublisher) OnPublishFailure(fn func(Type)) {
	p.onFailure = fn
}

func (p *ResilientPublisher) failed(t Type) {
	if p.onFailure != nil {
		p.onFailure(t)
	}
}

// Publish implements Bus.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry tries once inline and queues the event for retry on failure.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}
	p.failed(event.Type)

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	select {
	case p.queue <- retryItem{event: event, attempts: 1, lastErr: err}:
	default:
		logger.FromContext(ctx).Error(LogMsgRetryQueueFull, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	for item.attempts <= p.maxRetries {
		select {
		case <-p.stop:
			p.writeDeadLetter(item.event, item.attempts, item.lastErr)
			return
		case <-time.After(CalculateRetryDelay(p.baseDelay, item.attempts)):
		}

		err := p.inner.Publish(context.Background(), item.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempts)
			return
		}
		p.failed(item.event.Type)
		item.attempts++
		item.lastErr = err
		logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempts, "error", err)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempts)
	p.writeDeadLetter(item.event, item.attempts, item.lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, err error) {
	if werr := p.deadLetter.Write(event, attempts, err); werr != nil {
		logger.Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", werr)
	}
}

// Shutdown stops the worker, dead-letters anything still queued and closes the file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	drained := 0
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item.event, item.attempts, item.lastErr)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return p.deadLetter.Close()
		}
	}
}
