package event

import (
	"context"
	"sync"
	"time"

	"github.com/sharonsgarden/garden-api/internal/logger"
)

// retryItem is an event waiting for another publish attempt
type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps an event Bus with bounded retries and a dead-letter
// file. PublishWithRetry never blocks the caller on a failing bus: the event is
// queued and retried by a background worker with exponential backoff, and an
// event that exhausts its retries is appended to the dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry attempts a synchronous publish, falling back to the retry
// queue on failure. It never returns an error to the caller: bloom/badge side
// effects must not unwind a committed growth transaction.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	select {
	case p.queue <- retryItem{event: event, attempts: 1, lastErr: err}:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown drains the retry queue to the dead-letter file and stops the worker.
// Events still pending are preserved on disk rather than silently dropped.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() {
		close(p.shutdown)
	})

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

	// Drain anything the worker did not get to
	for {
		select {
		case item := <-p.queue:
			logger.Info(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
			p.writeDeadLetter(item.event, item.attempts, item.lastErr)
		default:
			return p.deadLetter.Close()
		}
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			return
		case item := <-p.queue:
			p.processRetry(item)
		}
	}
}

func (p *ResilientPublisher) processRetry(item retryItem) {
	delay := CalculateRetryDelay(p.retryDelay, item.attempts)

	select {
	case <-p.shutdown:
		p.writeDeadLetter(item.event, item.attempts, item.lastErr)
		return
	case <-time.After(delay):
	}

	// Detached context: the originating request is long gone
	err := p.inner.Publish(context.Background(), item.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempts)
		return
	}

	item.attempts++
	item.lastErr = err

	if item.attempts > p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempts)
		p.writeDeadLetter(item.event, item.attempts, err)
		return
	}

	logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempts, "error", err)

	select {
	case p.queue <- item:
	default:
		p.writeDeadLetter(item.event, item.attempts, err)
	}
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err, "event_type", event.Type)
	}
}
