package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Stockpile_Go/internal/logger"
)

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher publishes through a Bus and retries failed deliveries in
// the background with exponential backoff. Events that still fail are written
// to a dead-letter file. Callers are never blocked by retries.
type ResilientPublisher struct {
	bus        Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewResilientPublisher starts the retry worker
func NewResilientPublisher(bus Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.worker()
	return p, nil
}

// PublishWithRetry publishes the event, queuing it for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)

	item := retryItem{event: evt, attempt: 1, lastErr: err}
	select {
	case <-p.shutdown:
		log.Warn(LogMsgEventDroppedShutdown, "event_type", evt.Type)
		p.writeDeadLetter(item)
	case p.queue <- item:
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", evt.Type)
		p.writeDeadLetter(item)
	}
}

// Publish lets the publisher stand in for a Bus; it never returns an error
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the wrapped bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the worker, dead-letters anything still queued and closes the file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
	return p.deadLetter.Close()
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.shutdown:
			p.drain()
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	log := logger.FromContext(context.Background())

	for item.attempt <= p.maxRetries {
		select {
		case <-time.After(CalculateRetryDelay(p.baseDelay, item.attempt)):
		case <-p.shutdown:
			log.Warn(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
			p.writeDeadLetter(item)
			return
		}

		err := p.bus.Publish(context.Background(), item.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
			return
		}
		item.attempt++
		item.lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
	p.writeDeadLetter(item)
}

func (p *ResilientPublisher) drain() {
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item)
		default:
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}
