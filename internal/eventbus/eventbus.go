package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"

	"pickwise/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectedValuesChanged = domain.EventSelectedValuesChanged
	EventSelectedItemsChanged  = domain.EventSelectedItemsChanged
	EventSelectedItemChanged   = domain.EventSelectedItemChanged
	EventMultiChanged          = domain.EventMultiChanged
	EventEntriesLoaded         = domain.EventEntriesLoaded
	EventError                 = domain.EventError
	EventConfigLoaded          = domain.EventConfigLoaded
	EventConfigSaved           = domain.EventConfigSaved
	EventConfigChanged         = domain.EventConfigChanged
)

// Re-export domain event types
type EntriesLoadedEvent = domain.EntriesLoadedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uuid.UUID
	handler EventHandler
}

// registry holds handlers per event type
type registry struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
}

func newRegistry() registry {
	return registry{handlers: make(map[EventType][]subscription)}
}

func (r *registry) subscribe(eventType EventType, handler EventHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.handlers[eventType] = append(r.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		subs := r.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				r.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// snapshot copies the handlers so none are called with the lock held
func (r *registry) snapshot(eventType EventType) []EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.handlers[eventType]
	handlers := make([]EventHandler, len(subs))
	for i, s := range subs {
		handlers[i] = s.handler
	}
	return handlers
}

// Bus is the asynchronous implementation of EventBus
type Bus struct {
	registry
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new asynchronous event bus. Handlers run on their own
// goroutine; Close stops the dispatcher.
func New() *Bus {
	b := &Bus{
		registry:  newRegistry(),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers
func (b *Bus) Publish(event DomainEvent) {
	log.Printf("EventBus: Publishing event %s", event.Type())

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	return b.subscribe(eventType, handler)
}

// Close stops the dispatcher, dropping queued events
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			for _, handler := range b.snapshot(event.Type()) {
				go func(h EventHandler) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
						}
					}()
					h(event)
				}(handler)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// SyncBus calls handlers inline, in subscription order, before Publish
// returns. Handlers may publish again.
type SyncBus struct {
	registry
}

// NewSync creates a synchronous event bus
func NewSync() *SyncBus {
	return &SyncBus{registry: newRegistry()}
}

// Publish delivers event to every subscriber
func (b *SyncBus) Publish(event DomainEvent) {
	for _, h := range b.snapshot(event.Type()) {
		h(event)
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *SyncBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return b.subscribe(eventType, handler)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
