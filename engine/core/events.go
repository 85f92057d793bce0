package core

import (
	"context"
	"sync"
)

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// The configuration file changed on disk and was parsed successfully.
	/* Context usage:
	 * cfg := context.Data.(*config.Config)
	 */
	EVENT_CODE_CONFIG_RELOADED SystemEventCode = 0x02

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

type EventContext struct {
	Type SystemEventCode
	Data interface{}
}

type FnOnEvent func(context EventContext)

// EventSystem queues fired events and dispatches them, in order, from the
// goroutine running Process.
type EventSystem struct {
	mutex      sync.RWMutex
	registered map[SystemEventCode][]FnOnEvent

	queue    chan EventContext
	done     chan struct{}
	isClosed bool
}

func NewEventSystem(queueSize int) *EventSystem {
	return &EventSystem{
		registered: make(map[SystemEventCode][]FnOnEvent),
		queue:      make(chan EventContext, queueSize),
		done:       make(chan struct{}),
	}
}

/**
 * Register to listen for when events are sent with the provided code.
 * @param code The event code to listen for.
 * @param onEvent The callback invoked when the event code is fired.
 */
func (es *EventSystem) Register(code SystemEventCode, onEvent FnOnEvent) {
	es.mutex.Lock()
	defer es.mutex.Unlock()
	es.registered[code] = append(es.registered[code], onEvent)
}

/**
 * Fires an event to listeners of the given code. Blocks while the queue is
 * full.
 * @returns ErrEventSystemClosed once the system has been shut down.
 */
func (es *EventSystem) Fire(ctx context.Context, event EventContext) error {
	select {
	case <-es.done:
		return ErrEventSystemClosed
	default:
	}
	select {
	case es.queue <- event:
		return nil
	case <-es.done:
		return ErrEventSystemClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Process dispatches queued events until ctx is cancelled or the system is
// shut down.
func (es *EventSystem) Process(ctx context.Context) {
	for {
		select {
		case e := <-es.queue:
			es.dispatch(e)
		case <-ctx.Done():
			return
		case <-es.done:
			return
		}
	}
}

func (es *EventSystem) dispatch(e EventContext) {
	es.mutex.RLock()
	listeners := es.registered[e.Type]
	es.mutex.RUnlock()

	if len(listeners) == 0 {
		LogDebug("no listener for event code %d", e.Type)
		return
	}
	for _, fn := range listeners {
		fn(e)
	}
}

func (es *EventSystem) Shutdown() error {
	es.mutex.Lock()
	defer es.mutex.Unlock()
	if es.isClosed {
		return ErrEventSystemClosed
	}
	es.isClosed = true
	close(es.done)
	es.registered = make(map[SystemEventCode][]FnOnEvent)
	return nil
}
