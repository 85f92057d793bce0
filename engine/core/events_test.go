package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSystemDispatchesInOrder(t *testing.T) {
	es := NewEventSystem(8)
	got := make(chan int, 8)
	es.Register(EVENT_CODE_CONFIG_RELOADED, func(e EventContext) {
		got <- e.Data.(int)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go es.Process(ctx)

	for i := 0; i < 3; i++ {
		require.NoError(t, es.Fire(ctx, EventContext{Type: EVENT_CODE_CONFIG_RELOADED, Data: i}))
	}
	// no listener, dropped
	require.NoError(t, es.Fire(ctx, EventContext{Type: MAX_EVENT_CODE}))

	for want := 0; want < 3; want++ {
		select {
		case v := <-got:
			assert.Equal(t, want, v)
		case <-time.After(time.Second):
			t.Fatalf("event %d not dispatched", want)
		}
	}
}

func TestEventSystemShutdown(t *testing.T) {
	es := NewEventSystem(1)
	require.NoError(t, es.Shutdown())
	assert.ErrorIs(t, es.Shutdown(), ErrEventSystemClosed)

	err := es.Fire(context.Background(), EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
	assert.ErrorIs(t, err, ErrEventSystemClosed)

	done := make(chan struct{})
	go func() {
		es.Process(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Process did not return after Shutdown")
	}
}

func TestEventFireRespectsContext(t *testing.T) {
	es := NewEventSystem(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := es.Fire(ctx, EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
	assert.ErrorIs(t, err, context.Canceled)
}
