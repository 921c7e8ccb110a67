package events

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
)

// The gochannel pub/sub is non-persistent: an event published while no
// subscriber is attached is dropped. Startup must therefore wait on
// Running() before exposing anything that publishes.
func TestRouterRunningGatesDelivery(t *testing.T) {
	logger := watermill.NopLogger{}
	pubSub := NewPubSub(logger)
	defer pubSub.Close()

	bus, err := NewEventBus(pubSub, logger)
	if err != nil {
		t.Fatalf("NewEventBus: %v", err)
	}

	received := make(chan uint, 2)
	handler := cqrs.NewEventHandler("record-booking-created", func(ctx context.Context, e *BookingCreated) error {
		received <- e.BookingID
		return nil
	})

	router, err := NewRouter(pubSub, logger, handler)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	// No subscriber is attached yet, so this event goes nowhere.
	if err := bus.Publish(context.Background(), &BookingCreated{Header: NewHeader(), BookingID: 1, Table: "bookings"}); err != nil {
		t.Fatalf("Publish before run: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = router.Run(ctx)
	}()
	<-router.Running()

	if err := bus.Publish(ctx, &BookingCreated{Header: NewHeader(), BookingID: 2, Table: "bookings"}); err != nil {
		t.Fatalf("Publish after run: %v", err)
	}

	select {
	case id := <-received:
		if id != 2 {
			t.Fatalf("delivered booking id = %d, want 2", id)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("event published after Running() was not delivered")
	}

	select {
	case id := <-received:
		t.Fatalf("unexpected extra delivery for booking id %d", id)
	case <-time.After(200 * time.Millisecond):
	}
}
