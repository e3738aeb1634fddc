package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventAccountRegistered, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.AccountID)
		return nil
	})
	d.Subscribe(EventAccountRegistered, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.AccountID)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventAccountRegistered, AccountID: "acct-1"}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(calls) != 2 || calls[0] != "first:acct-1" || calls[1] != "second:acct-1" {
		t.Fatalf("unexpected calls: %v", calls)
	}
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	d.Subscribe(EventLoginSucceeded, func(context.Context, Event) error {
		return errors.New("boom")
	})
	reached := false
	d.Subscribe(EventLoginSucceeded, func(context.Context, Event) error {
		reached = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventLoginSucceeded}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if !reached {
		t.Fatal("later handler skipped after earlier failure")
	}
}

func TestDispatcher_PublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventAccountRegistered}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
}
