package event

import (
	"sync"
	"testing"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(TopicCompositionCommit, func(ev Event) {
		got = append(got, ev.Payload.(string))
	})

	n := bus.Publish(New(TopicCompositionCommit, "việt", "test"))
	if n != 1 {
		t.Errorf("Publish() = %d handlers, want 1", n)
	}
	if len(got) != 1 || got[0] != "việt" {
		t.Errorf("handler received %v, want [việt]", got)
	}
}

func TestBusTopicIsolation(t *testing.T) {
	bus := NewBus()

	commits := 0
	resets := 0
	bus.Subscribe(TopicCompositionCommit, func(Event) { commits++ })
	bus.Subscribe(TopicCompositionReset, func(Event) { resets++ })

	bus.Publish(New(TopicCompositionCommit, "nam", "test"))
	if commits != 1 || resets != 0 {
		t.Errorf("commits = %d, resets = %d; want 1, 0", commits, resets)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub := bus.Subscribe(TopicCompositionReset, func(Event) { calls++ })

	if !bus.Unsubscribe(sub) {
		t.Error("Unsubscribe() = false for active subscription")
	}
	if bus.Unsubscribe(sub) {
		t.Error("Unsubscribe() = true for removed subscription")
	}
	if bus.Unsubscribe(nil) {
		t.Error("Unsubscribe(nil) = true")
	}

	bus.Publish(New(TopicCompositionReset, nil, "test"))
	if calls != 0 {
		t.Errorf("handler called %d times after unsubscribe", calls)
	}
	if bus.SubscriberCount(TopicCompositionReset) != 0 {
		t.Errorf("SubscriberCount = %d, want 0", bus.SubscriberCount(TopicCompositionReset))
	}
}

func TestBusDeliveryOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(TopicCompositionCommit, func(Event) {
			order = append(order, i)
		})
	}

	bus.Publish(New(TopicCompositionCommit, "", "test"))
	for i, v := range order {
		if v != i {
			t.Fatalf("delivery order = %v, want subscription order", order)
		}
	}
}

func TestBusNoSubscribers(t *testing.T) {
	bus := NewBus()
	if n := bus.Publish(New(TopicCompositionCommit, "x", "test")); n != 0 {
		t.Errorf("Publish() = %d, want 0", n)
	}
}

func TestEventMetadata(t *testing.T) {
	a := New(TopicCompositionCommit, "a", "engine")
	b := New(TopicCompositionCommit, "b", "engine")
	if a.Metadata.ID == "" || a.Metadata.ID == b.Metadata.ID {
		t.Errorf("event IDs not unique: %q vs %q", a.Metadata.ID, b.Metadata.ID)
	}
	if a.Metadata.Source != "engine" {
		t.Errorf("Source = %q, want %q", a.Metadata.Source, "engine")
	}
	if a.Metadata.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestBusConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	calls := 0
	bus.Subscribe(TopicCompositionCommit, func(Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(New(TopicCompositionCommit, "w", "test"))
		}()
	}
	wg.Wait()

	if calls != 10 {
		t.Errorf("handler called %d times, want 10", calls)
	}
}
