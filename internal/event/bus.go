package event

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic names an event stream.
type Topic string

const (
	// TopicCompositionCommit fires when a composed word is committed
	// by a word boundary. The payload is the committed word.
	TopicCompositionCommit Topic = "composition.commit"

	// TopicCompositionReset fires when the composition is discarded
	// without committing (navigation key, config reload).
	TopicCompositionReset Topic = "composition.reset"
)

// Metadata is standard information attached to every event.
type Metadata struct {
	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was published.
	Timestamp time.Time

	// Source identifies the publishing component.
	Source string
}

// Event is a published notification.
type Event struct {
	// Topic is the event stream this belongs to.
	Topic Topic

	// Payload is the event-specific data.
	Payload any

	// Metadata is the standard event information.
	Metadata Metadata
}

// New creates an event with fresh metadata.
func New(topic Topic, payload any, source string) Event {
	return Event{
		Topic:   topic,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.New().String(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// Handler receives published events.
type Handler func(Event)

// Subscription represents an active topic subscription.
type Subscription struct {
	id      string
	topic   Topic
	handler Handler
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Topic returns the subscribed topic.
func (s *Subscription) Topic() Topic {
	return s.topic
}

// Bus routes events from publishers to topic subscribers. It is safe
// for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]*Subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]*Subscription)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, h Handler) *Subscription {
	sub := &Subscription{
		id:      uuid.New().String(),
		topic:   topic,
		handler: h,
	}
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscription. It returns false if the
// subscription was not found (already removed).
func (b *Bus) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[sub.topic]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.topic] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers an event to every subscriber of its topic, in
// subscription order, and returns the number of handlers invoked.
func (b *Bus) Publish(ev Event) int {
	b.mu.RLock()
	list := make([]*Subscription, len(b.subs[ev.Topic]))
	copy(list, b.subs[ev.Topic])
	b.mu.RUnlock()

	for _, s := range list {
		s.handler(ev)
	}
	return len(list)
}

// SubscriberCount returns the number of active subscriptions for a
// topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
