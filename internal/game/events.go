package game

import (
	"slices"
	"time"

	"github.com/lox/sevens/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart  EventType = "game_start"
	EventTypeCardPlayed EventType = "card_played"
	EventTypePass       EventType = "pass"
	EventTypeGameEnd    EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published once the cards have been dealt
type GameStartEvent struct {
	GameID    string
	Players   []string
	HandSizes []int
	Undealt   int
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// CardPlayedEvent is published after a card has been placed on the table
type CardPlayedEvent struct {
	GameID    string
	Player    int
	Name      string
	Card      deck.Card
	Turn      int
	HandSize  int // Cards left after the play
	Reasoning string
	timestamp time.Time
}

func (e CardPlayedEvent) EventType() EventType { return EventTypeCardPlayed }
func (e CardPlayedEvent) Timestamp() time.Time { return e.timestamp }

// PassEvent is published when a player passes. Forced is set when the player
// had no legal move.
type PassEvent struct {
	GameID    string
	Player    int
	Name      string
	Turn      int
	Passes    int // Consecutive passes after this one
	Forced    bool
	Reasoning string
	timestamp time.Time
}

func (e PassEvent) EventType() EventType { return EventTypePass }
func (e PassEvent) Timestamp() time.Time { return e.timestamp }

// GameEndEvent is published when the game reaches a terminal status
type GameEndEvent struct {
	GameID     string
	Status     Status
	WinnerName string
	HandSizes  []int
	Turns      int
	timestamp  time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the publishing goroutine, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers are not comparable and can't be removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(EventSubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = slices.Delete(bus.subscribers, i, i+1)
			return
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventRecorder keeps every event it receives. Useful in tests and for
// post-game summaries.
type EventRecorder struct {
	Events []GameEvent
}

// OnEvent records the event
func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events of a given type
func (r *EventRecorder) OfType(t EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.Events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}
