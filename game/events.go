package game

import "retro-snake/game/types"

type EventType int

const (
	EventRoundStarted EventType = iota
	EventFoodEaten
	EventSpeedUp
	EventCollided
	EventBoardFull
)

func (t EventType) String() string {
	switch t {
	case EventRoundStarted:
		return "round started"
	case EventFoodEaten:
		return "food eaten"
	case EventSpeedUp:
		return "speed up"
	case EventCollided:
		return "collided"
	case EventBoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

type Event struct {
	Type  EventType
	Round string
	Score int
	Head  types.Point
	Cause string // set for EventCollided and EventBoardFull
}

// EventSink receives game events synchronously, in tick order.
type EventSink interface {
	Notify(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

func (f EventSinkFunc) Notify(e Event) {
	f(e)
}

// EventSinks fans an event out to every sink.
type EventSinks []EventSink

func (s EventSinks) Notify(e Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Notify(e)
		}
	}
}
