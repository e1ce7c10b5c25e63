package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChangeEventType is the Donburi event type for easel change events.
var ChangeEventType = events.NewEventType[easel.ChangeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Change
// events are published to ChangeEventType and delivered when the world
// calls ProcessEvents.
func NewDonburiStore(world donburi.World) easel.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event easel.ChangeEvent) {
	ChangeEventType.Publish(s.world, event)
}
