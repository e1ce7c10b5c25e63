// Package ecs provides ECS adapters for easel's change notifications.
//
// The primary adapter is [NewDonburiStore], which forwards layer activation
// and tool selection changes into a [Donburi] world as typed events.
// Subscribe to [ChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	session.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
