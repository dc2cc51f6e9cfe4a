// Package ecs provides ECS adapters for tween.
//
// [NewComponentTarget] exposes a component of a [Donburi] entity as a
// tween.Tweenable, and [NewEventCallback] forwards timeline events into the
// world as typed events. Subscribe to [EventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	pos := ecs.NewComponentTarget(world, e, Position, ecs.Channels[PositionData]{
//		Get: func(p *PositionData, _ int, dst []float64) int { dst[0], dst[1] = p.X, p.Y; return 2 },
//		Set: func(p *PositionData, _ int, v []float64) { p.X, p.Y = v[0], v[1] },
//	})
//	m.Add(tween.To(pos, 0, time.Second, tween.QuadOut).Target(100, 50).
//		AddCallback(tween.EventComplete, ecs.NewEventCallback(world, e)))
//
//	// every frame
//	ecs.Step(m, dt)
//	ecs.EventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
