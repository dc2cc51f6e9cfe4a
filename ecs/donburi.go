package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Channels maps tween channels onto the fields of a component value.
type Channels[T any] struct {
	// Get copies the values of channel into dst and returns their count.
	Get func(c *T, channel int, dst []float64) int
	// Set writes values to channel.
	Set func(c *T, channel int, values []float64)
}

// ComponentTarget is a tween.Tweenable over one component of one entity.
// Reads and writes resolve the entity on every call, so a target never keeps
// a component alive. Once the entity is removed or loses the component, reads
// report zero values and writes are dropped; call PruneInvalid (or Step) to
// kill the tweens left pointing at it before they fail activation.
type ComponentTarget[T any] struct {
	world    donburi.World
	entity   donburi.Entity
	ctype    *donburi.ComponentType[T]
	channels Channels[T]
}

// NewComponentTarget creates a target animating ctype on entity.
func NewComponentTarget[T any](world donburi.World, entity donburi.Entity, ctype *donburi.ComponentType[T], ch Channels[T]) *ComponentTarget[T] {
	return &ComponentTarget[T]{world: world, entity: entity, ctype: ctype, channels: ch}
}

// Entity returns the animated entity.
func (c *ComponentTarget[T]) Entity() donburi.Entity { return c.entity }

// Valid reports whether the entity still exists and has the component.
func (c *ComponentTarget[T]) Valid() bool {
	if !c.world.Valid(c.entity) {
		return false
	}
	return c.world.Entry(c.entity).HasComponent(c.ctype)
}

func (c *ComponentTarget[T]) component() *T {
	if !c.Valid() {
		return nil
	}
	return c.ctype.Get(c.world.Entry(c.entity))
}

// TweenValues implements tween.Tweenable.
func (c *ComponentTarget[T]) TweenValues(channel int, dst []float64) int {
	v := c.component()
	if v == nil || c.channels.Get == nil {
		return 0
	}
	return c.channels.Get(v, channel, dst)
}

// SetTweenValues implements tween.Tweenable.
func (c *ComponentTarget[T]) SetTweenValues(channel int, values []float64) {
	v := c.component()
	if v == nil || c.channels.Set == nil {
		return
	}
	c.channels.Set(v, channel, values)
}

// entityTarget is satisfied by every ComponentTarget instantiation.
type entityTarget interface {
	Valid() bool
}

// PruneInvalid kills every leaf of m whose ComponentTarget lost its entity
// or component.
func PruneInvalid(m *tween.Manager) {
	m.KillFunc(func(tw *tween.Tween) bool {
		et, ok := tw.Tweenable().(entityTarget)
		return ok && !et.Valid()
	})
}

// KillEntity kills every leaf of m animating a component of entity.
func KillEntity(m *tween.Manager, entity donburi.Entity) {
	m.KillFunc(func(tw *tween.Tween) bool {
		et, ok := tw.Tweenable().(interface{ Entity() donburi.Entity })
		return ok && et.Entity() == entity
	})
}

// Step prunes invalid targets, then advances m by dt seconds. Use it as the
// tween system of a Donburi update loop.
func Step(m *tween.Manager, dt float32) error {
	PruneInvalid(m)
	return m.Update(dt)
}

// --- Events ---

// Event is a timeline event published into a Donburi world.
type Event struct {
	Kind     tween.EventKind
	Timeline tween.Timeline
	// Entity is the entity the callback was created for; donburi.Null if
	// none.
	Entity donburi.Entity
}

// EventType is the Donburi event type for tween events. Subscribe to it in
// your ECS systems and drain it with ProcessEvents.
var EventType = events.NewEventType[Event]()

// NewEventCallback returns a tween.Callback publishing every event it
// receives to world, tagged with entity.
//
//	tl.AddCallback(tween.EventComplete, ecs.NewEventCallback(world, e))
func NewEventCallback(world donburi.World, entity donburi.Entity) tween.Callback {
	return func(kind tween.EventKind, tl tween.Timeline) {
		EventType.Publish(world, Event{Kind: kind, Timeline: tl, Entity: entity})
	}
}
