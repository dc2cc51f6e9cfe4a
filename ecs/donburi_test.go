package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
)

type positionData struct {
	X, Y  float64
	Alpha float64
}

var position = donburi.NewComponentType[positionData]()

const (
	chPos = iota
	chAlpha
)

var positionChannels = Channels[positionData]{
	Get: func(p *positionData, ch int, dst []float64) int {
		switch ch {
		case chPos:
			dst[0], dst[1] = p.X, p.Y
			return 2
		case chAlpha:
			dst[0] = p.Alpha
			return 1
		}
		return 0
	},
	Set: func(p *positionData, ch int, v []float64) {
		switch ch {
		case chPos:
			p.X, p.Y = v[0], v[1]
		case chAlpha:
			p.Alpha = v[0]
		}
	},
}

func newEntity(t *testing.T, world donburi.World, x, y float64) donburi.Entity {
	t.Helper()
	e := world.Create(position)
	position.SetValue(world.Entry(e), positionData{X: x, Y: y, Alpha: 1})
	return e
}

func TestComponentTargetAnimates(t *testing.T) {
	world := donburi.NewWorld()
	e := newEntity(t, world, 10, 20)
	target := NewComponentTarget(world, e, position, positionChannels)

	m := tween.NewManager(tween.ManagerConfig{})
	if err := m.Add(tween.To(target, chPos, time.Second, tween.Linear).Target(20, 40)); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateDuration(500 * time.Millisecond); err != nil {
		t.Fatal(err)
	}

	p := position.Get(world.Entry(e))
	if p.X != 15 || p.Y != 30 {
		t.Errorf("position = (%v, %v), want (15, 30)", p.X, p.Y)
	}
	if p.Alpha != 1 {
		t.Errorf("untouched channel changed: alpha = %v", p.Alpha)
	}
}

func TestComponentTargetValid(t *testing.T) {
	world := donburi.NewWorld()
	e := newEntity(t, world, 0, 0)
	target := NewComponentTarget(world, e, position, positionChannels)

	if !target.Valid() {
		t.Fatal("target invalid before removal")
	}
	if target.Entity() != e {
		t.Errorf("Entity = %v, want %v", target.Entity(), e)
	}
	world.Remove(e)
	if target.Valid() {
		t.Error("target valid after entity removal")
	}

	var buf [tween.MaxValues]float64
	if n := target.TweenValues(chPos, buf[:]); n != 0 {
		t.Errorf("TweenValues on removed entity = %d, want 0", n)
	}
	target.SetTweenValues(chPos, []float64{1, 2}) // must not panic
}

func TestStepPrunesRemovedEntities(t *testing.T) {
	world := donburi.NewWorld()
	gone := newEntity(t, world, 0, 0)
	kept := newEntity(t, world, 0, 0)

	m := tween.NewManager(tween.ManagerConfig{})
	for _, e := range []donburi.Entity{gone, kept} {
		target := NewComponentTarget(world, e, position, positionChannels)
		if err := m.Add(tween.To(target, chAlpha, time.Second, tween.Linear).Target(0)); err != nil {
			t.Fatal(err)
		}
	}
	if err := Step(m, 0.25); err != nil {
		t.Fatal(err)
	}

	world.Remove(gone)
	if err := Step(m, 0.25); err != nil {
		t.Fatal(err)
	}
	if m.RootCount() != 1 {
		t.Errorf("RootCount = %d, want 1", m.RootCount())
	}
	if a := position.Get(world.Entry(kept)).Alpha; a != 0.5 {
		t.Errorf("kept alpha = %v, want 0.5", a)
	}
}

func TestKillEntity(t *testing.T) {
	world := donburi.NewWorld()
	a := newEntity(t, world, 0, 0)
	b := newEntity(t, world, 0, 0)

	m := tween.NewManager(tween.ManagerConfig{})
	ta := tween.To(NewComponentTarget(world, a, position, positionChannels), chPos, time.Second, tween.Linear).Target(1, 1)
	tb := tween.To(NewComponentTarget(world, b, position, positionChannels), chPos, time.Second, tween.Linear).Target(1, 1)
	if err := m.Add(tween.Parallel(ta, tb)); err != nil {
		t.Fatal(err)
	}

	KillEntity(m, a)
	if ta.State() != tween.StateKilled {
		t.Errorf("a state = %v, want KILLED", ta.State())
	}
	if tb.State() == tween.StateKilled {
		t.Error("b killed with a")
	}
}

func TestEventCallbackPublishes(t *testing.T) {
	world := donburi.NewWorld()
	e := newEntity(t, world, 0, 0)
	target := NewComponentTarget(world, e, position, positionChannels)

	var received []Event
	EventType.Subscribe(world, func(w donburi.World, ev Event) {
		received = append(received, ev)
	})

	m := tween.NewManager(tween.ManagerConfig{})
	tl := tween.To(target, chAlpha, 100*time.Millisecond, tween.Linear).Target(0).
		AddCallback(tween.EventBegin|tween.EventComplete, NewEventCallback(world, e))
	if err := m.Add(tl); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateDuration(100 * time.Millisecond); err != nil {
		t.Fatal(err)
	}

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	// Events are queued; process them.
	EventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != tween.EventBegin || received[1].Kind != tween.EventComplete {
		t.Errorf("kinds = (%v, %v), want (BEGIN, COMPLETE)", received[0].Kind, received[1].Kind)
	}
	if received[1].Entity != e {
		t.Errorf("entity = %v, want %v", received[1].Entity, e)
	}
	if received[1].Timeline != tween.Timeline(tl) {
		t.Error("event carries the wrong timeline")
	}
}
