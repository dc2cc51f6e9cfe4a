package tween

import (
	"errors"
	"fmt"
	"time"
)

// Mode says where a group entry sits on the group's local time line.
type Mode uint8

const (
	ModeSequential Mode = iota // starts when the previous sequential entry ends
	ModeParallel               // starts with the group
	ModeOffset                 // shifts the start of later sequential entries
)

// entry is one child of a group. start is derived by layout.
type entry struct {
	tl     Timeline
	mode   Mode
	offset time.Duration
	start  time.Duration
}

type offsetItem time.Duration

func (offsetItem) item() {}

// Offset returns a group item that moves the start of the following
// sequential entries by d. A negative d makes the next entry overlap the
// previous one; the running start is clamped at zero.
func Offset(d time.Duration) Item { return offsetItem(d) }

// Group composes timelines. Sequential entries play one after another,
// parallel entries start with the group, and offsets shift the sequential
// cursor. The group's duration is derived from its entries whenever entries
// are added and on Validate; it is never recomputed while ticking.
//
// A group may itself be delayed and repeated. Every repeat rewinds the whole
// subtree, so leaves capture their start vectors again.
type Group struct {
	timing

	entries []entry
	length  time.Duration // derived length of one iteration
}

func newGroup() *Group { return &Group{} }

// Sequence creates a group playing items one after another.
func Sequence(items ...Item) *Group {
	return newGroup().appendItems(ModeSequential, items)
}

// Parallel creates a group playing items together.
func Parallel(items ...Item) *Group {
	return newGroup().appendItems(ModeParallel, items)
}

func (g *Group) appendItems(mode Mode, items []Item) *Group {
	for _, it := range items {
		switch v := it.(type) {
		case offsetItem:
			g.Offset(time.Duration(v))
		case Timeline:
			g.add(v, mode)
		default:
			g.fail(ErrNilTimeline)
		}
	}
	return g
}

// --- Builders ---

// Push appends tl as a sequential entry.
func (g *Group) Push(tl Timeline) *Group {
	g.add(tl, ModeSequential)
	return g
}

// Join appends tl as a parallel entry starting with the group.
func (g *Group) Join(tl Timeline) *Group {
	g.add(tl, ModeParallel)
	return g
}

// Offset appends a signed time offset. Offsets only affect sequential
// entries that follow them.
func (g *Group) Offset(d time.Duration) *Group {
	g.entries = append(g.entries, entry{mode: ModeOffset, offset: d})
	g.layout()
	return g
}

// Delay sets the time waited before the first iteration.
func (g *Group) Delay(d time.Duration) *Group {
	g.setDelay(d)
	return g
}

// Repeat plays the whole group count more times, waiting delay between
// plays. RepeatInfinite repeats forever.
func (g *Group) Repeat(count int, delay time.Duration) *Group {
	g.setRepeat(count, delay, false)
	return g
}

// AddCallback registers fn for the events in mask. Groups fire EventBegin,
// EventStart, EventEnd and EventComplete.
func (g *Group) AddCallback(mask EventKind, fn Callback) *Group {
	g.addCallback(mask, fn)
	return g
}

func (g *Group) add(tl Timeline, mode Mode) {
	if isNilTimeline(tl) {
		g.fail(ErrNilTimeline)
		return
	}
	if Timeline(g) == tl || tl.isAttached() {
		g.fail(ErrAttached)
		return
	}
	tl.setAttached(true)
	g.entries = append(g.entries, entry{tl: tl, mode: mode})
	g.layout()
}

// layout derives entry start times and the iteration length.
func (g *Group) layout() {
	var cursor, end time.Duration
	for i := range g.entries {
		e := &g.entries[i]
		switch e.mode {
		case ModeOffset:
			cursor = max(addDuration(cursor, e.offset), 0)
		case ModeParallel:
			e.start = 0
			end = max(end, e.tl.Duration())
		case ModeSequential:
			e.start = cursor
			cursor = addDuration(cursor, e.tl.Duration())
			end = max(end, cursor)
		}
	}
	g.length = max(cursor, end)
}

// --- Accessors ---

// Len returns the number of entries, offsets included.
func (g *Group) Len() int { return len(g.entries) }

// At returns the timeline of entry i; nil for offsets.
func (g *Group) At(i int) Timeline { return g.entries[i].tl }

// StartOf returns the group-local start time of entry i.
func (g *Group) StartOf(i int) time.Duration { return g.entries[i].start }

// Period returns the length of one iteration.
func (g *Group) Period() time.Duration { return g.length }

// Duration returns the full span including delay and repeats.
func (g *Group) Duration() time.Duration { return g.span(g.length) }

// --- Lifecycle ---

// Kill stops the group and every descendant.
func (g *Group) Kill() {
	g.kill()
	for _, e := range g.entries {
		if e.tl != nil {
			e.tl.Kill()
		}
	}
}

// KillTarget kills every descendant leaf animating target. The group is
// killed too once none of its leaves is left alive.
func (g *Group) KillTarget(target Tweenable) {
	if target != nil {
		g.killMatching(func(t *Tween) bool { return t.target == target })
	}
}

// KillFunc kills every descendant leaf for which match reports true.
func (g *Group) KillFunc(match func(*Tween) bool) { g.killMatching(match) }

// Update advances a standalone group by dt seconds.
func (g *Group) Update(dt float32) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}
	if g.attached {
		return ErrAttached
	}
	if g.state == StatePending && !g.began {
		if err := g.Validate(); err != nil {
			return err
		}
	}
	return g.advance(seconds(dt))
}

// Validate checks the subtree and recomputes every derived span bottom-up.
func (g *Group) Validate() error {
	if err := g.validate(); err != nil {
		return err
	}
	for _, e := range g.entries {
		if e.tl == nil {
			continue
		}
		if err := e.tl.Validate(); err != nil {
			return err
		}
	}
	g.layout()
	return g.checkPeriod(g.length)
}

func (g *Group) advance(dt time.Duration) error {
	if g.pooled {
		return ErrReleased
	}
	return g.run(g, g, dt)
}

func (g *Group) period() time.Duration { return g.length }

func (g *Group) activate(first bool) error {
	if !first {
		for _, e := range g.entries {
			if e.tl != nil {
				e.tl.rewind()
			}
		}
	}
	return nil
}

// step hands each child the part of (t0, t1] that lies after its start, in
// entry order, so children that start mid-window receive the overflow. A
// failing child does not stop its later siblings.
func (g *Group) step(t0, t1 time.Duration, _ bool) error {
	var errs []error
	for i := range g.entries {
		e := &g.entries[i]
		if e.tl == nil || t1 < e.start {
			continue
		}
		delta := t1 - e.start
		if t0 > e.start {
			delta -= t0 - e.start
		}
		if err := e.tl.advance(delta); err != nil {
			errs = append(errs, err)
		}
		if g.state == StateKilled {
			break
		}
	}
	return errors.Join(errs...)
}

func (g *Group) rewind() {
	g.rewindClock()
	for _, e := range g.entries {
		if e.tl != nil {
			e.tl.rewind()
		}
	}
}

func (g *Group) liveLeaves() int {
	if g.state.Terminal() {
		return 0
	}
	n := 0
	for _, e := range g.entries {
		if e.tl != nil {
			n += e.tl.liveLeaves()
		}
	}
	return n
}

func (g *Group) killMatching(match func(*Tween) bool) bool {
	if g.state == StateKilled {
		return true
	}
	leaves, killed := 0, 0
	for _, e := range g.entries {
		if e.tl == nil || leafless(e.tl) {
			continue
		}
		leaves++
		if e.tl.killMatching(match) {
			killed++
		}
	}
	if leaves > 0 && killed == leaves {
		g.kill()
	}
	return g.state == StateKilled
}

// leafless reports whether tl contains no leaf at all, like an empty group.
func leafless(tl Timeline) bool {
	if g, ok := tl.(*Group); ok {
		for _, e := range g.entries {
			if e.tl != nil && !leafless(e.tl) {
				return false
			}
		}
		return true
	}
	return false
}

func (g *Group) eachLeaf(fn func(*Tween)) {
	for _, e := range g.entries {
		if e.tl != nil {
			e.tl.eachLeaf(fn)
		}
	}
}

func (g *Group) releaseTo(m *Manager) error {
	var errs []error
	for _, e := range g.entries {
		if e.tl == nil {
			continue
		}
		e.tl.setAttached(false)
		if err := e.tl.releaseTo(m); err != nil {
			errs = append(errs, err)
		}
	}
	if err := m.groups.Release(g); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (g *Group) isNil() bool { return g == nil }

func (g *Group) depth() int {
	d := 0
	for _, e := range g.entries {
		if e.tl != nil {
			d = max(d, e.tl.depth())
		}
	}
	return d + 1
}

// reset empties the group for reuse.
func (g *Group) reset() {
	g.resetTiming()
	clear(g.entries)
	g.entries = g.entries[:0]
	g.length = 0
}
