package tween

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// State is the lifecycle state of a timeline.
type State uint8

const (
	StatePending  State = iota // built, never ticked
	StateDelayed               // consuming the initial delay or a repeat delay
	StateActive                // interpolating (leaf) or dispatching to children (group)
	StateComplete              // finished every iteration
	StateKilled                // stopped by Kill; absorbing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateDelayed:
		return "DELAYED"
	case StateActive:
		return "ACTIVE"
	case StateComplete:
		return "COMPLETE"
	case StateKilled:
		return "KILLED"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Terminal reports whether s is StateComplete or StateKilled.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateKilled
}

// RepeatInfinite passed to Repeat makes a timeline repeat forever.
const RepeatInfinite = -1

// Infinite is the Duration of a timeline that never completes.
const Infinite time.Duration = math.MaxInt64

// Item is an entry of a group: a Timeline or an Offset.
type Item interface {
	item()
}

// Timeline is a node the Manager can tick: a leaf *Tween or a composite
// *Group.
type Timeline interface {
	Item

	// State returns the current lifecycle state.
	State() State
	// Duration returns the full span: delay, every iteration and every
	// repeat delay. Infinite for endlessly repeating timelines.
	Duration() time.Duration
	// Kill stops the timeline and, for groups, every descendant.
	Kill()
	// KillTarget kills every leaf animating target.
	KillTarget(target Tweenable)
	// KillFunc kills every leaf for which match returns true.
	KillFunc(match func(*Tween) bool)
	// Update advances a timeline that is not owned by a Manager by dt
	// seconds.
	Update(dt float32) error
	// Validate checks the timeline for configuration errors and recomputes
	// derived group spans.
	Validate() error

	advance(dt time.Duration) error
	rewind()
	liveLeaves() int
	killMatching(match func(*Tween) bool) bool
	eachLeaf(fn func(*Tween))
	isAttached() bool
	setAttached(bool)
	releaseTo(m *Manager) error
	depth() int
	isNil() bool
}

// isNilTimeline reports whether tl is nil or holds a nil pointer.
func isNilTimeline(tl Timeline) bool {
	return tl == nil || tl.isNil()
}

// phase is implemented by the concrete timelines to plug their active
// behaviour into the shared clock.
type phase interface {
	// period is the length of one iteration.
	period() time.Duration
	// activate runs when an iteration leaves its delay.
	activate(first bool) error
	// step covers the iteration-local window (t0, t1].
	step(t0, t1 time.Duration, reversed bool) error
}

// timing is the clock and lifecycle shared by tweens and groups.
type timing struct {
	// UserData is free for the host; it is cleared when the timeline is
	// recycled.
	UserData any

	state       State
	delay       time.Duration
	repeatCount int
	repeatDelay time.Duration
	yoyo        bool

	iteration int           // completed iterations of the current activation
	elapsed   time.Duration // position inside the current delay or iteration
	wait      time.Duration // length of the current delay
	began     bool

	callbacks []callbackEntry
	err       error // deferred builder error, reported by Validate
	attached  bool
	pooled    bool
}

func (c *timing) item() {}

// State returns the current lifecycle state.
func (c *timing) State() State { return c.state }

// Iteration returns the number of iterations finished since activation.
func (c *timing) Iteration() int { return c.iteration }

func (c *timing) isAttached() bool   { return c.attached }
func (c *timing) setAttached(a bool) { c.attached = a }
func (c *timing) inPool() bool       { return c.pooled }
func (c *timing) setInPool(p bool)   { c.pooled = p }

func (c *timing) setDelay(d time.Duration) {
	if d < 0 {
		c.fail(fmt.Errorf("%w: delay %v", ErrNegativeDuration, d))
	}
	c.delay = d
}

func (c *timing) setRepeat(count int, delay time.Duration, yoyo bool) {
	if delay < 0 {
		c.fail(fmt.Errorf("%w: repeat delay %v", ErrNegativeDuration, delay))
	}
	if count < RepeatInfinite {
		count = RepeatInfinite
	}
	c.repeatCount = count
	c.repeatDelay = delay
	c.yoyo = yoyo
}

func (c *timing) addCallback(mask EventKind, fn Callback) {
	if fn == nil || mask == 0 {
		return
	}
	c.callbacks = append(c.callbacks, callbackEntry{mask: mask, fn: fn})
}

// fail records the first builder error.
func (c *timing) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *timing) validate() error {
	if c.pooled {
		return ErrReleased
	}
	return c.err
}

// span is the total length for an iteration length p.
func (c *timing) span(p time.Duration) time.Duration {
	if c.repeatCount == RepeatInfinite {
		if p == 0 && c.repeatDelay == 0 {
			return c.delay
		}
		return Infinite
	}
	n := time.Duration(c.repeatCount)
	total := addDuration(c.delay, mulDuration(p, n+1))
	return addDuration(total, mulDuration(c.repeatDelay, n))
}

func (c *timing) checkPeriod(p time.Duration) error {
	if c.repeatCount == RepeatInfinite && p == 0 && c.repeatDelay == 0 {
		return ErrInfiniteLoop
	}
	return nil
}

func (c *timing) reversed() bool {
	return c.yoyo && c.iteration%2 == 1
}

func (c *timing) kill() {
	if c.pooled {
		panic("tween: kill on released timeline")
	}
	c.state = StateKilled
}

// rewindClock returns a finished or running timeline to Pending so a repeating
// parent can play it again. Killed timelines stay killed.
func (c *timing) rewindClock() {
	if c.state == StateKilled {
		return
	}
	c.state = StatePending
	c.iteration = 0
	c.elapsed = 0
	c.wait = 0
	c.began = false
}

func (c *timing) resetTiming() {
	clear(c.callbacks)
	*c = timing{callbacks: c.callbacks[:0], pooled: c.pooled}
}

func (c *timing) fire(kind EventKind, self Timeline) {
	for i := 0; i < len(c.callbacks); i++ {
		if c.state == StateKilled {
			return
		}
		cb := c.callbacks[i]
		if cb.mask&kind != 0 {
			cb.fn(kind, self)
		}
	}
}

// run drives the delay/iteration/repeat state machine for budget of time.
// Time left over after a boundary flows into the next phase within the same
// call. A failed activation kills the timeline, so its error is reported
// once. Step errors from children are collected and the clock keeps going.
func (c *timing) run(p phase, self Timeline, budget time.Duration) (err error) {
	for {
		switch c.state {
		case StateComplete, StateKilled:
			return err

		case StatePending:
			c.state = StateDelayed
			c.elapsed = 0
			c.wait = c.delay

		case StateDelayed:
			need := c.wait - c.elapsed
			if budget < need {
				c.elapsed += budget
				return err
			}
			budget -= need
			c.elapsed = 0
			c.state = StateActive

			first := !c.began
			c.began = true
			if aerr := p.activate(first); aerr != nil {
				c.state = StateKilled
				return errors.Join(err, aerr)
			}
			if first {
				c.fire(EventBegin, self)
			}
			if c.reversed() {
				c.fire(EventBackStart, self)
			} else {
				c.fire(EventStart, self)
			}

		case StateActive:
			length := p.period()
			step := length - c.elapsed
			if budget < step {
				step = budget
			}
			t0 := c.elapsed
			c.elapsed += step
			budget -= step
			if serr := p.step(t0, c.elapsed, c.reversed()); serr != nil {
				err = errors.Join(err, serr)
			}
			if c.state == StateKilled || c.elapsed < length {
				return err
			}

			if c.reversed() {
				c.fire(EventBackEnd, self)
			} else {
				c.fire(EventEnd, self)
			}
			if c.state == StateKilled {
				return err
			}
			if c.repeatCount == RepeatInfinite || c.iteration < c.repeatCount {
				c.iteration++
				c.state = StateDelayed
				c.elapsed = 0
				c.wait = c.repeatDelay
				continue
			}
			c.state = StateComplete
			c.fire(EventComplete, self)
			return err
		}
	}
}

// addDuration adds durations, saturating at Infinite.
func addDuration(a, b time.Duration) time.Duration {
	if a == Infinite || b == Infinite {
		return Infinite
	}
	s := a + b
	if b > 0 && s < a {
		return Infinite
	}
	return s
}

// mulDuration multiplies d by n >= 0, saturating at Infinite.
func mulDuration(d, n time.Duration) time.Duration {
	if d == 0 || n == 0 {
		return 0
	}
	if d == Infinite || d > Infinite/n {
		return Infinite
	}
	return d * n
}

// seconds converts a frame delta in seconds to a Duration.
func seconds(dt float32) time.Duration {
	return time.Duration(float64(dt) * float64(time.Second))
}
