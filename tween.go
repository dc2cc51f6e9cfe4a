package tween

import (
	"fmt"
	"time"
)

type tweenKind uint8

const (
	kindTo   tweenKind = iota // current value -> target values
	kindFrom                  // target values -> current value
	kindSet                   // instant write of the target values
	kindCall                  // callback only
)

// Tween animates one channel of a Tweenable from a start vector to an end
// vector. Build one with To, From, Set or Call (or the Manager methods of the
// same names to draw from its pool), configure it with the chainable
// modifiers, then add it to a Manager or a Group.
//
// The start vector is captured from the target on activation, after the
// delay. A repeating tween keeps that capture for every iteration unless
// RecaptureOnRepeat is set.
type Tween struct {
	timing

	kind      tweenKind
	target    Tweenable
	channel   int
	eq        Equation
	duration  time.Duration
	relative  bool
	recapture bool

	n      int // arity of values
	values [MaxValues]float64
	start  [MaxValues]float64
	end    [MaxValues]float64
	buf    [MaxValues]float64
}

func newTween() *Tween { return &Tween{} }

// To creates a tween moving channel of target from its value at activation
// to the values given with Target, TargetRelative or TargetCurrent.
func To(target Tweenable, channel int, d time.Duration, eq Equation) *Tween {
	return newTween().setup(kindTo, target, channel, d, eq)
}

// From creates a tween moving channel of target from the values given with
// Target to its value at activation.
func From(target Tweenable, channel int, d time.Duration, eq Equation) *Tween {
	return newTween().setup(kindFrom, target, channel, d, eq)
}

// Set creates a zero-duration tween writing the values given with Target.
func Set(target Tweenable, channel int) *Tween {
	return newTween().setup(kindSet, target, channel, 0, Linear)
}

// Call creates a zero-duration tween whose only effect is calling fn with
// EventComplete. Inside a repeating group fn runs once per group iteration.
func Call(fn Callback) *Tween {
	tw := newTween().setup(kindCall, nil, 0, 0, Linear)
	tw.addCallback(EventComplete, fn)
	return tw
}

func (tw *Tween) setup(kind tweenKind, target Tweenable, channel int, d time.Duration, eq Equation) *Tween {
	tw.kind = kind
	tw.target = target
	tw.channel = channel
	tw.eq = eq
	if d < 0 {
		tw.fail(fmt.Errorf("%w: duration %v", ErrNegativeDuration, d))
	}
	tw.duration = d
	return tw
}

// --- Modifiers ---

// Target sets the end vector (To, Set) or the start vector (From).
func (tw *Tween) Target(values ...float64) *Tween {
	tw.relative = false
	tw.setValues(values)
	return tw
}

// TargetRelative sets values as offsets from the vector captured at
// activation.
func (tw *Tween) TargetRelative(values ...float64) *Tween {
	tw.relative = true
	tw.setValues(values)
	return tw
}

// TargetCurrent uses the target's value at the time of this call as the
// target values.
func (tw *Tween) TargetCurrent() *Tween {
	tw.relative = false
	if tw.target == nil {
		tw.fail(ErrNilTarget)
		return tw
	}
	n := tw.target.TweenValues(tw.channel, tw.buf[:])
	tw.setValues(tw.buf[:min(n, MaxValues)])
	if n > MaxValues {
		tw.fail(fmt.Errorf("%w: channel %d reports %d values, max %d", ErrArity, tw.channel, n, MaxValues))
	}
	return tw
}

func (tw *Tween) setValues(values []float64) {
	if len(values) > MaxValues {
		tw.fail(fmt.Errorf("%w: %d values, max %d", ErrArity, len(values), MaxValues))
		values = values[:MaxValues]
	}
	tw.n = copy(tw.values[:], values)
}

// Delay sets the time waited before the first iteration.
func (tw *Tween) Delay(d time.Duration) *Tween {
	tw.setDelay(d)
	return tw
}

// Repeat plays the tween count more times after the first play, waiting
// delay between plays. RepeatInfinite repeats forever.
func (tw *Tween) Repeat(count int, delay time.Duration) *Tween {
	tw.setRepeat(count, delay, false)
	return tw
}

// RepeatYoyo is Repeat with every other play running backwards. Reversed
// plays fire EventBackStart and EventBackEnd instead of EventStart and
// EventEnd.
func (tw *Tween) RepeatYoyo(count int, delay time.Duration) *Tween {
	tw.setRepeat(count, delay, true)
	return tw
}

// RecaptureOnRepeat makes every repeat capture the channel value anew
// instead of reusing the vector captured at activation.
func (tw *Tween) RecaptureOnRepeat() *Tween {
	tw.recapture = true
	return tw
}

// AddCallback registers fn for the events in mask.
func (tw *Tween) AddCallback(mask EventKind, fn Callback) *Tween {
	tw.addCallback(mask, fn)
	return tw
}

// --- Accessors ---

// Tweenable returns the animated object; nil for Call tweens.
func (tw *Tween) Tweenable() Tweenable { return tw.target }

// Channel returns the animated channel selector.
func (tw *Tween) Channel() int { return tw.channel }

// Equation returns the easing curve.
func (tw *Tween) Equation() Equation { return tw.eq }

// Elapsed returns the position inside the current delay or iteration.
func (tw *Tween) Elapsed() time.Duration { return tw.elapsed }

// Duration returns the full span including delay and repeats.
func (tw *Tween) Duration() time.Duration { return tw.span(tw.duration) }

// --- Lifecycle ---

// Kill stops the tween immediately. No further writes or callbacks happen.
// Kill is idempotent; it panics on a tween that was released to a pool.
func (tw *Tween) Kill() { tw.kill() }

// KillTarget kills the tween if it animates target.
func (tw *Tween) KillTarget(target Tweenable) {
	if target != nil {
		tw.killMatching(func(t *Tween) bool { return t.target == target })
	}
}

// KillFunc kills the tween if match reports true for it.
func (tw *Tween) KillFunc(match func(*Tween) bool) { tw.killMatching(match) }

// Update advances a standalone tween by dt seconds.
func (tw *Tween) Update(dt float32) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}
	if tw.attached {
		return ErrAttached
	}
	if tw.state == StatePending {
		if err := tw.Validate(); err != nil {
			return err
		}
	}
	return tw.advance(seconds(dt))
}

// Validate reports configuration errors.
func (tw *Tween) Validate() error {
	if err := tw.validate(); err != nil {
		return err
	}
	if tw.kind != kindCall {
		if tw.target == nil {
			return ErrNilTarget
		}
		if tw.n == 0 {
			return fmt.Errorf("%w: no target values for channel %d", ErrArity, tw.channel)
		}
	}
	return tw.checkPeriod(tw.duration)
}

func (tw *Tween) advance(dt time.Duration) error {
	if tw.pooled {
		return ErrReleased
	}
	return tw.run(tw, tw, dt)
}

func (tw *Tween) period() time.Duration { return tw.duration }

func (tw *Tween) activate(first bool) error {
	if tw.kind == kindCall || (!first && !tw.recapture) {
		return nil
	}
	n := tw.target.TweenValues(tw.channel, tw.buf[:])
	if n != tw.n {
		return fmt.Errorf("%w: channel %d has %d values, tween has %d", ErrArity, tw.channel, n, tw.n)
	}
	for i := 0; i < n; i++ {
		cur, v := tw.buf[i], tw.values[i]
		if tw.relative {
			v += cur
		}
		switch tw.kind {
		case kindTo:
			tw.start[i], tw.end[i] = cur, v
		case kindFrom:
			tw.start[i], tw.end[i] = v, cur
		case kindSet:
			tw.start[i], tw.end[i] = v, v
		}
	}
	return nil
}

func (tw *Tween) step(_, t1 time.Duration, reversed bool) error {
	if tw.kind == kindCall {
		return nil
	}
	frac := 1.0
	if tw.duration > 0 && t1 < tw.duration {
		frac = float64(t1) / float64(tw.duration)
	}
	if reversed {
		frac = 1 - frac
	}
	f := tw.eq.Compute(frac)
	out := tw.buf[:tw.n]
	for i := range out {
		switch f {
		case 0:
			out[i] = tw.start[i]
		case 1:
			out[i] = tw.end[i]
		default:
			out[i] = tw.start[i] + (tw.end[i]-tw.start[i])*f
		}
	}
	tw.target.SetTweenValues(tw.channel, out)
	return nil
}

func (tw *Tween) rewind() { tw.rewindClock() }

func (tw *Tween) liveLeaves() int {
	if tw.state.Terminal() {
		return 0
	}
	return 1
}

func (tw *Tween) killMatching(match func(*Tween) bool) bool {
	if tw.state != StateKilled && match(tw) {
		tw.kill()
	}
	return tw.state == StateKilled
}

func (tw *Tween) eachLeaf(fn func(*Tween)) { fn(tw) }

func (tw *Tween) releaseTo(m *Manager) error {
	return m.tweens.Release(tw)
}

func (tw *Tween) depth() int { return 1 }

func (tw *Tween) isNil() bool { return tw == nil }

// reset returns the tween to its zero configuration for reuse.
func (tw *Tween) reset() {
	tw.resetTiming()
	tw.kind = kindTo
	tw.target = nil
	tw.channel = 0
	tw.eq = Equation{}
	tw.duration = 0
	tw.relative = false
	tw.recapture = false
	tw.n = 0
	tw.values = [MaxValues]float64{}
	tw.start = [MaxValues]float64{}
	tw.end = [MaxValues]float64{}
	tw.buf = [MaxValues]float64{}
}
