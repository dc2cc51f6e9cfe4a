// Package tween is a time-based property animation engine.
//
// Tween animates numeric channels of host objects, composes animations into
// sequences, parallel groups and repeats, evaluates easing curves, and
// recycles animation objects so that a game loop runs without steady-state
// allocation. It has no goroutines and does no I/O: the host calls
// [Manager.Update] once per frame and every callback runs inline.
//
// # Quick start
//
// Implement [Tweenable] on the objects to animate, or bind plain fields with
// [Fields]:
//
//	type Sprite struct{ X, Y, Alpha float64 }
//
//	const (
//		Position = iota
//		Opacity
//	)
//
//	func (s *Sprite) TweenValues(ch int, dst []float64) int {
//		switch ch {
//		case Position:
//			dst[0], dst[1] = s.X, s.Y
//			return 2
//		case Opacity:
//			dst[0] = s.Alpha
//			return 1
//		}
//		return 0
//	}
//
//	func (s *Sprite) SetTweenValues(ch int, v []float64) {
//		switch ch {
//		case Position:
//			s.X, s.Y = v[0], v[1]
//		case Opacity:
//			s.Alpha = v[0]
//		}
//	}
//
// Then build timelines and hand them to a [Manager]:
//
//	m := tween.NewManager(tween.ManagerConfig{Pooling: true})
//	m.Add(m.Sequence(
//		m.Set(sprite, Opacity).Target(0),
//		m.To(sprite, Opacity, 500*time.Millisecond, tween.QuadOut).Target(1),
//		tween.Offset(-200*time.Millisecond),
//		m.To(sprite, Position, time.Second, tween.BackOut).Target(320, 240),
//	).Repeat(2, 0))
//
//	// every frame
//	if err := m.Update(dt); err != nil { ... }
//
// # Timing
//
// Every timeline waits its delay, then plays one or more iterations
// separated by the repeat delay. Time that overshoots a boundary flows into
// the next phase within the same update, so sequences do not drift when a
// frame straddles the end of an entry. A [Group] derives its duration from
// its entries: sequential entries add up, parallel entries take the maximum,
// and [Offset] items shift the following sequential entries, negative
// offsets making them overlap.
//
// # Pooling
//
// With [ManagerConfig.Pooling] set, timelines built through the manager
// (m.To, m.Sequence, ...) come from its [Pool], and finished roots are
// reset and returned to it. Do not keep references to a root after it
// finished when pooling is on.
//
// # Errors
//
// Configuration errors (negative durations, arity mismatches, infinite
// zero-length loops) are reported by [Manager.Add] or, when they can only be
// seen at activation, by [Manager.Update], which kills the failing leaf and
// keeps ticking everything else. See the Err variables.
//
// Easing curves come from [gween]; an ECS bridge for [Donburi] lives in
// tween/ecs.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tween
