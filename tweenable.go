package tween

// MaxValues is the largest vector a single channel may carry.
const MaxValues = 8

// Tweenable is implemented by host objects whose numeric properties can be
// animated. A property is addressed by an integer channel selector whose
// meaning is defined by the host.
//
// The engine keeps a non-owning reference to a Tweenable. Hosts must kill
// the tweens of a target (Manager.KillTarget) before discarding it.
// Implementations must be comparable, typically pointer types, so that
// tweens can be matched by target.
type Tweenable interface {
	// TweenValues writes the current vector of channel into dst and returns
	// its arity. dst has room for MaxValues entries.
	TweenValues(channel int, dst []float64) int
	// SetTweenValues applies a vector of the same arity TweenValues
	// reports for channel.
	SetTweenValues(channel int, values []float64)
}

// EventKind identifies a lifecycle event. Kinds are bit flags so that a
// callback can subscribe to several at once.
type EventKind uint8

const (
	EventBegin     EventKind = 1 << iota // first activation, after the initial delay
	EventStart                           // start of every forward iteration
	EventEnd                             // end of every forward iteration
	EventComplete                        // final iteration finished; fires once
	EventBackStart                       // start of a reversed (yoyo) iteration
	EventBackEnd                         // end of a reversed (yoyo) iteration

	EventAll = EventBegin | EventStart | EventEnd | EventComplete | EventBackStart | EventBackEnd
)

// String returns the event name for a single kind.
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "BEGIN"
	case EventStart:
		return "START"
	case EventEnd:
		return "END"
	case EventComplete:
		return "COMPLETE"
	case EventBackStart:
		return "BACK_START"
	case EventBackEnd:
		return "BACK_END"
	default:
		return "MIXED"
	}
}

// Callback receives lifecycle events. tl is the timeline that fired, a
// *Tween or a *Group. Callbacks run synchronously inside Update and may add
// new timelines to the manager or kill existing ones.
type Callback func(kind EventKind, tl Timeline)

type callbackEntry struct {
	mask EventKind
	fn   Callback
}
