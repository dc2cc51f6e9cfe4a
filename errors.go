package tween

import "errors"

// Configuration errors. These indicate a malformed timeline or a caller bug.
var (
	// ErrNegativeDelta is returned when Update receives a negative time step.
	ErrNegativeDelta = errors.New("tween: negative delta time")
	// ErrNegativeDuration is returned for negative durations, delays or
	// repeat delays.
	ErrNegativeDuration = errors.New("tween: negative duration")
	// ErrArity is returned when a channel's captured vector and the supplied
	// target vector have different lengths, or exceed MaxValues.
	ErrArity = errors.New("tween: channel arity mismatch")
	// ErrInfiniteLoop is returned for an infinitely repeating timeline whose
	// iteration period is zero.
	ErrInfiniteLoop = errors.New("tween: infinite repeat with zero period")
	// ErrNilTarget is returned when a property tween has no target.
	ErrNilTarget = errors.New("tween: nil target")
	// ErrNilTimeline is returned when a nil item was added to a group or a
	// manager.
	ErrNilTimeline = errors.New("tween: nil timeline")
)

// Lifecycle misuse errors.
var (
	// ErrDoubleRelease is returned when an object already in a pool is
	// released again.
	ErrDoubleRelease = errors.New("tween: object released twice")
	// ErrReleased is returned when a pooled object is used.
	ErrReleased = errors.New("tween: use of released object")
	// ErrAttached is returned when a timeline that already belongs to a
	// manager or a group is added somewhere else.
	ErrAttached = errors.New("tween: timeline already attached")
	// ErrReentrantUpdate is returned when Manager.Update is called from a
	// callback fired by the same manager.
	ErrReentrantUpdate = errors.New("tween: re-entrant update")
)
