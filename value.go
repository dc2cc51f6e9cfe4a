package tween

import (
	"time"

	"github.com/tanema/gween"
)

// Fields is a Tweenable over float64 fields owned by the caller. Each channel
// binds an ordered list of field pointers, so a channel's arity is the number
// of bound fields.
//
//	var x, y, alpha float64
//	f := tween.NewFields().Bind(0, &x, &y).Bind(1, &alpha)
//	m.Add(tween.To(f, 0, time.Second, tween.QuadOut).Target(100, 50))
type Fields struct {
	channels map[int][]*float64
}

// NewFields creates an empty field set.
func NewFields() *Fields {
	return &Fields{channels: make(map[int][]*float64)}
}

// Bind maps channel to fields, replacing any previous binding.
func (f *Fields) Bind(channel int, fields ...*float64) *Fields {
	f.channels[channel] = fields
	return f
}

// TweenValues implements Tweenable.
func (f *Fields) TweenValues(channel int, dst []float64) int {
	ptrs := f.channels[channel]
	for i, p := range ptrs {
		if i < len(dst) {
			dst[i] = *p
		}
	}
	return len(ptrs)
}

// SetTweenValues implements Tweenable.
func (f *Fields) SetTweenValues(channel int, values []float64) {
	for i, p := range f.channels[channel] {
		if i < len(values) {
			*p = values[i]
		}
	}
}

// Scalar animates a single float64 field with a gween tween. It suits
// fire-and-forget animations that need no delay, repeat or callbacks and no
// Manager; call Update every frame until Done.
type Scalar struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// NewScalar starts animating *field from its current value to to over d.
func NewScalar(field *float64, to float64, d time.Duration, eq Equation) *Scalar {
	return &Scalar{
		tween: gween.New(float32(*field), float32(to), float32(d.Seconds()), eq.Func()),
		field: field,
	}
}

// Update advances the animation by dt seconds and writes the field.
func (s *Scalar) Update(dt float32) {
	if s.Done {
		return
	}
	val, finished := s.tween.Update(dt)
	*s.field = float64(val)
	s.Done = finished
}
