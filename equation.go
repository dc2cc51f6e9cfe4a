package tween

import "github.com/tanema/gween/ease"

// Equation is an easing curve mapping normalized time to an interpolation
// factor. Equations are stateless values; the zero Equation is Linear.
//
// Compute pins the boundaries so that Compute(0) == 0 and Compute(1) == 1
// exactly for every curve. Between the boundaries the factor comes from the
// wrapped [ease.TweenFunc] and may leave [0, 1] (Elastic, Back).
type Equation struct {
	name string
	fn   ease.TweenFunc
}

// NewEquation wraps a custom easing function. fn is called as
// fn(t, 0, 1, 1) with t strictly inside (0, 1).
func NewEquation(name string, fn ease.TweenFunc) Equation {
	return Equation{name: name, fn: fn}
}

// Compute returns the interpolation factor for t. t is clamped to [0, 1].
func (e Equation) Compute(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e.fn == nil {
		return t
	}
	return float64(e.fn(float32(t), 0, 1, 1))
}

// Func returns the wrapped easing function.
func (e Equation) Func() ease.TweenFunc {
	if e.fn == nil {
		return ease.Linear
	}
	return e.fn
}

// String returns the curve name, e.g. "Quad.INOUT".
func (e Equation) String() string {
	if e.name == "" {
		return "Linear.INOUT"
	}
	return e.name
}

// The closed family of easing curves.
var (
	Linear = Equation{"Linear.INOUT", ease.Linear}

	QuadIn    = Equation{"Quad.IN", ease.InQuad}
	QuadOut   = Equation{"Quad.OUT", ease.OutQuad}
	QuadInOut = Equation{"Quad.INOUT", ease.InOutQuad}

	CubicIn    = Equation{"Cubic.IN", ease.InCubic}
	CubicOut   = Equation{"Cubic.OUT", ease.OutCubic}
	CubicInOut = Equation{"Cubic.INOUT", ease.InOutCubic}

	QuartIn    = Equation{"Quart.IN", ease.InQuart}
	QuartOut   = Equation{"Quart.OUT", ease.OutQuart}
	QuartInOut = Equation{"Quart.INOUT", ease.InOutQuart}

	QuintIn    = Equation{"Quint.IN", ease.InQuint}
	QuintOut   = Equation{"Quint.OUT", ease.OutQuint}
	QuintInOut = Equation{"Quint.INOUT", ease.InOutQuint}

	SineIn    = Equation{"Sine.IN", ease.InSine}
	SineOut   = Equation{"Sine.OUT", ease.OutSine}
	SineInOut = Equation{"Sine.INOUT", ease.InOutSine}

	CircIn    = Equation{"Circ.IN", ease.InCirc}
	CircOut   = Equation{"Circ.OUT", ease.OutCirc}
	CircInOut = Equation{"Circ.INOUT", ease.InOutCirc}

	ExpoIn    = Equation{"Expo.IN", ease.InExpo}
	ExpoOut   = Equation{"Expo.OUT", ease.OutExpo}
	ExpoInOut = Equation{"Expo.INOUT", ease.InOutExpo}

	ElasticIn    = Equation{"Elastic.IN", ease.InElastic}
	ElasticOut   = Equation{"Elastic.OUT", ease.OutElastic}
	ElasticInOut = Equation{"Elastic.INOUT", ease.InOutElastic}

	BackIn    = Equation{"Back.IN", ease.InBack}
	BackOut   = Equation{"Back.OUT", ease.OutBack}
	BackInOut = Equation{"Back.INOUT", ease.InOutBack}

	BounceIn    = Equation{"Bounce.IN", ease.InBounce}
	BounceOut   = Equation{"Bounce.OUT", ease.OutBounce}
	BounceInOut = Equation{"Bounce.INOUT", ease.InOutBounce}
)

var equations = []Equation{
	Linear,
	QuadIn, QuadOut, QuadInOut,
	CubicIn, CubicOut, CubicInOut,
	QuartIn, QuartOut, QuartInOut,
	QuintIn, QuintOut, QuintInOut,
	SineIn, SineOut, SineInOut,
	CircIn, CircOut, CircInOut,
	ExpoIn, ExpoOut, ExpoInOut,
	ElasticIn, ElasticOut, ElasticInOut,
	BackIn, BackOut, BackInOut,
	BounceIn, BounceOut, BounceInOut,
}

// Equations returns every built-in curve. The returned slice is a copy.
func Equations() []Equation {
	out := make([]Equation, len(equations))
	copy(out, equations)
	return out
}

// EquationByName looks up a built-in curve by its String name.
func EquationByName(name string) (Equation, bool) {
	for _, e := range equations {
		if e.name == name {
			return e, true
		}
	}
	return Equation{}, false
}
