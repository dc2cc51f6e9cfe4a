package tween

import (
	"math"
	"testing"
	"time"
)

func TestFieldsTweenable(t *testing.T) {
	var x, y, alpha float64 = 1, 2, 0.5
	f := NewFields().Bind(0, &x, &y).Bind(1, &alpha)

	var buf [MaxValues]float64
	if n := f.TweenValues(0, buf[:]); n != 2 || buf[0] != 1 || buf[1] != 2 {
		t.Errorf("TweenValues(0) = %d %v", n, buf[:2])
	}
	if n := f.TweenValues(7, buf[:]); n != 0 {
		t.Errorf("unbound channel arity = %d, want 0", n)
	}

	f.SetTweenValues(1, []float64{0.25})
	if alpha != 0.25 {
		t.Errorf("alpha = %v, want 0.25", alpha)
	}
}

func TestFieldsWithManager(t *testing.T) {
	var x, y float64
	f := NewFields().Bind(0, &x, &y)
	m := NewManager(ManagerConfig{})
	if err := m.Add(To(f, 0, time.Second, Linear).Target(100, 50)); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateDuration(500 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if x != 50 || y != 25 {
		t.Errorf("(x, y) = (%v, %v), want (50, 25)", x, y)
	}
}

func TestFieldsRebind(t *testing.T) {
	var a, b float64 = 1, 2
	f := NewFields().Bind(0, &a).Bind(0, &b)
	var buf [1]float64
	f.TweenValues(0, buf[:])
	if buf[0] != 2 {
		t.Errorf("value = %v, want 2 from the replacing binding", buf[0])
	}
}

func TestScalarReachesTarget(t *testing.T) {
	v := 10.0
	s := NewScalar(&v, 20, time.Second, Linear)

	// exact halves avoid float32 accumulation drift
	s.Update(0.5)
	if math.Abs(v-15) > 0.01 {
		t.Errorf("value = %v, want ~15", v)
	}
	s.Update(0.5)
	if !s.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-20) > 0.01 {
		t.Errorf("value = %v, want ~20", v)
	}
}

func TestScalarStopsWhenDone(t *testing.T) {
	v := 0.0
	s := NewScalar(&v, 1, 100*time.Millisecond, QuadOut)
	s.Update(1)
	if !s.Done {
		t.Fatal("expected Done")
	}
	v = 42
	s.Update(1)
	if v != 42 {
		t.Errorf("Update after Done wrote %v", v)
	}
}
