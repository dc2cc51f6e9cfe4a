package tween

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// captureDebug redirects debug output for the duration of the test.
func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = prev })
	return &buf
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugModeLogsUpdate(t *testing.T) {
	buf := captureDebug(t)
	m := NewManager(ManagerConfig{Pooling: true, Debug: true})
	if err := m.Add(m.Sequence(m.Set(&probe{}, chValue).Target(1))); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateDuration(time.Millisecond); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"[tween] update:",
		"roots: 0",
		"pruned: 1",
		"[tween] pool: 1 tweens (1 created) | 1 groups (1 created)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	buf := captureDebug(t)
	m := NewManager(ManagerConfig{})
	if err := m.Add(To(&probe{}, chValue, time.Second, Linear).Target(1)); err != nil {
		t.Fatal(err)
	}
	_ = m.UpdateDuration(time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("unexpected debug output: %s", buf.String())
	}
}

func TestSetDebugModeToggles(t *testing.T) {
	buf := captureDebug(t)
	m := NewManager(ManagerConfig{})
	m.SetDebugMode(true)
	_ = m.UpdateDuration(0)
	if buf.Len() == 0 {
		t.Fatal("no output with debug mode on")
	}
	buf.Reset()
	m.SetDebugMode(false)
	_ = m.UpdateDuration(0)
	if buf.Len() != 0 {
		t.Errorf("output with debug mode off: %s", buf.String())
	}
}

func TestDebugDepthWarning(t *testing.T) {
	buf := captureDebug(t)
	var tl Timeline = Set(&probe{}, chValue).Target(1)
	for i := 0; i < debugMaxDepth; i++ {
		tl = Sequence(tl)
	}

	m := NewManager(ManagerConfig{Debug: true})
	if err := m.Add(tl); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "timeline depth 33 exceeds 32") {
		t.Errorf("missing depth warning:\n%s", buf.String())
	}
}

func TestDebugShallowTreeNoWarning(t *testing.T) {
	buf := captureDebug(t)
	m := NewManager(ManagerConfig{Debug: true})
	if err := m.Add(Sequence(Parallel(Set(&probe{}, chValue).Target(1)))); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "warning") {
		t.Errorf("unexpected warning:\n%s", buf.String())
	}
}
