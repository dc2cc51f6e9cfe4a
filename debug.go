package tween

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-update metrics. Only populated when Manager.debug is
// true.
type debugStats struct {
	updateTime time.Duration
	pruned     int
}

// debugOut is where debug lines go. Tests redirect it.
var debugOut io.Writer = os.Stderr

// debugMaxRoots is the root count above which Update warns.
const debugMaxRoots = 10000

// debugLog prints update statistics.
func (m *Manager) debugLog() {
	if !m.debug {
		return
	}
	tweens, groups := m.PoolStats()
	_, _ = fmt.Fprintf(debugOut,
		"[tween] update: %v | roots: %d | live leaves: %d | pruned: %d\n",
		m.stats.updateTime, m.RootCount(), m.Count(), m.stats.pruned)
	_, _ = fmt.Fprintf(debugOut,
		"[tween] pool: %d tweens (%d created) | %d groups (%d created)\n",
		tweens, m.tweens.Created(), groups, m.groups.Created())
	if n := m.RootCount(); n > debugMaxRoots {
		_, _ = fmt.Fprintf(debugOut, "[tween] warning: %d roots (threshold %d)\n", n, debugMaxRoots)
	}
}

// debugMaxDepth is the nesting depth above which Add warns.
const debugMaxDepth = 32

// debugCheckDepth warns if a timeline is nested deeper than debugMaxDepth.
func debugCheckDepth(tl Timeline) {
	if d := tl.depth(); d > debugMaxDepth {
		_, _ = fmt.Fprintf(debugOut, "[tween] warning: timeline depth %d exceeds %d\n", d, debugMaxDepth)
	}
}
