package tween

import (
	"errors"
	"fmt"
	"time"
)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// Pooling recycles tweens and groups of finished roots. With pooling on,
	// hosts must not keep references to a root once it has finished.
	Pooling bool
	// MaxPoolSize caps each free list. Zero means unbounded.
	MaxPoolSize int
	// Debug prints per-update statistics and warnings to stderr.
	Debug bool
}

// Manager owns root timelines and ticks them once per Update. Roots are
// independent: two roots writing the same target and channel are not
// arbitrated, the one ticked later in an update wins for that frame.
//
// Callbacks may add roots and kill timelines while Update runs. Roots added
// during an update are ticked from the next update on; killed roots are
// pruned at the end of the update that observes them.
type Manager struct {
	roots    []Timeline
	added    []Timeline
	updating bool

	pooling bool
	tweens  *Pool[*Tween]
	groups  *Pool[*Group]

	debug bool
	stats debugStats
}

// NewManager creates a manager.
func NewManager(cfg ManagerConfig) *Manager {
	pc := PoolConfig{MaxSize: cfg.MaxPoolSize}
	return &Manager{
		pooling: cfg.Pooling,
		tweens:  NewTweenPool(pc),
		groups:  NewGroupPool(pc),
		debug:   cfg.Debug,
	}
}

// SetDebugMode toggles per-update statistics on stderr.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// --- Pooled builders ---

// To is the package-level To drawing from the manager's pool.
func (m *Manager) To(target Tweenable, channel int, d time.Duration, eq Equation) *Tween {
	return m.acquireTween().setup(kindTo, target, channel, d, eq)
}

// From is the package-level From drawing from the manager's pool.
func (m *Manager) From(target Tweenable, channel int, d time.Duration, eq Equation) *Tween {
	return m.acquireTween().setup(kindFrom, target, channel, d, eq)
}

// Set is the package-level Set drawing from the manager's pool.
func (m *Manager) Set(target Tweenable, channel int) *Tween {
	return m.acquireTween().setup(kindSet, target, channel, 0, Linear)
}

// Call is the package-level Call drawing from the manager's pool.
func (m *Manager) Call(fn Callback) *Tween {
	tw := m.acquireTween().setup(kindCall, nil, 0, 0, Linear)
	tw.addCallback(EventComplete, fn)
	return tw
}

// Sequence is the package-level Sequence drawing from the manager's pool.
func (m *Manager) Sequence(items ...Item) *Group {
	return m.acquireGroup().appendItems(ModeSequential, items)
}

// Parallel is the package-level Parallel drawing from the manager's pool.
func (m *Manager) Parallel(items ...Item) *Group {
	return m.acquireGroup().appendItems(ModeParallel, items)
}

func (m *Manager) acquireTween() *Tween {
	if !m.pooling {
		return newTween()
	}
	return m.tweens.Acquire()
}

func (m *Manager) acquireGroup() *Group {
	if !m.pooling {
		return newGroup()
	}
	return m.groups.Acquire()
}

// --- Roots ---

// Add validates tl and registers it as a root. During an update the root is
// queued and first ticked by the next update.
func (m *Manager) Add(tl Timeline) error {
	if isNilTimeline(tl) {
		return ErrNilTimeline
	}
	if tl.isAttached() {
		return ErrAttached
	}
	if err := tl.Validate(); err != nil {
		return err
	}
	if m.debug {
		debugCheckDepth(tl)
	}
	tl.setAttached(true)
	if m.updating {
		m.added = append(m.added, tl)
	} else {
		m.roots = append(m.roots, tl)
	}
	return nil
}

// Update advances every root by dt seconds.
func (m *Manager) Update(dt float32) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}
	return m.UpdateDuration(seconds(dt))
}

// UpdateDuration advances every root by dt. Roots present when the update
// starts are ticked in insertion order; finished roots are then removed and,
// with pooling on, recycled. A failing root does not stop the others: the
// errors of every root are joined, and a leaf that fails to activate is
// killed so it reports its error once.
func (m *Manager) UpdateDuration(dt time.Duration) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}
	if m.updating {
		return ErrReentrantUpdate
	}

	var start time.Time
	if m.debug {
		start = time.Now()
	}

	err := m.tick(dt)
	if perr := m.prune(); perr != nil {
		err = errors.Join(err, perr)
	}
	m.roots = append(m.roots, m.added...)
	clear(m.added)
	m.added = m.added[:0]

	if m.debug {
		m.stats.updateTime = time.Since(start)
		m.debugLog()
	}
	return err
}

func (m *Manager) tick(dt time.Duration) error {
	m.updating = true
	defer func() { m.updating = false }()

	var errs []error
	for _, tl := range m.roots {
		if err := tl.advance(dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// prune drops terminal roots, keeping the order of the others.
func (m *Manager) prune() error {
	var errs []error
	kept := m.roots[:0]
	m.stats.pruned = 0
	for _, tl := range m.roots {
		if !tl.State().Terminal() {
			kept = append(kept, tl)
			continue
		}
		m.stats.pruned++
		tl.setAttached(false)
		if m.pooling {
			if err := tl.releaseTo(m); err != nil {
				errs = append(errs, err)
			}
		}
	}
	clear(m.roots[len(kept):])
	m.roots = kept
	return errors.Join(errs...)
}

// --- Kill ---

// KillTarget kills every leaf animating target in every root, including
// roots added during the current update. Fully killed roots are pruned by
// the next update.
func (m *Manager) KillTarget(target Tweenable) {
	if target == nil {
		return
	}
	m.KillFunc(func(tw *Tween) bool { return tw.target == target })
}

// KillFunc kills every leaf for which match reports true.
func (m *Manager) KillFunc(match func(*Tween) bool) {
	for _, tl := range m.roots {
		tl.killMatching(match)
	}
	for _, tl := range m.added {
		tl.killMatching(match)
	}
}

// KillAll kills every root.
func (m *Manager) KillAll() {
	for _, tl := range m.roots {
		tl.Kill()
	}
	for _, tl := range m.added {
		tl.Kill()
	}
}

// --- Diagnostics ---

// Count returns the number of leaves not yet complete or killed across all
// roots.
func (m *Manager) Count() int {
	n := 0
	for _, tl := range m.roots {
		n += tl.liveLeaves()
	}
	for _, tl := range m.added {
		n += tl.liveLeaves()
	}
	return n
}

// RootCount returns the number of registered roots, queued ones included.
func (m *Manager) RootCount() int {
	return len(m.roots) + len(m.added)
}

// ContainsTarget reports whether a live leaf animates target.
func (m *Manager) ContainsTarget(target Tweenable) bool {
	if target == nil {
		return false
	}
	found := false
	visit := func(tw *Tween) {
		if tw.target == target && !tw.state.Terminal() {
			found = true
		}
	}
	for _, tl := range m.roots {
		tl.eachLeaf(visit)
	}
	for _, tl := range m.added {
		tl.eachLeaf(visit)
	}
	return found
}

// PoolStats reports the number of tweens and groups waiting in the pools.
func (m *Manager) PoolStats() (tweens, groups int) {
	return m.tweens.Len(), m.groups.Len()
}

// Pools returns the manager's pools.
func (m *Manager) Pools() (*Pool[*Tween], *Pool[*Group]) {
	return m.tweens, m.groups
}
