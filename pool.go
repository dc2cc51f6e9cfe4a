package tween

// recyclable is satisfied by *Tween and *Group.
type recyclable interface {
	reset()
	inPool() bool
	setInPool(bool)
	isAttached() bool
}

// PoolConfig controls a Pool.
type PoolConfig struct {
	// MaxSize caps the free list. Objects released while the free list is
	// full are dropped for the garbage collector. Zero means unbounded.
	MaxSize int
}

// Pool is a free list of recycled timelines of one type. Acquire on an empty
// pool constructs a new object. Pools are not safe for concurrent use.
type Pool[T recyclable] struct {
	free      []T
	newFn     func() T
	maxSize   int
	created   int
	discarded int
}

// NewPool creates a pool constructing objects with newFn.
func NewPool[T recyclable](newFn func() T, cfg PoolConfig) *Pool[T] {
	return &Pool[T]{newFn: newFn, maxSize: max(cfg.MaxSize, 0)}
}

// NewTweenPool creates a pool of tweens.
func NewTweenPool(cfg PoolConfig) *Pool[*Tween] { return NewPool(newTween, cfg) }

// NewGroupPool creates a pool of groups.
func NewGroupPool(cfg PoolConfig) *Pool[*Group] { return NewPool(newGroup, cfg) }

// Acquire returns a recycled object, or a new one if the free list is empty.
// The object is in its zero configuration.
func (p *Pool[T]) Acquire() T {
	n := len(p.free)
	if n == 0 {
		p.created++
		return p.newFn()
	}
	v := p.free[n-1]
	var zero T
	p.free[n-1] = zero
	p.free = p.free[:n-1]
	v.setInPool(false)
	return v
}

// Release resets v and returns it to the free list. Releasing an object that
// is already released fails with ErrDoubleRelease; releasing one that is
// still attached to a manager or group fails with ErrAttached.
func (p *Pool[T]) Release(v T) error {
	if v.inPool() {
		return ErrDoubleRelease
	}
	if v.isAttached() {
		return ErrAttached
	}
	v.reset()
	v.setInPool(true)
	if p.maxSize > 0 && len(p.free) >= p.maxSize {
		p.discarded++
		return nil
	}
	p.free = append(p.free, v)
	return nil
}

// Len returns the number of objects waiting in the free list.
func (p *Pool[T]) Len() int { return len(p.free) }

// Created returns how many objects the pool has constructed.
func (p *Pool[T]) Created() int { return p.created }

// Discarded returns how many released objects were dropped because the free
// list was full.
func (p *Pool[T]) Discarded() int { return p.discarded }
