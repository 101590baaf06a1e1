package ray

import (
	"log"
	"time"
)

// Pool recycles rays through a free-list of indices
// Acquire and release are O(1); the pool grows when the free-list is empty
type Pool struct {
	rays   []*Ray
	free   []int
	active int
	grown  int
}

// NewPool preallocates capacity inactive rays
func NewPool(capacity int) *Pool {
	p := &Pool{
		rays: make([]*Ray, 0, capacity),
		free: make([]int, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		p.rays = append(p.rays, &Ray{pool: p, index: i})
	}
	// Push in reverse so low indices are handed out first
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p
}

// Acquire pops a free ray, allocating a new one when none are free
// The ray is marked active; callers initialize it with Reset
func (p *Pool) Acquire() *Ray {
	var r *Ray
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		r = p.rays[idx]
	} else {
		r = &Ray{pool: p, index: len(p.rays)}
		p.rays = append(p.rays, r)
		p.grown++
		log.Printf("[pool] warn: ray pool exhausted, grown to %d", len(p.rays))
	}
	r.active = true
	p.active++
	return r
}

// Spawn acquires a ray and resets it with params
func (p *Pool) Spawn(params ResetParams) *Ray {
	r := p.Acquire()
	r.Reset(params)
	return r
}

func (p *Pool) release(idx int) {
	p.free = append(p.free, idx)
	p.active--
}

// ForEachActive visits active rays in index order
// Deactivating the visited ray during the callback is safe
func (p *Pool) ForEachActive(fn func(r *Ray)) {
	for _, r := range p.rays {
		if r.active {
			fn(r)
		}
	}
}

// Update advances every active ray
func (p *Pool) Update(dt time.Duration, env *Env) {
	for _, r := range p.rays {
		if r.active {
			r.Update(dt, env)
		}
	}
}

// Clear deactivates every ray
func (p *Pool) Clear() {
	for _, r := range p.rays {
		r.Deactivate()
	}
}

// ActiveCount returns the number of rays in play
func (p *Pool) ActiveCount() int { return p.active }

// Len returns the total number of rays owned by the pool
func (p *Pool) Len() int { return len(p.rays) }

// Grown returns how many rays were allocated past the initial capacity
func (p *Pool) Grown() int { return p.grown }
