package raster

import "sync"

// Pool is a thread-safe pool for reusing scratch pixmaps.
//
// Pool groups pixmaps by dimensions. Renders at one output size allocate
// the same handful of scratch layers every time, so keeping them avoids
// several megabytes of garbage per render.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Pixmap
	maxSize int // max pixmaps per bucket
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket pixmaps per size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Pixmap),
		maxSize: maxPerBucket,
	}
}

// Get returns a cleared pixmap of the requested size.
func (p *Pool) Get(width, height int) *Pixmap {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		pm := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		pm.Clear()
		return pm
	}
	p.mu.Unlock()

	return NewPixmap(width, height)
}

// Put returns pm to the pool. Nil pixmaps and full buckets discard it.
func (p *Pool) Put(pm *Pixmap) {
	if pm == nil {
		return
	}
	key := poolKey{width: pm.width, height: pm.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, pm)
}

// Scratch is the package-wide pool used by filters and layers.
var Scratch = NewPool(4)
