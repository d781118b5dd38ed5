package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel with standard
// deviation sigma. The kernel spans 2*ceil(3σ)+1 taps.
//
// For sigma <= 0, returns the identity kernel [1.0].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// kernelCache caches computed Gaussian kernels. The key is sigma*100.
type kernelCache struct {
	mu    sync.RWMutex
	cache map[int][]float32
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float32)}

// CachedGaussianKernel returns GaussianKernel(sigma) from a shared cache.
// Callers must not modify the returned slice.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	defaultKernelCache.mu.RLock()
	k, ok := defaultKernelCache.cache[key]
	defaultKernelCache.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)

	defaultKernelCache.mu.Lock()
	defaultKernelCache.cache[key] = k
	defaultKernelCache.mu.Unlock()
	return k
}
