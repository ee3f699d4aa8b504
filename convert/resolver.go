package convert

import (
	"sync"

	"github.com/wippyai/uniconv"
	"github.com/wippyai/uniconv/codec"
)

// fallback is the process-wide conversion state used when the caller
// supplies no explicit state. It lives for the life of the process and is
// only ever touched inside the exclusion region.
var fallback codec.State

var (
	region     uniconv.Exclusion
	regionOnce sync.Once
)

// Region returns the exclusion region guarding the shared fallback state.
// It uses a mutex-backed region by default.
func Region() uniconv.Exclusion {
	regionOnce.Do(func() {
		if region == nil {
			region = new(mutexRegion)
		}
	})
	return region
}

// SetRegion injects a replacement exclusion region, for embeddings where a
// mutex is unavailable or unsafe. It replaces any previously installed
// region, including the default, and must not race with in-flight
// conversions that use the fallback state.
func SetRegion(e uniconv.Exclusion) {
	regionOnce.Do(func() {})
	region = e
}

// mutexRegion is the default Exclusion implementation.
type mutexRegion struct {
	mu sync.Mutex
}

func (r *mutexRegion) Acquire() { r.mu.Lock() }
func (r *mutexRegion) Release() { r.mu.Unlock() }
