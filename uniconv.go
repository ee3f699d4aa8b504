package uniconv

// Exclusion is a mutual-exclusion region guarding the process-wide fallback
// conversion state. Acquire is entered once per operation call and Release
// runs on every exit path, error exits included.
//
// Implementations must be safe for the contexts the engine is called from.
// The default implementation wraps a sync.Mutex; bare-metal or
// interrupt-context embeddings can inject a spinlock or an
// interrupt-masking region instead.
type Exclusion interface {
	Acquire()
	Release()
}
