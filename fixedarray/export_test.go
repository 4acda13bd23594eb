package fixedarray

// Export internal state for white-box tests in fixedarray package.

// BlockAt reads the raw backing slot i, including the free region, so tests
// can prove vacated slots are dropped.
func BlockAt[T any](a *Array[T], i int) T { return a.block.At(i) }

// BlockCap reports the raw backing block capacity.
func BlockCap[T any](a *Array[T]) int { return a.block.Cap() }
