package dynarray

// Export internal state for white-box tests in dynarray package.

// BlockAt reads the raw backing slot i, including the free region, so tests
// can prove vacated slots are dropped.
func BlockAt[T any](d *DynamicArray[T], i int) T { return d.block.At(i) }

// BlockIsNull reports whether the array currently owns no block.
func BlockIsNull[T any](d *DynamicArray[T]) bool { return d.block.Null() }

// IterBlockAt reads raw iterator slot i so tests can prove yielded and
// released slots are dropped.
func IterBlockAt[T any](it *Iterator[T], i int) T { return it.block.At(i) }

const BootstrapCapacity = bootstrapCapacity
