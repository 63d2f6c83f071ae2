// Package arena implements a region allocator (memory arena) for Go.
//
// # Overview
//
// A region allocator hands out aligned memory from a chain of preallocated
// blocks in O(1) amortized time. Individual allocations are never freed;
// memory is reclaimed in bulk, either completely, back to a checkpoint, or
// down to a retained baseline. This suits transient, high-churn allocation
// where many small lifetimes are collectively bounded:
//
//   - Per-request scratch space in servers
//   - Parser and codec temporaries
//   - Temporary buffers with batch cleanup
//   - Reducing garbage collection pressure
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default block size
//	defer a.Destroy()      // Clean up when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
//	// Reset for reuse: keeps the oldest block, frees the rest
//	a.Reset()
//
// # Checkpoints
//
// Mark and Release give stack-like nested scratch regions:
//
//	m := a.Mark()
//	scratch := arena.AllocSlice[float64](a, 1<<20)
//	// ... use scratch ...
//	a.Release(m) // everything since the mark is reclaimed
//
// Marks obey stack discipline: release the innermost mark first, and never
// use a mark after a Reset or Destroy has freed its block.
//
// # Memory Layout
//
// The arena allocates memory in blocks (default 64 KiB). When the current
// block cannot satisfy a request after alignment, a new block is chained in
// front, sized at least for the request plus worst-case alignment slack.
// Memory within a block is handed out sequentially by bumping a cursor.
//
// # Failure Semantics
//
// Allocation never panics. A nil result means the request was empty or the
// size/address arithmetic would overflow; the arena state is unchanged
// either way, and callers treat any nil as out-of-memory.
//
// # Performance Characteristics
//
//   - Allocation: O(1) amortized
//   - Mark: O(1), allocation-free
//   - Release: O(blocks freed)
//   - Reset: O(number of blocks)
//   - Destroy: O(1)
//
// # Important Notes
//
//   - Allocated memory is only valid until its block is reclaimed
//   - No individual deallocation - use Release, Reset, or Destroy
//   - Memory is zeroed only by the Zalloc variants and Alloc/AllocZeroed
//   - Not goroutine-safe: one logical owner per arena instance
//
// # Introspection
//
//	m := a.Metrics()
//	fmt.Printf("%d used / %d reserved\n", m.BytesUsed, m.BytesReserved)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package arena
