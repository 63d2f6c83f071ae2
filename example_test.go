package arena_test

import (
	"fmt"

	"github.com/arenakit/arena"
)

// Example demonstrates basic arena usage
func Example() {
	// Create a new arena with a 1 KiB default block size
	a := arena.NewArena(1024)
	defer a.Destroy() // Always clean up

	// Allocate raw bytes
	buf := a.AllocBytes(512)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// Allocate a typed value (zeroed)
	ptr := arena.Alloc[int64](a)
	*ptr = 42
	fmt.Printf("Allocated int with value: %d\n", *ptr)

	// Allocate a slice
	slice := arena.AllocSlice[int64](a, 4)
	for i := range slice {
		slice[i] = int64(i) * 2
	}
	fmt.Printf("Allocated slice: %v\n", slice)

	// Check memory usage
	fmt.Printf("%d used / %d reserved\n", a.BytesUsed(), a.BytesReserved())

	// Reset for reuse: keeps the oldest block
	a.Reset()
	fmt.Printf("After reset: %d used / %d reserved\n", a.BytesUsed(), a.BytesReserved())

	// Output:
	// Allocated buffer of size: 512
	// Allocated int with value: 42
	// Allocated slice: [0 2 4 6]
	// 552 used / 1024 reserved
	// After reset: 0 used / 1024 reserved
}

// ExampleArena_Mark demonstrates checkpoint-based scratch regions
func ExampleArena_Mark() {
	a := arena.NewArena(1024)
	defer a.Destroy()

	// Long-lived data first
	xs := arena.AllocSlice[int64](a, 8)
	for i := range xs {
		xs[i] = int64(i)
	}

	// Checkpoint, then a large temporary computation
	m := a.Mark()
	scratch := arena.AllocSlice[float64](a, 1<<16)
	for i := range scratch {
		scratch[i] = float64(i)
	}
	fmt.Printf("With scratch: %d blocks\n", a.NumBlocks())

	// Roll back: the scratch block is freed, xs survives
	a.Release(m)
	fmt.Printf("After release: %d used / %d reserved\n", a.BytesUsed(), a.BytesReserved())
	fmt.Printf("xs[7] = %d\n", xs[7])

	// Output:
	// With scratch: 2 blocks
	// After release: 64 used / 1024 reserved
	// xs[7] = 7
}

// ExampleStrdup demonstrates copying strings into arena storage
func ExampleStrdup() {
	a := arena.NewArena(0)
	defer a.Destroy()

	name := arena.Strdup(a, "transient")
	fmt.Println(name)

	// Output:
	// transient
}
