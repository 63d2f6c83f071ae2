package arena

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a T stored inside the arena with zeroed
// memory, aligned for T. Returns nil if the size arithmetic overflows or
// T is zero-sized. The pointer is valid until the owning block is
// reclaimed.
func Alloc[T any](a *Arena) *T {
	var zero T
	b := a.ZallocBytesAligned(int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocZeroed is identical to Alloc - provided for API consistency.
func AllocZeroed[T any](a *Arena) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the arena without zeroing
// memory. This is faster than Alloc but the memory contents are undefined.
// Use with caution - ensure proper initialization before use.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	b := a.AllocBytesAligned(int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the arena,
// aligned for T. The elements are not initialized (contain garbage data).
// Returns nil if n <= 0 or size*n would overflow.
func AllocSlice[T any](a *Arena, n int) []T {
	b := allocSliceBytes[T](a, n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. Same failure semantics as AllocSlice.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	b := allocSliceBytes[T](a, n)
	if b == nil {
		return nil
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// allocSliceBytes does the overflow-checked size*count computation shared
// by the slice helpers.
func allocSliceBytes[T any](a *Arena, n int) []byte {
	if n <= 0 {
		return nil
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 || n > maxInt/elem {
		return nil
	}
	return a.AllocBytesAligned(elem*n, unsafe.Alignof(zero))
}

// Strdup copies s into arena-owned storage at byte alignment and returns
// a string aliasing that storage. The empty string and allocation failure
// both yield "".
func Strdup(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.AllocBytesAligned(len(s), 1)
	if b == nil {
		return ""
	}
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
