// Package arena implements a region allocator: a chain of fixed-capacity
// blocks handing out aligned memory with a bump pointer, reclaimed in bulk
// via Release, Reset, or Destroy rather than per allocation.
package arena

import "unsafe"

// DefaultBlockSize is the default block capacity for new arenas (64 KiB).
const DefaultBlockSize = 1 << 16

// maxAlign is the natural maximal alignment, used when a caller passes
// align == 0. Every Go type's alignment divides it.
const maxAlign = unsafe.Sizeof(uintptr(0))

const maxInt = int(^uint(0) >> 1)

// block is a single fixed-capacity buffer with a write cursor.
// The cursor only moves forward between reclamations and counts
// alignment padding as consumed.
type block struct {
	buf    []byte  // backing memory, capacity never changes
	offset uintptr // bytes consumed within buf
}

// Arena is a region allocator. Blocks are kept oldest-first; the newest
// block (the last element) is the only one allocated from. Not
// goroutine-safe: an arena has a single logical owner.
type Arena struct {
	blocks    []block
	current   *block // cached &blocks[len(blocks)-1], nil when empty
	blockSize int    // default capacity when growing
	reserved  int    // sum of block capacities, maintained at create/free
}

// NewArena creates an arena and eagerly allocates its first block.
// If blockSize <= 0, DefaultBlockSize is used.
func NewArena(blockSize int) *Arena {
	a := &Arena{}
	a.Init(blockSize)
	return a
}

// Init (re)initializes the arena as if newly constructed: any live blocks
// are dropped, the default block capacity is set, and the first block is
// allocated eagerly. If blockSize <= 0, DefaultBlockSize is used.
// Init after Destroy makes the arena indistinguishable from a fresh one.
func (a *Arena) Init(blockSize int) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	a.blocks = nil
	a.current = nil
	a.blockSize = blockSize
	a.reserved = 0
	a.grow(blockSize)
}

// AllocBytes returns a []byte of n bytes inside the arena, aligned to the
// natural maximal alignment. The slice is valid until the owning block is
// reclaimed by Release, Reset, or Destroy. Returns nil if n <= 0 or the
// size arithmetic would overflow. The caller must keep the arena reachable
// while the returned slice is in use.
func (a *Arena) AllocBytes(n int) []byte {
	return a.AllocBytesAligned(n, 0)
}

// AllocBytesAligned is AllocBytes with an explicit alignment. align must
// be a power of two, or 0 for the natural maximal alignment. The address
// of the first byte of the result satisfies addr % align == 0.
//
// A nil result means the request was empty or the size/address arithmetic
// overflowed; the arena is left unchanged in either case.
func (a *Arena) AllocBytesAligned(n int, align uintptr) []byte {
	if n <= 0 {
		return nil
	}
	if align == 0 {
		align = maxAlign
	}

	// Fast path: bump within the current block.
	if c := a.current; c != nil {
		if p := c.take(n, align); p != nil {
			return p
		}
	}
	return a.allocSlow(n, align)
}

// allocSlow grows the chain and retries against the fresh block. The new
// block is sized for the request plus worst-case alignment slack, so the
// retry can only fail on overflow.
func (a *Arena) allocSlow(n int, align uintptr) []byte {
	if !a.growFor(n, align) {
		return nil
	}
	return a.current.take(n, align)
}

// ZallocBytes is AllocBytes with the returned bytes zero-filled.
func (a *Arena) ZallocBytes(n int) []byte {
	return a.ZallocBytesAligned(n, 0)
}

// ZallocBytesAligned is AllocBytesAligned with the returned bytes
// zero-filled. Blocks are recycled by Reset and Release, so the clear is
// not redundant.
func (a *Arena) ZallocBytesAligned(n int, align uintptr) []byte {
	p := a.AllocBytesAligned(n, align)
	if p != nil {
		clear(p)
	}
	return p
}

// EnsureCapacity makes sure the current block can satisfy an n-byte
// allocation at natural alignment without growing mid-operation.
func (a *Arena) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	if c := a.current; c != nil && c.fits(n, maxAlign) {
		return
	}
	a.growFor(n, maxAlign)
}

// Reset frees every block except the oldest and rewinds its cursor to
// zero. Repeated reset cycles reuse the retained block instead of going
// back to the allocator each time. All previously returned memory is
// invalidated.
func (a *Arena) Reset() {
	if len(a.blocks) == 0 {
		return
	}
	for i := 1; i < len(a.blocks); i++ {
		a.reserved -= len(a.blocks[i].buf)
		a.blocks[i] = block{}
	}
	a.blocks = a.blocks[:1]
	a.blocks[0].offset = 0
	a.current = &a.blocks[0]
}

// Destroy frees every block and returns the arena to its pristine empty
// state. The arena is reusable afterward, either explicitly via Init or
// lazily on the next allocation (which sizes blocks per request until
// Init sets a default again).
func (a *Arena) Destroy() {
	a.blocks = nil
	a.current = nil
	a.blockSize = 0
	a.reserved = 0
}

// growFor appends a block large enough for an n-byte allocation at the
// given alignment in the worst case. Reports false when n plus the
// alignment slack overflows, leaving the arena unchanged.
func (a *Arena) growFor(n int, align uintptr) bool {
	slack := int(align - 1)
	if n > maxInt-slack {
		return false
	}
	capacity := n + slack
	if a.blockSize > capacity {
		capacity = a.blockSize
	}
	if a.blockSize == 0 {
		// First growth after Destroy sets the default, as Init would.
		a.blockSize = capacity
	}
	a.grow(capacity)
	return true
}

// grow appends a new block of the given capacity (clamped to at least one
// byte) and makes it current.
func (a *Arena) grow(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	a.blocks = append(a.blocks, block{buf: make([]byte, capacity)})
	a.current = &a.blocks[len(a.blocks)-1]
	a.reserved += capacity
}

// take commits an n-byte allocation at the given alignment, or returns nil
// if the block lacks room or the address round-up would overflow.
func (b *block) take(n int, align uintptr) []byte {
	off, ok := b.alignedOffset(align)
	if !ok || off > uintptr(len(b.buf)) || uintptr(len(b.buf))-off < uintptr(n) {
		return nil
	}
	start := int(off)
	b.offset = off + uintptr(n)
	// Use unsafe slice creation to avoid bounds checks
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.buf[start])), n)
}

// fits reports whether take would succeed, without committing.
func (b *block) fits(n int, align uintptr) bool {
	off, ok := b.alignedOffset(align)
	return ok && off <= uintptr(len(b.buf)) && uintptr(len(b.buf))-off >= uintptr(n)
}

// alignedOffset rounds the cursor up so the corresponding address is a
// multiple of align. Alignment is of the address, not the offset: the
// block's base is not assumed to be aligned.
func (b *block) alignedOffset(align uintptr) (uintptr, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
	addr := base + b.offset
	mask := align - 1
	if addr > ^uintptr(0)-mask {
		return 0, false
	}
	return (addr+mask)&^mask - base, true
}
