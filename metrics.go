package arena

// BytesUsed returns the total number of bytes consumed across all live
// blocks. This includes internal fragmentation due to alignment.
func (a *Arena) BytesUsed() int {
	sum := 0
	for i := range a.blocks {
		sum += int(a.blocks[i].offset)
	}
	return sum
}

// BytesReserved returns the total capacity (in bytes) of all live blocks -
// the upper bound of memory currently owned by the arena. BytesUsed never
// exceeds it.
func (a *Arena) BytesReserved() int {
	return a.reserved
}

// NumBlocks returns the number of blocks currently in the chain.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// BlockSize returns the default block capacity used when the arena grows.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// Utilization returns the ratio of bytes used to bytes reserved (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	reserved := a.BytesReserved()
	if reserved == 0 {
		return 0
	}
	return float64(a.BytesUsed()) / float64(reserved)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		BytesUsed:     a.BytesUsed(),
		BytesReserved: a.BytesReserved(),
		NumBlocks:     a.NumBlocks(),
		BlockSize:     a.BlockSize(),
		Utilization:   a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	BytesUsed     int     // Bytes consumed, alignment padding included
	BytesReserved int     // Total capacity across live blocks
	NumBlocks     int     // Number of blocks in the chain
	BlockSize     int     // Default block capacity
	Utilization   float64 // Ratio of used to reserved (0.0-1.0)
}
