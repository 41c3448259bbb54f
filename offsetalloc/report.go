package offsetalloc

import "math/bits"

// StorageReport is a read-only, O(1) derived view of free space.
//
// LargestFreeRegion is the bin-decoded size of the highest non-empty bin,
// not the actual largest free block: a bin holds blocks in
// [binToSize(b), binToSize(b+1)), so this is a lower-bound estimate: the
// largest block may be bigger by up to ~1/2^mantissaBits. This is intentional (see
// spec.md §6) and callers using it as a scheduling hint must tolerate it.
type StorageReport struct {
	TotalFreeSpace    uint32
	LargestFreeRegion uint32
}

// StorageReport reports total free bytes and a lower-bound estimate of the
// largest contiguous free region.
func (a *Allocator[I]) StorageReport() StorageReport {
	var report StorageReport

	// Out of node descriptors -> zero free space, even if freeStorage
	// hasn't caught up (mirrors the reference implementation).
	if a.freeOffset > 0 {
		report.TotalFreeSpace = a.freeStorage

		if a.usedBinsTop != 0 {
			top := uint32(31 - bits.LeadingZeros32(a.usedBinsTop))
			leaf := uint32(7 - bits.LeadingZeros8(a.usedBins[top]))
			report.LargestFreeRegion = binToSize((top << 3) | leaf)
		}
	}

	return report
}

// BinReport is one row of a StorageReportFull histogram.
type BinReport struct {
	Size  uint32 // nominal size of the bin, i.e. binToSize(bin)
	Count uint32 // number of free nodes currently in the bin
}

// StorageReportFull is a per-bin histogram of free node counts.
type StorageReportFull struct {
	FreeRegions [numLeafBins]BinReport
}

// StorageReportFull walks every bin's free list and counts its nodes. Unlike
// Allocate and Free it isn't O(1); it's O(bins + free nodes) and intended
// for diagnostics, not the hot path.
func (a *Allocator[I]) StorageReportFull() StorageReportFull {
	var report StorageReportFull
	unused := unusedIndex[I]()

	for bin := uint32(0); bin < numLeafBins; bin++ {
		count := uint32(0)
		idx := a.binIndices[bin]
		for idx != unused {
			idx = a.nodes[int(idx)].binListNext
			count++
		}
		report.FreeRegions[bin] = BinReport{Size: binToSize(bin), Count: count}
	}

	return report
}
