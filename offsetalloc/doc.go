// Package offsetalloc implements a hard-realtime, O(1) offset allocator.
//
// It sub-allocates an abstract, contiguous address range [0, size) and hands
// back integer offsets; it never touches the backing memory itself. Callers
// use it to carve up a GPU buffer, a shared-memory region, or any other
// pre-mapped arena into variable-size sub-allocations without per-operation
// syscalls or heap traffic.
//
// The allocator is not safe for concurrent use: a single Allocator must be
// driven from one goroutine at a time, same as unsafex/malloc's allocators.
package offsetalloc
