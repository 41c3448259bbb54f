package main

import (
	"fmt"

	"github.com/cloudwego/offsetalloc/container/ring"
	"github.com/cloudwego/offsetalloc/offsetalloc"
)

// historyCapacity bounds how many recent operations `dump`/`history` can
// show. The CLI is a diagnostic tool operating on one process's worth of
// commands, not a durable audit log, so a small fixed window is enough.
const historyCapacity = 256

// session wraps one Allocator32 plus the offset->Allocation bookkeeping the
// core package deliberately doesn't do (spec.md's Allocation.Metadata is
// the only reliable free handle; the CLI keys allocations by offset purely
// for operator convenience) and a bounded history of recent operations for
// the `dump`/`history` subcommands. Every offsetallocctl command builds a
// fresh session, so neither the tracked offsets nor the history carry over
// from one invocation to the next.
type session struct {
	alloc   *offsetalloc.Allocator32
	live    map[uint32]offsetalloc.Allocation[uint32]
	history *ring.History
}

func newSession(cfg arenaConfig) (*session, error) {
	a, err := offsetalloc.New[uint32](cfg.Size, cfg.MaxAllocs)
	if err != nil {
		return nil, err
	}
	return &session{
		alloc:   a,
		live:    make(map[uint32]offsetalloc.Allocation[uint32]),
		history: ring.NewHistory(historyCapacity),
	}, nil
}

func (s *session) allocate(size uint32) (offsetalloc.Allocation[uint32], error) {
	alloc := s.alloc.Allocate(size)
	s.history.Append(ring.Entry{
		Op:      ring.OpAllocate,
		Offset:  alloc.Offset,
		Size:    size,
		NodeIdx: uint32(alloc.Metadata),
		Failed:  alloc.Failed(),
	})
	if alloc.Failed() {
		return alloc, fmt.Errorf("allocate(%d): NO_SPACE", size)
	}
	s.live[alloc.Offset] = alloc
	return alloc, nil
}

func (s *session) free(offset uint32) error {
	alloc, ok := s.live[offset]
	if !ok {
		return fmt.Errorf("no tracked allocation at offset %d", offset)
	}
	s.alloc.Free(alloc)
	delete(s.live, offset)
	s.history.Append(ring.Entry{
		Op:      ring.OpFree,
		Offset:  offset,
		NodeIdx: uint32(alloc.Metadata),
	})
	return nil
}
