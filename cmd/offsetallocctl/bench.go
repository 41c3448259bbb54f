package main

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudwego/offsetalloc/internal/workerpool"
)

var benchWorkers int

var benchCmd = &cobra.Command{
	Use:   "bench <count> <size>",
	Short: "Time <count> allocate/free round trips of <size> bytes",
	Long: `bench times allocate/free round trips of a fixed size.

With --workers=1 (the default) it runs a single session serially, which
is the number that matters for the allocator's own O(1) guarantees:
offsetalloc has no internal locking and is not meant to be shared
across goroutines. --workers > 1 instead runs that many independent
sessions concurrently, which measures how the allocator behaves as one
per-goroutine arena among many, not concurrent access to one arena.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[0], err)
		}
		size, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", args[1], err)
		}

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		if benchWorkers <= 1 {
			return benchSerial(cfg, uint32(count), uint32(size))
		}
		return benchConcurrent(cfg, benchWorkers, uint32(count), uint32(size))
	},
}

func benchSerial(cfg arenaConfig, count, size uint32) error {
	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	for i := uint32(0); i < count; i++ {
		alloc, err := s.allocate(size)
		if err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		if err := s.free(alloc.Offset); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("%d round trips of %d bytes in %s (%.0f ns/op)\n",
		count, size, elapsed, float64(elapsed.Nanoseconds())/float64(count))
	return nil
}

// benchConcurrent runs `workers` independent sessions, each with its own
// arena and owned by one goroutine. The count round trips are split into
// `workers` shares, one per task; a goroutine that claims more than one
// task runs each of those shares on its own session. It reports aggregate
// throughput; a single arena is never shared between goroutines.
//
// Sessions are keyed by workerID, not by the taskIndex workerpool.Run
// hands out: taskIndex is drawn dynamically off a shared counter and
// gives no guarantee that a given index always runs on the same
// goroutine, so keying by it would let two goroutines race on the same
// session (concurrent Allocate/Free on one *Allocator32, and concurrent
// writes to session.live / session.history). workerID is fixed for the
// life of the goroutine, so sessions[workerID] is only ever touched by
// that one goroutine.
func benchConcurrent(cfg arenaConfig, workers int, count, size uint32) error {
	sessions := make([]*session, workers)
	for i := range sessions {
		s, err := newSession(cfg)
		if err != nil {
			return fmt.Errorf("worker %d: %w", i, err)
		}
		sessions[i] = s
	}

	var failures int64
	var mu sync.Mutex
	var firstErr error

	start := time.Now()
	workerpool.Run(workers, workers, func(taskIndex, workerID int) {
		s := sessions[workerID]
		roundTrips := roundTripsForTask(count, workers, taskIndex)
		for r := uint32(0); r < roundTrips; r++ {
			alloc, err := s.allocate(size)
			if err == nil {
				err = s.free(alloc.Offset)
			}
			if err != nil {
				atomic.AddInt64(&failures, 1)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
		}
	})
	elapsed := time.Since(start)

	fmt.Printf("%d round trips of %d bytes across %d workers in %s (%.0f ns/op, %d failed)\n",
		count, size, workers, elapsed, float64(elapsed.Nanoseconds())/float64(count), failures)
	if failures > 0 {
		printVerbose("first failure: %v\n", firstErr)
	}
	return nil
}

// roundTripsForTask splits count round trips evenly across `tasks` task
// indices, handing the remainder to the first `count % tasks` tasks so every
// round trip is still accounted for. workerpool.Run runs each task index
// exactly once, so the shares add up to count.
func roundTripsForTask(count uint32, tasks, taskIndex int) uint32 {
	base := count / uint32(tasks)
	if uint32(taskIndex) < count%uint32(tasks) {
		base++
	}
	return base
}

func init() {
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 1, "number of independent arenas to run concurrently")
	rootCmd.AddCommand(benchCmd)
}
