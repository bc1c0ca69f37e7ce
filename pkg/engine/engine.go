// Package engine implements the parallel scan-and-merge aggregation core:
// line-aligned partitioning of an in-memory byte view, one scan worker per
// partition with a private hash table, and a deterministic merge of the
// worker tables after all of them finish.
//
// Values are tenths-scaled integers throughout, so results are exact and
// identical for any worker count and merge order.
package engine

import (
	"context"
	"runtime"
	"time"

	"github.com/eunmann/brcagg/internal/logctx"
	"github.com/eunmann/brcagg/pkg/humanfmt"
	"golang.org/x/sync/errgroup"
)

// Config controls a run. The zero value picks defaults.
type Config struct {
	// Workers is the number of scan workers. Defaults to runtime.NumCPU().
	Workers int

	// TableSlots is the initial slot count of each worker table, rounded
	// up to a power of two. Defaults to DefaultTableSlots.
	TableSlots int
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.NumCPU(),
		TableSlots: DefaultTableSlots,
	}
}

// Run aggregates every record in data and returns the merged table.
//
// A run is a bounded batch job: workers run to completion or fail fatally,
// and the first failure aborts the whole run with no partial result. The
// context carries the logger; cancellation is not observed mid-scan.
func Run(ctx context.Context, data []byte, cfg Config) (*Table, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.TableSlots <= 0 {
		cfg.TableSlots = DefaultTableSlots
	}

	log := logctx.FromContext(ctx)
	spans := partitions(data, cfg.Workers)
	tables := make([]*Table, len(spans))

	scanStart := time.Now()
	var g errgroup.Group
	for i, sp := range spans {
		if sp.start == sp.end {
			continue
		}
		i, sp := i, sp
		g.Go(func() error {
			t := NewTable(cfg.TableSlots)
			if err := scanPartition(data, sp.start, sp.end, t); err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	// The barrier: the reduce step must not start before every worker is done.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	scanElapsed := time.Since(scanStart)

	mergeStart := time.Now()
	global := NewTable(cfg.TableSlots)
	for _, t := range tables {
		if t != nil {
			global.fold(t)
		}
	}
	mergeElapsed := time.Since(mergeStart)

	log.Info().
		Str("event", "phase_completed").
		Str("phase", "scan").
		Int("workers", cfg.Workers).
		Int64("bytes", int64(len(data))).
		Int64("duration_ms", scanElapsed.Milliseconds()).
		Str("throughput", humanfmt.Throughput(int64(len(data)), scanElapsed)).
		Msg("scan complete")
	log.Info().
		Str("event", "phase_completed").
		Str("phase", "merge").
		Int("keys", global.Len()).
		Int64("duration_ms", mergeElapsed.Milliseconds()).
		Msg("merge complete")

	return global, nil
}
