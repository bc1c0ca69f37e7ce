// Package cli implements the command-line interface for brcagg.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/eunmann/brcagg/internal/logctx"
	"github.com/eunmann/brcagg/pkg/engine"
	"github.com/eunmann/brcagg/pkg/gen"
	"github.com/eunmann/brcagg/pkg/humanfmt"
	"github.com/eunmann/brcagg/pkg/input"
	"github.com/eunmann/brcagg/pkg/logging"
	"github.com/eunmann/brcagg/pkg/sysmem"
)

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: brcagg <command> [options]\ncommands: run, generate")
	}

	switch args[0] {
	case "run":
		return runAggregate(args[1:])
	case "generate":
		return runGenerate(args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runAggregate(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	workers := fs.Int("workers", 0, "number of scan workers (0 = logical CPUs)")
	tableSlots := fs.Int("table-slots", 0, "initial hash table slots per worker")
	debug := fs.Bool("debug", false, "enable debug logging")
	human := fs.Bool("human", false, "human-friendly console logging")
	cpuprofile := fs.String("cpuprofile", "", "write a CPU profile to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("exactly one measurements file is required")
	}
	path := fs.Arg(0)

	logging.Init(*debug, *human)
	ctx := logctx.WithStr(context.Background(), "path", path)

	src, err := input.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	warnHeadroom(ctx, int64(len(src.Data)))

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	tab, err := engine.Run(ctx, src.Data, engine.Config{
		Workers:    *workers,
		TableSlots: *tableSlots,
	})
	if err != nil {
		return err
	}

	out := engine.AppendResult(make([]byte, 0, 1<<16), tab)
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	elapsed := time.Since(start)
	log := logctx.FromContext(ctx)
	log.Info().
		Str("event", "run_completed").
		Uint64("rows", tab.Rows()).
		Int("keys", tab.Len()).
		Int64("bytes", int64(len(src.Data))).
		Int64("duration_ms", elapsed.Milliseconds()).
		Str("duration_h", humanfmt.Duration(elapsed)).
		Str("throughput", humanfmt.Throughput(int64(len(src.Data)), elapsed)).
		Str("row_rate", humanfmt.Rate(int64(tab.Rows()), elapsed)).
		Msg("aggregation finished")
	return nil
}

// warnHeadroom flags inputs that cannot stay resident in RAM; the mapped
// scan still works but will be paging-bound.
func warnHeadroom(ctx context.Context, size int64) {
	total, ok := sysmem.Total()
	if !ok {
		return
	}
	if uint64(size) > total {
		log := logctx.FromContext(ctx)
		log.Warn().
			Int64("file_bytes", size).
			Uint64("ram_bytes", total).
			Str("file_h", humanfmt.Bytes(size)).
			Msg("input exceeds system memory; expect page-cache churn")
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	rows := fs.Int64("rows", 1_000_000, "number of rows to generate")
	out := fs.String("out", "", "output file path")
	seed := fs.Int64("seed", 42, "generation seed")
	stations := fs.Int("stations", 0, "distinct stations (0 = whole pool)")
	debug := fs.Bool("debug", false, "enable debug logging")
	human := fs.Bool("human", false, "human-friendly console logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("--out is required")
	}
	if *rows <= 0 {
		return errors.New("--rows must be positive")
	}

	logging.Init(*debug, *human)
	ctx := logctx.WithStr(context.Background(), "path", *out)

	g := gen.NewGenerator(gen.Config{
		Rows:     *rows,
		Stations: *stations,
		Seed:     *seed,
	})
	return g.WriteFile(ctx, *out)
}
