package main

import (
	"fmt"
	"time"

	"clifford/internal/batch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchCount       int
	batchConcurrency int
)

// batchCmd generates several presets concurrently
var batchCmd = &cobra.Command{
	Use:   "batch [preset...]",
	Short: "Generate configured presets concurrently and compare their extents",
	Long: `Runs every named preset from the config file (all presets when none are
named) through the concurrent batch runner and prints one row per preset.

Example:
  clifford batch
  clifford batch classic wings --count 500000 --concurrency 2`,
	RunE: runBatch,
}

func registerBatchFlags() {
	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 0, "Points per preset (default: batch.count from config)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Parallel presets (default: batch.concurrency from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	n := cfg.Batch.Count
	if cmd.Flags().Changed("count") {
		n = batchCount
	}
	if err := cfg.CheckCount(n); err != nil {
		return err
	}
	concurrency := cfg.Batch.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = batchConcurrency
	}

	names := args
	if len(names) == 0 {
		names = cfg.PresetNames()
	}
	jobs := make([]batch.Job, 0, len(names))
	for _, name := range names {
		p, ok := cfg.Preset(name)
		if !ok {
			return fmt.Errorf("unknown preset %q (available: %v)", name, cfg.PresetNames())
		}
		jobs = append(jobs, batch.Job{Name: name, Params: p, N: n})
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	logger.Info("Running batch", zap.Int("jobs", len(jobs)), zap.Int("n", n), zap.Int("concurrency", concurrency))
	results, err := batch.NewRunner(concurrency).Run(ctx, jobs)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		s := r.Summary
		rows = append(rows, []string{
			r.Name,
			fmt.Sprintf("%d", r.N),
			fmt.Sprintf("[%s, %s]", formatFloat(s.MinX), formatFloat(s.MaxX)),
			fmt.Sprintf("[%s, %s]", formatFloat(s.MinY), formatFloat(s.MaxY)),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"preset", "points", "x range", "y range", "elapsed"}, rows))
	return err
}
