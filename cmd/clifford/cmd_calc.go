package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"clifford/internal/attractor"
	"clifford/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	calcFormat string

	// Coefficient overrides, applied only when the flag is set
	flagA, flagB, flagC, flagD, flagSD float64
)

// calcCmd prints the trajectory
var calcCmd = &cobra.Command{
	Use:   "calc [n]",
	Short: "Print the first n points of the attractor",
	Long: `Prints the first n points of the trajectory.

Formats:
  lines   two lines: all x values, then all y values (default)
  json    {"xs": [...], "ys": [...]}
  points  one "x y" pair per line, streamed without holding the trajectory in memory

Example:
  clifford calc 3
  clifford calc 100000 --format points --c -1.7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalc,
}

// summaryCmd prints bounds and means of the trajectory
var summaryCmd = &cobra.Command{
	Use:   "summary [n]",
	Short: "Show the bounding box and mean of the first n points",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func registerCalcFlags() {
	calcCmd.Flags().StringVarP(&calcFormat, "format", "f", "lines", "Output format: lines, json, points")
	for _, c := range []*cobra.Command{calcCmd, summaryCmd} {
		c.Flags().Float64Var(&flagA, "a", attractor.DefaultA, "Coefficient a")
		c.Flags().Float64Var(&flagB, "b", attractor.DefaultB, "Coefficient b")
		c.Flags().Float64Var(&flagC, "c", attractor.DefaultC, "Coefficient c")
		c.Flags().Float64Var(&flagD, "d", attractor.DefaultD, "Coefficient d")
		c.Flags().Float64Var(&flagSD, "sd", attractor.DefaultSD, "Per-step increment of s")
	}
}

// resolveParams starts from the configured attractor and applies any coefficient flags.
func resolveParams(cmd *cobra.Command) attractor.Params {
	p := cfg.Attractor.Params()
	overrides := []struct {
		name string
		dst  *float64
		src  float64
	}{
		{"a", &p.A, flagA}, {"b", &p.B, flagB}, {"c", &p.C, flagC},
		{"d", &p.D, flagD}, {"sd", &p.SD, flagSD},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			*o.dst = o.src
		}
	}
	return p
}

// resolveCount parses the optional count argument, falling back to the configured default.
func resolveCount(args []string) (int, error) {
	n := cfg.Generation.DefaultCount
	if len(args) > 0 {
		var err error
		n, err = attractor.ParseCount(args[0])
		if err != nil {
			return 0, err
		}
	}
	if err := cfg.CheckCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	switch calcFormat {
	case "lines", "json", "points":
	default:
		return fmt.Errorf("unknown format %q (want lines, json or points)", calcFormat)
	}
	n, err := resolveCount(args)
	if err != nil {
		return err
	}
	p := resolveParams(cmd)
	if err := p.Validate(); err != nil {
		return err
	}
	logger.Debug("Generating trajectory",
		zap.Int("n", n),
		zap.String("params", p.String()),
		zap.String("format", calcFormat))

	w := bufio.NewWriter(cmd.OutOrStdout())
	if err := writeTrajectory(cmd, w, p, n); err != nil {
		return err
	}
	return w.Flush()
}

func writeTrajectory(cmd *cobra.Command, w io.Writer, p attractor.Params, n int) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if calcFormat == "points" {
		logging.Generator("streaming %d points", n)
		return writePoints(ctx, w, p, n)
	}

	timer := logging.StartTimer(logging.CategoryGenerator, "Generate")
	xs, ys, err := p.GenerateContext(ctx, n)
	timer.Stop()
	if err != nil {
		return err
	}
	logging.Generator("generated %d points", n)

	if calcFormat == "json" {
		return json.NewEncoder(w).Encode(struct {
			Xs []float64 `json:"xs"`
			Ys []float64 `json:"ys"`
		}{xs, ys})
	}
	return writeLines(w, xs, ys)
}

func runSummary(cmd *cobra.Command, args []string) error {
	n, err := resolveCount(args)
	if err != nil {
		return err
	}
	p := resolveParams(cmd)

	ctx, cancel := commandContext(cmd)
	defer cancel()

	xs, ys, err := p.GenerateContext(ctx, n)
	if err != nil {
		return err
	}
	sum, err := attractor.Summarize(xs, ys)
	if err != nil {
		return err
	}
	logger.Info("Trajectory summarized", zap.Int("points", sum.Count))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderSummary("clifford attractor", p, sum))
	return err
}

func appendFloat(buf []byte, v float64) []byte {
	return strconv.AppendFloat(buf, v, 'g', -1, 64)
}

func writeLines(w io.Writer, xs, ys []float64) error {
	for _, vals := range [][]float64{xs, ys} {
		buf := make([]byte, 0, 64)
		for i, v := range vals {
			buf = buf[:0]
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = appendFloat(buf, v)
			if _, err := w.Write(buf); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writePoints streams one "x y" line per point, stopping with ctx.Err() once
// ctx is done. Cancellation is checked every attractor.CheckInterval points.
func writePoints(ctx context.Context, w io.Writer, p attractor.Params, n int) error {
	buf := make([]byte, 0, 64)
	for i, pt := range p.Points(n) {
		if i%attractor.CheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		buf = appendFloat(buf[:0], pt.X)
		buf = append(buf, ' ')
		buf = appendFloat(buf, pt.Y)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
