package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/signalnine/plancharts/internal/bench"
	"github.com/signalnine/plancharts/internal/chart"
	"github.com/signalnine/plancharts/internal/config"
	"github.com/signalnine/plancharts/internal/runner"
)

var (
	flagOutDir   string
	flagParallel int
	flagFormat   string
)

func newCompareCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Render one MCTS vs A* figure per domain and metric",
		Long: `Render one MCTS vs A* figure per domain and metric into --out-dir.

The persistent --dpi flag (or PLANCHARTS_DPI) sets the resolution of
these figures. --output and --show apply to the composite figure only
and are rejected here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, v)
		},
	}
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "directory for the figures")
	cmd.Flags().IntVar(&flagParallel, "parallel", 0, "max figures rendered at once")
	cmd.Flags().StringVar(&flagFormat, "format", "png", "image format (png, svg, pdf, ...)")
	return cmd
}

func runCompare(cmd *cobra.Command, v *viper.Viper) error {
	for _, name := range []string{"output", "show"} {
		if cmd.Flags().Changed(name) {
			return fmt.Errorf("--%s does not apply to compare; use --out-dir", name)
		}
	}
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}
	dpi, err := dpiOverride(v)
	if err != nil {
		return err
	}
	if dpi != 0 {
		cfg.Compare.DPI = dpi
	}
	outDir := cfg.Compare.OutDir
	if flagOutDir != "" {
		outDir = flagOutDir
	}
	parallel := cfg.Compare.Parallel
	if flagParallel > 0 {
		parallel = flagParallel
	}

	style := compareStyle(cfg)
	size := chart.Size{
		Width:  vg.Length(cfg.Compare.WidthIn) * vg.Inch,
		Height: vg.Length(cfg.Compare.HeightIn) * vg.Inch,
		DPI:    cfg.Compare.DPI,
	}

	var (
		jobs []runner.Job
		mu   sync.Mutex
	)
	for _, c := range bench.QuickComparisons() {
		path := filepath.Join(outDir, c.Name()+"."+flagFormat)
		panel := comparisonPanel(c)
		jobs = append(jobs, runner.Job{
			Name: c.Name(),
			Run: func(ctx context.Context) error {
				if err := chart.SavePanel(panel, style, size, path); err != nil {
					return err
				}
				logger.Debug("figure written", zap.String("path", path))
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			},
		})
	}

	errs := runner.RunPool(cmd.Context(), parallel, jobs)
	for _, err := range errs {
		logger.Error("rendering figure failed", zap.Error(err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d figures failed: %w", len(errs), len(jobs), errors.Join(errs...))
	}
	return nil
}

func compareStyle(cfg *config.Config) chart.Style {
	style := styleFor(cfg)
	style.TitleSize = vg.Points(cfg.Compare.TitleSizePt)
	return style
}

// comparisonPanel draws MCTS and A* bars half a bar width either side of
// each tick. These figures carry no Y axis label.
func comparisonPanel(c bench.Comparison) chart.Panel {
	return chart.Panel{
		Title:  c.Title(),
		Labels: c.Labels,
		Series: []chart.Series{
			{Label: "MCTS", Values: c.MCTS},
			{Label: "Astar", Values: c.Astar},
		},
	}
}
