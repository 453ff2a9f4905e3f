package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/signalnine/plancharts/internal/bench"
	"github.com/signalnine/plancharts/internal/chart"
	"github.com/signalnine/plancharts/internal/config"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the runtime and plan-length comparison for every domain",
		Long: "Render one row per domain with a runtime panel and a plan-steps panel, " +
			"each comparing MCTS (MDA & MHA), A* and MCTS (PRW), and write the figure to the output path.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v)
		},
	}
}

func runRender(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}
	tbl, err := bench.Default()
	if err != nil {
		return err
	}
	fig, err := buildFigure(tbl, tbl.Domains())
	if err != nil {
		return err
	}

	size := chart.Size{
		Width:  vg.Length(cfg.Output.WidthIn) * vg.Inch,
		Height: vg.Length(cfg.Output.HeightIn) * vg.Inch,
		DPI:    cfg.Output.DPI,
	}
	if err := chart.SaveFigure(fig, styleFor(cfg), size, cfg.Output.Path); err != nil {
		return fmt.Errorf("rendering comparison figure: %w", err)
	}
	logger.Info("figure written",
		zap.String("path", cfg.Output.Path),
		zap.Int("rows", len(fig.Panels)),
		zap.Int("dpi", cfg.Output.DPI))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.Output.Path)

	if cfg.Output.Show {
		show(cmd, cfg.Output.Path)
	}
	return nil
}

// buildFigure lays out one row per domain with a runtime and a steps panel.
func buildFigure(tbl *bench.Table, domains []string) (chart.Figure, error) {
	var fig chart.Figure
	for _, domain := range domains {
		data, err := bench.PrepareBarplotData(tbl, domain)
		if err != nil {
			return chart.Figure{}, err
		}
		var row []chart.Panel
		for _, metric := range bench.Metrics() {
			p := chart.Panel{
				Title:  fmt.Sprintf("%s - %s", metric.Title(), capitalize(domain)),
				YLabel: metric.Unit(),
				Labels: data.Labels,
			}
			for _, m := range bench.Methods() {
				p.Series = append(p.Series, chart.Series{Label: m.Label(), Values: data.Series(m, metric)})
			}
			row = append(row, p)
		}
		fig.Panels = append(fig.Panels, row)
	}
	return fig, nil
}

func styleFor(cfg *config.Config) chart.Style {
	style := chart.DefaultStyle()
	style.BarWidth = vg.Points(cfg.Chart.BarWidthPt)
	style.TitleSize = vg.Points(cfg.Chart.TitleSizePt)
	return style
}

func show(cmd *cobra.Command, path string) {
	err := chart.Show(cmd.Context(), path)
	switch {
	case errors.Is(err, chart.ErrNoDisplay):
		logger.Debug("not showing figure", zap.String("path", path), zap.Error(err))
	case err != nil:
		logger.Warn("could not open viewer", zap.String("path", path), zap.Error(err))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
