package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/signalnine/plancharts/internal/config"
)

const defaultConfigFile = "plancharts.yaml"

var (
	cfgFile     string
	flagVerbose bool
	logger      = zap.NewNop()
)

// NewRootCmd builds the command tree. Running the root command with no
// subcommand renders the comparison figure.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PLANCHARTS")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "plancharts",
		Short:         "Charts comparing MCTS and A* planner results",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if flagVerbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	pf.String("output", "", "output image path (extension selects the format)")
	pf.Int("dpi", 0, "raster output resolution")
	pf.Bool("show", true, "open the figure in an image viewer")
	for _, key := range []string{"output", "dpi", "show"} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(newRenderCmd(v))
	root.AddCommand(newCompareCmd(v))
	root.AddCommand(newListCmd())
	root.AddCommand(newReportCmd())
	return root
}

// loadConfig reads the config file and applies flag and environment
// overrides bound in v.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.LoadOrDefault(cfgFile, explicit)
	if err != nil {
		return nil, err
	}
	if v.IsSet("output") && v.GetString("output") != "" {
		cfg.Output.Path = v.GetString("output")
	}
	dpi, err := dpiOverride(v)
	if err != nil {
		return nil, err
	}
	if dpi != 0 {
		cfg.Output.DPI = dpi
	}
	if v.IsSet("show") {
		show, err := cast.ToBoolE(v.Get("show"))
		if err != nil {
			return nil, fmt.Errorf("invalid show value %q: %w", v.GetString("show"), err)
		}
		cfg.Output.Show = show
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("file", cfgFile),
		zap.String("output", cfg.Output.Path),
		zap.Int("dpi", cfg.Output.DPI),
		zap.Bool("show", cfg.Output.Show))
	return cfg, nil
}

// dpiOverride returns the --dpi flag or PLANCHARTS_DPI value, or 0 when
// neither is set.
func dpiOverride(v *viper.Viper) (int, error) {
	if !v.IsSet("dpi") {
		return 0, nil
	}
	dpi, err := cast.ToIntE(v.Get("dpi"))
	if err != nil {
		return 0, fmt.Errorf("invalid dpi %q: %w", v.GetString("dpi"), err)
	}
	return dpi, nil
}
