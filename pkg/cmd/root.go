package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carval/pkg/carval/config"
	"github.com/nekruzvatanshoev/carval/pkg/carval/engine"
	"github.com/nekruzvatanshoev/carval/pkg/carval/logging"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:          RootCmdName,
	Short:        RootCmdShort,
	Long:         RootCmdLong,
	SilenceUsage: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	RootCmd.AddCommand(ServeCmd, ValuateCmd, BatchCmd)
}

// runtime is what every command needs: configuration, a logger, the live
// reference tables and an engine reading them.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	tables *reference.Store
	engine *engine.Engine
}

func setup() (*runtime, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	tables := reference.Default()
	if cfg.Engine.TablesFile != "" {
		if tables, err = reference.Load(cfg.Engine.TablesFile); err != nil {
			return nil, err
		}
		logger.Info("reference tables loaded", zap.String("file", cfg.Engine.TablesFile))
	}
	store := reference.NewStore(tables, logger)

	return &runtime{
		cfg:    cfg,
		log:    logger,
		tables: store,
		engine: engine.New(store, engineOptions(cfg.Engine, logger)...),
	}, nil
}

func engineOptions(cfg config.EngineConfig, logger *zap.Logger) []engine.Option {
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithTier1Range(cfg.Tier1Min, cfg.Tier1Max),
		engine.WithActiveSearch(cfg.ActiveSearch),
	}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	if cfg.ReferenceYear != 0 {
		opts = append(opts, engine.WithReferenceYear(cfg.ReferenceYear))
	}
	return opts
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
