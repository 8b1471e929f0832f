package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wichananm65/pergola-planner/internal/catalog"
	"github.com/wichananm65/pergola-planner/internal/infrastructure/config"
	"github.com/wichananm65/pergola-planner/internal/infrastructure/logger"
)

// cli carries state shared by subcommands. Flags are bound into v so the
// environment (PERGOLA_*) and flags resolve through one place.
type cli struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper(), log: zap.NewNop()}
	c.v.SetDefault(config.KeyLogLevel, "warn")

	root := &cobra.Command{
		Use:   "planner",
		Short: "Pergola planner tools",
		Long: `Command line access to the pergola planner.

Parse size strings, rank a catalog against a space and mint admin
tokens for the catalog API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// viper reads the environment lazily, so .env values seen here
			// reach every command
			config.LoadDotEnv()
			l, err := logger.New(c.v.GetString(config.KeyLogLevel), "console")
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}

	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = c.v.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		c.parseSizeCmd(),
		c.recommendCmd(),
		c.tokenCmd(),
	)
	return root
}

// loadPlans reads the catalog file when one is configured, else the built-in
// sample plans.
func (c *cli) loadPlans() ([]catalog.Product, error) {
	path := c.v.GetString(config.KeyCatalogFile)
	if path == "" {
		c.log.Debug("using built-in catalog")
		return catalog.DefaultPlans(), nil
	}
	plans, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.log.Debug("loaded catalog", zap.String("path", path), zap.Int("plans", len(plans)))
	return plans, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
