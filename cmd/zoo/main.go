package main

import (
	"fmt"
	"os"

	"digital-zoo/internal/domain/zoo"
	"digital-zoo/internal/platform/config"
	"digital-zoo/internal/platform/logger"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// Sin subcomando corre el escenario fijo y escribe el reporte en stdout.
var rootCmd = &cobra.Command{
	Use:           "zoo",
	Short:         "Digital zoo: polymorphic animal registry",
	Long:          "Runs the canonical zoo scenario. Subcommands serve the registry API, seed a store or query a running server.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		zoo.RunScenario(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file (optional)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(remoteCmd)
}

// loadConfig carga y valida la config, y arma el logger a stderr.
func loadConfig(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		Writer: cmd.ErrOrStderr(),
	})
	return cfg, log, nil
}
