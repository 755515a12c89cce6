package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/relaunch-ai/relaunch-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "relaunch-cli",
	Short: "Failed-startup analysis and relaunch pipeline",
	Long:  "Runs a five-stage analysis over a failed startup: research dossier, failure autopsy, revival strategy, marketing copy, and a rendered landing page.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
