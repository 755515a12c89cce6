package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

var (
	analyseInput   string
	analyseHTMLOut string
	analyseStartup model.Startup
	analyseSignals []string
)

var analyseCmd = &cobra.Command{
	Use:   "analyse",
	Short: "Run the full analysis for a single failed startup",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		startup := analyseStartup
		startup.ContextSignals = analyseSignals
		if analyseInput != "" {
			loaded, err := loadStartupFile(analyseInput)
			if err != nil {
				return err
			}
			startup = loaded
		}

		if startup.NameKey() == "" {
			return eris.New("startup name is required")
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		run, err := env.Store.CreateRun(ctx, startup)
		if err != nil {
			return eris.Wrap(err, "create run")
		}

		doc, err := env.Pipeline.Run(ctx, startup)
		if err != nil {
			if sErr := env.Store.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); sErr != nil {
				zap.L().Warn("mark run failed", zap.Error(sErr))
			}
			return eris.Wrap(err, "pipeline run")
		}

		if err := env.Store.CompleteRun(ctx, run.ID, doc); err != nil {
			return eris.Wrap(err, "complete run")
		}

		zap.L().Info("analysis complete",
			zap.String("startup", startup.Name),
			zap.String("data_confidence", doc.DataConfidence),
			zap.Int("progress_steps", len(doc.Progress)),
		)

		if analyseHTMLOut != "" {
			if err := os.WriteFile(analyseHTMLOut, []byte(doc.RenderedPage), 0o644); err != nil {
				return eris.Wrap(err, "write landing page")
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

// loadStartupFile reads a YAML (or JSON, which YAML subsumes) startup
// description from disk.
func loadStartupFile(path string) (model.Startup, error) {
	var s model.Startup
	data, err := os.ReadFile(path)
	if err != nil {
		return s, eris.Wrapf(err, "read startup file %s", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, eris.Wrapf(err, "parse startup file %s", path)
	}
	return s, nil
}

func init() {
	analyseCmd.Flags().StringVar(&analyseStartup.Name, "name", "", "startup name (required unless --input is given)")
	analyseCmd.Flags().StringVar(&analyseStartup.Industry, "industry", "", "industry, e.g. fintech")
	analyseCmd.Flags().StringVar(&analyseStartup.Country, "country", "", "primary market country")
	analyseCmd.Flags().StringVar(&analyseStartup.YearFounded, "founded", "", "year founded")
	analyseCmd.Flags().StringVar(&analyseStartup.YearShutdown, "shutdown", "", "year shut down")
	analyseCmd.Flags().StringVar(&analyseStartup.FundingRange, "funding", "", "funding range, e.g. $1M-$5M")
	analyseCmd.Flags().StringVar(&analyseStartup.ProductDescription, "description", "", "what the product did")
	analyseCmd.Flags().StringVar(&analyseStartup.WhyFailed, "why-failed", "", "public account of the failure")
	analyseCmd.Flags().StringVar(&analyseStartup.FounderWhyFailed, "founder-why", "", "founder's account of the failure")
	analyseCmd.Flags().StringVar(&analyseStartup.WhatDifferent, "what-different", "", "what the founder would do differently")
	analyseCmd.Flags().StringSliceVar(&analyseSignals, "signal", nil, "failure signal tag (repeatable), e.g. 'ran out of money'")
	analyseCmd.Flags().StringVar(&analyseInput, "input", "", "YAML file describing the startup (overrides flags)")
	analyseCmd.Flags().StringVar(&analyseHTMLOut, "html-out", "", "write the rendered landing page to this file")
	rootCmd.AddCommand(analyseCmd)
}
