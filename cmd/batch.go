package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

var (
	batchInput  string
	batchLimit  int
	batchOutDir string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyse a batch of failed startups from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		startups, err := loadBatchFile(batchInput)
		if err != nil {
			return err
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		return processBatch(ctx, env, startups, batchLimit, cfg.Batch.MaxConcurrent, cfg.Batch.RatePerSec)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "YAML file with a list of startups (required)")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of startups to process (0 = all)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "write each rendered landing page into this directory")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}

// loadBatchFile reads a YAML list of startup descriptions.
func loadBatchFile(path string) ([]model.Startup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read batch file %s", path)
	}
	var startups []model.Startup
	if err := yaml.Unmarshal(data, &startups); err != nil {
		return nil, eris.Wrapf(err, "parse batch file %s", path)
	}
	return startups, nil
}

// processBatch analyses startups concurrently, pacing pipeline starts with a
// rate limiter so a live backend is not hammered.
func processBatch(ctx context.Context, env *pipelineEnv, startups []model.Startup, limit, concurrency int, ratePerSec float64) error {
	if len(startups) == 0 {
		zap.L().Info("no startups in batch")
		return nil
	}
	if limit > 0 && len(startups) > limit {
		startups = startups[:limit]
	}

	zap.L().Info("processing batch",
		zap.Int("startups", len(startups)),
		zap.Int("concurrency", concurrency),
	)

	limiter := rate.NewLimiter(rate.Limit(ratePerSec), 1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, startup := range startups {
		g.Go(func() error {
			log := zap.L().With(zap.String("startup", startup.Name))

			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			if err := analyseOne(gctx, env, startup); err != nil {
				failed.Add(1)
				log.Error("analysis failed", zap.Error(err))
				return nil // don't abort the batch on individual failure
			}
			succeeded.Add(1)
			log.Info("analysis complete")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch wait")
	}

	zap.L().Info("batch finished",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}

// analyseOne runs the pipeline for a single batch entry and persists the run.
func analyseOne(ctx context.Context, env *pipelineEnv, startup model.Startup) error {
	run, err := env.Store.CreateRun(ctx, startup)
	if err != nil {
		return eris.Wrap(err, "create run")
	}

	doc, err := env.Pipeline.Run(ctx, startup)
	if err != nil {
		if sErr := env.Store.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); sErr != nil {
			zap.L().Warn("mark run failed", zap.Error(sErr))
		}
		return err
	}

	if err := env.Store.CompleteRun(ctx, run.ID, doc); err != nil {
		return eris.Wrap(err, "complete run")
	}

	if batchOutDir != "" {
		out := filepath.Join(batchOutDir, startup.NameKey()+".html")
		if err := os.WriteFile(out, []byte(doc.RenderedPage), 0o644); err != nil {
			return eris.Wrap(err, "write landing page")
		}
	}
	return nil
}
