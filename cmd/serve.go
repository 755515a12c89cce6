package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
	"github.com/relaunch-ai/relaunch-cli/internal/pipeline"
	"github.com/relaunch-ai/relaunch-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newServeHandler(env.Store, env.Pipeline, cfg.Server.StaticDir),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// analyseResponse is the envelope returned by POST /analyse.
type analyseResponse struct {
	StartupName    string                 `json:"startup_name"`
	Research       *model.ResearchDossier `json:"research"`
	Autopsy        *model.AutopsyReport   `json:"autopsy"`
	Revival        *model.RevivalPlan     `json:"revival"`
	Copy           *model.CopyDeck        `json:"copywriter_outputs"`
	MarketingHTML  string                 `json:"marketing_html"`
	Progress       []string               `json:"progress"`
	DataConfidence string                 `json:"data_confidence"`
}

// newServeHandler builds the HTTP routes: analysis, preview, health, and an
// optional static frontend.
func newServeHandler(st store.Store, p *pipeline.Pipeline, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/analyse", func(w http.ResponseWriter, req *http.Request) {
		var startup model.Startup
		if err := json.NewDecoder(req.Body).Decode(&startup); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
			return
		}
		if startup.NameKey() == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "startup_name is required"})
			return
		}

		ctx := req.Context()
		run, err := st.CreateRun(ctx, startup)
		if err != nil {
			zap.L().Error("create run", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "store unavailable"})
			return
		}

		doc, err := p.Run(ctx, startup)
		if err != nil {
			if sErr := st.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); sErr != nil {
				zap.L().Warn("mark run failed", zap.Error(sErr))
			}
			zap.L().Error("analysis failed", zap.String("startup", startup.Name), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "analysis failed"})
			return
		}

		if err := st.CompleteRun(ctx, run.ID, doc); err != nil {
			zap.L().Error("complete run", zap.Error(err))
		}

		writeJSON(w, http.StatusOK, analyseResponse{
			StartupName:    startup.Name,
			Research:       doc.Research,
			Autopsy:        doc.Autopsy,
			Revival:        doc.Revival,
			Copy:           doc.Copy,
			MarketingHTML:  doc.RenderedPage,
			Progress:       doc.Progress,
			DataConfidence: doc.DataConfidence,
		})
	})

	r.Get("/preview/{startupName}", func(w http.ResponseWriter, req *http.Request) {
		startup := model.Startup{Name: chi.URLParam(req, "startupName")}
		run, err := st.GetLatestByName(req.Context(), startup.NameKey())
		if err != nil || run.Result == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Run /analyse first."})
			return
		}
		page := run.Result.RenderedPage
		if page == "" {
			page = "<p>No page.</p>"
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(page)) //nolint:errcheck
	})

	// Static frontend, when present.
	if staticDir != "" {
		if index := filepath.Join(staticDir, "index.html"); fileExists(index) {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				http.ServeFile(w, req, index)
			})
		}
		if fileExists(staticDir) {
			fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
			r.Get("/static/*", fs.ServeHTTP)
		}
	}

	return r
}

// requestLogger logs each request through the global zap logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		zap.L().Info("http request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write response", zap.Error(err))
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
