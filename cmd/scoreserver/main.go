package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"riichiscore/internal/cache"
	"riichiscore/internal/config"
	"riichiscore/internal/events"
	"riichiscore/internal/httpapi"
	"riichiscore/internal/logging"
	"riichiscore/internal/metrics"
	"riichiscore/internal/store"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "scoreserver",
	Short: "riichi scoring HTTP service",
	Long:  `scoreserver exposes the riichi mahjong scoring engine over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		if configFile != "" {
			loaded, err := config.Load(configFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}
		logging.Init("scoreserver", cfg.Log.Level)
		logging.Info("starting with config: %+v", cfg)

		go func() {
			addr := fmt.Sprintf("0.0.0.0:%d", cfg.Metrics.Port)
			if err := metrics.Serve(addr); err != nil {
				logging.Error("metrics server stopped: %v", err)
			}
		}()

		deps := buildDeps(cfg)
		defer deps.close()

		engine := httpapi.NewEngine(deps.Deps)
		srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.HTTP.Port), Handler: engine}

		go func() {
			logging.Info("http server listening on :%d", cfg.HTTP.Port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logging.Fatal("http server error: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logging.Error("shutdown error: %v", err)
		}
	},
}

// wiredDeps bundles httpapi.Deps with the collaborators that own
// background resources, so main can close them on shutdown.
type wiredDeps struct {
	httpapi.Deps
	mongo *store.MongoManager
}

func (w wiredDeps) close() {
	if w.Results != nil {
		w.Results.Close()
	}
	if w.Idem != nil {
		_ = w.Idem.Close()
	}
	if w.Events != nil {
		_ = w.Events.Close()
	}
	if w.mongo != nil {
		_ = w.mongo.Close()
	}
}

// buildDeps wires every optional upstream collaborator; each is skipped
// (left nil) rather than fatal when unreachable, per SPEC_FULL.md §4.7.
func buildDeps(cfg config.Config) wiredDeps {
	var w wiredDeps

	if results, err := cache.New(1<<26, 10*time.Minute); err != nil {
		logging.Warn("result cache disabled: %v", err)
	} else {
		w.Results = results
	}

	w.JwtSecret = cfg.Jwt.Secret

	if cfg.Redis.Addr != "" {
		if idem, err := store.NewIdempotencyStore(cfg.Redis, time.Hour); err != nil {
			logging.Warn("idempotency store disabled: %v", err)
		} else {
			w.Idem = idem
		}
	}

	if cfg.Mongo.URL != "" {
		if mongo, err := store.NewMongo(cfg.Mongo); err != nil {
			logging.Warn("mongo store disabled: %v", err)
		} else {
			w.mongo = mongo
			w.Rulesets = store.NewRulesetStore(mongo)
			w.History = store.NewHistoryStore(mongo)
			w.Feedback = store.NewFeedbackStore(mongo)
		}
	}

	if cfg.Nats.URL != "" {
		if pub, err := events.Connect(cfg.Nats.URL, cfg.Nats.Subject); err != nil {
			logging.Warn("event publisher disabled: %v", err)
		} else {
			w.Events = pub
		}
	}

	return w
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "", "config file (defaults are used when omitted)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
