package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"riichiscore/internal/config"
	"riichiscore/internal/httpapi"
	"riichiscore/internal/logging"
	"riichiscore/internal/mahjong"
	"riichiscore/internal/metrics"
)

var (
	inFile     string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "scorecli",
	Short: "riichi scoring command line",
	Long:  `scorecli scores a hand directly or runs the scoring HTTP server locally.`,
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "score a hand/context/rules document read from --in or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		requestID := uuid.NewString()
		logging.Info("request_id=%s scoring request", requestID)

		var r io.Reader = os.Stdin
		if inFile != "" {
			f, err := os.Open(inFile)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		var req httpapi.ScoreRequest
		if err := json.NewDecoder(r).Decode(&req); err != nil {
			return fmt.Errorf("decode request: %w", err)
		}

		hand, ctx, rules, err := req.ToCore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "request_id=%s error: %v\n", requestID, err)
			os.Exit(1)
		}

		result, scoringErr := mahjong.Score(hand, ctx, rules)
		if scoringErr != nil {
			fmt.Fprintf(os.Stderr, "request_id=%s %s: %s\n", requestID, scoringErr.Kind, scoringErr.Detail)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(httpapi.ScoreResponseFromCore(result))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the scoring HTTP server locally with JWT auth only (no cache, stores or event publisher)",
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
		logging.Init("scorecli-serve", cfg.Log.Level)

		go func() {
			addr := fmt.Sprintf("0.0.0.0:%d", cfg.Metrics.Port)
			if err := metrics.Serve(addr); err != nil {
				logging.Error("metrics server stopped: %v", err)
			}
		}()

		engine := httpapi.NewEngine(httpapi.Deps{JwtSecret: cfg.Jwt.Secret})
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		logging.Info("http server listening on %s", addr)
		if err := http.ListenAndServe(addr, engine); err != nil {
			logging.Fatal("http server error: %v", err)
		}
	},
}

func init() {
	scoreCmd.Flags().StringVar(&inFile, "in", "", "input JSON file (defaults to stdin)")
	serveCmd.Flags().StringVar(&configFile, "configFile", "", "config file (defaults are used when omitted)")
	rootCmd.AddCommand(scoreCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
