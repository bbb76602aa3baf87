package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/config"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/httpapi"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/logging"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/session"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/store"
)

var (
	serveConfig string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Host the upload page over HTTP",
		Long: `Loads configuration (defaults, then the YAML file, then SNA_* environment
overrides), opens the payload store, and serves the upload API until
interrupted.`,
		RunE: runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveConfig, "config", "",
		"path to a sna.yaml config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel, cfg.LogJSON, os.Stderr)

	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	sess := session.New(st,
		session.WithLogger(log),
		session.WithDirected(cfg.Directed),
		session.WithTolerance(cfg.Tolerance),
		session.WithMemoSize(cfg.MemoSize),
	)

	gin.SetMode(gin.ReleaseMode)
	srv := httpapi.New(sess,
		httpapi.WithAddr(cfg.Addr),
		httpapi.WithLogger(log),
		httpapi.WithMaxUploadBytes(cfg.MaxUploadBytes),
		httpapi.WithRateLimit(cfg.RateLimitRPS, httpapi.DefaultRateBurst),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("sna serve starting",
		"version", Version,
		"addr", cfg.Addr,
		"store", cfg.StoreBackend,
		"directed", cfg.Directed,
	)

	return srv.Serve(ctx)
}

// openStore picks the payload store backend from the configuration. A
// badger backend without a directory runs in memory, same as "memory"
// but exercising the real engine.
func openStore(cfg *config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.StoreBackend {
	case "badger":
		opts := []store.Option{store.WithLogger(log)}
		if cfg.StoreDir != "" {
			opts = append(opts, store.WithDir(cfg.StoreDir))
		}

		return store.NewBadger(opts...)
	default:
		return store.NewMemory(), nil
	}
}
