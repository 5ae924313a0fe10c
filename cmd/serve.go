package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"flx-labs/stay-sip/internal/catalog"
	"flx-labs/stay-sip/internal/config"
	"flx-labs/stay-sip/internal/logging"
	"flx-labs/stay-sip/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI server",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() {
	appCfg := config.FromEnv()
	logger := logging.New(logging.Options{Level: appCfg.LogLevel, Color: appCfg.LogColor})

	site, err := config.LoadSiteConfig(appCfg.ConfigPath)
	if err != nil {
		logger.Warn("site config not loaded, using defaults", "path", appCfg.ConfigPath, "error", err)
		site = config.DefaultSiteConfig()
	}

	loader, err := catalog.NewLoader(appCfg.DataDir, logger)
	if err != nil {
		logger.Error("failed to build loader", "error", err)
		os.Exit(1)
	}

	srv, err := web.New(site, loader, logger)
	if err != nil {
		logger.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         appCfg.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("web UI listening", "addr", appCfg.Addr, "data_dir", appCfg.DataDir)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
