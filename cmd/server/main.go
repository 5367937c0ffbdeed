package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/logger"
	"gamecatalog/backend/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var version = "dev"

// @title           Game Catalog API
// @version         1.0
// @description     In-memory catalog of games with list, get, create, update and delete.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	root := &cobra.Command{
		Use:           "gamecatalog",
		Short:         "Game catalog HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .env in the working directory)")
	flags.String("port", "", "HTTP listen port")
	flags.String("store", "", "catalog backend: memory or sqlite")
	_ = v.BindPFlag("PORT", flags.Lookup("port"))
	_ = v.BindPFlag("STORE_DRIVER", flags.Lookup("store"))

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

func serve(parent context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, log.With(zap.String("version", version)))
	if err != nil {
		log.Error("server setup failed", zap.Error(err))
		return err
	}
	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	return nil
}
