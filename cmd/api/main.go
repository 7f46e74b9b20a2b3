package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/01moynul/instituto-dashboard/internal/config"
	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/handlers"
	"github.com/01moynul/instituto-dashboard/internal/logger"
	"github.com/01moynul/instituto-dashboard/internal/routes"
	"github.com/01moynul/instituto-dashboard/internal/server"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	configPath string
	envFile    string

	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "instituto",
		Short: "Read-only enrollment dashboard for the institute database",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "YAML config file (optional)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", ".env file loaded before the environment (optional)")

	root.AddCommand(
		newServeCmd(a),
		newCheckCmd(a),
		newReportCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.New(logger.Config{
		Level:    cfg.Logging.Level,
		Pretty:   !strings.EqualFold(cfg.Logging.Format, "json"),
		FilePath: cfg.Logging.File,
	})
	return nil
}

func (a *app) serve(ctx context.Context) error {
	gin.SetMode(ginMode(a.cfg))

	provider, err := database.NewProvider(a.cfg.Database, a.logger)
	if err != nil {
		return err
	}

	router, err := routes.SetupRouter(handlers.New(provider, a.logger), a.logger)
	if err != nil {
		_ = provider.Close()
		return err
	}

	a.logger.Info().Str("version", Version).Str("port", a.cfg.Server.Port).Msg("Starting dashboard")
	return server.New(a.cfg.Server, router, provider, a.logger).Run(ctx)
}

func ginMode(cfg *config.Config) string {
	switch {
	case cfg.IsProduction():
		return gin.ReleaseMode
	case strings.EqualFold(cfg.Server.Mode, "test"):
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP dashboard (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "instituto %s\n", Version)
		},
	}
}
