package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/handler"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/server"
	"github.com/MKhiriev/go-nexus-keeper/internal/service"
	"github.com/MKhiriev/go-nexus-keeper/internal/store"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/spf13/cobra"
)

func newServeCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Listen for data-bag requests until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetServerConfig(cmd.Flags())
			if err != nil {
				return err
			}

			log := logger.NewLogger("databag-server")
			log.Info().
				Str("version", buildInfo.BuildVersion()).
				Str("date", buildInfo.BuildDate()).
				Str("commit", buildInfo.BuildCommit()).
				Msg("starting")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, buildInfo, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	secretStore, err := store.NewSecretStore(ctx, cfg.Secrets, log)
	if err != nil {
		log.Err(err).Str("backend", cfg.Secrets.Backend).Msg("error opening secret store")
		return err
	}
	defer secretStore.Close()

	appInfo, err := service.NewAppInfoService(buildInfo, log)
	if err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(service.NewServerServices(secretStore, appInfo, log), cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.Run(ctx)
}
