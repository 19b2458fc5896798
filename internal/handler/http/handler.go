package http

import (
	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/service"
	"github.com/MKhiriev/go-nexus-keeper/internal/utils"
)

type Handler struct {
	services *service.ServerServices
	tokens   config.Server
	traceIDs *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.ServerServices, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   cfg,
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}
