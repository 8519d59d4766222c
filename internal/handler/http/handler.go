package http

import (
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
)

type Handler struct {
	services *service.Services

	traceIDs  *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		traceIDs:  utils.NewUUIDGenerator(),
		validator: validators.NewBridgeRequestValidator(),
		logger:    logger,
	}
}
