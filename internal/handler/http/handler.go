// Package http implements the dev authority's HTTP transport: the four sync
// endpoints of the remote-authority contract, JWT bearer authentication, and
// request logging. It exists for development and end-to-end testing of the
// engine; production deployments point the engine at a real backend that
// speaks the same contract.
package http

import (
	"github.com/centavohq/centavo/internal/logger"
)

type Handler struct {
	authority *MemoryAuthority
	signKey   []byte

	logger *logger.Logger
}

// NewHandler constructs the dev authority handler around an in-memory store.
func NewHandler(authority *MemoryAuthority, tokenSignKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		authority: authority,
		signKey:   []byte(tokenSignKey),
		logger:    logger,
	}
}
