package service

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/cache"
	"github.com/inkmap/inkmap/ink"
	"github.com/inkmap/inkmap/store"
)

// Service composes the persistent store, the identity verifier and the
// identity cache behind the request handlers. All collaborators are
// injected once at startup.
type Service struct {
	Store    store.InkmapStore
	Cache    cache.InkmapCache
	Verifier auth.Verifier
	Ink      ink.Policy
	Logger   zerolog.Logger
}

func NewService(
	st store.InkmapStore,
	ca cache.InkmapCache,
	verifier auth.Verifier,
	policy ink.Policy,
	logger zerolog.Logger,
) *Service {
	return &Service{
		Store:    st,
		Cache:    ca,
		Verifier: verifier,
		Ink:      policy,
		Logger:   logger,
	}
}

// Error taxonomy surfaced to the transport layer. Store sentinels
// (store.ErrNotFound, store.ErrInsufficientInk) pass through unchanged.
var (
	ErrUnauthorized     = errors.New("missing or invalid credential")
	ErrValidation       = errors.New("invalid input")
	ErrCommentsDisabled = errors.New("comments are disabled for this drawing")
)
