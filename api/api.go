package api

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/inkmap/inkmap/api/rest"
	"github.com/inkmap/inkmap/service"
)

type InkmapAPI struct {
	restHandler  *rest.Handler
	loginLimiter *ipRateLimiter
	svc          *service.Service
}

func NewInkmapAPI(svc *service.Service) *InkmapAPI {
	return &InkmapAPI{
		restHandler:  rest.NewHandler(svc),
		loginLimiter: newIPRateLimiter(rate.Every(time.Second), 5),
		svc:          svc,
	}
}

func (inkmapAPI *InkmapAPI) RegisterRoutes(mux *http.ServeMux) {
	// Health check endpoint (no auth required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/login", inkmapAPI.loginLimiter.wrap(inkmapAPI.restHandler.HandleLogin))
	mux.HandleFunc("GET /api/ink", inkmapAPI.restHandler.HandleInk)

	mux.HandleFunc("POST /api/drawings", inkmapAPI.restHandler.HandleCreateDrawing)
	mux.HandleFunc("GET /api/drawings", inkmapAPI.restHandler.HandleFeed)
	mux.HandleFunc("GET /api/drawings/{id}", inkmapAPI.restHandler.HandleGetDrawing)
	mux.HandleFunc("POST /api/drawings/{id}/like", inkmapAPI.restHandler.HandleToggleLike)
	mux.HandleFunc("POST /api/drawings/{id}/comments", inkmapAPI.restHandler.HandlePostComment)
	mux.HandleFunc("GET /api/drawings/{id}/comments", inkmapAPI.restHandler.HandleListComments)
}

// Middleware wraps the mux with request logging and CORS handling.
func (inkmapAPI *InkmapAPI) Middleware(mux *http.ServeMux, allowOrigin string) http.Handler {
	return requestLogger(inkmapAPI.svc.Logger, corsHeaders(allowOrigin, mux))
}
