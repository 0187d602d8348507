// Package bfhlapi exposes the classification service over HTTP.
package bfhlapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/bfhl/internal/classify"
)

// liveMessage is served on GET / as a liveness banner.
const liveMessage = "BFHL classification service is live. Use POST /bfhl."

// ClassifyService defines the business operations bfhlapi needs.
type ClassifyService interface {
	Classify(ctx context.Context, tokens []string) *classify.Outcome
}

// Identity holds the static identity fields echoed on every response.
type Identity struct {
	UserID     string
	Email      string
	RollNumber string
}

// API holds dependencies for HTTP handlers.
type API struct {
	logger   log.Logger
	svc      ClassifyService
	identity Identity
}

// New creates a new API handler.
func New(logger log.Logger, svc ClassifyService, identity Identity) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if svc == nil {
		panic(xerrors.New("classify service is required"))
	}
	return &API{
		logger:   logger,
		svc:      svc,
		identity: identity,
	}
}

// RegisterRoutes attaches API endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Get("/", a.handleRoot)
	r.Post("/bfhl", a.handleClassify)
}

func (a *API) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": liveMessage,
	})
}
