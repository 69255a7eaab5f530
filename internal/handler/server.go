// Package handler implements the HTTP handlers for the Big Trip API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, points.go, catalog.go, export.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/big-trip/internal/domain"
)

// PointServicer defines the point operations the handlers depend on.
// Defined here, in the consumer package, so tests can inject a mock without
// touching the database or service layer.
type PointServicer interface {
	List(ctx context.Context) ([]domain.Point, error)
	Create(ctx context.Context, p domain.Point) (domain.Point, error)
	Update(ctx context.Context, id uuid.UUID, p domain.Point) (domain.Point, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogServicer defines the read-only catalog operations.
type CatalogServicer interface {
	Destinations(ctx context.Context) ([]domain.Destination, error)
	Offers(ctx context.Context) ([]domain.OfferGroup, error)
}

// ExportServicer produces the flat itinerary export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	points  PointServicer
	catalog CatalogServicer
	export  ExportServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(points PointServicer, catalog CatalogServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{points: points, catalog: catalog, export: export, log: log}
}

// Routes returns a router serving every API endpoint. Middleware is applied
// by the caller so tests can exercise handlers in isolation.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/points", func(r chi.Router) {
		r.Get("/", s.ListPoints)
		r.Post("/", s.CreatePoint)
		r.Put("/{pointId}", s.UpdatePoint)
		r.Delete("/{pointId}", s.DeletePoint)
	})

	r.Get("/destinations", s.ListDestinations)
	r.Get("/offers", s.ListOffers)
	r.Get("/export", s.GetExport)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("no such route"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", r.Method+" is not allowed here"))
	})
	return r
}
