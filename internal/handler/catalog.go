package handler

import (
	"net/http"

	"github.com/pkordes/big-trip/internal/api"
)

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := s.catalog.Destinations(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	out := make([]api.Destination, len(destinations))
	for i, d := range destinations {
		out[i] = api.FromDestination(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// ListOffers handles GET /offers.
func (s *Server) ListOffers(w http.ResponseWriter, r *http.Request) {
	groups, err := s.catalog.Offers(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	out := make([]api.OfferGroup, len(groups))
	for i, g := range groups {
		out[i] = api.FromOfferGroup(g)
	}
	writeJSON(w, http.StatusOK, out)
}
