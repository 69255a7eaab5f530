package visible

import (
	"strings"
	"time"

	"github.com/pkordes/big-trip/internal/domain"
)

// maxRouteStops is the longest route spelled out in full.
const maxRouteStops = 3

// TripSummary is the header line shown above the itinerary.
type TripSummary struct {
	Route string
	Start time.Time
	End   time.Time
	Cost  int
}

// Summarize builds the header for the full point set. Points are taken in
// day order; destinations and offers that cannot be resolved are skipped.
// The zero TripSummary is returned for an empty set.
func Summarize(all []domain.Point, destinations []domain.Destination, offers []domain.OfferGroup) TripSummary {
	if len(all) == 0 {
		return TripSummary{}
	}
	ordered := Sort(all, domain.SortDay)

	names := make(map[string]string, len(destinations))
	for _, d := range destinations {
		names[d.ID] = d.Name
	}
	groups := make(map[domain.PointType]domain.OfferGroup, len(offers))
	for _, g := range offers {
		groups[g.Type] = g
	}

	var (
		route []string
		s     = TripSummary{Start: ordered[0].DateFrom}
	)
	for _, p := range ordered {
		if name, ok := names[p.DestinationID]; ok {
			route = append(route, name)
		}
		if p.DateTo.After(s.End) {
			s.End = p.DateTo
		}
		s.Cost += p.BasePrice
		for _, id := range p.OfferIDs {
			if o, ok := groups[p.Type].Find(id); ok {
				s.Cost += o.Price
			}
		}
	}

	if len(route) > maxRouteStops {
		route = []string{route[0], "...", route[len(route)-1]}
	}
	s.Route = strings.Join(route, " — ")
	return s
}
