package presenter

import (
	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/visible"
)

// SummaryPresenter keeps the trip header (route, dates, total cost) current.
type SummaryPresenter struct {
	points       PointsReader
	destinations DestinationsStore
	offers       OffersStore
	surface      SummarySurface

	pointsLoaded bool
	unsubscribe  []func()
}

// NewSummaryPresenter subscribes to the three data stores. Nothing is drawn
// until the points store has reported INIT.
func NewSummaryPresenter(points PointsReader, destinations DestinationsStore, offers OffersStore, surface SummarySurface) *SummaryPresenter {
	s := &SummaryPresenter{
		points:       points,
		destinations: destinations,
		offers:       offers,
		surface:      surface,
	}
	s.unsubscribe = []func(){
		points.Subscribe(func(kind domain.UpdateType, _ domain.Point) {
			if kind == domain.UpdateInit {
				s.pointsLoaded = true
			}
			s.render()
		}),
		destinations.Subscribe(func(domain.UpdateType, struct{}) { s.render() }),
		offers.Subscribe(func(domain.UpdateType, struct{}) { s.render() }),
	}
	return s
}

// Close unsubscribes from every store.
func (s *SummaryPresenter) Close() {
	for _, u := range s.unsubscribe {
		u()
	}
	s.unsubscribe = nil
}

func (s *SummaryPresenter) render() {
	if !s.pointsLoaded {
		return
	}
	points := s.points.Points()
	if len(points) == 0 {
		s.surface.HideSummary()
		return
	}
	s.surface.RenderSummary(visible.Summarize(points, s.destinations.Destinations(), s.offers.Groups()))
}
