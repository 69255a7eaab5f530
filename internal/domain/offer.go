package domain

// Offer is an optional add-on that can be selected for a point.
type Offer struct {
	ID    string
	Title string
	Price int
}

// OfferGroup holds the ordered offer catalog available to one point type.
type OfferGroup struct {
	Type   PointType
	Offers []Offer
}

// Find returns the offer with the given id.
func (g OfferGroup) Find(id string) (Offer, bool) {
	for _, o := range g.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return Offer{}, false
}
