package domain

// Picture is a single photo shown for a destination.
type Picture struct {
	Src         string
	Description string
}

// Destination is immutable reference data. Name is unique and is what the
// editor uses to look a destination up from free-text input.
type Destination struct {
	ID          string
	Name        string
	Description string
	Pictures    []Picture
}
