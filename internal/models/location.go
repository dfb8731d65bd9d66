package models

// Location names one of the two places a product's stock is kept.
type Location string

const (
	LocationStore   Location = "store"
	LocationCounter Location = "counter"
)

// Valid reports whether l is a known stock location.
func (l Location) Valid() bool {
	return l == LocationStore || l == LocationCounter
}

func (l Location) String() string {
	return string(l)
}
