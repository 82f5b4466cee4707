package models

// Establishment is a nearby bar returned by the places search.
type Establishment struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	PlaceID string  `json:"place_id"`
}
