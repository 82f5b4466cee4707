package clients

import (
	"context"
	"time"

	"esporte-social/internal/models"
)

// PlacesAPI is the consumer-facing surface of PlacesClient.
type PlacesAPI interface {
	NearbyBars(ctx context.Context, latitude, longitude float64) ([]models.Establishment, error)
}

// FootballAPI is the consumer-facing surface of FootballClient.
type FootballAPI interface {
	MatchesOn(ctx context.Context, day time.Time) ([]models.MatchSummary, error)
}

var _ PlacesAPI = (*PlacesClient)(nil)
var _ FootballAPI = (*FootballClient)(nil)
