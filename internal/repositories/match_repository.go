package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// MatchUpsert is one fixture as delivered by the football feed.
type MatchUpsert struct {
	APIMatchID  int64
	HomeTeam    string
	AwayTeam    string
	MatchDate   time.Time
	Status      string
	HomeScore   int
	AwayScore   int
	RoundNumber int
}

// MatchRepository stores fixtures mirrored from the football API.
type MatchRepository interface {
	UpsertMatch(ctx context.Context, match MatchUpsert) error
}

// MatchRepo is a sqlx-backed repository.
type MatchRepo struct {
	db *sqlx.DB
}

// NewMatchRepo constructs MatchRepo.
func NewMatchRepo(db *sqlx.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// UpsertMatch inserts a fixture or refreshes status and scores of the row
// already stored under its api_match_id.
func (r *MatchRepo) UpsertMatch(ctx context.Context, match MatchUpsert) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO matches (api_match_id, home_team, away_team, match_date, status, home_score, away_score, round_number)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         ON CONFLICT (api_match_id) DO UPDATE
         SET status = EXCLUDED.status,
             home_score = EXCLUDED.home_score,
             away_score = EXCLUDED.away_score`,
		match.APIMatchID, match.HomeTeam, match.AwayTeam, match.MatchDate,
		match.Status, match.HomeScore, match.AwayScore, match.RoundNumber,
	)
	return err
}
