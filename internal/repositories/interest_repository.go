package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// InterestRepository records which match a user intends to follow.
type InterestRepository interface {
	ReplaceInterest(ctx context.Context, userID, matchID int64, supportingTeam string, ranking int) error
}

// InterestRepo is a sqlx-backed repository.
type InterestRepo struct {
	db *sqlx.DB
}

// NewInterestRepo constructs InterestRepo.
func NewInterestRepo(db *sqlx.DB) *InterestRepo {
	return &InterestRepo{db: db}
}

// ReplaceInterest drops any existing interest row for (user, match) and
// inserts the new one, keeping at most one row per pair.
func (r *InterestRepo) ReplaceInterest(ctx context.Context, userID, matchID int64, supportingTeam string, ranking int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin interest tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM user_match_interests WHERE user_id=$1 AND match_id=$2`,
		userID, matchID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO user_match_interests (user_id, match_id, supporting_team, ranking)
         VALUES ($1, $2, $3, $4)`,
		userID, matchID, supportingTeam, ranking); err != nil {
		return err
	}

	return tx.Commit()
}
