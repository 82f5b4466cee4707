package models

import "time"

// Match is a stored fixture of the Brazilian championship.
type Match struct {
	ID          int64     `db:"id" json:"id"`
	APIMatchID  int64     `db:"api_match_id" json:"api_match_id"`
	HomeTeam    string    `db:"home_team" json:"home_team"`
	AwayTeam    string    `db:"away_team" json:"away_team"`
	MatchDate   time.Time `db:"match_date" json:"match_date"`
	Status      string    `db:"status" json:"status"`
	HomeScore   int       `db:"home_score" json:"home_score"`
	AwayScore   int       `db:"away_score" json:"away_score"`
	RoundNumber int       `db:"round_number" json:"round_number"`
}

// MatchSummary is the API-facing fixture shape served by /matches/today.
type MatchSummary struct {
	ID        int64     `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Round     int       `json:"round"`
}

// UserMatchInterest marks a user's intent to follow a match.
type UserMatchInterest struct {
	ID              int64  `db:"id" json:"id"`
	UserID          int64  `db:"user_id" json:"user_id"`
	MatchID         int64  `db:"match_id" json:"match_id"`
	SupportingTeam  string `db:"supporting_team" json:"supporting_team"`
	Ranking         int    `db:"ranking" json:"ranking"`
	EstablishmentID *int64 `db:"establishment_id" json:"establishment_id,omitempty"`
}
