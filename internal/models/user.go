package models

import (
	"database/sql"
	"time"
)

// User roles.
const (
	UserTypeFan           = "fan"
	UserTypeEstablishment = "establishment"
)

// User represents a registered fan or establishment account.
type User struct {
	ID                int64           `db:"id" json:"id"`
	Username          string          `db:"username" json:"username"`
	Email             string          `db:"email" json:"email"`
	PasswordHash      string          `db:"password_hash" json:"-"`
	UserType          string          `db:"user_type" json:"user_type"`
	FavoriteTeam      sql.NullString  `db:"favorite_team" json:"-"`
	Latitude          sql.NullFloat64 `db:"latitude" json:"-"`
	Longitude         sql.NullFloat64 `db:"longitude" json:"-"`
	EstablishmentName sql.NullString  `db:"establishment_name" json:"-"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
}

// Team returns the favorite team name, empty when unset.
func (u User) Team() string {
	if u.FavoriteTeam.Valid {
		return u.FavoriteTeam.String
	}
	return ""
}

// HasLocation reports whether the user has stored coordinates.
func (u User) HasLocation() bool {
	return u.Latitude.Valid && u.Longitude.Valid
}
