package auth

import (
	"context"

	"esporte-social/internal/models"
)

// UserSource looks up users by id; satisfied by the users repository.
type UserSource interface {
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// Directory resolves a session token to the user it identifies.
type Directory struct {
	tokens *JWTManager
	users  UserSource
}

// NewDirectory builds a Directory over a token manager and a user source.
func NewDirectory(tokens *JWTManager, users UserSource) *Directory {
	return &Directory{tokens: tokens, users: users}
}

// Resolve validates the token and loads the identified user. A failure at
// either step leaves the caller unauthenticated.
func (d *Directory) Resolve(ctx context.Context, token string) (models.User, error) {
	userID, err := d.tokens.Validate(token)
	if err != nil {
		return models.User{}, err
	}
	return d.users.UserByID(ctx, userID)
}
