package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"esporte-social/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("email or username already registered")
)

// NewUser is the input for account creation.
type NewUser struct {
	Username          string
	Email             string
	PasswordHash      string
	UserType          string
	FavoriteTeam      string
	EstablishmentName string
}

// UserRepository abstracts user persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, input NewUser) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error
}

// UserRepo is a sqlx-backed repository.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo constructs UserRepo.
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, username, email, password_hash, user_type, favorite_team, latitude, longitude, establishment_name, created_at`

// CreateUser inserts a new account. Duplicate email or username maps to
// ErrUserExists.
func (r *UserRepo) CreateUser(ctx context.Context, input NewUser) (models.User, error) {
	var user models.User
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO users (username, email, password_hash, user_type, favorite_team, establishment_name)
         VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
         RETURNING `+userColumns,
		input.Username, input.Email, input.PasswordHash, input.UserType,
		input.FavoriteTeam, input.EstablishmentName,
	).StructScan(&user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.User{}, ErrUserExists
		}
		return models.User{}, err
	}
	return user, nil
}

// UserByID fetches a user by primary key.
func (r *UserRepo) UserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// UserByEmail fetches a user by unique email.
func (r *UserRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// UpdateLocation stores the user's last known coordinates.
func (r *UserRepo) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET latitude=$1, longitude=$2 WHERE id=$3`, latitude, longitude, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
