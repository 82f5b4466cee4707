package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"esporte-social/internal/clients"
	"esporte-social/internal/models"
	"esporte-social/internal/repositories"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) CreateUser(ctx context.Context, input repositories.NewUser) (models.User, error) {
	args := m.Called(ctx, input)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) UserByID(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error {
	args := m.Called(ctx, id, latitude, longitude)
	return args.Error(0)
}

type ChatMessageRepositoryMock struct {
	mock.Mock
}

func (m *ChatMessageRepositoryMock) CreateMessage(ctx context.Context, userID int64, roomID, message, messageType string) (models.ChatMessage, error) {
	args := m.Called(ctx, userID, roomID, message, messageType)
	var msg models.ChatMessage
	if val := args.Get(0); val != nil {
		msg = val.(models.ChatMessage)
	}
	return msg, args.Error(1)
}

func (m *ChatMessageRepositoryMock) RecentMessages(ctx context.Context, roomID string, limit int) ([]models.RoomMessage, error) {
	args := m.Called(ctx, roomID, limit)
	var msgs []models.RoomMessage
	if val := args.Get(0); val != nil {
		msgs = val.([]models.RoomMessage)
	}
	return msgs, args.Error(1)
}

type MatchRepositoryMock struct {
	mock.Mock
}

func (m *MatchRepositoryMock) UpsertMatch(ctx context.Context, match repositories.MatchUpsert) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

type InterestRepositoryMock struct {
	mock.Mock
}

func (m *InterestRepositoryMock) ReplaceInterest(ctx context.Context, userID, matchID int64, supportingTeam string, ranking int) error {
	args := m.Called(ctx, userID, matchID, supportingTeam, ranking)
	return args.Error(0)
}

type DirectoryMock struct {
	mock.Mock
}

func (m *DirectoryMock) Resolve(ctx context.Context, token string) (models.User, error) {
	args := m.Called(ctx, token)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

type PlacesAPIMock struct {
	mock.Mock
}

func (m *PlacesAPIMock) NearbyBars(ctx context.Context, latitude, longitude float64) ([]models.Establishment, error) {
	args := m.Called(ctx, latitude, longitude)
	var establishments []models.Establishment
	if val := args.Get(0); val != nil {
		establishments = val.([]models.Establishment)
	}
	return establishments, args.Error(1)
}

type FootballAPIMock struct {
	mock.Mock
}

func (m *FootballAPIMock) MatchesOn(ctx context.Context, day time.Time) ([]models.MatchSummary, error) {
	args := m.Called(ctx, day)
	var matches []models.MatchSummary
	if val := args.Get(0); val != nil {
		matches = val.([]models.MatchSummary)
	}
	return matches, args.Error(1)
}

var _ repositories.UserRepository = (*UserRepositoryMock)(nil)
var _ repositories.ChatMessageRepository = (*ChatMessageRepositoryMock)(nil)
var _ repositories.MatchRepository = (*MatchRepositoryMock)(nil)
var _ repositories.InterestRepository = (*InterestRepositoryMock)(nil)
var _ clients.PlacesAPI = (*PlacesAPIMock)(nil)
var _ clients.FootballAPI = (*FootballAPIMock)(nil)
