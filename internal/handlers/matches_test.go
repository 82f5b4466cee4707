package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"esporte-social/internal/cache"
	"esporte-social/internal/mocks"
	"esporte-social/internal/models"
	"esporte-social/internal/repositories"
)

func setupMatchRouter(handler *MatchHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Next()
	})
	r.GET("/matches/today", handler.TodayMatches)
	r.POST("/match/interest", handler.MarkInterest)
	return r
}

func newMatchHandler(football *mocks.FootballAPIMock, matches *mocks.MatchRepositoryMock, interests *mocks.InterestRepositoryMock) *MatchHandler {
	return NewMatchHandler(football, matches, interests, cache.New(10, time.Minute), nil)
}

func TestTodayMatchesFetchesAndStores(t *testing.T) {
	football := new(mocks.FootballAPIMock)
	matchRepo := new(mocks.MatchRepositoryMock)
	handler := newMatchHandler(football, matchRepo, new(mocks.InterestRepositoryMock))
	router := setupMatchRouter(handler)

	kickoff := time.Date(2025, 5, 10, 16, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return kickoff }

	fixture := models.MatchSummary{
		ID:       321,
		HomeTeam: "Flamengo",
		AwayTeam: "Corinthians",
		Date:     kickoff,
		Status:   "agendado",
		Round:    8,
	}
	football.On("MatchesOn", mock.Anything, kickoff).Return([]models.MatchSummary{fixture}, nil).Once()
	matchRepo.On("UpsertMatch", mock.Anything, repositories.MatchUpsert{
		APIMatchID:  321,
		HomeTeam:    "Flamengo",
		AwayTeam:    "Corinthians",
		MatchDate:   kickoff,
		Status:      "agendado",
		RoundNumber: 8,
	}).Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/matches/today", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Matches []models.MatchSummary `json:"matches"`
		Date    string                `json:"date"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Flamengo", resp.Matches[0].HomeTeam)
	assert.Equal(t, "2025-05-10", resp.Date)
	football.AssertExpectations(t)
	matchRepo.AssertExpectations(t)
}

func TestTodayMatchesServedFromCache(t *testing.T) {
	football := new(mocks.FootballAPIMock)
	matchRepo := new(mocks.MatchRepositoryMock)
	handler := newMatchHandler(football, matchRepo, new(mocks.InterestRepositoryMock))
	router := setupMatchRouter(handler)

	football.On("MatchesOn", mock.Anything, mock.Anything).Return([]models.MatchSummary{{ID: 1}}, nil).Once()
	matchRepo.On("UpsertMatch", mock.Anything, mock.Anything).Return(nil).Once()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/matches/today", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	football.AssertNumberOfCalls(t, "MatchesOn", 1)
}

func TestTodayMatchesUpstreamErrorDegrades(t *testing.T) {
	football := new(mocks.FootballAPIMock)
	handler := newMatchHandler(football, new(mocks.MatchRepositoryMock), new(mocks.InterestRepositoryMock))
	router := setupMatchRouter(handler)

	football.On("MatchesOn", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/matches/today", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Matches []models.MatchSummary `json:"matches"`
		Error   string                `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Matches)
	assert.NotEmpty(t, resp.Error)
}

func TestTodayMatchesUpsertFailureDoesNotFailRequest(t *testing.T) {
	football := new(mocks.FootballAPIMock)
	matchRepo := new(mocks.MatchRepositoryMock)
	handler := newMatchHandler(football, matchRepo, new(mocks.InterestRepositoryMock))
	router := setupMatchRouter(handler)

	football.On("MatchesOn", mock.Anything, mock.Anything).Return([]models.MatchSummary{{ID: 1}}, nil).Once()
	matchRepo.On("UpsertMatch", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/matches/today", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Matches []models.MatchSummary `json:"matches"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Matches, 1)
}

func TestMarkInterestSuccess(t *testing.T) {
	interests := new(mocks.InterestRepositoryMock)
	handler := newMatchHandler(new(mocks.FootballAPIMock), new(mocks.MatchRepositoryMock), interests)
	router := setupMatchRouter(handler)

	interests.On("ReplaceInterest", mock.Anything, int64(1), int64(321), "Flamengo", 1).Return(nil).Once()

	body := bytes.NewBufferString(`{"match_id":321,"supporting_team":"Flamengo"}`)
	req := httptest.NewRequest(http.MethodPost, "/match/interest", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	interests.AssertExpectations(t)
}

func TestMarkInterestMissingMatchID(t *testing.T) {
	interests := new(mocks.InterestRepositoryMock)
	handler := newMatchHandler(new(mocks.FootballAPIMock), new(mocks.MatchRepositoryMock), interests)
	router := setupMatchRouter(handler)

	body := bytes.NewBufferString(`{"supporting_team":"Flamengo"}`)
	req := httptest.NewRequest(http.MethodPost, "/match/interest", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	interests.AssertNotCalled(t, "ReplaceInterest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkInterestRepoError(t *testing.T) {
	interests := new(mocks.InterestRepositoryMock)
	handler := newMatchHandler(new(mocks.FootballAPIMock), new(mocks.MatchRepositoryMock), interests)
	router := setupMatchRouter(handler)

	interests.On("ReplaceInterest", mock.Anything, int64(1), int64(321), "", 2).Return(assert.AnError).Once()

	body := bytes.NewBufferString(`{"match_id":321,"ranking":2}`)
	req := httptest.NewRequest(http.MethodPost, "/match/interest", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	interests.AssertExpectations(t)
}
