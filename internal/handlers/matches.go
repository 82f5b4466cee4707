package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esporte-social/internal/cache"
	"esporte-social/internal/clients"
	"esporte-social/internal/models"
	"esporte-social/internal/repositories"
	"esporte-social/internal/telemetry"
)

// MatchHandler serves fixture listings and match interest marks.
type MatchHandler struct {
	football  clients.FootballAPI
	matches   repositories.MatchRepository
	interests repositories.InterestRepository
	cache     *cache.Cache
	audit     *telemetry.AuditEmitter
	now       func() time.Time
}

// NewMatchHandler constructs a MatchHandler.
func NewMatchHandler(football clients.FootballAPI, matches repositories.MatchRepository, interests repositories.InterestRepository, cache *cache.Cache, audit *telemetry.AuditEmitter) *MatchHandler {
	return &MatchHandler{
		football:  football,
		matches:   matches,
		interests: interests,
		cache:     cache,
		audit:     audit,
		now:       time.Now,
	}
}

// TodayMatches lists the championship fixtures scheduled for today.
// Upstream failures degrade to an empty list so the page stays usable.
func (h *MatchHandler) TodayMatches(c *gin.Context) {
	day := h.now()
	key := "matches:" + day.Format("2006-01-02")
	if cached, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, gin.H{"matches": cached, "date": day.Format("2006-01-02")})
		return
	}

	fixtures, err := h.football.MatchesOn(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"matches": []models.MatchSummary{},
			"date":    day.Format("2006-01-02"),
			"error":   "não foi possível buscar os jogos de hoje",
		})
		return
	}

	// Keep the local table in sync so interest marks have a row to point at.
	for _, fixture := range fixtures {
		err := h.matches.UpsertMatch(c.Request.Context(), repositories.MatchUpsert{
			APIMatchID:  fixture.ID,
			HomeTeam:    fixture.HomeTeam,
			AwayTeam:    fixture.AwayTeam,
			MatchDate:   fixture.Date,
			Status:      fixture.Status,
			HomeScore:   fixture.HomeScore,
			AwayScore:   fixture.AwayScore,
			RoundNumber: fixture.Round,
		})
		if err != nil {
			log.Printf("match upsert failed api_match_id=%d: %v", fixture.ID, err)
		}
	}

	h.cache.Set(key, fixtures)
	c.JSON(http.StatusOK, gin.H{"matches": fixtures, "date": day.Format("2006-01-02")})
}

// MarkInterest records which match the caller plans to follow. A second
// mark replaces the first.
func (h *MatchHandler) MarkInterest(c *gin.Context) {
	var req struct {
		MatchID        int64  `json:"match_id" binding:"required"`
		SupportingTeam string `json:"supporting_team"`
		Ranking        int    `json:"ranking"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Ranking <= 0 {
		req.Ranking = 1
	}

	userID := c.GetInt64("userID")
	if err := h.interests.ReplaceInterest(c.Request.Context(), userID, req.MatchID, req.SupportingTeam, req.Ranking); err != nil {
		h.emitAudit(c, "ERROR", "internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível registrar o interesse"})
		return
	}

	h.emitAudit(c, "INFO", "Match interest recorded")
	c.JSON(http.StatusOK, gin.H{"message": "interesse registrado"})
}

func (h *MatchHandler) emitAudit(c *gin.Context, level, text string) {
	if h.audit == nil {
		return
	}
	h.audit.Emit(c.Request.Context(), level, text, requestIDFromContext(c), userIDFromContext(c))
}
