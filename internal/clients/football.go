package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"esporte-social/internal/models"
	"esporte-social/internal/observability"
)

const (
	defaultFootballBaseURL = "https://api.api-futebol.com.br/v1"

	// Campeonato Brasileiro Série A id on api-futebol.com.br.
	brasileiraoID = 10
)

// FootballClient queries the api-futebol.com.br fixtures API.
type FootballClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewFootballClient constructs a FootballClient.
func NewFootballClient(apiKey string) *FootballClient {
	return &FootballClient{
		apiKey:     apiKey,
		baseURL:    defaultFootballBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type championshipResponse struct {
	CurrentEdition *struct {
		EditionID int64 `json:"edicao_id"`
	} `json:"edicao_atual"`
}

type fixtureItem struct {
	MatchID  int64 `json:"jogo_id"`
	HomeTeam struct {
		PopularName string `json:"nome_popular"`
	} `json:"time_mandante"`
	AwayTeam struct {
		PopularName string `json:"nome_popular"`
	} `json:"time_visitante"`
	PlayedAt  string `json:"data_realizacao"`
	Status    string `json:"status"`
	HomeScore int    `json:"placar_mandante"`
	AwayScore int    `json:"placar_visitante"`
	Round     int    `json:"rodada"`
}

// MatchesOn lists the Brasileirão fixtures scheduled for the given day.
func (c *FootballClient) MatchesOn(ctx context.Context, day time.Time) ([]models.MatchSummary, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var championship championshipResponse
	championshipURL := fmt.Sprintf("%s/campeonatos/%d", c.baseURL, brasileiraoID)
	if err := c.getJSON(ctx, championshipURL, &championship); err != nil {
		observability.IncExternalRequest("football", "error")
		return nil, err
	}
	if championship.CurrentEdition == nil {
		observability.IncExternalRequest("football", "error")
		return nil, fmt.Errorf("football api: championship %d has no current edition", brasileiraoID)
	}

	params := url.Values{}
	params.Set("data", day.Format("2006-01-02"))
	fixturesURL := fmt.Sprintf("%s/campeonatos/%d/fases/%d/jogos?%s",
		c.baseURL, brasileiraoID, championship.CurrentEdition.EditionID, params.Encode())

	var fixtures []fixtureItem
	if err := c.getJSON(ctx, fixturesURL, &fixtures); err != nil {
		observability.IncExternalRequest("football", "error")
		return nil, err
	}

	matches := make([]models.MatchSummary, 0, len(fixtures))
	for _, fixture := range fixtures {
		playedAt, err := time.Parse("2006-01-02 15:04:05", fixture.PlayedAt)
		if err != nil {
			observability.IncExternalRequest("football", "error")
			return nil, fmt.Errorf("football api: bad fixture date %q: %w", fixture.PlayedAt, err)
		}
		matches = append(matches, models.MatchSummary{
			ID:        fixture.MatchID,
			HomeTeam:  fixture.HomeTeam.PopularName,
			AwayTeam:  fixture.AwayTeam.PopularName,
			Date:      playedAt,
			Status:    fixture.Status,
			HomeScore: fixture.HomeScore,
			AwayScore: fixture.AwayScore,
			Round:     fixture.Round,
		})
	}

	observability.IncExternalRequest("football", "ok")
	return matches, nil
}

func (c *FootballClient) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("football request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("football request: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
