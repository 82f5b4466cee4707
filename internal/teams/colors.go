// Package teams holds the static Brazilian team metadata used to decorate
// chat messages and dashboard responses.
package teams

import "esporte-social/internal/models"

// DefaultColors is the fallback pair for unknown or unset teams.
var DefaultColors = models.TeamColors{Primary: "#007BFF", Secondary: "#FFFFFF"}

var teamColors = map[string]models.TeamColors{
	"Flamengo":      {Primary: "#E60026", Secondary: "#000000"},
	"Corinthians":   {Primary: "#000000", Secondary: "#FFFFFF"},
	"Palmeiras":     {Primary: "#006B3F", Secondary: "#FFFFFF"},
	"São Paulo":     {Primary: "#FF0000", Secondary: "#000000"},
	"Santos":        {Primary: "#000000", Secondary: "#FFFFFF"},
	"Vasco":         {Primary: "#000000", Secondary: "#FFFFFF"},
	"Botafogo":      {Primary: "#000000", Secondary: "#FFFFFF"},
	"Fluminense":    {Primary: "#7F0000", Secondary: "#FFFFFF"},
	"Grêmio":        {Primary: "#0080FF", Secondary: "#000000"},
	"Internacional": {Primary: "#FF0000", Secondary: "#FFFFFF"},
	"Atlético-MG":   {Primary: "#000000", Secondary: "#FFFFFF"},
	"Cruzeiro":      {Primary: "#0080FF", Secondary: "#FFFFFF"},
	"Bahia":         {Primary: "#0080FF", Secondary: "#FF0000"},
	"Sport":         {Primary: "#FF0000", Secondary: "#000000"},
	"Ceará":         {Primary: "#000000", Secondary: "#FFFFFF"},
	"Fortaleza":     {Primary: "#FF0000", Secondary: "#0080FF"},
	"Athletico-PR":  {Primary: "#FF0000", Secondary: "#000000"},
	"Coritiba":      {Primary: "#00FF00", Secondary: "#FFFFFF"},
	"Bragantino":    {Primary: "#FF0000", Secondary: "#FFFFFF"},
	"Cuiabá":        {Primary: "#FFD700", Secondary: "#00FF00"},
	"Atlético-GO":   {Primary: "#FF0000", Secondary: "#000000"},
	"Vitória":       {Primary: "#FF0000", Secondary: "#000000"},
	"Criciúma":      {Primary: "#FFD700", Secondary: "#000000"},
	"Juventude":     {Primary: "#00FF00", Secondary: "#FFFFFF"},
}

// Alternate spellings seen in API feeds and user input, mapped to the
// canonical key of the color table.
var nameAliases = map[string]string{
	"Atletico-MG":         "Atlético-MG",
	"Atletico-GO":         "Atlético-GO",
	"Atletico-PR":         "Athletico-PR",
	"Atletico Paranaense": "Athletico-PR",
	"Atletico Mineiro":    "Atlético-MG",
	"Sao Paulo":           "São Paulo",
	"Gremio":              "Grêmio",
	"Vasco da Gama":       "Vasco",
	"Sport Recife":        "Sport",
	"Ceara":               "Ceará",
	"Cuiaba":              "Cuiabá",
	"Criciuma":            "Criciúma",
	"Vitoria":             "Vitória",
}

// FormatTeamName maps alternate spellings to the canonical team name.
// Unknown names pass through unchanged.
func FormatTeamName(name string) string {
	if canonical, ok := nameAliases[name]; ok {
		return canonical
	}
	return name
}

// Colors returns the display color pair for a team. It is total: any input,
// including the empty string, yields at least DefaultColors.
func Colors(name string) models.TeamColors {
	if colors, ok := teamColors[FormatTeamName(name)]; ok {
		return colors
	}
	return DefaultColors
}

// Names lists every canonical team name, for registration forms.
func Names() []string {
	names := make([]string, 0, len(teamColors))
	for name := range teamColors {
		names = append(names, name)
	}
	return names
}
