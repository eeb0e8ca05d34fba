package models

// FormRow is one team's recent results, oldest first.
type FormRow struct {
	Team    string   `json:"team"`
	N       int      `json:"n"`
	Form    []string `json:"form"`
	FormStr string   `json:"form_str"`
}

// FormAnalytics is the response of GET /analytics/form. Filters echoes what
// the backend applied; its values may be null.
type FormAnalytics struct {
	Filters map[string]any `json:"filters"`
	Data    []FormRow      `json:"data"`
}

type H2HSummary struct {
	Team1  string         `json:"team1"`
	Team2  string         `json:"team2"`
	Played int            `json:"played"`
	Wins   map[string]int `json:"wins"`
	Draws  int            `json:"draws"`
	Goals  map[string]int `json:"goals"`
}

type H2HMatch struct {
	Date  string `json:"date,omitempty"`
	Round string `json:"round,omitempty"`
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Score string `json:"score"`
}

type HeadToHead struct {
	Filters map[string]any `json:"filters"`
	Summary H2HSummary     `json:"summary"`
	Matches []H2HMatch     `json:"matches"`
}

type StreakRow struct {
	Team   string `json:"team"`
	Length int    `json:"length"`
	GF     int    `json:"gf"`
	GA     int    `json:"ga"`
}

type Streaks struct {
	Filters map[string]any `json:"filters"`
	Streaks []StreakRow    `json:"streaks"`
}
