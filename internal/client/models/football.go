package models

import (
	"encoding/json"
	"time"
)

type Competition struct {
	ID      string `json:"id"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Tier    int    `json:"tier,omitempty"`
}

type Season struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competition_id"`
	Year          string `json:"year,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	Status        string `json:"status,omitempty"`
}

type Venue struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity,omitempty"`
}

type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
	Founded   int    `json:"founded,omitempty"`
	Venue     *Venue `json:"venue,omitempty"`
}

type Player struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	DOB           string   `json:"dob,omitempty"`
	Nationality   string   `json:"nationality,omitempty"`
	Positions     []string `json:"positions,omitempty"`
	Position      string   `json:"position,omitempty"`
	CurrentTeamID string   `json:"current_team_id,omitempty"`
}

// Match is a fixture. Score is kept as raw JSON because the backend stores
// several shapes ("2-1", {"ft":[2,1]}, {"ft":{"home":2,"away":1}}).
type Match struct {
	ID            string          `json:"id"`
	CompetitionID string          `json:"competition_id"`
	SeasonID      string          `json:"season_id"`
	HomeTeamID    string          `json:"home_team_id"`
	AwayTeamID    string          `json:"away_team_id"`
	Status        string          `json:"status"`
	Date          string          `json:"date,omitempty"`
	Round         string          `json:"round,omitempty"`
	Venue         *Venue          `json:"venue,omitempty"`
	Score         json.RawMessage `json:"score,omitempty"`
}

// NoteAuthor identifies who wrote a note.
type NoteAuthor struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// Note is a free-text comment attached to a match.
type Note struct {
	ID        string     `json:"id"`
	MatchID   string     `json:"match_id"`
	Text      string     `json:"note"`
	CreatedBy NoteAuthor `json:"created_by"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

// RemoveNote returns notes without the note identified by id. Applying it
// again with the same id yields the same slice contents.
func RemoveNote(notes []Note, id string) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// TableRow is one line of a league table.
type TableRow struct {
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
	Team     string `json:"team,omitempty"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	GF       int    `json:"gf"`
	GA       int    `json:"ga"`
	GD       int    `json:"gd"`
	Points   int    `json:"points"`
}

// DisplayName prefers the resolved team name over the bare id.
func (r TableRow) DisplayName() string {
	switch {
	case r.TeamName != "":
		return r.TeamName
	case r.Team != "":
		return r.Team
	default:
		return r.TeamID
	}
}

type LeagueTable struct {
	CompetitionID string     `json:"competition_id"`
	SeasonID      string     `json:"season_id"`
	Table         []TableRow `json:"table"`
}
