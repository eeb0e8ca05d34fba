package stubapi

import (
	"encoding/json"

	"github.com/dmitrijs2005/goalline/internal/client/models"
)

// Dataset is the read-only football data served by the stub.
type Dataset struct {
	Competitions []models.Competition
	Seasons      []models.Season
	Teams        []models.Team
	Players      []models.Player
	Matches      []models.Match
}

// DefaultDataset returns a small but complete fixture set. Scores use each
// of the shapes the backend stores, and one fixture is still unplayed.
func DefaultDataset() *Dataset {
	return &Dataset{
		Competitions: []models.Competition{
			{ID: "c1", Code: "PL", Name: "Premier League", Country: "England", Tier: 1},
			{ID: "c2", Code: "PD", Name: "La Liga", Country: "Spain", Tier: 1},
		},
		Seasons: []models.Season{
			{ID: "s1", CompetitionID: "c1", Year: "2024/25", StartDate: "2024-08-16", EndDate: "2025-05-25", Status: "active"},
			{ID: "s2", CompetitionID: "c2", Year: "2024/25", StartDate: "2024-08-15", EndDate: "2025-05-25", Status: "active"},
		},
		Teams: []models.Team{
			{ID: "t1", Name: "Arsenal", ShortName: "ARS", Country: "England", City: "London", Founded: 1886,
				Venue: &models.Venue{Name: "Emirates Stadium", Capacity: 60704}},
			{ID: "t2", Name: "Chelsea", ShortName: "CHE", Country: "England", City: "London", Founded: 1905,
				Venue: &models.Venue{Name: "Stamford Bridge", Capacity: 40343}},
			{ID: "t3", Name: "Liverpool", ShortName: "LIV", Country: "England", City: "Liverpool", Founded: 1892,
				Venue: &models.Venue{Name: "Anfield", Capacity: 61276}},
			{ID: "t4", Name: "Barcelona", ShortName: "BAR", Country: "Spain", City: "Barcelona", Founded: 1899},
			{ID: "t5", Name: "Real Madrid", ShortName: "RMA", Country: "Spain", City: "Madrid", Founded: 1902},
		},
		Players: []models.Player{
			{ID: "p1", Name: "Bukayo Saka", Nationality: "England", Position: "FW", CurrentTeamID: "t1"},
			{ID: "p2", Name: "David Raya", Nationality: "Spain", Position: "GK", CurrentTeamID: "t1"},
			{ID: "p3", Name: "Cole Palmer", Nationality: "England", Position: "MF", CurrentTeamID: "t2"},
			{ID: "p4", Name: "Mohamed Salah", Nationality: "Egypt", Position: "FW", CurrentTeamID: "t3"},
			{ID: "p5", Name: "Pedri", Nationality: "Spain", Position: "MF", CurrentTeamID: "t4"},
		},
		Matches: []models.Match{
			{ID: "m1", CompetitionID: "c1", SeasonID: "s1", HomeTeamID: "t1", AwayTeamID: "t2",
				Status: "finished", Date: "2024-08-17", Round: "1", Score: rawScore(`"2-1"`),
				Venue: &models.Venue{Name: "Emirates Stadium"}},
			{ID: "m2", CompetitionID: "c1", SeasonID: "s1", HomeTeamID: "t3", AwayTeamID: "t1",
				Status: "finished", Date: "2024-08-24", Round: "2", Score: rawScore(`{"ft":[1,1]}`)},
			{ID: "m3", CompetitionID: "c1", SeasonID: "s1", HomeTeamID: "t2", AwayTeamID: "t3",
				Status: "finished", Date: "2024-08-31", Round: "3", Score: rawScore(`{"ft":{"home":0,"away":2}}`)},
			{ID: "m4", CompetitionID: "c1", SeasonID: "s1", HomeTeamID: "t1", AwayTeamID: "t3",
				Status: "scheduled", Date: "2024-09-14", Round: "4"},
			{ID: "m5", CompetitionID: "c2", SeasonID: "s2", HomeTeamID: "t4", AwayTeamID: "t5",
				Status: "finished", Date: "2024-10-26", Round: "11", Score: rawScore(`"0-4"`)},
		},
	}
}

func rawScore(s string) json.RawMessage { return json.RawMessage(s) }

func (d *Dataset) competition(id string) (models.Competition, bool) {
	for _, c := range d.Competitions {
		if c.ID == id {
			return c, true
		}
	}
	return models.Competition{}, false
}

func (d *Dataset) season(id string) (models.Season, bool) {
	for _, s := range d.Seasons {
		if s.ID == id {
			return s, true
		}
	}
	return models.Season{}, false
}

func (d *Dataset) team(id string) (models.Team, bool) {
	for _, t := range d.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

func (d *Dataset) player(id string) (models.Player, bool) {
	for _, p := range d.Players {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

func (d *Dataset) match(id string) (models.Match, bool) {
	for _, m := range d.Matches {
		if m.ID == id {
			return m, true
		}
	}
	return models.Match{}, false
}
