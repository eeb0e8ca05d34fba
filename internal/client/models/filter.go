package models

import (
	"net/url"
	"strconv"
	"strings"
)

// setIfPresent adds key=value, as given, unless value is blank.
func setIfPresent(v url.Values, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	v.Set(key, value)
}

// setIntIfPositive adds key=n only when n > 0.
func setIntIfPositive(v url.Values, key string, n int) {
	if n <= 0 {
		return
	}
	v.Set(key, strconv.Itoa(n))
}

// PageRequest selects a page of a listing. Zero fields are left to the
// backend defaults.
type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) apply(v url.Values) {
	setIntIfPositive(v, "page", p.Page)
	setIntIfPositive(v, "page_size", p.PageSize)
}

// CompetitionFilter narrows GET /competitions.
type CompetitionFilter struct {
	Country string
	PageRequest
}

func (f CompetitionFilter) Query() url.Values {
	v := url.Values{}
	setIfPresent(v, "country", f.Country)
	f.apply(v)
	return v
}

// TeamFilter narrows GET /teams.
type TeamFilter struct {
	Name    string
	Country string
	PageRequest
}

func (f TeamFilter) Query() url.Values {
	v := url.Values{}
	setIfPresent(v, "name", f.Name)
	setIfPresent(v, "country", f.Country)
	f.apply(v)
	return v
}

// PlayerFilter narrows GET /players.
type PlayerFilter struct {
	TeamID   string
	Position string
	PageRequest
}

func (f PlayerFilter) Query() url.Values {
	v := url.Values{}
	setIfPresent(v, "team_id", f.TeamID)
	setIfPresent(v, "position", f.Position)
	f.apply(v)
	return v
}

// MatchFilter narrows GET /matches. All keys are independent.
type MatchFilter struct {
	CompetitionID string
	SeasonID      string
	TeamID        string
	Status        string
	PageRequest
}

func (f MatchFilter) Query() url.Values {
	v := url.Values{}
	setIfPresent(v, "competition_id", f.CompetitionID)
	setIfPresent(v, "season_id", f.SeasonID)
	setIfPresent(v, "team_id", f.TeamID)
	setIfPresent(v, "status", f.Status)
	f.apply(v)
	return v
}

// SeasonFilter narrows GET /seasons.
type SeasonFilter struct {
	CompetitionID string
	Status        string
	PageRequest
}

func (f SeasonFilter) Query() url.Values {
	v := url.Values{}
	setIfPresent(v, "competition_id", f.CompetitionID)
	setIfPresent(v, "status", f.Status)
	f.apply(v)
	return v
}

// AnalyticsScope holds the filters shared by every analytics endpoint.
type AnalyticsScope struct {
	CompetitionID string
	SeasonID      string
	TeamID        string
	Status        string
	DateFrom      string
	DateTo        string
	RoundTo       string
}

func (s AnalyticsScope) apply(v url.Values) {
	setIfPresent(v, "competition_id", s.CompetitionID)
	setIfPresent(v, "season_id", s.SeasonID)
	setIfPresent(v, "team_id", s.TeamID)
	setIfPresent(v, "status", s.Status)
	setIfPresent(v, "date_from", s.DateFrom)
	setIfPresent(v, "date_to", s.DateTo)
	setIfPresent(v, "round_to", s.RoundTo)
}

// FormFilter narrows GET /analytics/form. The zero value sends no parameters.
type FormFilter struct {
	N    int
	By   string
	Team string
	AnalyticsScope
}

func (f FormFilter) Query() url.Values {
	v := url.Values{}
	setIntIfPositive(v, "n", f.N)
	setIfPresent(v, "by", f.By)
	setIfPresent(v, "team", f.Team)
	f.apply(v)
	return v
}

// H2HFilter narrows GET /analytics/h2h. Team1 and Team2 are required.
type H2HFilter struct {
	Team1 string
	Team2 string
	AnalyticsScope
}

func (f H2HFilter) Query() url.Values {
	v := url.Values{}
	setIfPresent(v, "team1", f.Team1)
	setIfPresent(v, "team2", f.Team2)
	f.apply(v)
	return v
}

// StreakFilter narrows GET /analytics/streaks.
type StreakFilter struct {
	Type  string
	Limit int
	AnalyticsScope
}

func (f StreakFilter) Query() url.Values {
	v := url.Values{}
	setIfPresent(v, "type", f.Type)
	setIntIfPositive(v, "limit", f.Limit)
	f.apply(v)
	return v
}
