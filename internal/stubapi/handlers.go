package stubapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/logging"
	"github.com/dmitrijs2005/goalline/internal/stubapi/auth"
	"github.com/gin-gonic/gin"
)

// Handler serves every route of the stub backend.
type Handler struct {
	data        *Dataset
	store       *Store
	tokens      *auth.Issuer
	logger      logging.Logger
	pageDefault int
	pageMax     int
}

func NewHandler(data *Dataset, store *Store, tokens *auth.Issuer, logger logging.Logger) *Handler {
	logger = logging.OrNop(logger)
	return &Handler{data: data, store: store, tokens: tokens, logger: logger, pageDefault: 20, pageMax: 100}
}

// WithPageSizes overrides the default and maximum listing page sizes.
func (h *Handler) WithPageSizes(def, max int) *Handler {
	if def > 0 {
		h.pageDefault = def
	}
	if max > 0 {
		h.pageMax = max
	}
	return h
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---- auth ----

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) readCredentials(c *gin.Context) (credentials, bool) {
	var in credentials
	_ = c.ShouldBindJSON(&in)
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		respondError(c, http.StatusUnprocessableEntity, codeValidation, "Email and password are required")
		return in, false
	}
	return in, true
}

func (h *Handler) respondAuth(c *gin.Context, status int, a *account) {
	token, err := h.tokens.Issue(a.ID, string(a.Role))
	if err != nil {
		h.logger.Error(c.Request.Context(), "issue token", "error", err)
		respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "Could not issue token")
		return
	}
	c.JSON(status, models.AuthResponse{Token: token, User: a.identity()})
}

func (h *Handler) Register(c *gin.Context) {
	in, ok := h.readCredentials(c)
	if !ok {
		return
	}

	a, err := h.store.Register(in.Email, in.Password, models.RoleUser)
	switch {
	case errors.Is(err, errDuplicateEmail):
		respondError(c, http.StatusConflict, codeDuplicate, "Email already registered")
		return
	case err != nil:
		h.logger.Error(c.Request.Context(), "register", "error", err)
		respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "Registration failed")
		return
	}

	h.logger.Info(c.Request.Context(), "account registered", "user_id", a.ID)
	h.respondAuth(c, http.StatusCreated, a)
}

func (h *Handler) Login(c *gin.Context) {
	in, ok := h.readCredentials(c)
	if !ok {
		return
	}

	a, err := h.store.Authenticate(in.Email, in.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, codeUnauthenticated, "Invalid email or password")
		return
	}
	h.respondAuth(c, http.StatusOK, a)
}

// Logout revokes the token the request was made with.
func (h *Handler) Logout(c *gin.Context) {
	claims, _ := c.MustGet(ctxClaims).(*auth.Claims)

	expires := time.Now()
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}
	h.store.Revoke(claims.ID, expires)

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// ---- reference data ----

func (h *Handler) ListCompetitions(c *gin.Context) {
	country := c.Query("country")
	items := filterSorted(h.data.Competitions,
		func(x models.Competition) bool { return matchesFold(country, x.Country) },
		func(a, b models.Competition) bool {
			if a.Tier != b.Tier {
				return a.Tier < b.Tier
			}
			return a.Name < b.Name
		})

	page, size := pageParams(c, h.pageDefault, h.pageMax)
	respondPage(c, items, page, size)
}

func (h *Handler) GetCompetition(c *gin.Context) {
	x, ok := h.data.competition(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Competition not found")
		return
	}
	c.JSON(http.StatusOK, x)
}

func (h *Handler) ListSeasons(c *gin.Context) {
	competitionID, status := c.Query("competition_id"), c.Query("status")
	if competitionID != "" {
		if _, ok := h.data.competition(competitionID); !ok {
			respondError(c, http.StatusBadRequest, codeValidation, "Invalid competition_id")
			return
		}
	}

	items := filterSorted(h.data.Seasons,
		func(x models.Season) bool {
			return (competitionID == "" || x.CompetitionID == competitionID) && matchesFold(status, x.Status)
		},
		func(a, b models.Season) bool { return a.StartDate > b.StartDate })

	page, size := pageParams(c, h.pageDefault, h.pageMax)
	respondPage(c, items, page, size)
}

func (h *Handler) GetSeason(c *gin.Context) {
	x, ok := h.data.season(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Season not found")
		return
	}
	c.JSON(http.StatusOK, x)
}

func (h *Handler) ListTeams(c *gin.Context) {
	name, country := c.Query("name"), c.Query("country")
	items := filterSorted(h.data.Teams,
		func(x models.Team) bool { return containsFold(name, x.Name) && matchesFold(country, x.Country) },
		func(a, b models.Team) bool { return a.Name < b.Name })

	page, size := pageParams(c, h.pageDefault, h.pageMax)
	respondPage(c, items, page, size)
}

func (h *Handler) GetTeam(c *gin.Context) {
	x, ok := h.data.team(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Team not found")
		return
	}
	c.JSON(http.StatusOK, x)
}

func (h *Handler) ListPlayers(c *gin.Context) {
	name, teamID, position := c.Query("name"), c.Query("team_id"), c.Query("position")
	if teamID != "" {
		if _, ok := h.data.team(teamID); !ok {
			respondError(c, http.StatusBadRequest, codeValidation, "Invalid team_id")
			return
		}
	}

	items := filterSorted(h.data.Players,
		func(x models.Player) bool {
			return containsFold(name, x.Name) &&
				(teamID == "" || x.CurrentTeamID == teamID) &&
				matchesFold(position, x.Position)
		},
		func(a, b models.Player) bool { return a.Name < b.Name })

	page, size := pageParams(c, h.pageDefault, h.pageMax)
	respondPage(c, items, page, size)
}

func (h *Handler) GetPlayer(c *gin.Context) {
	x, ok := h.data.player(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Player not found")
		return
	}
	c.JSON(http.StatusOK, x)
}

func (h *Handler) ListMatches(c *gin.Context) {
	competitionID, seasonID, teamID := c.Query("competition_id"), c.Query("season_id"), c.Query("team_id")
	status := c.Query("status")
	from, to := isoDate(c.Query("from")), isoDate(c.Query("to"))

	if competitionID != "" {
		if _, ok := h.data.competition(competitionID); !ok {
			respondError(c, http.StatusBadRequest, codeValidation, "Invalid competition_id")
			return
		}
	}
	if seasonID != "" {
		if _, ok := h.data.season(seasonID); !ok {
			respondError(c, http.StatusBadRequest, codeValidation, "Invalid season_id")
			return
		}
	}
	if teamID != "" {
		if _, ok := h.data.team(teamID); !ok {
			respondError(c, http.StatusBadRequest, codeValidation, "Invalid team_id")
			return
		}
	}

	items := filterSorted(h.data.Matches,
		func(x models.Match) bool {
			switch {
			case competitionID != "" && x.CompetitionID != competitionID,
				seasonID != "" && x.SeasonID != seasonID,
				teamID != "" && x.HomeTeamID != teamID && x.AwayTeamID != teamID,
				status != "" && x.Status != status,
				from != "" && x.Date < from,
				to != "" && x.Date > to:
				return false
			}
			return true
		},
		func(a, b models.Match) bool { return a.Date < b.Date })

	page, size := pageParams(c, h.pageDefault, h.pageMax)
	respondPage(c, items, page, size)
}

func (h *Handler) GetMatch(c *gin.Context) {
	x, ok := h.data.match(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Match not found")
		return
	}
	c.JSON(http.StatusOK, x)
}

// ---- notes ----

type noteBody struct {
	MatchID string `json:"match_id"`
	Note    string `json:"note"`
}

func (h *Handler) ListNotes(c *gin.Context) {
	matchID := strings.TrimSpace(c.Query("match_id"))
	if matchID == "" {
		respondError(c, http.StatusUnprocessableEntity, codeValidation, "match_id is required")
		return
	}
	if _, ok := h.data.match(matchID); !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Match not found")
		return
	}
	c.JSON(http.StatusOK, h.store.Notes(matchID))
}

func (h *Handler) CreateNote(c *gin.Context) {
	var in noteBody
	_ = c.ShouldBindJSON(&in)
	matchID, text := strings.TrimSpace(in.MatchID), strings.TrimSpace(in.Note)
	if matchID == "" || text == "" {
		respondError(c, http.StatusUnprocessableEntity, codeValidation, "match_id and note are required")
		return
	}
	if _, ok := h.data.match(matchID); !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Match not found")
		return
	}

	c.JSON(http.StatusCreated, h.store.AddNote(matchID, text, currentAccount(c)))
}

func (h *Handler) UpdateNote(c *gin.Context) {
	var in noteBody
	_ = c.ShouldBindJSON(&in)
	text := strings.TrimSpace(in.Note)
	if text == "" {
		respondError(c, http.StatusUnprocessableEntity, codeValidation, "note text is required")
		return
	}

	n, err := h.store.EditNote(c.Param("id"), text, currentAccount(c))
	if err != nil {
		h.respondNoteError(c, err, "You cannot edit this note")
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) DeleteNote(c *gin.Context) {
	if err := h.store.DeleteNote(c.Param("id"), currentAccount(c)); err != nil {
		h.respondNoteError(c, err, "You cannot delete this note")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) respondNoteError(c *gin.Context, err error, forbidden string) {
	switch {
	case errors.Is(err, errNoteNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, "Note not found")
	case errors.Is(err, errNotOwner):
		respondError(c, http.StatusForbidden, codeUnauthorised, forbidden)
	default:
		respondError(c, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
	}
}

// ---- analytics ----

func scopeFromQuery(c *gin.Context) scope {
	return scope{
		CompetitionID: strings.TrimSpace(c.Query("competition_id")),
		SeasonID:      strings.TrimSpace(c.Query("season_id")),
		TeamID:        strings.TrimSpace(c.Query("team_id")),
		Status:        strings.TrimSpace(c.Query("status")),
		DateFrom:      c.Query("date_from"),
		DateTo:        c.Query("date_to"),
		RoundTo:       strings.TrimSpace(c.Query("round_to")),
	}
}

// intQuery parses an optional integer parameter. Absent means 0.
func intQuery(c *gin.Context, key string) (int, bool) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, true
	}
	n := atoiOr(v, -1)
	if n < 0 {
		respondError(c, http.StatusBadRequest, codeValidation, key+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func (h *Handler) Form(c *gin.Context) {
	n, ok := intQuery(c, "n")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, computeForm(h.data.Matches, scopeFromQuery(c), n, c.Query("by"), strings.TrimSpace(c.Query("team"))))
}

func (h *Handler) HeadToHead(c *gin.Context) {
	t1, t2 := strings.TrimSpace(c.Query("team1")), strings.TrimSpace(c.Query("team2"))
	if t1 == "" || t2 == "" {
		respondError(c, http.StatusBadRequest, codeBadRequest, "team1 and team2 are required")
		return
	}
	c.JSON(http.StatusOK, computeH2H(h.data.Matches, scopeFromQuery(c), t1, t2))
}

func (h *Handler) Streaks(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, computeStreaks(h.data.Matches, scopeFromQuery(c), c.Query("type"), limit))
}

func (h *Handler) LeagueTable(c *gin.Context) {
	c.JSON(http.StatusOK, computeTable(h.data, c.Param("competition_id"), c.Param("season_id")))
}
