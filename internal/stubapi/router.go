package stubapi

import (
	"time"

	"github.com/dmitrijs2005/goalline/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts every route under /api/v1.
func NewRouter(h *Handler, logger logging.Logger) *gin.Engine {
	logger = logging.OrNop(logger)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Request-ID", "x-access-token"},
		ExposeHeaders:   []string{headerRequestID},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/health", h.Health)

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", requireAuth(h.store, h.tokens), h.Logout)

		v1.GET("/competitions", h.ListCompetitions)
		v1.GET("/competitions/:id", h.GetCompetition)
		v1.GET("/seasons", h.ListSeasons)
		v1.GET("/seasons/:id", h.GetSeason)
		v1.GET("/teams", h.ListTeams)
		v1.GET("/teams/:id", h.GetTeam)
		v1.GET("/players", h.ListPlayers)
		v1.GET("/players/:id", h.GetPlayer)
		v1.GET("/matches", h.ListMatches)
		v1.GET("/matches/:id", h.GetMatch)

		notes := v1.Group("/notes", requireAuth(h.store, h.tokens))
		notes.GET("", h.ListNotes)
		notes.POST("", h.CreateNote)
		notes.PUT("/:id", h.UpdateNote)
		notes.DELETE("/:id", h.DeleteNote)

		analytics := v1.Group("/analytics")
		analytics.GET("/form", h.Form)
		analytics.GET("/h2h", h.HeadToHead)
		analytics.GET("/streaks", h.Streaks)

		v1.GET("/tables/:competition_id/:season_id", h.LeagueTable)
	}

	return router
}
