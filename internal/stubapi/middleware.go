package stubapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/goalline/internal/logging"
	"github.com/dmitrijs2005/goalline/internal/stubapi/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"

	ctxAccount = "account"
	ctxClaims  = "claims"
)

// requestID echoes the caller's X-Request-ID or assigns a fresh one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(headerRequestID),
		)
	}
}

// bearerToken prefers "Authorization: Bearer <token>" and falls back to
// the x-access-token header.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return strings.TrimSpace(c.GetHeader("x-access-token"))
}

// requireAuth rejects requests without a valid, unrevoked token and stores
// the caller's account and token claims in the context.
func requireAuth(store *Store, tokens *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			respondError(c, http.StatusUnauthorized, codeUnauthenticated, "Authentication required")
			return
		}

		claims, err := tokens.Parse(raw)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			respondError(c, http.StatusUnauthorized, codeTokenExpired, "Token has expired")
			return
		case err != nil:
			respondError(c, http.StatusUnauthorized, codeInvalidToken, "Invalid authentication token")
			return
		}

		if store.IsRevoked(claims.ID) {
			respondError(c, http.StatusUnauthorized, codeTokenRevoked, "Token has been revoked")
			return
		}

		a, ok := store.accountByID(claims.Subject)
		if !ok {
			respondError(c, http.StatusUnauthorized, codeUnauthenticated, "User no longer exists")
			return
		}

		c.Set(ctxAccount, a)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

func currentAccount(c *gin.Context) *account {
	a, _ := c.MustGet(ctxAccount).(*account)
	return a
}
