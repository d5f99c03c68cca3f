package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/controller/respond"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/session"
	"github.com/rs/zerolog/log"
)

const (
	ctxUserID    = "auth.user_id"
	ctxTokenID   = "auth.token_id"
	ctxExpiresAt = "auth.expires_at"
)

type Authenticator struct {
	tokens *session.TokenManager
	store  session.Store
}

func NewAuthenticator(tokens *session.TokenManager, store session.Store) *Authenticator {
	return &Authenticator{tokens: tokens, store: store}
}

// RequireAuth accepts a bearer token that parses, has not expired and has
// not been revoked by logout.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			respond.Error(c, apperr.Unauthorized("missing bearer token"))
			return
		}
		claims, err := a.tokens.Parse(raw)
		if err != nil {
			respond.Error(c, apperr.Unauthorized("invalid or expired token"))
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			respond.Error(c, apperr.Unauthorized("invalid or expired token"))
			return
		}
		revoked, err := a.store.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			respond.Error(c, apperr.Internal(err, "checking session"))
			return
		}
		if revoked {
			respond.Error(c, apperr.Unauthorized("session has been logged out"))
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxTokenID, claims.ID)
		c.Set(ctxExpiresAt, claims.ExpiresAt.Time)
		c.Next()
	}
}

// Gate is the single place where the admin role is enforced.
type Gate struct {
	users repository.UserRepository
}

func NewGate(users repository.UserRepository) *Gate {
	return &Gate{users: users}
}

// RequireAdmin must run after RequireAuth. The role is read from the store
// on every request so a demotion takes effect immediately.
func (g *Gate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			respond.Error(c, apperr.Unauthorized("authentication required"))
			return
		}
		user, err := g.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				respond.Error(c, apperr.Unauthorized("account no longer exists"))
				return
			}
			respond.Error(c, err)
			return
		}
		if !user.IsAdmin() {
			log.Warn().Uint("userID", userID).Str("path", c.FullPath()).Msg("Non-admin denied")
			respond.Error(c, apperr.Forbidden("admin access required"))
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// Session returns the token id and expiry of the authenticated request.
func Session(c *gin.Context) (string, time.Time, bool) {
	id := c.GetString(ctxTokenID)
	exp := c.GetTime(ctxExpiresAt)
	return id, exp, id != ""
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
