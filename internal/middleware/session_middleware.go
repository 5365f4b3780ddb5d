package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/unibrowser/internal/app/session"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/logger"
	"github.com/yigit/unibrowser/internal/pkg/metrics"
)

const sessionContextKey = "session"

// SessionConfig controls the session cookie
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Sessions loads the browser session named by the cookie, or starts a new
// one, and saves it once the handler returns
func Sessions(store session.Store, cfg SessionConfig, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *session.Session
		if id, err := c.Cookie(cfg.CookieName); err == nil && id != "" {
			sess, err = store.Get(ctx, id)
			if err != nil && !errors.Is(err, apperrors.ErrSessionNotFound) {
				m.ObserveSessionError("get")
				logger.Warn().Err(err).Msg("Failed to load session, starting a new one")
			}
		}
		if sess == nil {
			sess = session.New(uuid.NewString())
		}

		c.Set(sessionContextKey, sess)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, sess.ID, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)

		c.Next()

		if err := store.Save(ctx, sess); err != nil {
			m.ObserveSessionError("save")
			logger.Error().Err(err).Str("session", sess.ID).Msg("Failed to save session")
		}
	}
}

// GetSession returns the session loaded by Sessions
func GetSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return session.New(uuid.NewString())
}
