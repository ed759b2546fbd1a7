package middleware

import (
	"net/http"
	"time"

	session_cache "github.com/Modeva-Ecommerce/marketplace-storefront/cache"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/Modeva-Ecommerce/marketplace-storefront/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionCookie = "storefront_session"
	SessionHeader = "X-Session-Token"
)

type SessionOptions struct {
	TTL          time.Duration
	CookieSecure bool
}

// SessionMiddleware resolves the shopper's session from the session cookie,
// an Authorization bearer token or the X-Session-Token header, in that order.
// A missing, invalid or expired session is replaced with a fresh one. The
// token is re-issued on every request so it slides along with the session.
func SessionMiddleware(store *session_cache.Store, tokens *services.SessionTokenService, opts SessionOptions, log *zap.Logger) gin.HandlerFunc {
	if opts.TTL <= 0 {
		opts.TTL = session_cache.DefaultTTL
	}

	return func(c *gin.Context) {
		var sess *session_cache.Session
		if token := tokenFromRequest(c); token != "" {
			if sid, err := tokens.Verify(token); err == nil {
				sess, _ = store.Get(sid)
			}
		}

		if sess == nil {
			sess = store.Create()
			log.Debug("session started", zap.String("session", sess.ID))
		}

		token, err := tokens.Issue(sess.ID)
		if err != nil {
			log.Error("failed to issue session token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not start session"))
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, token, int(opts.TTL.Seconds()), "/", "", opts.CookieSecure, true)
		c.Header(SessionHeader, token)

		c.Set(models.ContextKeySession, sess)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	if token, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization")); err == nil {
		return token
	}
	return c.GetHeader(SessionHeader)
}

// GetSession returns the session attached by SessionMiddleware
func GetSession(c *gin.Context) (*session_cache.Session, bool) {
	v, exists := c.Get(models.ContextKeySession)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session_cache.Session)
	return sess, ok
}

// GetSessionID is GetSession for callers that only need the id
func GetSessionID(c *gin.Context) string {
	if sess, ok := GetSession(c); ok {
		return sess.ID
	}
	return ""
}
