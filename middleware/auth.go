package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"secretariat/utils"
)

// SessionCookieName names the cookie carrying the opaque session id.
const SessionCookieName = "secretariat_session"

const sessionContextKey = "credentialSession"

// SessionMiddleware loads the credential session named by the request
// cookie into the request context. A missing, expired, or unreadable
// session leaves the request signed-out; guarded routes decide what
// that means.
func SessionMiddleware(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}
		session, err := utils.GetCredentialSession(client, sessionID)
		if err != nil {
			if err != redis.Nil {
				utils.GetLogger().Warn("Failed to load credential session, acting signed-out",
					zap.Error(err))
			}
			c.Next()
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFrom returns the request's credential session, if one with a
// usable token bundle was loaded.
func SessionFrom(c *gin.Context) (*utils.CredentialSession, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*utils.CredentialSession)
	if !ok || session == nil || session.Token == nil {
		return nil, false
	}
	return session, true
}

// RequireSession rejects signed-out requests.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Sign in with Google to continue.",
			})
			return
		}
		c.Next()
	}
}
