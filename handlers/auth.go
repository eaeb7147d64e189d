package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"secretariat/middleware"
	"secretariat/utils"
)

const oauthStateCookie = "secretariat_oauth_state"

// AuthHandler runs the Google OAuth web flow that obtains calendar
// credentials and stores them as a credential session.
type AuthHandler struct {
	OAuth    *oauth2.Config
	Sessions *redis.Client
}

func NewAuthHandler(oauthCfg *oauth2.Config, sessions *redis.Client) *AuthHandler {
	return &AuthHandler{OAuth: oauthCfg, Sessions: sessions}
}

// Login redirects to the Google consent screen. Offline access keeps a
// refresh token in the bundle so sessions outlive the access token.
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", false, true)

	url := h.OAuth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	c.Redirect(http.StatusFound, url)
}

// Callback exchanges the authorization code for a token bundle and
// stores it under a fresh opaque session id.
func (h *AuthHandler) Callback(c *gin.Context) {
	logger := utils.GetLogger()

	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		utils.JSONError(c, http.StatusBadRequest,
			"OAuth session expired. Please try signing in again.", "")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing authorization code", "")
		return
	}

	token, err := h.OAuth.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth token exchange failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway,
			"Google sign-in failed. Please try again.", err.Error())
		return
	}

	sessionID := uuid.New().String()
	session := utils.CredentialSession{
		Token:     token,
		Scopes:    h.OAuth.Scopes,
		CreatedAt: time.Now(),
	}
	if err := utils.SaveCredentialSession(h.Sessions, sessionID, session); err != nil {
		logger.Error("Failed to save credential session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError,
			"Could not complete sign-in", err.Error())
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionID,
		int(utils.CredentialSessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/home")
}

// Logout drops the credential session and sends the user back to the
// landing page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if err := utils.DeleteCredentialSession(h.Sessions, sessionID); err != nil {
			utils.GetLogger().Warn("Failed to delete credential session", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
