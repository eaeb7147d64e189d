package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"secretariat/utils"
)

func TestRequireSessionRejectsSignedOut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "Sign in with Google to continue." {
		t.Errorf("message = %q", body["message"])
	}
}

func TestRequireSessionPassesSignedIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded",
		func(c *gin.Context) {
			c.Set(sessionContextKey, &utils.CredentialSession{
				Token: &oauth2.Token{AccessToken: "token"},
			})
		},
		RequireSession(),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSessionFromRequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := SessionFrom(c); ok {
		t.Error("empty context should have no session")
	}

	c.Set(sessionContextKey, &utils.CredentialSession{})
	if _, ok := SessionFrom(c); ok {
		t.Error("session without a token bundle should not count as signed in")
	}

	c.Set(sessionContextKey, &utils.CredentialSession{
		Token: &oauth2.Token{AccessToken: "token"},
	})
	if session, ok := SessionFrom(c); !ok || session.Token.AccessToken != "token" {
		t.Error("usable session not returned")
	}
}
