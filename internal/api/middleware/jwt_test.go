package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/survey-platform/internal/config"
	"github.com/linskybing/survey-platform/pkg/types"
	"github.com/linskybing/survey-platform/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T) {
	t.Helper()
	config.JwtSecret = "test-secret"
	config.Issuer = "test"
	Init()
}

func TestGenerateAndParseFormToken(t *testing.T) {
	setupJWT(t)

	token, err := GenerateFormToken("form-1", time.Hour)
	require.NoError(t, err)

	claims, err := ParseFormToken(token)
	require.NoError(t, err)
	assert.Equal(t, "form-1", claims.FormID)
	assert.Equal(t, "test", claims.Issuer)
}

func TestParseFormToken_Expired(t *testing.T) {
	setupJWT(t)

	token, err := GenerateFormToken("form-1", -time.Minute)
	require.NoError(t, err)

	_, err = ParseFormToken(token)
	assert.Error(t, err)
}

func TestParseFormToken_WrongKey(t *testing.T) {
	setupJWT(t)
	token, err := GenerateFormToken("form-1", time.Hour)
	require.NoError(t, err)

	config.JwtSecret = "other"
	Init()
	_, err = ParseFormToken(token)
	assert.Error(t, err)
}

func TestTokensDisabledWithoutSecret(t *testing.T) {
	config.JwtSecret = ""
	Init()
	t.Cleanup(func() { setupJWT(t) })

	assert.False(t, TokensEnabled())

	_, err := GenerateFormToken("form-1", time.Hour)
	assert.ErrorIs(t, err, ErrTokensDisabled)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.FormClaims{
		FormID: "form-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("defaultsecret"))
	require.NoError(t, err)

	_, err = ParseFormToken(forged)
	assert.ErrorIs(t, err, ErrTokensDisabled)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	newTokenRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func newTokenRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", FormTokenMiddleware(), func(c *gin.Context) {
		id, err := utils.GetFormIDFromContext(c)
		if err != nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id)
	})
	return r
}

func TestFormTokenMiddleware(t *testing.T) {
	setupJWT(t)
	r := newTokenRouter()

	token, err := GenerateFormToken("form-42", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header", header: "", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "form-42"},
		{name: "bad scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
