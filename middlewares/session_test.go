package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abira1/Cafe-Colombia01/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cart", SessionMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"token": utils.SessionToken(c)})
	})
	return r
}

func TestSessionMiddlewareIssuesToken(t *testing.T) {
	r := sessionTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	token := w.Header().Get("X-Session-Token")
	assert.NotEmpty(t, token)
}

func TestSessionMiddlewareEchoesExistingToken(t *testing.T) {
	r := sessionTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-Token", "known-token")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "known-token", w.Header().Get("X-Session-Token"))
	assert.Contains(t, w.Body.String(), "known-token")
}
