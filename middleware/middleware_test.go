package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cydxin/burnroom/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type banSet map[int64]bool

func (b banSet) IsGloballyBanned(userID int64) bool { return b[userID] }

func newIdentityRouter(bans BanChecker, opt *IdentityOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinIdentityMiddleware(bans, opt))
	r.GET("/me", func(c *gin.Context) {
		uid, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "name": UserName(c)})
	})
	return r
}

func TestGinIdentityMiddleware(t *testing.T) {
	r := newIdentityRouter(banSet{4: true}, nil)

	cases := []struct {
		name   string
		url    string
		header map[string]string
		status int
		code   int
		want   string
	}{
		{name: "missing", url: "/me", status: http.StatusUnauthorized, code: response.CodeUserInvalid},
		{name: "invalid", url: "/me", header: map[string]string{"X-User-ID": "-2"}, status: http.StatusUnauthorized, code: response.CodeUserInvalid},
		{name: "banned", url: "/me?user_id=4", status: http.StatusForbidden, code: response.CodeBanned},
		{name: "header", url: "/me", header: map[string]string{"X-User-ID": "7", "X-User-Name": "alice"}, status: http.StatusOK, want: `{"user_id":7,"name":"alice"}`},
		{name: "query fallback", url: "/me?user_id=8", status: http.StatusOK, want: `{"user_id":8,"name":"user8"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, c.url, nil)
			for k, v := range c.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, c.status, w.Code)
			if c.want != "" {
				assert.JSONEq(t, c.want, w.Body.String())
				return
			}
			var res response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, c.code, res.Code)
		})
	}
}

func TestGinIdentityMiddleware_CustomHeader(t *testing.T) {
	r := newIdentityRouter(nil, &IdentityOptions{UserIDHeader: "X-Chat-User"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Chat-User", "12")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":12,"name":"user12"}`, w.Body.String())
}

func TestGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(GinLogger(zerolog.New(&buf)))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "/boom", entry["path"])
	assert.Equal(t, float64(500), entry["status"])
}
