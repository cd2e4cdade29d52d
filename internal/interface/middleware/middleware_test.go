package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/ghardekho-api/internal/application"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/memory"
	"github.com/oksasatya/ghardekho-api/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errBody struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newAuthEngine(t *testing.T, verify bool) (*gin.Engine, *application.AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	jwt := helpers.NewJWTManager("mw-secret", time.Hour)
	svc := application.NewAuthService(store.Users(), jwt, bcrypt.MinCost, nil, helpers.NewDiscardLogger())

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/private", Auth(svc, verify), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r, svc, store
}

func do(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) errBody {
	t.Helper()
	var b errBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func TestAuth_Rejects(t *testing.T) {
	r, _, _ := newAuthEngine(t, false)
	expired, _, err := helpers.NewJWTManager("mw-secret", -time.Minute).Generate("u1")
	require.NoError(t, err)

	tests := []struct {
		name, header, value, code, message string
	}{
		{"no header", "", "", "MissingToken", "no token, authorization denied"},
		{"other scheme", "Authorization", "Basic abc", "MissingToken", "no token, authorization denied"},
		{"bare bearer", "Authorization", "Bearer ", "MissingToken", "no token, authorization denied"},
		{"garbled", "Authorization", "Bearer abc.def", "InvalidToken", "token is not valid"},
		{"expired", "Authorization", "Bearer " + expired, "InvalidToken", "token is not valid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.header, tt.value)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			b := decodeErr(t, w)
			assert.False(t, b.Success)
			assert.Equal(t, tt.code, b.Error.Code)
			assert.Equal(t, tt.message, b.Message)
		})
	}
}

func TestAuth_AcceptsAndStoresUserID(t *testing.T) {
	r, svc, _ := newAuthEngine(t, false)
	res, err := svc.Register(context.Background(), "Meera", "meera@example.com", "secret1")
	require.NoError(t, err)

	w := do(r, "Authorization", "bearer "+res.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, res.User.ID, w.Body.String())
}

func TestAuth_VerifyUser(t *testing.T) {
	r, svc, store := newAuthEngine(t, true)
	res, err := svc.Register(context.Background(), "Meera", "meera@example.com", "secret1")
	require.NoError(t, err)

	w := do(r, "Authorization", "Bearer "+res.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	users := store.Users().(*memory.UserRepository)
	require.NoError(t, users.Delete(context.Background(), res.User.ID))

	w = do(r, "Authorization", "Bearer "+res.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UserNotFound", decodeErr(t, w).Error.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	const incoming = "7d444840-9dc0-11d1-b245-5ffdce74fad2"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestRealIP(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "%s %t", c.GetString("real_ip"), AllowPrivateIP()(c))
	})

	tests := []struct {
		name, header, value, want string
	}{
		{"cloudflare", "CF-Connecting-IP", "203.0.113.9", "203.0.113.9 false"},
		{"nginx", "X-Real-IP", "10.1.2.3", "10.1.2.3 true"},
		{"forwarded", "X-Forwarded-For", "198.51.100.7, 10.0.0.1", "198.51.100.7 false"},
		{"junk header", "X-Real-IP", "nope", "192.0.2.1 false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tt.header, tt.value)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestKeyFuncs(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	c.Set("real_ip", "203.0.113.9")

	assert.Equal(t, "rl:ip:203.0.113.9", KeyByIP()(c))
	assert.Equal(t, "rl:api:ip:203.0.113.9", KeyByIPForAPI()(c))
	assert.Equal(t, "rl:user:anon:ip:203.0.113.9", KeyByUserID()(c))
	c.Set(CtxUserIDKey, "u1")
	assert.Equal(t, "rl:user:u1", KeyByUserID()(c))
	assert.Equal(t, "rl:path:/api/properties:ip:203.0.113.9", KeyByIPAndPath()(c))
}
