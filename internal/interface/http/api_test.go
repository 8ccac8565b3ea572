package handlers_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adipranaya/demo-dashboard-api/config"
	"github.com/adipranaya/demo-dashboard-api/internal/application"
	"github.com/adipranaya/demo-dashboard-api/internal/container"
	"github.com/adipranaya/demo-dashboard-api/internal/infrastructure/memory"
	"github.com/adipranaya/demo-dashboard-api/internal/infrastructure/secrets"
	"github.com/adipranaya/demo-dashboard-api/internal/interface/middleware"
	"github.com/adipranaya/demo-dashboard-api/internal/router"
	"github.com/adipranaya/demo-dashboard-api/pkg/validation"
)

// newTestEngine wires the container and registry the way cmd/main.go does,
// with a fresh directory and counter per test.
func newTestEngine(t *testing.T, failClosed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	directory := memory.NewDirectory()
	metrics := application.NewMetrics(directory)

	container.SetConfig(&config.Config{
		AppName:            "demo-dashboard-api",
		SecretsProvider:    "env",
		LoginSecretID:      "login-key",
		SecretFetchTimeout: time.Second,
		LoginFailClosed:    failClosed,
	})
	container.SetLogger(logger)
	container.SetDirectory(directory)
	container.SetMetrics(metrics)
	container.SetSecrets(secrets.NewEnvProvider(logger))

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	reg := router.NewRegistry(r)
	reg.Use(middleware.CountRequests(metrics))
	router.InitModules(reg)
	reg.RegisterAll()
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestUserLifecycle(t *testing.T) {
	r := newTestEngine(t, true)

	w, body := doJSON(t, r, http.MethodPost, "/profile", `{"username":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), body["totalUsers"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	id, _ := user["id"].(string)
	require.NotEmpty(t, id)

	w, body = doJSON(t, r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])
	users, ok := body["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].(map[string]any)["id"])

	w, body = doJSON(t, r, http.MethodDelete, "/users/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["remainingUsers"])

	w, _ = doJSON(t, r, http.MethodDelete, "/users/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProfileRequiresUsername(t *testing.T) {
	r := newTestEngine(t, true)

	w, _ := doJSON(t, r, http.MethodPost, "/profile", `{"email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body := doJSON(t, r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["count"])
}

func TestDeleteWithoutID(t *testing.T) {
	r := newTestEngine(t, true)

	w, _ := doJSON(t, r, http.MethodDelete, "/users", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRootGreeting(t *testing.T) {
	r := newTestEngine(t, true)

	w, body := doJSON(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["message"])
	assert.NotEmpty(t, body["timestamp"])
	// The counter increments before the handler, so the first request sees 1.
	assert.Equal(t, float64(1), body["requestNumber"])
}

func TestRequestCounterSequence(t *testing.T) {
	r := newTestEngine(t, true)

	doJSON(t, r, http.MethodGet, "/", "")
	doJSON(t, r, http.MethodPost, "/profile", `{"username":"alice"}`)
	doJSON(t, r, http.MethodGet, "/users", "")
	assert.Equal(t, int64(3), container.GetMetrics().Total())

	// The stats request itself is the fourth handled request.
	w, body := doJSON(t, r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), body["totalRequests"])
	assert.Equal(t, float64(1), body["totalUsers"])
	assert.Contains(t, body, "uptime")
	assert.Contains(t, body, "memoryUsage")
	assert.Contains(t, body, "timestamp")
}

func TestQuoteEndpoint(t *testing.T) {
	r := newTestEngine(t, true)

	w, body := doJSON(t, r, http.MethodGet, "/quote", "")
	require.Equal(t, http.StatusOK, w.Code)

	quote, ok := body["quote"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, quote["text"])
	assert.NotEmpty(t, quote["author"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestLoginDigest(t *testing.T) {
	t.Setenv("SECRET_LOGIN_KEY", `{"encryptionKey":"super-secret"}`)
	r := newTestEngine(t, true)

	w, body := doJSON(t, r, http.MethodPost, "/login", `{"username":"bob"}`)
	require.Equal(t, http.StatusOK, w.Code)

	mac := hmac.New(sha256.New, []byte("super-secret"))
	mac.Write([]byte("bob"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), body["username"])
}

func TestLoginFailClosed(t *testing.T) {
	t.Setenv("SECRET_LOGIN_KEY", "")
	r := newTestEngine(t, true)

	w, _ := doJSON(t, r, http.MethodPost, "/login", `{"username":"bob"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLoginFailOpenFallsBackToEmptyKey(t *testing.T) {
	t.Setenv("SECRET_LOGIN_KEY", "")
	r := newTestEngine(t, false)

	w, body := doJSON(t, r, http.MethodPost, "/login", `{"username":"bob"}`)
	require.Equal(t, http.StatusOK, w.Code)

	mac := hmac.New(sha256.New, nil)
	mac.Write([]byte("bob"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), body["username"])
}

func TestLoginRequiresUsername(t *testing.T) {
	r := newTestEngine(t, true)

	w, _ := doJSON(t, r, http.MethodPost, "/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSHeaders(t *testing.T) {
	r := newTestEngine(t, true)

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	req.Header.Set("Origin", "http://dashboard.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
