package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"codetutor-backend/internal/apperror"
	authdelivery "codetutor-backend/internal/auth/delivery"
	authusecase "codetutor-backend/internal/auth/usecase"
	chatdelivery "codetutor-backend/internal/chat/delivery"
	filedelivery "codetutor-backend/internal/file/delivery"
	projectdelivery "codetutor-backend/internal/project/delivery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newCORSRouter(origins ...string) *gin.Engine {
	r := gin.New()
	r.Use(corsMiddleware(origins))
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSMiddleware_KnownOrigin(t *testing.T) {
	r := newCORSRouter("http://localhost:5173", "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_UnknownOriginGetsNoGrant(t *testing.T) {
	r := newCORSRouter("http://localhost:5173")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "the request itself still runs, the browser enforces the rest")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := newCORSRouter("http://localhost:5173")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/probe", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(requestLogger(zap.NewNop()))
	r.Use(recoveryMiddleware(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("handler bug") })
	r.GET("/fine", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])

	// The engine survives the panic.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/fine", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_IsTransparent(t *testing.T) {
	r := gin.New()
	r.Use(requestLogger(zap.NewNop()))
	r.GET("/probe", func(c *gin.Context) { c.String(http.StatusTeapot, "short and stout") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

type deniedAuth struct{}

func (deniedAuth) VerifyToken(ctx context.Context, authorizationHeader string) (*authusecase.TokenClaims, error) {
	return nil, apperror.Unauthenticated("Invalid or expired token")
}

// newAppRouter registers the full route table. Handlers carry nil usecases,
// so any test request must be stopped by the auth middleware.
func newAppRouter() *gin.Engine {
	r := gin.New()
	SetupRoutes(r, deniedAuth{}, nil,
		authdelivery.NewUserHandler(nil, nil),
		projectdelivery.NewProjectHandler(nil),
		filedelivery.NewFileHandler(nil),
		chatdelivery.NewChatHandler(nil),
	)
	return r
}

func TestSetupRoutes_PublicEndpoints(t *testing.T) {
	r := newAppRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var health map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_APIRequiresAuth(t *testing.T) {
	r := newAppRouter()

	for _, route := range []struct {
		method string
		path   string
	}{
		{"GET", "/api/projects"},
		{"POST", "/api/projects"},
		{"GET", "/api/projects/p1"},
		{"PUT", "/api/projects/p1"},
		{"DELETE", "/api/projects/p1"},
		{"POST", "/api/projects/p1/files"},
		{"GET", "/api/projects/p1/files"},
		{"PUT", "/api/files/f1"},
		{"PUT", "/api/files/f1/rename"},
		{"DELETE", "/api/files/f1"},
		{"POST", "/api/chat/stream"},
		{"GET", "/api/chat/history/p1"},
		{"POST", "/api/chat/initial-message"},
		{"GET", "/api/users/me"},
		{"GET", "/api/users/rate-limit"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
