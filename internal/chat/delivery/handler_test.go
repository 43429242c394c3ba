package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"codetutor-backend/internal/apperror"
	authdomain "codetutor-backend/internal/auth/domain"
	"codetutor-backend/internal/chat/domain"
	"codetutor-backend/internal/chat/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubChatUsecase struct {
	deltas    []string
	streamErr error
	gotUser   *authdomain.User
	gotReq    dto.ChatRequest

	history      []*domain.ChatMessage
	historyErr   error
	gotUserID    string
	gotProjectID string
	gotLimit     int

	message string
	msgErr  error
}

func (s *stubChatUsecase) StreamReply(ctx context.Context, user *authdomain.User, req dto.ChatRequest, emit func(delta string) error) error {
	s.gotUser = user
	s.gotReq = req
	for _, d := range s.deltas {
		if err := emit(d); err != nil {
			return err
		}
	}
	return s.streamErr
}

func (s *stubChatUsecase) GetHistory(userID, projectID string, limit int) ([]*domain.ChatMessage, error) {
	s.gotUserID = userID
	s.gotProjectID = projectID
	s.gotLimit = limit
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	return s.history, nil
}

func (s *stubChatUsecase) InitialMessage(userID, projectID string) (string, error) {
	s.gotUserID = userID
	s.gotProjectID = projectID
	if s.msgErr != nil {
		return "", s.msgErr
	}
	return s.message, nil
}

func withUser(user *authdomain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Set("userID", user.ID)
	}
}

func newChatRouter(uc *stubChatUsecase, user *authdomain.User) *gin.Engine {
	h := NewChatHandler(uc)
	r := gin.New()
	chat := r.Group("/api/chat")
	if user != nil {
		chat.Use(withUser(user))
	}
	chat.POST("/stream", h.StreamChat)
	chat.GET("/history/:project_id", h.GetHistory)
	chat.POST("/initial-message", h.GetInitialMessage)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestStreamChat_EmitsServerSentEvents(t *testing.T) {
	uc := &stubChatUsecase{deltas: []string{"Hello", " world"}}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := postJSON(t, r, "/api/chat/stream", `{"project_id":"p1","message":"How do I center a div?"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "data: Hello\n\ndata:  world\n\ndata: [DONE]\n\n", w.Body.String())

	require.NotNil(t, uc.gotUser)
	assert.Equal(t, "u1", uc.gotUser.ID)
	assert.Equal(t, "p1", uc.gotReq.ProjectID)
	assert.Equal(t, "How do I center a div?", uc.gotReq.Message)
}

func TestStreamChat_ForwardsFilesContext(t *testing.T) {
	uc := &stubChatUsecase{}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := postJSON(t, r, "/api/chat/stream",
		`{"project_id":"p1","message":"hi","files_context":[{"name":"index.html","file_type":"html","content":"<h1>Hi</h1>"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, uc.gotReq.FilesContext, 1)
	assert.Equal(t, dto.FileContext{Name: "index.html", FileType: "html", Content: "<h1>Hi</h1>"}, uc.gotReq.FilesContext[0])
}

func TestStreamChat_PreStreamErrorAnswersJSON(t *testing.T) {
	uc := &stubChatUsecase{streamErr: apperror.RateLimited("Rate limit exceeded. You've used all 20 prompts this hour.")}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := postJSON(t, r, "/api/chat/stream", `{"project_id":"p1","message":"hi"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rate limit exceeded. You've used all 20 prompts this hour.", body["error"])
}

func TestStreamChat_MidStreamFailureCutsStream(t *testing.T) {
	uc := &stubChatUsecase{deltas: []string{"partial"}, streamErr: apperror.ServiceUnavailable("provider gone")}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := postJSON(t, r, "/api/chat/stream", `{"project_id":"p1","message":"hi"}`)

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "data: partial\n\n", w.Body.String(), "no [DONE] after a broken stream")
}

func TestStreamChat_RejectsInvalidBody(t *testing.T) {
	for name, body := range map[string]string{
		"missing message":    `{"project_id":"p1"}`,
		"missing project_id": `{"message":"hi"}`,
		"not json":           `help me`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &stubChatUsecase{}
			r := newChatRouter(uc, &authdomain.User{ID: "u1"})

			w := postJSON(t, r, "/api/chat/stream", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.gotUser)
		})
	}
}

func TestStreamChat_RequiresAuthenticatedContext(t *testing.T) {
	r := newChatRouter(&stubChatUsecase{}, nil)

	w := postJSON(t, r, "/api/chat/stream", `{"project_id":"p1","message":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetHistory(t *testing.T) {
	uc := &stubChatUsecase{history: []*domain.ChatMessage{
		{ID: "m1", ProjectID: "p1", Role: domain.RoleUser, Content: "hi"},
		{ID: "m2", ProjectID: "p1", Role: domain.RoleAssistant, Content: "hello"},
	}}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/chat/history/p1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.gotUserID)
	assert.Equal(t, "p1", uc.gotProjectID)
	assert.Equal(t, 50, uc.gotLimit, "limit defaults to 50")

	var got []*domain.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
}

func TestGetHistory_CustomLimit(t *testing.T) {
	uc := &stubChatUsecase{}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/chat/history/p1?limit=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, uc.gotLimit)
}

func TestGetHistory_RejectsBadLimit(t *testing.T) {
	for _, limit := range []string{"abc", "0", "-3"} {
		t.Run(limit, func(t *testing.T) {
			uc := &stubChatUsecase{}
			r := newChatRouter(uc, &authdomain.User{ID: "u1"})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/api/chat/history/p1?limit="+limit, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, uc.gotLimit)
		})
	}
}

func TestGetHistory_PropagatesOwnership(t *testing.T) {
	uc := &stubChatUsecase{historyErr: apperror.Forbidden("project belongs to another user")}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/chat/history/p1", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetInitialMessage(t *testing.T) {
	uc := &stubChatUsecase{message: "Welcome! Let's get started."}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := postJSON(t, r, "/api/chat/initial-message?project_id=p1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", uc.gotProjectID)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Welcome! Let's get started.", body["message"])
}

func TestGetInitialMessage_RequiresProjectID(t *testing.T) {
	uc := &stubChatUsecase{}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := postJSON(t, r, "/api/chat/initial-message", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInitialMessage_UnknownProject(t *testing.T) {
	uc := &stubChatUsecase{msgErr: apperror.NotFound("Project")}
	r := newChatRouter(uc, &authdomain.User{ID: "u1"})

	w := postJSON(t, r, "/api/chat/initial-message?project_id=nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Project not found", body["error"])
}
