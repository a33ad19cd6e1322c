package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedback/internal/api/dto"
	"github.com/martijn/feedback/internal/api/middleware"
	"github.com/martijn/feedback/internal/core/service"
	"github.com/martijn/feedback/internal/infrastructure/sqlite"
)

const testCookieName = "session"

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	router *gin.Engine
}

// setupTestEnv creates a test environment with an in-memory SQLite database
// and the full route set, auth middleware included.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	authService := service.NewAuthService("test-secret-key", "HS256")
	userService := service.NewUserService(sqlite.NewUserRepository(db), authService)
	feedbackService := service.NewFeedbackService(sqlite.NewFeedbackRepository(db))

	authHandler := NewAuthHandler(userService, authService, testCookieName)
	userHandler := NewUserHandler(userService, feedbackService, testCookieName)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	authMiddleware := middleware.AuthMiddleware(authService, testCookieName)
	optionalAuth := middleware.OptionalAuthMiddleware(authService, testCookieName)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/auth/register", optionalAuth, authHandler.Register)
	router.POST("/auth/login", optionalAuth, authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/users/:username", authMiddleware, userHandler.GetProfile)
	router.DELETE("/users/:username", authMiddleware, userHandler.DeleteProfile)
	router.GET("/feedback", feedbackHandler.ListFeedback)
	router.GET("/feedback/:id", feedbackHandler.GetFeedback)
	router.POST("/feedback", authMiddleware, feedbackHandler.CreateFeedback)
	router.PUT("/feedback/:id", authMiddleware, feedbackHandler.UpdateFeedback)
	router.DELETE("/feedback/:id", authMiddleware, feedbackHandler.DeleteFeedback)

	return &testEnv{db: db, router: router}
}

// makeRequest performs a request with an optional JSON body and an optional
// session token, and returns the response.
func (env *testEnv) makeRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user and returns the issued session token.
func (env *testEnv) registerUser(t *testing.T, username, password, email string) string {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/auth/register", registerBody(username, password, email), "")
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register %s: status %d, body %s", username, w.Code, w.Body.String())
	}
	return parseSessionResponse(t, w).Token
}

// createFeedback creates a feedback note as the token's identity and returns it.
func (env *testEnv) createFeedback(t *testing.T, token, title, content string) dto.FeedbackResponse {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/feedback", map[string]string{
		"title":   title,
		"content": content,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create feedback: status %d, body %s", w.Code, w.Body.String())
	}
	return parseFeedbackResponse(t, w)
}

func registerBody(username, password, email string) map[string]string {
	return map[string]string{
		"username":   username,
		"password":   password,
		"email":      email,
		"first_name": "A",
		"last_name":  "L",
	}
}

func parseSessionResponse(t *testing.T, w *httptest.ResponseRecorder) dto.SessionResponse {
	t.Helper()

	var resp dto.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseFeedbackResponse(t *testing.T, w *httptest.ResponseRecorder) dto.FeedbackResponse {
	t.Helper()

	var resp dto.FeedbackResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseFeedbackListResponse(t *testing.T, w *httptest.ResponseRecorder) dto.FeedbackListResponse {
	t.Helper()

	var resp dto.FeedbackListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseProfileResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ProfileResponse {
	t.Helper()

	var resp dto.ProfileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}
