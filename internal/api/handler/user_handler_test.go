package handler

import (
	"net/http"
	"testing"
)

func TestGetProfile(t *testing.T) {
	env := setupTestEnv(t)
	aliceToken := env.registerUser(t, "alice", "secret", "a@x.com")
	bobToken := env.registerUser(t, "bob", "secret", "b@x.com")
	env.createFeedback(t, aliceToken, "T", "C")

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"owner", aliceToken, http.StatusOK},
		{"other user", bobToken, http.StatusForbidden},
		{"anonymous", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.makeRequest(t, http.MethodGet, "/users/alice", nil, tt.token)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := parseProfileResponse(t, w)
			if resp.User.Username != "alice" || resp.User.Email != "a@x.com" {
				t.Errorf("unexpected profile user: %+v", resp.User)
			}
			if len(resp.Feedback) != 1 || resp.Feedback[0].Title != "T" {
				t.Errorf("expected alice's feedback in the profile, got %+v", resp.Feedback)
			}
		})
	}
}

func TestDeleteProfile(t *testing.T) {
	env := setupTestEnv(t)
	aliceToken := env.registerUser(t, "alice", "secret", "a@x.com")
	bobToken := env.registerUser(t, "bob", "secret", "b@x.com")
	feedback := env.createFeedback(t, aliceToken, "T", "C")

	// Only the owner may delete the account.
	w := env.makeRequest(t, http.MethodDelete, "/users/alice", nil, bobToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}

	w = env.makeRequest(t, http.MethodDelete, "/users/alice", nil, aliceToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}

	// The account and its feedback are gone.
	w = env.makeRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "secret",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected deleted account to fail login, got %d", w.Code)
	}

	w = env.makeRequest(t, http.MethodGet, feedbackPath(feedback.ID), nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected feedback to be cascade-deleted, got %d", w.Code)
	}
}
