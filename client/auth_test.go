package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginInstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"token": "session-token",
				"user":  map[string]string{"email": "ali@example.com"},
			})
		case "/api/v1/alerts":
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]interface{}{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	sess, err := c.Login(context.Background(), "ali@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "session-token", sess.Token)
	assert.Equal(t, "ali@example.com", sess.User.Email)

	_, err = c.GetAllAlerts(context.Background())
	require.NoError(t, err)
}

func TestLoginErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"code": "auth/invalid-credential"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Login(context.Background(), "ali@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", SignInMessage(err))
}

func TestAuthMessageTables(t *testing.T) {
	cases := map[string]string{
		"auth/user-disabled":     "This account has been disabled",
		"auth/too-many-requests": "Too many failed login attempts. Please try again later",
		"auth/wrong-password":    "Incorrect password",
	}
	for code, want := range cases {
		err := &APIError{StatusCode: 401, Code: code}
		assert.Equal(t, want, SignInMessage(err))
	}

	assert.Equal(t, "Email already in use",
		SignUpMessage(&APIError{StatusCode: 409, Code: "auth/email-already-in-use"}))
	assert.Equal(t, "Password must be at least 6 characters",
		SignUpMessage(&APIError{StatusCode: 400, Code: "auth/weak-password"}))

	// Unknown codes fall back to the generic line.
	assert.Equal(t, "Failed to sign in", SignInMessage(&APIError{StatusCode: 500}))
	assert.Equal(t, "Failed to create account", SignUpMessage(&APIError{StatusCode: 500}))
}

func TestAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Please provide a description"})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	_, err := c.CreateReport(context.Background(), map[string]interface{}{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Please provide a description", apiErr.Error())
}
