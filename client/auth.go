package client

import (
	"context"
	"errors"
	"net/http"
)

// Account is the signed-in user as the API presents it.
type Account struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// Session is the authenticated state returned by Login and Register.
type Session struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

// Login exchanges credentials for a session and installs the token on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var sess Session
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &sess); err != nil {
		return Session{}, err
	}
	c.SetToken(sess.Token)
	return sess, nil
}

// Register creates an account and installs the returned session token.
func (c *Client) Register(ctx context.Context, email, password, displayName string) (Session, error) {
	var sess Session
	body := map[string]string{
		"email":       email,
		"password":    password,
		"displayName": displayName,
	}
	if err := c.do(ctx, http.MethodPost, "/register", body, &sess); err != nil {
		return Session{}, err
	}
	c.SetToken(sess.Token)
	return sess, nil
}

// Me returns the bearer user's account.
func (c *Client) Me(ctx context.Context) (Account, error) {
	var acct Account
	err := c.do(ctx, http.MethodGet, "/api/v1/profile", nil, &acct)
	return acct, err
}

// UpdateProfile patches the bearer user's display name and/or photo URL.
// Nil fields are left unchanged.
func (c *Client) UpdateProfile(ctx context.Context, displayName, photoURL *string) (Account, error) {
	body := map[string]interface{}{}
	if displayName != nil {
		body["displayName"] = *displayName
	}
	if photoURL != nil {
		body["photoURL"] = *photoURL
	}
	var acct Account
	err := c.do(ctx, http.MethodPut, "/api/v1/profile", body, &acct)
	return acct, err
}

var signInMessages = map[string]string{
	"auth/invalid-credential":     "Invalid email or password",
	"auth/invalid-email":          "Invalid email address",
	"auth/user-disabled":          "This account has been disabled",
	"auth/user-not-found":         "No account found with this email",
	"auth/wrong-password":         "Incorrect password",
	"auth/too-many-requests":      "Too many failed login attempts. Please try again later",
	"auth/missing-fields":         "Please enter both email and password",
	"auth/network-request-failed": "Network error. Please check your connection",
}

var signUpMessages = map[string]string{
	"auth/email-already-in-use":  "Email already in use",
	"auth/invalid-email":         "Invalid email address",
	"auth/weak-password":         "Password must be at least 6 characters",
	"auth/missing-fields":        "Please fill in all fields",
	"auth/operation-not-allowed": "Account creation is currently disabled",
}

// SignInMessage maps a login failure to the text shown to the user.
func SignInMessage(err error) string {
	return authMessage(err, signInMessages, "Failed to sign in")
}

// SignUpMessage maps a registration failure to the text shown to the user.
func SignUpMessage(err error) string {
	return authMessage(err, signUpMessages, "Failed to create account")
}

func authMessage(err error, table map[string]string, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg, ok := table[apiErr.Code]; ok {
			return msg
		}
	}
	return fallback
}
