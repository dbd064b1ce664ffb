// handlers/auth.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"floodwatch/config"
	"floodwatch/middleware"
	"floodwatch/models"
)

// Auth error codes returned to clients. Clients own the user-facing
// wording; the server only identifies the failure.
const (
	ErrCodeMissingFields     = "auth/missing-fields"
	ErrCodeInvalidEmail      = "auth/invalid-email"
	ErrCodeInvalidCredential = "auth/invalid-credential"
	ErrCodeUserDisabled      = "auth/user-disabled"
	ErrCodeEmailInUse        = "auth/email-already-in-use"
	ErrCodeWeakPassword      = "auth/weak-password"
	ErrCodeTooManyRequests   = "auth/too-many-requests"
	ErrCodeInternal          = "auth/internal-error"
)

type authError struct {
	Code string `json:"code"`
}

func writeAuthError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]authError{"error": {Code: code}})
}

// loginThrottle counts recent failed attempts per email. Five failures
// within the window block further attempts until it expires.
type loginThrottle struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	failures map[string]*failureRecord
}

type failureRecord struct {
	count int
	first time.Time
}

var throttle = &loginThrottle{
	window:   15 * time.Minute,
	max:      5,
	failures: make(map[string]*failureRecord),
}

func (t *loginThrottle) blocked(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.failures[email]
	if !ok {
		return false
	}
	if time.Since(rec.first) > t.window {
		delete(t.failures, email)
		return false
	}
	return rec.count >= t.max
}

func (t *loginThrottle) recordFailure(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.failures[email]
	if !ok || time.Since(rec.first) > t.window {
		t.failures[email] = &failureRecord{count: 1, first: time.Now()}
		return
	}
	rec.count++
}

func (t *loginThrottle) reset(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.failures, email)
}

type registerReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID          string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type sessionResp struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func toUserPayload(u models.User) userPayload {
	return userPayload{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" || req.Password == "" || req.DisplayName == "" {
		writeAuthError(w, http.StatusBadRequest, ErrCodeMissingFields)
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeAuthError(w, http.StatusBadRequest, ErrCodeInvalidEmail)
		return
	}
	if len(req.Password) < 6 {
		writeAuthError(w, http.StatusBadRequest, ErrCodeWeakPassword)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, ErrCodeInternal)
		return
	}

	u := models.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			writeAuthError(w, http.StatusConflict, ErrCodeEmailInUse)
		} else {
			writeAuthError(w, http.StatusInternalServerError, ErrCodeInternal)
		}
		return
	}

	token, err := middleware.GenerateToken(u.ID.String(), u.Email, u.DisplayName)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, ErrCodeInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sessionResp{Token: token, User: toUserPayload(u)})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" || req.Password == "" {
		writeAuthError(w, http.StatusBadRequest, ErrCodeMissingFields)
		return
	}
	if throttle.blocked(req.Email) {
		writeAuthError(w, http.StatusTooManyRequests, ErrCodeTooManyRequests)
		return
	}

	var u models.User
	if err := config.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		throttle.recordFailure(req.Email)
		writeAuthError(w, http.StatusUnauthorized, ErrCodeInvalidCredential)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		throttle.recordFailure(req.Email)
		writeAuthError(w, http.StatusUnauthorized, ErrCodeInvalidCredential)
		return
	}
	if !u.IsActive {
		writeAuthError(w, http.StatusForbidden, ErrCodeUserDisabled)
		return
	}
	throttle.reset(req.Email)

	token, err := middleware.GenerateToken(u.ID.String(), u.Email, u.DisplayName)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, ErrCodeInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionResp{Token: token, User: toUserPayload(u)})
}

// GetCurrentUser resolves the bearer token to its user record.
func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		http.Error(w, "Missing Bearer token", http.StatusUnauthorized)
		return
	}
	claims, err := middleware.ParseToken(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserPayload(user))
}

type profileUpdateReq struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}

// UpdateProfile changes the display name and/or photo URL of the bearer
// user. Nothing else on the user record is client-writable.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req profileUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}
	if err := config.DB.Save(&user).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserPayload(user))
}
