package middleware

import (
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

type apiClientConfig struct {
	AppName        string
	AllowedMethods map[string]bool
}

func apiKeyConfigs() map[string]apiClientConfig {
	return map[string]apiClientConfig{
		os.Getenv("MOBILE_APP_KEY"): {
			AppName: "MobileApp",
			AllowedMethods: map[string]bool{
				http.MethodGet:  true,
				http.MethodPost: true,
				http.MethodPut:  true,
			},
		},
		os.Getenv("OPS_CONSOLE_KEY"): {
			AppName: "OpsConsole",
			AllowedMethods: map[string]bool{
				http.MethodGet:    true,
				http.MethodPost:   true,
				http.MethodPut:    true,
				http.MethodDelete: true,
			},
		},
	}
}

// SecurityMiddleware enforces the per-app API key and logs each request.
// When no keys are configured (local development) it only logs.
func SecurityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configs := apiKeyConfigs()
		if os.Getenv("MOBILE_APP_KEY") == "" && os.Getenv("OPS_CONSOLE_KEY") == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get("x-api-key")
		clientConfig, ok := configs[apiKey]
		if !ok || apiKey == "" {
			log.Printf("[SECURITY] Blocked - invalid API key. IP=%s Path=%s", getClientIP(r), r.URL.Path)
			http.Error(w, "Invalid or missing API key", http.StatusUnauthorized)
			return
		}

		if !clientConfig.AllowedMethods[r.Method] {
			log.Printf("[SECURITY] Denied - method not allowed. App=%s Method=%s Path=%s", clientConfig.AppName, r.Method, r.URL.Path)
			http.Error(w, "This HTTP method is not allowed for this app", http.StatusMethodNotAllowed)
			return
		}

		log.Printf("[SECURITY] Allowed - App=%s IP=%s Path=%s Method=%s Time=%s",
			clientConfig.AppName, getClientIP(r), r.URL.Path, r.Method, time.Now().Format(time.RFC3339))

		next.ServeHTTP(w, r)
	})
}

// Extracts client IP from headers or remote addr
func getClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return strings.Split(ip, ",")[0]
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
