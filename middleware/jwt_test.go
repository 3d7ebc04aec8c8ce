package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func authHandler() http.Handler {
	return JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doAuth(t *testing.T, header string) int {
	t.Helper()
	r := httptest.NewRequest("GET", "/api/v1/fields", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	authHandler().ServeHTTP(w, r)
	return w.Code
}

func TestJWTMiddleware(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		token, err := GenerateToken("u-1", "farmer", "Asha", "9876500000")
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if code := doAuth(t, "Bearer "+token); code != http.StatusOK {
			t.Errorf("status = %d, want %d", code, http.StatusOK)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		if code := doAuth(t, ""); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", code, http.StatusUnauthorized)
		}
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		if code := doAuth(t, "Token abc"); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", code, http.StatusUnauthorized)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		if code := doAuth(t, "Bearer not.a.jwt"); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", code, http.StatusUnauthorized)
		}
	})

	// Only HS256 is accepted; a token signed with any other method must
	// fail verification even when the signature checks out.
	t.Run("foreign signing method rejected", func(t *testing.T) {
		claims := Claims{
			UserID: "u-1",
			Role:   "farmer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(jwtKey)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if code := doAuth(t, "Bearer "+token); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", code, http.StatusUnauthorized)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		claims := Claims{
			UserID: "u-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if code := doAuth(t, "Bearer "+token); code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", code, http.StatusUnauthorized)
		}
	})
}
