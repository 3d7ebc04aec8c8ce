package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one tagged line per request with the caller
// identity when a JWT was presented.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		userID := "-"
		if c := GetClaims(r); c != nil {
			userID = c.UserID
		}
		log.Printf("[HTTP] %s %s status=%d user=%s ip=%s dur=%s",
			r.Method, r.URL.Path, rec.status, userID, clientIP(r), time.Since(start))
	})
}

// clientIP extracts the caller address from proxy headers or RemoteAddr.
func clientIP(r *http.Request) string {
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
