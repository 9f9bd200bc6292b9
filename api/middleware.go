package api

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/backend/errs"
	"github.com/portfolio-site/backend/metrics"
)

// authMiddleware gates mutating project routes behind the admin secret. The
// caller presents either a session token from the login endpoint or the raw
// secret in X-Admin-Secret.
type authMiddleware struct {
	responder   Responder
	adminSecret string
}

func newAuthMiddleware(adminSecret string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder:   NewResponder(logger),
		adminSecret: adminSecret,
	}
}

// secretsMatch compares two secrets in constant time.
func secretsMatch(a, b string) bool {
	aSum := sha256.Sum256([]byte(a))
	bSum := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(aSum[:], bSum[:]) == 1
}

func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Refuse everything when no secret is configured rather than
		// leaving mutations open.
		if m.adminSecret == "" {
			m.responder.WriteError(w, errs.NewUnauthorizedError("admin secret is not configured"))
			return
		}

		if secret := r.Header.Get("X-Admin-Secret"); secret != "" {
			if secretsMatch(secret, m.adminSecret) {
				next.ServeHTTP(w, r)
				return
			}
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if err := parseSessionToken(tokenStr, m.adminSecret); err == nil {
				next.ServeHTTP(w, r)
				return
			}
		}

		m.responder.WriteError(w, errs.Unauthorized)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// MetricsMiddleware records request duration and status for every route.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		metrics.RecordHTTPRequestDuration(r.Method, r.URL.Path, strconv.Itoa(srw.status), time.Since(start))
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on
// status codes. Each request carries a generated request id.
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("requestId", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
