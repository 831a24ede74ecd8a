package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	responder Responder
	auth      *services.AuthService
}

func newAuthMiddleware(auth *services.AuthService) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		auth:      auth,
	}
}

// authenticate rejects the request before any handler runs unless it carries
// a bearer token for an unexpired session.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := services.BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		session, err := m.auth.ValidateSession(r.Context(), token)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}
		if session == nil {
			m.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithSession(r.Context(), session)))
	})
}

// gate returns authenticate when strict is set and a pass-through otherwise.
// It guards the mutations that are public unless STRICT_AUTH is enabled.
func (m authMiddleware) gate(strict bool) func(http.Handler) http.Handler {
	if strict {
		return m.authenticate
	}
	return func(next http.Handler) http.Handler { return next }
}

type errorReporter interface {
	NotifyError(method, path string, cause error)
}

type errorRecorder interface {
	recordError(err error)
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	err         error
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusResponseWriter) recordError(err error) {
	w.err = err
	if parent, ok := w.ResponseWriter.(errorRecorder); ok {
		parent.recordError(err)
	}
}

// recordError hands err to the outermost status writer so the recovery
// middleware can report it.
func recordError(w http.ResponseWriter, err error) {
	if rec, ok := w.(errorRecorder); ok {
		rec.recordError(err)
	}
}

// LogInternalServerErrors recovers panics and reports every 500 to reporter
// when one is configured.
func LogInternalServerErrors(reporter errorReporter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				if rec := recover(); rec != nil {
					log.Error().
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Interface("panic", rec).
						Str("stack", string(debug.Stack())).
						Msg("Recovered from panic")

					if !srw.wroteHeader {
						NewResponder(log.Logger).WriteJSONStatus(srw, http.StatusInternalServerError, ErrorResponse{
							Error:  "Internal Server Error",
							Status: "error",
						})
					}
					if reporter != nil {
						reporter.NotifyError(r.Method, r.URL.Path, errs.NewInternalError("panic while serving request"))
					}
				}
			}()

			next.ServeHTTP(srw, r)

			if srw.status == http.StatusInternalServerError {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("500 error response")
				if reporter != nil && srw.err != nil {
					reporter.NotifyError(r.Method, r.URL.Path, srw.err)
				}
			}
		})
	}
}

// permissiveCORSHeaders stamps every response with the open CORS headers the
// public site relies on, including responses to requests without an Origin.
func permissiveCORSHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		next.ServeHTTP(w, r)
	})
}

// HTTPLoggingMiddleware logs every request with a level chosen by status class.
func HTTPLoggingMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(srw, r)

			var logEvent *zerolog.Event
			switch {
			case srw.status >= 500:
				logEvent = logger.Error()
			case srw.status >= 400:
				logEvent = logger.Warn()
			default:
				logEvent = logger.Info()
			}

			logEvent.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", srw.status).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("HTTP Request")
		})
	}
}
