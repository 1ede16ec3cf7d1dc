package middleware

import (
	"net/http"
	"time"

	"personas/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// requestLogger returns the global logger tagged with the request's id,
// method and path.
func requestLogger(c *gin.Context) zerolog.Logger {
	return log.With().
		Str("request_id", c.GetString(RequestIDKey)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Logger()
}

// ErrorHandler answers 500 for errors a handler attached with c.Error and
// did not turn into a response itself. The cause is logged, never returned.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		l := requestLogger(c)
		l.Error().Err(c.Errors.Last().Err).Int("errors", len(c.Errors)).Msg("request failed")

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.Internal())
		}
	}
}

// Recovery turns a handler panic into a 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				l := requestLogger(c)
				l.Error().Interface("panic", r).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.Internal())
			}
		}()
		c.Next()
	}
}

// Logger writes one access line per request: info below 400, warn for
// client errors, error for server errors.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := requestLogger(c)
		ev := l.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = l.Error()
		case status >= http.StatusBadRequest:
			ev = l.Warn()
		}
		ev.Int("status", status).
			Dur("latency", time.Since(start)).
			Int("size", c.Writer.Size()).
			Msg("request")
	}
}
