package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ResultCountKey is the context key handlers use to report how many
// sailings matched; the request logger adds it to the access log.
const ResultCountKey = "result_count"

// LoggerConfig controls request logging.
type LoggerConfig struct {
	// Skipper excludes requests from logging when it returns true
	Skipper func(c echo.Context) bool
}

// DefaultLoggerConfig returns the default request logging configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Skipper: SkipProbes}
}

// SkipProbes skips health checks and API docs.
func SkipProbes(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" || strings.HasPrefix(path, "/swagger/")
}

// LoggerFrom returns the request-scoped logger attached by RequestLogger.
// Without one it returns a disabled logger.
func LoggerFrom(c echo.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request().Context())
}

// RequestLogger returns middleware that logs HTTP requests on completion and
// attaches a request-scoped logger (see LoggerFrom) to the request context.
// Server errors log at error level, client errors at warn, the rest at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return RequestLoggerWithConfig(log, DefaultLoggerConfig())
}

// RequestLoggerWithConfig returns request logging middleware with custom configuration.
func RequestLoggerWithConfig(log zerolog.Logger, config LoggerConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqLog := log.With().Str("request_id", GetRequestID(c)).Logger()
			c.SetRequest(req.WithContext(reqLog.WithContext(req.Context())))

			if config.Skipper != nil && config.Skipper(c) {
				return next(c)
			}

			start := time.Now()

			if err := next(c); err != nil {
				// let Echo's error handler write the response before we read the status
				c.Error(err)
			}

			req = c.Request()
			res := c.Response()

			var event *zerolog.Event
			switch status := res.Status; {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			if n, ok := c.Get(ResultCountKey).(int); ok {
				event = event.Int("result_count", n)
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
