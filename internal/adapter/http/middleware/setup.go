package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Config groups the configurable middleware options.
type Config struct {
	Logger   LoggerConfig
	Recovery RecoveryConfig
}

// DefaultConfig returns the default middleware configuration.
func DefaultConfig() Config {
	return Config{
		Logger:   DefaultLoggerConfig(),
		Recovery: DefaultRecoveryConfig(),
	}
}

// Setup registers all middleware on the Echo instance.
// Order matters:
//  1. RequestID, so every later log line carries the ID
//  2. RequestLogger, which sees the final status including recovered panics
//  3. Recover, closest to the handlers
//
// Call Setup before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig registers middleware with custom configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.Use(Chain(log, config)...)
}

// Chain returns the middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, config Config) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLoggerWithConfig(log, config.Logger),
		RecoverWithConfig(log, config.Recovery),
	}
}
