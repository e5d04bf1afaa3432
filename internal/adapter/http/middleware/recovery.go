package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sailing-search/sailing-listing-service/internal/adapter/http/response"
)

// RecoveryConfig controls panic recovery logging.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry
	DisablePrintStack bool

	// StackSize truncates the logged stack to this many bytes (0 logs all of it)
	StackSize int
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisablePrintStack: false,
		StackSize:         8 << 10,
	}
}

// Recover returns middleware that recovers from panics in the handler chain,
// logs them and answers with the standard 500 envelope.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Str("panic", panicMessage(r))

				if !config.DisablePrintStack {
					stack := debug.Stack()
					if config.StackSize > 0 && len(stack) > config.StackSize {
						stack = stack[:config.StackSize]
					}
					event = event.Str("stack", string(stack))
				}

				event.Msg("Panic recovered")

				if !c.Response().Committed {
					err = c.JSON(http.StatusInternalServerError,
						response.Failure(response.CodeInternalError, response.MsgInternalError, nil))
				}
			}()

			return next(c)
		}
	}
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", r)
}
