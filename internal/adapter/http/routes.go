package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all sailing listing API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *SailingHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SailingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	sailings := api.Group("/sailings")
	sailings.GET("", h.ListSailings)
	sailings.GET("/calendar.ics", h.ExportCalendar)
	sailings.GET("/sort-options", h.SortOptions)
}
