package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all travel assistant API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *AssistantHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.POST("/query", h.QueryFlights)

	assistant := api.Group("/assistant")
	assistant.POST("/chat", h.Chat)
}
