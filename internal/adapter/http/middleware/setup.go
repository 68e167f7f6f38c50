package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID - first, so all subsequent logging carries the request ID
//  2. RequestLogger - logs all requests
//  3. Recover - catches panics and returns 500
//
// Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// SetupWithConfig registers the same middleware chain with custom recovery
// configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryCfg RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryCfg))
}
