// Package http exposes the order use cases over a REST API built on echo.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"restaurant/internal/adapters/in/http/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/otel/trace"
)

// NewRouter builds the echo instance serving the API, its OpenAPI document,
// the swagger UI and the health check. Server spans are reported through tp.
func NewRouter(server servers.ServerInterface, logger *slog.Logger, tp trace.TracerProvider) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := requestValidator(swagger)
	if err != nil {
		return nil, fmt.Errorf("create request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(tracing(tp))
	e.Use(spanRoute())
	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.OpenAPIDocument())
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	servers.RegisterHandlers(e, server)

	return e, nil
}
