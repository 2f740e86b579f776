package bootstrap

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"

	_ "github.com/eleven-am/uxlens/docs"
	"github.com/eleven-am/uxlens/internal/inspection"
	"github.com/eleven-am/uxlens/internal/report"
	"github.com/eleven-am/uxlens/internal/rules"
)

type HandlerParams struct {
	fx.In

	InspectionHandler *inspection.Handler
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/v1")
	params.InspectionHandler.RegisterRoutes(api)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandlerV3())
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideInspectionHandler(service *inspection.Service, ruleStore *rules.Store, renderer *report.Renderer, logger *slog.Logger) *inspection.Handler {
	return inspection.NewHandler(service, ruleStore, renderer, logger)
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideInspectionHandler,
	),
	fx.Invoke(RegisterRoutes),
)
