package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/inspection"
	"github.com/eleven-am/uxlens/internal/localization"
	"github.com/eleven-am/uxlens/internal/report"
	"github.com/eleven-am/uxlens/internal/rules"
	"github.com/eleven-am/uxlens/internal/vision"
)

// ProvideRemoteAnalyzer returns nil when no API key is configured, which sends
// every request down the local path.
func ProvideRemoteAnalyzer(cfg *Config) vision.Analyzer {
	if cfg.VisionAPIKey == "" {
		return nil
	}
	return vision.NewClient(vision.Config{
		APIKey:   cfg.VisionAPIKey,
		Endpoint: cfg.VisionEndpoint,
		Timeout:  cfg.VisionTimeout,
	})
}

func ProvideOrchestrator(lc fx.Lifecycle, cfg *Config, logger *slog.Logger) *vision.Orchestrator {
	local := vision.NewLocalAnalyzer(nil, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return local.Close()
		},
	})

	orchestrator := vision.NewOrchestrator(ProvideRemoteAnalyzer(cfg), local, logger)
	if !orchestrator.RemoteConfigured() {
		logger.Warn("VISION_API_KEY not set, analyses will use local detection only")
	}
	return orchestrator
}

func ProvideAdvisor(store *rules.Store, logger *slog.Logger) *localization.Advisor {
	return localization.NewAdvisor(store, logger)
}

func ProvideInspectionService(
	orchestrator *vision.Orchestrator,
	advisor *localization.Advisor,
	store inspection.Store,
	cfg *Config,
	logger *slog.Logger,
) *inspection.Service {
	return inspection.NewService(orchestrator, advisor, store, ServiceConfig(cfg), logger)
}

func ServiceConfig(cfg *Config) inspection.Config {
	return inspection.Config{
		MaxUploadBytes:  cfg.MaxUploadBytes,
		DefaultLanguage: i18n.ParseLanguage(cfg.DefaultLanguage),
		DefaultMarket:   cfg.DefaultMarket,
	}
}

var VisionModule = fx.Options(
	fx.Provide(
		ProvideOrchestrator,
		ProvideAdvisor,
		ProvideInspectionService,
		report.NewRenderer,
	),
)
