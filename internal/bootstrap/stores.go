package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/eleven-am/uxlens/internal/inspection"
	"github.com/eleven-am/uxlens/internal/rules"
)

// ProvideRules loads the market rule table from RULES_FILE, or the built-in
// table when no file is configured.
func ProvideRules(cfg *Config, logger *slog.Logger) (*rules.Store, error) {
	if cfg.RulesFile == "" {
		return rules.Default(), nil
	}
	store, err := rules.LoadFile(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded market rules", "file", cfg.RulesFile, "markets", len(store.Markets()))
	return store, nil
}

func ProvideInspectionStore(redisClient *redis.Client, cfg *Config) inspection.Store {
	if redisClient == nil {
		return inspection.NewMemoryStore()
	}
	return inspection.NewRedisStore(redisClient, cfg.ResultTTL)
}

var StoresModule = fx.Options(
	fx.Provide(
		ProvideRules,
		ProvideInspectionStore,
	),
)
