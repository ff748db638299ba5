package presence

import (
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the presence store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// New creates the presence store based on configuration
func New(params Params) (service.PresenceStore, error) {
	cfg := params.Config.Presence
	logger := params.Logger

	switch cfg.Provider {
	case "", constants.ProviderMemory:
		logger.Info("Using in-memory presence store",
			slog.Duration("lease_ttl", cfg.LeaseTTL()),
		)

		store := NewMemoryStore()
		params.Lc.Append(fx.StopHook(store.Close))

		return store, nil

	case constants.ProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis configuration is required for the redis presence store")
		}
		logger.Info("Using redis presence store",
			slog.Duration("lease_ttl", cfg.LeaseTTL()),
		)

		return NewRedisStore(params.Redis), nil

	default:
		return nil, errors.Errorf("unknown presence provider: %s", cfg.Provider)
	}
}
