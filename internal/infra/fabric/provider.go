package fabric

import (
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the fabric, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// New creates the broadcast fabric based on configuration
func New(params Params) (service.Fabric, error) {
	cfg := params.Config.Fabric
	logger := params.Logger

	var fabric service.Fabric

	switch cfg.Provider {
	case "", constants.ProviderMemory:
		logger.Info("Using in-memory broadcast fabric",
			slog.Int("subscriber_buffer", cfg.SubscriberBuffer),
		)

		fabric = NewMemoryFabric(cfg.SubscriberBuffer)

	case constants.ProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis configuration is required for the redis fabric")
		}
		logger.Info("Using redis broadcast fabric",
			slog.Int("subscriber_buffer", cfg.SubscriberBuffer),
		)

		fabric = NewRedisFabric(params.Redis, logger, cfg.SubscriberBuffer)

	default:
		return nil, errors.Errorf("unknown fabric provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.StopHook(func() error {
		logger.Info("Closing broadcast fabric")

		return fabric.Close()
	}))

	return fabric, nil
}
