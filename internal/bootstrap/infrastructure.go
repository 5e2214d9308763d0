package bootstrap

import (
	"context"
	"fmt"
	"time"

	"solar-catalog-be/internal/config"
	"solar-catalog-be/internal/pkg/assethost"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/mailer"
	"solar-catalog-be/internal/repository/memory"
	"solar-catalog-be/internal/repository/unitofwork"
	"solar-catalog-be/pkg/database"
	pktNats "solar-catalog-be/pkg/nats"

	"github.com/redis/go-redis/v9"
)

// Infrastructure holds the external resources the container wires services
// onto. Optional members (Mailer, Nats, Redis) are nil when unavailable.
type Infrastructure struct {
	UowFactory unitofwork.RepositoryFactory
	Logger     *logger.ZapLogger
	WsLogger   logger.ILogger
	Uploader   assethost.Uploader
	Mailer     mailer.IEmailService
	Nats       *pktNats.Publisher
	Redis      *redis.Client
}

func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	uowFactory, err := newRepositoryFactory(cfg)
	if err != nil {
		return nil, err
	}

	infra := &Infrastructure{
		UowFactory: uowFactory,
		Logger:     sysLogger,
		WsLogger:   logger.NewIsolatedLogger("logs/websocket.log"),
		Uploader:   newUploader(cfg, sysLogger),
	}

	if cfg.SMTP.Configured() {
		infra.Mailer = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
			cfg.SMTP.NotifyEmail,
		)
	} else {
		sysLogger.Info("BOOTSTRAP", "SMTP not configured, contact notifications disabled", nil)
	}

	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			infra.Nats = natsPub
		}
	}

	if cfg.App.RedisURL != "" {
		infra.Redis = newRedis(cfg.App.RedisURL, sysLogger)
	}

	return infra, nil
}

// NewMemoryInfrastructure runs everything in-process: memory store, disabled
// asset host, no mail, NATS or Redis.
func NewMemoryInfrastructure(log *logger.ZapLogger) *Infrastructure {
	return &Infrastructure{
		UowFactory: memory.NewRepositoryFactory(memory.NewStore()),
		Logger:     log,
		WsLogger:   log,
		Uploader:   assethost.NewDisabledUploader(),
	}
}

func (i *Infrastructure) Close() {
	if i.Nats != nil {
		i.Nats.Close()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	_ = i.Logger.Sync()
}

func newRepositoryFactory(cfg *config.Config) (unitofwork.RepositoryFactory, error) {
	switch cfg.Database.Driver {
	case "memory":
		return memory.NewRepositoryFactory(memory.NewStore()), nil
	case "postgres", "":
		if cfg.Database.Connection == "" {
			return nil, fmt.Errorf("DB_CONNECTION_STRING is not set")
		}
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to GORM DB: %w", err)
		}
		return unitofwork.NewRepositoryFactory(db), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
}

func newUploader(cfg *config.Config, log logger.ILogger) assethost.Uploader {
	if !cfg.Cloudinary.Configured() {
		log.Warn("BOOTSTRAP", "Cloudinary not configured, image uploads disabled", nil)
		return assethost.NewDisabledUploader()
	}
	uploader, err := assethost.NewCloudinaryUploader(cfg.Cloudinary)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to initialize Cloudinary, image uploads disabled", map[string]interface{}{"error": err.Error()})
		return assethost.NewDisabledUploader()
	}
	return uploader
}

func newRedis(url string, log logger.ILogger) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Failed to connect to Redis, websocket fan-out stays local", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}
