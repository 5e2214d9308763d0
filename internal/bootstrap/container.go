package bootstrap

import (
	"context"
	"errors"
	"time"

	"solar-catalog-be/internal/config"
	"solar-catalog-be/internal/controller"
	"solar-catalog-be/internal/handler"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/repository/memory"
	"solar-catalog-be/internal/service"
	"solar-catalog-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	catalogTopic     = "catalog_events"
	defaultJWTSecret = "default_secret"
)

// ErrMissingJWTSecret is returned when a production build has no signing key.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

type Container struct {
	// Controllers
	SeriesController  controller.ISeriesController
	ProductController controller.IProductController
	AdminController   controller.IAdminController
	ContactController controller.IContactController
	SiteController    controller.ISiteController
	SeedController    controller.ISeedController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	SeedService     service.ISeedService

	// WebSockets
	FeedHandler  *handler.FeedHandler
	WebSocketHub *websocket.Hub

	pubSub *gochannel.GoChannel
}

func NewContainer(cfg *config.Config, infra *Infrastructure) (*Container, error) {
	sysLogger := infra.Logger

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		if cfg.IsProduction() {
			sysLogger.Error("BOOTSTRAP", "JWT_SECRET is empty in production", nil)
			return nil, ErrMissingJWTSecret
		}
		sysLogger.Warn("BOOTSTRAP", "JWT_SECRET not set, using insecure default", nil)
		jwtSecret = defaultJWTSecret
	}

	// Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	wsHub := websocket.NewHub(infra.Redis, infra.WsLogger)

	var forwarder service.EventForwarder
	if infra.Nats != nil {
		forwarder = infra.Nats
	}

	publisherService := service.NewPublisherService(pubSub, catalogTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, catalogTopic, wsHub, forwarder, sysLogger)

	throttle := memory.NewLoginAttemptRepository(
		cfg.Auth.MaxLoginAttempts,
		time.Duration(cfg.Auth.LockoutMinutes)*time.Minute,
	)

	seriesService := service.NewSeriesService(infra.UowFactory, publisherService)
	productService := service.NewProductService(infra.UowFactory, infra.Uploader, publisherService, sysLogger)
	authService := service.NewAuthService(
		infra.UowFactory,
		throttle,
		jwtSecret,
		time.Duration(cfg.Auth.JWTExpiryHours)*time.Hour,
		sysLogger,
	)
	// Tokens of disabled or deleted admins stop working before they expire.
	adminGuard := serverutils.NewAdminMiddleware(jwtSecret, authService)

	contactService := service.NewContactService(infra.UowFactory, infra.Mailer, publisherService, sysLogger)
	siteService := service.NewSiteService(cfg.Site.WhatsappNumber)
	logService := service.NewLogService(sysLogger)
	seedService := service.NewSeedService(infra.UowFactory, sysLogger)

	return &Container{
		SeriesController:  controller.NewSeriesController(seriesService, adminGuard),
		ProductController: controller.NewProductController(productService, adminGuard),
		AdminController:   controller.NewAdminController(authService, productService, contactService, logService, adminGuard),
		ContactController: controller.NewContactController(contactService),
		SiteController:    controller.NewSiteController(siteService),
		SeedController: controller.NewSeedController(
			seedService,
			adminGuard,
			cfg.Seed.AdminEmail,
			cfg.Seed.AdminPassword,
			cfg.Seed.EndpointsEnabled,
		),

		ConsumerService: consumerService,
		SeedService:     seedService,

		FeedHandler:  handler.NewFeedHandler(wsHub, jwtSecret, infra.WsLogger),
		WebSocketHub: wsHub,

		pubSub: pubSub,
	}, nil
}

// Start runs the websocket hub and the event consumer until ctx is done.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.ConsumerService.Consume(ctx)
}

func (c *Container) Close() error {
	return c.pubSub.Close()
}
