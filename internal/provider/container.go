package provider

import (
	"context"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/auth"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/config"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/kvstore"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/orderapi"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/payment"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/pricing"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/queue"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config       *config.Config
	QueueClient  *queue.Client
	SessionStore kvstore.Store

	// Repositories
	SweetRepo repository.SweetRepository
	OrderRepo repository.OrderRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	HistoryService  *service.HistoryService
	FavoriteService *service.FavoriteService
	EmailService    *service.EmailService
	AuthProvider    auth.Provider
	OrderSubmitter  service.OrderSubmitter
	Processor       payment.Processor
}

// NewContainer builds the dependency graph.
func NewContainer(cfg *config.Config) *Container {
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}
	if queueClient == nil {
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initSessionStore()
	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initSessionStore() {
	if c.Config.Redis.Enabled {
		store := kvstore.NewRedisStore(&c.Config.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			logger.Warnw("provider_redis_unreachable", "error", err, "fallback", "memory_store")
			c.SessionStore = kvstore.NewMemoryStore()
			return
		}
		c.SessionStore = store
		return
	}
	logger.Infow("provider_session_store_memory", "reason", "redis_disabled")
	c.SessionStore = kvstore.NewMemoryStore()
}

func (c *Container) initRepositories() {
	db := models.DB
	c.SweetRepo = repository.NewSweetRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config

	cartTable := pricing.NewTable(cfg.Pricing.VariantMultipliers, cfg.Pricing.CartTaxRate)
	checkoutTable := pricing.NewTable(cfg.Pricing.VariantMultipliers, cfg.Pricing.CheckoutTaxRate)

	c.CatalogService = service.NewCatalogService(c.SweetRepo)
	c.CartService = service.NewCartService(c.SessionStore, c.SweetRepo, cartTable)
	c.HistoryService = service.NewHistoryService(c.SessionStore)
	c.FavoriteService = service.NewFavoriteService(c.SessionStore, c.SweetRepo)
	c.EmailService = service.NewEmailService(&cfg.Email)
	c.AuthProvider = auth.NewMockProvider(time.Duration(cfg.Auth.MockDelayMS) * time.Millisecond)
	c.OrderSubmitter = orderapi.NewClient(&cfg.OrderAPI)
	c.Processor = payment.NewMockProcessor()

	c.CheckoutService = service.NewCheckoutService(
		c.CartService,
		c.HistoryService,
		c.SweetRepo,
		c.OrderRepo,
		checkoutTable,
		c.Processor,
		c.OrderSubmitter,
		c.QueueClient,
	)
}
