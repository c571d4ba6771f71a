package http

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	settingUsecases "github.com/saase/requesthub/internal/application/setting/usecases"
	"github.com/saase/requesthub/internal/infrastructure/auth"
	"github.com/saase/requesthub/internal/infrastructure/config"
	"github.com/saase/requesthub/internal/infrastructure/email"
	"github.com/saase/requesthub/internal/infrastructure/export"
	"github.com/saase/requesthub/internal/infrastructure/metrics"
	"github.com/saase/requesthub/internal/infrastructure/permission"
	"github.com/saase/requesthub/internal/infrastructure/storage"
	"github.com/saase/requesthub/internal/infrastructure/webhook"
	"github.com/saase/requesthub/internal/interfaces/http/middleware"
	shareddb "github.com/saase/requesthub/internal/shared/db"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and releases what it opened in
// Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	sqlDB  *sql.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when redis is disabled

	// Repositories
	repos *repositories
	txMgr *shareddb.TransactionManager

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	// Infrastructure services
	jwtSvc          *auth.JWTService
	draftCodec      *auth.DraftCodec
	enforcer        *permission.Enforcer
	storage         *storage.S3Client
	notifier        *webhook.Notifier
	mailer          *email.SMTPMailer
	exporter        *export.XLSXExporter
	renderer        *markdown.Renderer
	metrics         *metrics.Metrics
	settingProvider *settingUsecases.SettingProvider
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Services
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine the container built.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// JWTService exposes the token issuer for the CLI.
func (c *Container) JWTService() *auth.JWTService {
	return c.jwtSvc
}

// Shutdown releases connections opened by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
