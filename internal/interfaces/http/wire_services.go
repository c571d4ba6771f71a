package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	settingUsecases "github.com/saase/requesthub/internal/application/setting/usecases"
	"github.com/saase/requesthub/internal/infrastructure/auth"
	"github.com/saase/requesthub/internal/infrastructure/config"
	"github.com/saase/requesthub/internal/infrastructure/email"
	"github.com/saase/requesthub/internal/infrastructure/export"
	"github.com/saase/requesthub/internal/infrastructure/metrics"
	"github.com/saase/requesthub/internal/infrastructure/permission"
	"github.com/saase/requesthub/internal/infrastructure/ratelimit"
	"github.com/saase/requesthub/internal/infrastructure/storage"
	"github.com/saase/requesthub/internal/infrastructure/webhook"
	"github.com/saase/requesthub/internal/interfaces/http/middleware"
	shareddb "github.com/saase/requesthub/internal/shared/db"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/services/markdown"
)

// initInfrastructure initializes Redis, repositories and the outbound
// services the use cases depend on.
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(ctx, cfg, log)

	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	c.sqlDB = sqlDB

	c.repos = newRepositories(c.db)
	c.txMgr = shareddb.NewTransactionManager(c.db)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	c.draftCodec = auth.NewDraftCodec(cfg.Auth.Draft.Secret)

	enforcer, err := permission.NewEnforcer(c.db, log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := permission.InitTransitionPermissions(enforcer, log); err != nil {
		return fmt.Errorf("failed to seed transition permissions: %w", err)
	}
	c.enforcer = enforcer

	s3Client, err := storage.NewS3Client(ctx, cfg.Storage, log.Named("storage"))
	if err != nil {
		return fmt.Errorf("failed to initialize report storage: %w", err)
	}
	c.storage = s3Client

	c.notifier = webhook.NewNotifier(cfg.Notification, log.Named("webhook"))
	if !c.notifier.Enabled() {
		log.Infow("webhook notifications disabled, no webhook_url configured")
	}
	c.mailer = email.NewSMTPMailer(cfg.Email, log.Named("email"))
	c.exporter = export.NewXLSXExporter()
	c.renderer = markdown.NewRenderer()
	c.metrics = metrics.New()
	c.settingProvider = settingUsecases.NewSettingProvider(c.repos.settingRepo, log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.rateLimiter = c.newRateLimiter()

	return nil
}

// initRedis creates and tests the Redis client connection. A failed ping is
// not fatal: the rate limiter fails open while redis is unreachable.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, rate limiting is off")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warnw("failed to connect to Redis", "addr", cfg.Redis.GetAddr(), "error", err)
		return redisClient
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

func (c *Container) newRateLimiter() *middleware.RateLimiter {
	if c.redis == nil {
		return nil
	}
	policy := ratelimit.Policy{
		Limit:  c.cfg.RateLimit.Requests,
		Window: time.Duration(c.cfg.RateLimit.WindowSeconds) * time.Second,
	}
	return middleware.NewRateLimiter(ratelimit.NewRedisRateLimiter(c.redis), policy, "requests", c.log)
}
