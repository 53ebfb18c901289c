package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	rediscache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/shared/auth"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	posthandler "blog-backend/internal/domains/post/handler"
	postrepo "blog-backend/internal/domains/post/repository"
	postservice "blog-backend/internal/domains/post/service"
	userhandler "blog-backend/internal/domains/user/handler"
	userrepo "blog-backend/internal/domains/user/repository"
	userservice "blog-backend/internal/domains/user/service"
)

// Container wires every component of the application together.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache cache.Cache

	JWTManager *jwt.Manager
	Resolver   *auth.Resolver

	PostHandler *posthandler.Handler
	UserHandler *userhandler.Handler

	redisCache *rediscache.RedisCache
}

// New builds the container: config, database, cache, then the domain
// layers bottom-up.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c := &Container{Config: cfg}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}
	c.initCache(ctx)
	c.initAuth()
	c.initDomains()

	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig := &database.DBConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		Username: c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.Database,
		SSLMode:  c.Config.Database.SSLMode,

		MaxConns:          int32(c.Config.Database.MaxConns),
		MinConns:          int32(c.Config.Database.MinConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,

		MaxRetries:     5,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	return nil
}

// initCache connects Redis. A dead Redis degrades to uncached operation
// rather than failing startup.
func (c *Container) initCache(ctx context.Context) {
	redisCache := rediscache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, caching disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	c.redisCache = redisCache
	c.Cache = redisCache
}

func (c *Container) initAuth() {
	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		time.Duration(c.Config.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)
	c.Resolver = auth.NewResolver(c.JWTManager)
}

func (c *Container) initDomains() {
	postRepository := postrepo.NewPostgresRepository(c.DB.Pool)
	postService := postservice.NewPostService(postRepository, c.Cache)
	c.PostHandler = posthandler.NewHandler(postService)

	userRepository := userrepo.NewPostgresRepository(c.DB.Pool)
	userService := userservice.NewUserService(userRepository, c.JWTManager)
	c.UserHandler = userhandler.NewHandler(userService)
}

// Close releases external resources in reverse dependency order.
func (c *Container) Close() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}
}
