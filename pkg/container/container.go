package container

import (
	"context"
	"fmt"
	"time"

	"authorsite-backend/internal/config"
	infraCache "authorsite-backend/internal/infrastructure/cache"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/internal/infrastructure/realtime"
	"authorsite-backend/pkg/cache"
	"authorsite-backend/pkg/jwt"
	"authorsite-backend/pkg/logger"

	"authorsite-backend/internal/domains/book"
	bookHandler "authorsite-backend/internal/domains/book/handler"
	bookRepo "authorsite-backend/internal/domains/book/repository"
	bookService "authorsite-backend/internal/domains/book/service"

	"authorsite-backend/internal/domains/category"
	categoryHandler "authorsite-backend/internal/domains/category/handler"
	categoryRepo "authorsite-backend/internal/domains/category/repository"
	categoryService "authorsite-backend/internal/domains/category/service"

	"authorsite-backend/internal/domains/comment"
	commentHandler "authorsite-backend/internal/domains/comment/handler"
	commentRepo "authorsite-backend/internal/domains/comment/repository"
	commentService "authorsite-backend/internal/domains/comment/service"

	"authorsite-backend/internal/domains/notification"
	notificationHandler "authorsite-backend/internal/domains/notification/handler"
	notificationRepo "authorsite-backend/internal/domains/notification/repository"
	notificationService "authorsite-backend/internal/domains/notification/service"

	"authorsite-backend/internal/domains/profile"
	profileHandler "authorsite-backend/internal/domains/profile/handler"
	profileRepo "authorsite-backend/internal/domains/profile/repository"
	profileService "authorsite-backend/internal/domains/profile/service"

	"authorsite-backend/internal/domains/user"
	userHandler "authorsite-backend/internal/domains/user/handler"
	userRepo "authorsite-backend/internal/domains/user/repository"
	userService "authorsite-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton built once at startup.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Hub        *realtime.Hub

	// Repositories
	UserRepo         user.Repository
	CategoryRepo     category.Repository
	BookRepo         book.Repository
	CommentRepo      comment.Repository
	NotificationRepo notification.Repository
	ProfileRepo      profile.Repository

	// Services
	UserService         user.Service
	CategoryService     category.Service
	BookService         book.Service
	CommentService      comment.Service
	NotificationService notification.Service
	ProfileService      profile.Service
	Dispatcher          *notificationService.Dispatcher

	// Handlers
	UserHandler         *userHandler.UserHandler
	CategoryHandler     *categoryHandler.CategoryHandler
	BookHandler         *bookHandler.BookHandler
	CommentHandler      *commentHandler.CommentHandler
	NotificationHandler *notificationHandler.NotificationHandler
	ProfileHandler      *profileHandler.ProfileHandler
}

// NewContainer builds the dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis failure is not fatal: cached reads fall through to the
	// database.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("redis unavailable, continuing without warm cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	c.Hub = realtime.NewHub()

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.NotificationRepo = notificationRepo.NewPostgresRepository(pool)
	c.ProfileRepo = profileRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.CategoryRepo)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo)
	c.NotificationService = notificationService.NewNotificationService(c.NotificationRepo, c.Cache)

	// The dispatcher resolves recipients through the user repository
	// and pushes over the websocket hub.
	c.Dispatcher = notificationService.NewDispatcher(c.UserRepo, c.NotificationRepo, c.Hub, c.Cache)

	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.BookRepo, c.Dispatcher)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
}

// Cleanup releases external resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis client", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
