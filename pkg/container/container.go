package container

import (
	"context"
	"fmt"
	"time"

	"labsite-backend/internal/config"
	infraCache "labsite-backend/internal/infrastructure/cache"
	"labsite-backend/internal/infrastructure/database"
	"labsite-backend/internal/infrastructure/storage"
	"labsite-backend/pkg/cache"
	"labsite-backend/pkg/jwt"
	"labsite-backend/pkg/logger"

	"labsite-backend/internal/domains/auth"
	authHandler "labsite-backend/internal/domains/auth/handler"

	"labsite-backend/internal/domains/project"
	projectHandler "labsite-backend/internal/domains/project/handler"
	projectRepo "labsite-backend/internal/domains/project/repository"
	projectService "labsite-backend/internal/domains/project/service"

	"labsite-backend/internal/domains/team"
	teamHandler "labsite-backend/internal/domains/team/handler"
	teamRepo "labsite-backend/internal/domains/team/repository"
	teamService "labsite-backend/internal/domains/team/service"

	"labsite-backend/internal/domains/news"
	newsHandler "labsite-backend/internal/domains/news/handler"
	newsRepo "labsite-backend/internal/domains/news/repository"
	newsService "labsite-backend/internal/domains/news/service"

	"labsite-backend/internal/domains/partner"
	partnerHandler "labsite-backend/internal/domains/partner/handler"
	partnerRepo "labsite-backend/internal/domains/partner/repository"
	partnerService "labsite-backend/internal/domains/partner/service"

	"labsite-backend/internal/domains/initiative"
	initiativeHandler "labsite-backend/internal/domains/initiative/handler"
	initiativeRepo "labsite-backend/internal/domains/initiative/repository"
	initiativeService "labsite-backend/internal/domains/initiative/service"

	uploadHandler "labsite-backend/internal/domains/upload/handler"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	ProjectRepo    project.Repository
	TeamRepo       team.Repository
	NewsRepo       news.Repository
	PartnerRepo    partner.Repository
	InitiativeRepo initiative.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthService       auth.Service
	ProjectService    project.Service
	TeamService       team.Service
	NewsService       news.Service
	PartnerService    partner.Service
	InitiativeService initiative.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthHandler       *authHandler.AuthHandler
	ProjectHandler    *projectHandler.ProjectHandler
	TeamHandler       *teamHandler.TeamHandler
	NewsHandler       *newsHandler.NewsHandler
	PartnerHandler    *partnerHandler.PartnerHandler
	InitiativeHandler *initiativeHandler.InitiativeHandler
	UploadHandler     *uploadHandler.UploadHandler
}

// ========================================
// CONTAINER INITIALIZATION
// ========================================

// NewContainer builds the whole dependency graph: infrastructure first,
// then repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	if err := c.initConfig(); err != nil {
		return nil, fmt.Errorf("config initialization failed: %w", err)
	}
	if err := c.initDatabase(ctx); err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", err)
	}
	if err := c.initCache(ctx); err != nil {
		return nil, fmt.Errorf("cache initialization failed: %w", err)
	}
	if err := c.initStorage(); err != nil {
		return nil, fmt.Errorf("storage initialization failed: %w", err)
	}

	c.initAuth()
	c.initDomains()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	db := database.NewPostgresDB(dbCfg)
	if err := db.Connect(ctx); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initCache(ctx context.Context) error {
	redisCache := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		// Redis down only disables caching; requests still hit Postgres.
		logger.Warn("redis unavailable, continuing without cache warm-up", err)
	}
	c.Cache = redisCache
	return nil
}

func (c *Container) initStorage() error {
	st, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return err
	}
	c.Storage = st
	return nil
}

func (c *Container) initAuth() {
	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, time.Duration(c.Config.JWT.ExpiryHours)*time.Hour)
	verifier := auth.NewEnvVerifier(c.Config.Admin.Username, c.Config.Admin.PasswordHash)
	c.AuthService = auth.NewAuthService(verifier, c.JWTManager)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

func (c *Container) initDomains() {
	c.ProjectRepo = projectRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo, nil)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)

	c.TeamRepo = teamRepo.NewPostgresRepository(c.DB.Pool)
	c.TeamService = teamService.NewTeamService(c.TeamRepo)
	c.TeamHandler = teamHandler.NewTeamHandler(c.TeamService)

	c.NewsRepo = newsRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.NewsService = newsService.NewNewsService(c.NewsRepo, nil)
	c.NewsHandler = newsHandler.NewNewsHandler(c.NewsService)

	c.PartnerRepo = partnerRepo.NewPostgresRepository(c.DB.Pool)
	c.PartnerService = partnerService.NewPartnerService(c.PartnerRepo, nil)
	c.PartnerHandler = partnerHandler.NewPartnerHandler(c.PartnerService)

	c.InitiativeRepo = initiativeRepo.NewPostgresRepository(c.DB.Pool)
	c.InitiativeService = initiativeService.NewInitiativeService(c.InitiativeRepo, nil)
	c.InitiativeHandler = initiativeHandler.NewInitiativeHandler(c.InitiativeService)

	c.UploadHandler = uploadHandler.NewUploadHandler(c.Storage)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if redisCache, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := redisCache.Close(); err != nil {
			logger.Warn("failed to close redis", err)
		}
	}
	logger.Info("container cleaned up", nil)
}
