package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/quillcms/quill-backend/docs"
	"github.com/quillcms/quill-backend/internal/auth"
	"github.com/quillcms/quill-backend/internal/config"
	"github.com/quillcms/quill-backend/internal/handler"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/internal/migration"
	"github.com/quillcms/quill-backend/internal/repository"
	"github.com/quillcms/quill-backend/internal/routes"
	"github.com/quillcms/quill-backend/internal/service"
	pkgcache "github.com/quillcms/quill-backend/pkg/cache"
	"github.com/quillcms/quill-backend/pkg/jwt"
	pkglogger "github.com/quillcms/quill-backend/pkg/logger"
	pkgredis "github.com/quillcms/quill-backend/pkg/redis"
)

// @title           Quill CMS API
// @version         1.0
// @description     Multi-tenant content management and commerce backend
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiresIn),
		time.Duration(cfg.JWT.RefreshIn),
	)
	evaluator := auth.NewEvaluator()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	postRepo := repository.NewPostRepository(db)
	pageRepo := repository.NewPageRepository(db)
	productRepo := repository.NewProductRepository(db)
	revisionRepo := repository.NewRevisionRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, jwtManager)
	revisionSvc := service.NewRevisionService(revisionRepo, postRepo, pageRepo, productRepo)
	postSvc := service.NewPostService(postRepo, revisionSvc)
	pageSvc := service.NewPageService(pageRepo, revisionSvc)
	productSvc := service.NewProductService(productRepo, revisionSvc)
	schedulingSvc := service.NewSchedulingService(postRepo, pageRepo, productRepo, cacheService)
	orgSvc := service.NewOrganizationService(orgRepo, revisionSvc)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && !cfg.IsDevelopment() {
		counter := pkgcache.NewRedisCounter(redisClient)
		router.Use(middleware.RateLimit(counter, middleware.DefaultRateLimitConfig()))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "quill-backend",
			"time":    time.Now().Unix(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Post:         handler.NewPostHandler(postSvc),
		Page:         handler.NewPageHandler(pageSvc),
		Product:      handler.NewProductHandler(productSvc),
		Organization: handler.NewOrganizationHandler(orgSvc),
		Revision:     handler.NewRevisionHandler(revisionSvc, evaluator),
		Scheduling:   handler.NewSchedulingHandler(schedulingSvc, evaluator),
		Cron:         handler.NewCronHandler(schedulingSvc, cfg.Cron.Secret),
	}
	routes.Setup(router, h, jwtManager, evaluator)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDB opens the MySQL connection. TranslateError is required so the
// revision store can detect duplicate-key conflicts as
// gorm.ErrDuplicatedKey.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logMode := gormlogger.Warn
	if cfg.IsDevelopment() {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
