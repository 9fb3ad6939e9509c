package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/skirdsawad/papertech-crm-poc/internal/config"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/handler"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/repository"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/sse"
	"github.com/skirdsawad/papertech-crm-poc/internal/middleware"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

const apiPrefix = "/api/v1/crm"

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting papertech-crm service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("data_source", cfg.Data.Source),
	)

	ctx := context.Background()

	// 数据库仅在 postgres 数据源或需要写入快照时使用
	var db *gorm.DB
	if cfg.Database.Enabled() {
		db, err = initDatabase(cfg.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := prepareDatabase(ctx, db, cfg, zapLogger); err != nil {
			zapLogger.Fatal("Failed to prepare database", zap.Error(err))
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = initRedis(cfg.Redis)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zapLogger.Warn("Redis unavailable, metrics cache disabled", zap.Error(err))
			rdb.Close()
			rdb = nil
		}
	}

	var minioClient *minio.Client
	if cfg.MinIO.Enabled() {
		minioClient, err = initMinIO(ctx, cfg.MinIO)
		if err != nil {
			zapLogger.Warn("MinIO unavailable, export upload disabled", zap.Error(err))
			minioClient = nil
		}
	}

	loader, err := repository.NewLoader(repository.LoaderOptions{
		Source: cfg.Data.Source,
		Generator: repository.GeneratorOptions{
			Seed:      cfg.Data.Seed,
			Customers: cfg.Data.Customers,
			Orders:    cfg.Data.Orders,
		},
		FilePath: cfg.Data.FilePath,
		DB:       db,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create dataset loader", zap.Error(err))
	}

	store := repository.NewStore(loader, zapLogger.Named("store"))
	repos := repository.NewRepositories(store)

	hub := sse.NewHub(zapLogger.Named("sse"))
	metrics := service.NewMetrics(prometheus.DefaultRegisterer)
	services := service.NewServices(repos, cfg, service.Deps{
		Redis:   rdb,
		MinIO:   minioClient,
		Hub:     hub,
		Metrics: metrics,
		Logger:  zapLogger,
	})

	// 首次加载失败直接退出，没有可用数据集
	if _, err := services.Reload.Reload(ctx); err != nil {
		zapLogger.Fatal("Failed to load dataset", zap.Error(err))
	}

	handlers := handler.NewHandlers(services, repos, hub)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(middleware.NewHTTPMetrics(prometheus.DefaultRegisterer, "crm")))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{apiPrefix + "/events"})))

	registerRoutes(router, handlers, store)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // SSE 长连接
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	if cfg.Output == "file" && cfg.FilePath != "" {
		zapCfg.OutputPaths = []string{cfg.FilePath}
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// prepareDatabase migrates the snapshot tables and, when asked, fills an
// empty database with a generated snapshot.
func prepareDatabase(ctx context.Context, db *gorm.DB, cfg *config.Config, zapLogger *zap.Logger) error {
	if cfg.Data.AutoMigrate {
		if err := entity.AutoMigrate(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}
	if !cfg.Data.SeedDatabase {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if count > 0 {
		zapLogger.Info("Database already seeded", zap.Int64("customers", count))
		return nil
	}

	snap := repository.Generate(repository.GeneratorOptions{
		Seed:      cfg.Data.Seed,
		Customers: cfg.Data.Customers,
		Orders:    cfg.Data.Orders,
	})
	if err := repository.Seed(ctx, db, snap); err != nil {
		return err
	}
	zapLogger.Info("Seeded database with generated snapshot",
		zap.Int("customers", len(snap.Customers)),
		zap.Int("orders", len(snap.Orders)),
	)
	return nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinIO(ctx context.Context, cfg config.MinIOConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(checkCtx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(checkCtx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}
	return client, nil
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, store *repository.Store) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		ds := store.Current()
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"dataset_version": ds.Version(),
			"dataset_source":  ds.Source(),
			"loaded_at":       ds.LoadedAt(),
		})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.RegisterRoutes(r.Group(apiPrefix))
}
