package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "bankinsights/docs"

	"cloud.google.com/go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/api/option"
)

var (
	ledger LedgerSource
	engine = NewNotificationEngine("₹")
	clock  = time.Now
)

// @title Bank Insights API
// @version 1.0
// @description Categorizes bank ledger transactions, aggregates spending insights and selects a weekly spending notification.
// @host localhost:8000
// @BasePath /
func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger = newLogger(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	engine = NewNotificationEngine(cfg.Notification.CurrencySymbol)

	ctx := context.Background()
	source, closeLedger, err := openLedger(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Ledger.Driver).Msg("Failed to open ledger")
	}
	defer closeLedger()
	ledger = source

	if cfg.Log.Format == "console" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := setupRouter(cfg.Server.AllowedOrigins)

	logger.Info().Str("port", cfg.Server.Port).Str("driver", cfg.Ledger.Driver).Msg("Server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

// setupRouter configures middleware and every route
func setupRouter(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Routes
	r.GET("/api/insights", getInsights)
	r.POST("/api/recalculate", recalculate)
	r.GET("/api/nlp-notification", getNlpNotification)
	r.POST("/api/upload-csv", uploadCSV)
	r.GET("/api/transactions", getTransactions)
	r.POST("/api/payments/qr", payViaQR)
	r.GET("/api/categories", getCategories)
	r.GET("/api/totals", getTotals)
	r.GET("/healthz", healthz)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// openLedger builds the configured ledger backend. The returned func releases
// its resources.
func openLedger(ctx context.Context, cfg Config) (LedgerSource, func(), error) {
	switch cfg.Ledger.Driver {
	case LedgerDriverPostgres:
		return openPostgresLedger(ctx, cfg.Database)
	case LedgerDriverGCS:
		var opts []option.ClientOption
		if cfg.Ledger.GCSCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Ledger.GCSCredentialsFile))
		}
		client, err := storage.NewClient(ctx, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("create storage client: %w", err)
		}
		logger.Info().Str("bucket", cfg.Ledger.GCSBucket).Str("object", cfg.Ledger.GCSObject).Msg("Using Cloud Storage ledger")
		return NewGCSLedger(client, cfg.Ledger.GCSBucket, cfg.Ledger.GCSObject), func() { client.Close() }, nil
	default:
		logger.Info().Str("path", cfg.Ledger.Path).Msg("Using file ledger")
		return NewFileLedger(cfg.Ledger.Path), func() {}, nil
	}
}

// openPostgresLedger connects with retries, applies migrations and opens a pgx pool
func openPostgresLedger(ctx context.Context, dbCfg DatabaseConfig) (LedgerSource, func(), error) {
	connStr := dbCfg.ConnString()

	// Connect to database with retry logic
	retryInterval := time.Second * 2
	var db *sql.DB
	var err error
	for i := 0; i < dbCfg.MaxRetries; i++ {
		db, err = sql.Open("postgres", connStr)
		if err != nil {
			logger.Warn().Err(err).Int("attempt", i+1).Msg("Error opening database")
			time.Sleep(retryInterval)
			continue
		}

		if err = db.PingContext(ctx); err != nil {
			logger.Warn().Err(err).Int("attempt", i+1).Msg("Error connecting to database")
			db.Close()
			time.Sleep(retryInterval)
			continue
		}

		logger.Info().Msg("Successfully connected to database")
		break
	}
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database after %d retries: %w", dbCfg.MaxRetries, err)
	}
	if db == nil {
		return nil, nil, fmt.Errorf("database.max_retries must be positive")
	}

	// Run database migrations
	if _, err := os.Stat(dbCfg.MigrationsPath); os.IsNotExist(err) {
		logger.Warn().Str("path", dbCfg.MigrationsPath).Msg("Migrations directory not found, skipping migrations")
	} else {
		logger.Info().Msg("Running database migrations...")
		if err := runMigrations(db, dbCfg.MigrationsPath); err != nil {
			db.Close()
			return nil, nil, err
		}

		// Display current migration version
		if version, dirty, err := getMigrationVersion(db, dbCfg.MigrationsPath); err == nil {
			if dirty {
				logger.Warn().Uint("version", version).Msg("Current migration version is DIRTY - migration failed")
			} else {
				logger.Info().Uint("version", version).Msg("Current migration version")
			}
		}
		logger.Info().Msg("Database migrations completed successfully")
	}
	db.Close()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, nil, fmt.Errorf("create connection pool: %w", err)
	}
	return NewPostgresLedger(pool), pool.Close, nil
}
