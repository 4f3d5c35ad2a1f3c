package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-inspecta/internal/access"
	"go-inspecta/internal/access/access_http"
	"go-inspecta/internal/account"
	"go-inspecta/internal/audit"
	"go-inspecta/internal/auth"
	"go-inspecta/internal/auth/token"
	"go-inspecta/internal/config"
	"go-inspecta/internal/masterdata"
	"go-inspecta/internal/messaging/kafka"
	"go-inspecta/internal/middleware"
	"go-inspecta/internal/qcrecord"
	"go-inspecta/internal/session"
	"go-inspecta/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	catalogRepo := access.NewCatalogRepository(gormDB)
	accountRepo := account.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	masterdataRepo := masterdata.NewRepository(gormDB)
	recordRepo := qcrecord.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Access core ---
	catalog := access.NewCatalog(catalogRepo, rdb, logger)
	defaults, err := loadDefaults(catalog, logger)
	if err != nil {
		return err
	}

	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb)
	} else {
		store = session.NewMemoryStore(cfg.SessionTTL)
	}
	sessions := session.NewManager(store, cfg.SessionTTL, logger)
	tokens := token.NewManager(cfg.JWTSecret, cfg.SessionTTL)
	authMiddleware := middleware.AuthMiddleware(tokens, sessions)

	// --- Services ---
	accountService := account.NewService(db, accountRepo, catalog, defaults, outboxRepo, logger)
	authService := auth.NewService(authRepo, sessions, tokens, logger)
	masterdataService := masterdata.NewService(db, masterdataRepo, rdb, logger)
	recordService := qcrecord.NewService(db, recordRepo, counterRepo, logger)
	auditService := audit.NewService(auditRepo, logger)

	// --- Handlers ---
	accessHandler := access.NewHandler(catalog, defaults, logger)
	accountHandler := account.NewHandler(accountService, logger)
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	masterdataHandler := masterdata.NewHandler(masterdataService, logger)
	recordHandler := qcrecord.NewHandler(recordService, logger)
	auditHandler := audit.NewHandler(auditService, logger)
	sessionHandler := session.NewHandler(sessions, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.GET("/health", health(db))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware, logger)
		session.RegisterRoutes(api, sessionHandler, authMiddleware, logger)
		access_http.RegisterRoutes(api, accessHandler, authMiddleware, logger)
		account.RegisterRoutes(api, accountHandler, authMiddleware, rdb, logger)
		masterdata.RegisterRoutes(api, masterdataHandler, authMiddleware, logger)
		qcrecord.RegisterRoutes(api, recordHandler, authMiddleware, logger)
		audit.RegisterRoutes(api, auditHandler, authMiddleware, logger)
	}

	return nil
}

// loadDefaults builds the role bundles from the stored catalog. An empty or
// unreachable catalog falls back to the built-in seed tags.
func loadDefaults(catalog access.Catalog, logger *zap.Logger) (*access.Defaults, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	perms, err := catalog.Load(ctx)
	if err != nil {
		logger.Warn("permission catalog unavailable, using seed catalog", zap.Error(err))
	}
	return access.NewDefaults(access.CatalogTags(perms))
}

func health(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
