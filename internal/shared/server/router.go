package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"offerai-backend/internal/artifacts"
	"offerai-backend/internal/listings"
	"offerai-backend/internal/llm/openrouter"
	"offerai-backend/internal/pages"
	"offerai-backend/internal/render"
	"offerai-backend/internal/resume"
	"offerai-backend/internal/shared/config"
	"offerai-backend/internal/shared/server/middleware"
	"offerai-backend/internal/shared/server/respond"
	"offerai-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, store *artifacts.Store) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	apiKey, err := config.LoadAPIKey(cfg.CredentialFile)
	if err != nil {
		return nil, err
	}
	client, err := openrouter.NewClient(apiKey)
	if err != nil {
		return nil, err
	}
	resumeHandler := resume.NewHandler(resume.NewPipeline(client), render.NewChromeRenderer(), store)

	listingsRepo, err := buildListingsRepo(cfg)
	if err != nil {
		return nil, err
	}
	listingsHandler := listings.NewHandler(listingsRepo)
	pagesHandler := pages.NewHandler()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	resumeHandler.RegisterRoutes(api)
	listingsHandler.RegisterRoutes(api)
	pagesHandler.RegisterRoutes(api)

	return r, nil
}

// buildListingsRepo picks the listings backend from config. Postgres is used
// when configured and reachable, otherwise rows are loaded from the workbook
// into memory.
func buildListingsRepo(cfg config.Config) (listings.Repo, error) {
	if cfg.ListingsSource == config.ListingsSourcePostgres && cfg.DatabaseURL != "" {
		ctx := context.Background()
		dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to workbook: %v", err)
		} else {
			if err := db.RunMigrations(ctx, dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to workbook: %v", err)
			} else {
				return &listings.PGRepo{DB: dbConn}, nil
			}
		}
	}

	rows, err := listings.LoadXLSX(cfg.ListingsFile, cfg.ListingsSheet)
	if err != nil {
		log.Printf("failed to load listings workbook %s: %v", cfg.ListingsFile, err)
		rows = nil
	}
	return listings.NewMemoryRepo(rows), nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
