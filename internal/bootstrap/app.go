package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/archive"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/enrich"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/llm"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/llm/gemini"
	openai "github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/llm/openai"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/resumes"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/services/health"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/auth"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/config"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/middleware"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/storage/db"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/storage/object"
	localstore "github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/storage/object/local"
	s3store "github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/storage/object/s3"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/telemetry"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/render"
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	LLM            llm.Client
	Tokens         *auth.Tokens
	Generator      *render.Generator
	ArchiveService *archive.Service
	ResumeHandler  *resumes.Handler
	EnrichHandler  *enrich.Handler
	ArchiveHandler *archive.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.Env)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		Tokens:    tokens,
		Generator: render.NewGenerator(),
	}

	if cfg.ArchiveGenerated {
		if err := buildArchive(ctx, app); err != nil {
			return nil, err
		}
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.LLM = llmClient

	var archiver resumes.Archiver
	if app.ArchiveService != nil {
		archiver = app.ArchiveService
		app.ArchiveHandler = archive.NewHandler(app.ArchiveService)
	}
	app.ResumeHandler = resumes.NewHandler(app.Generator, archiver, cfg.UploadDir, cfg.MaxUploadBytes)
	app.EnrichHandler = enrich.NewHandler(enrich.NewService(app.LLM))

	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		Tokens:         tokens,
		Health:         health.NewService(pinger),
		ResumeHandler:  app.ResumeHandler,
		EnrichHandler:  app.EnrichHandler,
		ArchiveHandler: app.ArchiveHandler,
		RateLimiter:    middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"llm_provider": cfg.LLMProvider,
		"archive":      app.ArchiveService != nil,
		"database":     app.DB != nil,
		"object_store": cfg.ObjectStoreType,
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildArchive(ctx context.Context, app *App) error {
	sqlDB, err := buildDB(ctx, app.Config)
	if err != nil {
		return err
	}
	store, err := buildStore(ctx, app.Config)
	if err != nil {
		return err
	}

	var repo archive.Repo
	if sqlDB != nil {
		repo = &archive.PGRepo{DB: sqlDB}
	} else {
		repo = archive.NewMemoryRepo()
	}
	app.DB = sqlDB
	app.Store = store
	app.ArchiveService = archive.NewService(repo, store)
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_disabled", map[string]any{
				"reason": "DATABASE_URL empty; using in-memory repositories",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required when ARCHIVE_GENERATED is set")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_disabled", map[string]any{
				"reason": "database unavailable; using in-memory repositories",
				"error":  err,
			})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildLLM selects the completion provider. Missing credentials leave the AI
// routes answering 503 instead of failing startup.
func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	model := llm.DefaultModel(cfg.LLMProvider, cfg.LLMModel)
	switch cfg.LLMProvider {
	case llm.ProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			warnLLMDisabled(cfg.LLMProvider, "OPENAI_API_KEY empty")
			return llm.PlaceholderClient{}, nil
		}
		return openai.NewClient(cfg.OpenAIAPIKey, model, cfg.OpenAIBaseURL)
	case llm.ProviderGemini:
		if strings.TrimSpace(cfg.GoogleAPIKey) == "" {
			warnLLMDisabled(cfg.LLMProvider, "GOOGLE_API_KEY empty")
			return llm.PlaceholderClient{}, nil
		}
		return gemini.NewClient(ctx, cfg.GoogleAPIKey, model)
	default:
		return llm.PlaceholderClient{}, nil
	}
}

func warnLLMDisabled(provider, reason string) {
	telemetry.Warn("bootstrap.llm_disabled", map[string]any{
		"provider": provider,
		"reason":   reason,
	})
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
