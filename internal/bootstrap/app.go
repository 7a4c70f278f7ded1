package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"hireflow-backend/internal/entities"
	"hireflow-backend/internal/resumes"
	"hireflow-backend/internal/scoring"
	"hireflow-backend/internal/shared/config"
	"hireflow-backend/internal/shared/server"
	"hireflow-backend/internal/shared/storage/db"
	"hireflow-backend/internal/shared/storage/object"
	localstore "hireflow-backend/internal/shared/storage/object/local"
	s3store "hireflow-backend/internal/shared/storage/object/s3"
)

// App holds the wired application dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Store        object.ObjectStore
	ParseRepo    resumes.ParseRepo
	ParseService *resumes.Service
	ParseHandler *resumes.Handler
}

// Build wires stores, the pipeline, and the router from configuration.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	extractor, err := buildExtractor(cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.ParseRepo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	svc := resumes.NewService(store, repo, extractor, scoring.NewScorer(scoring.DefaultPolicy()))
	handler := resumes.NewHandler(svc)

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		Store:        store,
		ParseRepo:    repo,
		ParseService: svc,
		ParseHandler: handler,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: handler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildExtractor(cfg config.Config) (*entities.Extractor, error) {
	if strings.TrimSpace(cfg.RulesetPath) == "" {
		return entities.NewExtractor(nil), nil
	}

	rcfg, err := entities.LoadConfig(cfg.RulesetPath)
	if err != nil {
		return nil, fmt.Errorf("load ruleset %s: %w", cfg.RulesetPath, err)
	}
	rules, err := entities.NewRuleset(rcfg)
	if err != nil {
		return nil, fmt.Errorf("compile ruleset %s: %w", cfg.RulesetPath, err)
	}
	return entities.NewExtractor(rules), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
