package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/builder"
	"resume-builder-backend/internal/profiles"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/internal/templates"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ProfilesRepo  profiles.Repo
	TemplatesRepo templates.Repo
	ResumesRepo   resumes.Repo

	BuilderService *builder.Service
}

// Build prepares shared dependencies and wires routes. When DATABASE_URL is
// empty (or unreachable outside production), in-memory repositories back the
// services so local development needs no database.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	catalog := templates.Builtin()
	if sqlDB != nil {
		app.ProfilesRepo = &profiles.PGRepo{DB: sqlDB}
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
		pgTemplates := &templates.PGRepo{DB: sqlDB}
		if err := pgTemplates.Seed(ctx, catalog); err != nil {
			return nil, err
		}
		app.TemplatesRepo = pgTemplates
	} else {
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.TemplatesRepo = templates.NewMemoryRepo(catalog)
	}

	app.BuilderService = &builder.Service{
		Profiles:  app.ProfilesRepo,
		Templates: app.TemplatesRepo,
		Resumes:   app.ResumesRepo,
		Registry:  builder.NewRegistry(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		ProfileHandler:  profiles.NewHandler(app.ProfilesRepo),
		TemplateHandler: templates.NewHandler(app.TemplatesRepo, app.ProfilesRepo),
		BuilderHandler:  builder.NewHandler(app.BuilderService, app.ResumesRepo),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
		return nil, nil
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.Env != "production" {
			log.Printf("bootstrap: database unavailable (%v); using in-memory repositories", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}
