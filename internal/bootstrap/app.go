package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/codingprofiles"
	"portfolio-backend/internal/education"
	"portfolio-backend/internal/profile"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/resumes"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/skills"
)

var errDatabaseRequired = errors.New("DATABASE_URL is required")

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ResumeRepo        resumes.Repo
	ProfileRepo       profile.Repo
	EducationRepo     education.Repo
	ProjectRepo       projects.Repo
	SkillGroupRepo    skills.Repo
	CodingProfileRepo codingprofiles.Repo

	ResumeService        *resumes.Service
	ProfileService       *profile.Service
	EducationService     *education.Service
	ProjectService       *projects.Service
	SkillGroupService    *skills.Service
	CodingProfileService *codingprofiles.Service
}

// Build prepares shared dependencies and wires the router. When no
// database is configured (or reachable) in a dev-like environment, the
// app falls back to in-memory repositories.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:               app.Config,
		ResumeHandler:        resumes.NewHandler(app.ResumeService),
		ProfileHandler:       profile.NewHandler(app.ProfileService),
		EducationHandler:     education.NewHandler(app.EducationService),
		ProjectHandler:       projects.NewHandler(app.ProjectService),
		SkillGroupHandler:    skills.NewHandler(app.SkillGroupService),
		CodingProfileHandler: codingprofiles.NewHandler(app.CodingProfileService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
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
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumeRepo = &resumes.PGRepo{DB: app.DB}
		app.ProfileRepo = &profile.PGRepo{DB: app.DB}
		app.EducationRepo = &education.PGRepo{DB: app.DB}
		app.ProjectRepo = &projects.PGRepo{DB: app.DB}
		app.SkillGroupRepo = &skills.PGRepo{DB: app.DB}
		app.CodingProfileRepo = &codingprofiles.PGRepo{DB: app.DB}
	} else {
		app.ResumeRepo = resumes.NewMemoryRepo()
		app.ProfileRepo = profile.NewMemoryRepo()
		app.EducationRepo = education.NewMemoryRepo()
		app.ProjectRepo = projects.NewMemoryRepo()
		app.SkillGroupRepo = skills.NewMemoryRepo()
		app.CodingProfileRepo = codingprofiles.NewMemoryRepo()
	}

	app.ProfileService = profile.NewService(app.ProfileRepo)
	app.ResumeService = &resumes.Service{
		Repo:    app.ResumeRepo,
		Profile: app.ProfileService,
	}
	app.EducationService = education.NewService(app.EducationRepo)
	app.ProjectService = projects.NewService(app.ProjectRepo)
	app.SkillGroupService = skills.NewService(app.SkillGroupRepo)
	app.CodingProfileService = codingprofiles.NewService(app.CodingProfileRepo)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
