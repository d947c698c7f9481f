package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/codingprofiles"
	"portfolio-backend/internal/education"
	"portfolio-backend/internal/profile"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/resumes"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/skills"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config               config.Config
	ResumeHandler        *resumes.Handler
	ProfileHandler       *profile.Handler
	EducationHandler     *education.Handler
	ProjectHandler       *projects.Handler
	SkillGroupHandler    *skills.Handler
	CodingProfileHandler *codingprofiles.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.ResumeHandler.RegisterRoutes(api)
	deps.ProfileHandler.RegisterRoutes(api)
	deps.EducationHandler.RegisterRoutes(api)
	deps.ProjectHandler.RegisterRoutes(api)
	deps.SkillGroupHandler.RegisterRoutes(api)
	deps.CodingProfileHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3002"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
