package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vibehunt/config"
	"vibehunt/controllers"
	"vibehunt/database"
	"vibehunt/middleware"
	"vibehunt/utils"
)

// SetupRouter wires routes, middlewares, and controllers. The store may be
// nil when no database is configured; data handlers then answer with a server
// error instead of the process refusing to boot.
func SetupRouter(store database.Store) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	// Replace the default console logger with a file-based zap access log.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(middleware.AccessLog(gl, time.RFC3339, true))
		r.Use(middleware.Recovery(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	// Deliberately public API posture: any origin, method, and header.
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	postController := controllers.NewPostController(store)
	commentController := controllers.NewCommentController(store)
	voteController := controllers.NewVoteController(store)
	diagController := controllers.NewDiagController(store)

	r.GET("/", diagController.Root)
	r.GET("/test", diagController.TestDatabase)
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/posts", postController.ListPosts)
	api.POST("/posts", postController.CreatePost)
	api.POST("/comments", commentController.CreateComment)
	api.GET("/comments/:post_id", commentController.ListComments)
	api.POST("/vote/toggle", voteController.ToggleVote)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "route not found")
	})

	return r
}
