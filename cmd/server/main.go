package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pairup/internal/auth"
	"pairup/internal/config"
	"pairup/internal/database"
	"pairup/internal/handlers"
	"pairup/internal/logger"
	"pairup/internal/middleware"
	"pairup/internal/repository"
	"pairup/internal/services"
	"pairup/internal/session"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.GinMode == gin.ReleaseMode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// The store is initialized once here, before any request is served.
	if err := database.Connect(cfg); err != nil {
		logger.L.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.L.Fatal("failed to run migrations", zap.Error(err))
	}
	if err := database.Seed(cfg); err != nil {
		logger.L.Fatal("failed to seed database", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinZapLogger())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(session.CookieName, store))

	r.LoadHTMLGlob("web/templates/*.html")

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	pairingRepo := repository.NewPairingRepository(db)

	strategies := auth.NewRegistry()
	strategies.Register(auth.StrategyPassword, auth.NewPasswordStrategy(userRepo))

	sessionMgr := session.NewManager(userRepo)

	userService := services.NewUserService(userRepo, groupRepo)
	groupService := services.NewGroupService(groupRepo, assignmentRepo)
	scheduleService := services.NewScheduleService(availabilityRepo, pairingRepo, assignmentRepo, userRepo)

	handlers.Register(r, handlers.Set{
		Pages:          handlers.NewPageHandler(sessionMgr),
		Auth:           handlers.NewAuthHandler(r, strategies, sessionMgr),
		Users:          handlers.NewUserHandler(userService, groupService, scheduleService, sessionMgr),
		Groups:         handlers.NewGroupHandler(groupService, sessionMgr),
		Availabilities: handlers.NewAvailabilityHandler(scheduleService, sessionMgr),
	}, middleware.RequireAuth(r, sessionMgr))

	logger.L.Info("server starting", zap.String("addr", cfg.Addr))
	// MethodOverride wraps the router so form PUTs are rewritten before
	// route matching.
	if err := http.ListenAndServe(cfg.Addr, middleware.MethodOverride(r)); err != nil {
		logger.L.Fatal("server exited", zap.Error(err))
	}
}
