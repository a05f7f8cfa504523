package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()

	dbCfg := config.LoadDatabaseConfig()
	utils.InitMongoClient(dbCfg.URI, dbCfg.MaxPoolSize, dbCfg.MinPoolSize, dbCfg.MaxConnIdleTime)
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	client := utils.MongoClient
	sessionRepo := repository.GetSessionRepo(client)

	todoService := usecase.NewTodoService(
		repository.GetTodosRepo(client),
		repository.GetDayMarksRepo(client),
		repository.GetCategoriesRepo(client),
		repository.GetTimelineRepo(client),
	)
	analyticsService := usecase.NewAnalyticsService(
		repository.GetTodosRepo(client),
		repository.GetCategoriesRepo(client),
		repository.GetSuggestionsRepo(client),
		repository.GetKPIRepo(client),
		config.LoadAnalyticsConfig(),
	)
	calendarService := usecase.NewCalendarService(repository.GetTodosRepo(client))
	suggestionService := usecase.NewSuggestionService(repository.GetSuggestionsRepo(client), todoService)
	coachService := usecase.NewCoachService(repository.GetMaterialsRepo(client), config.LoadRetrievalConfig())
	journeyService := usecase.NewJourneyService(repository.GetJourneysRepo(client))
	plannerService := usecase.NewPlannerService(config.LoadPlannerConfig())

	todosHandler := handler.NewTodosHandler(todoService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	suggestionsHandler := handler.NewSuggestionsHandler(suggestionService)
	coachHandler := handler.NewCoachHandler(coachService)
	journeyHandler := handler.NewJourneyHandler(journeyService)
	plannerHandler := handler.NewPlannerHandler(plannerService, todoService)
	sessionHandler := handler.NewSessionHandler(sessionRepo)
	statsHandler := handler.NewStatsHandler(
		repository.GetUserRepo(client),
		repository.GetTodosRepo(client),
		repository.GetTimelineRepo(client),
		repository.GetSuggestionsRepo(client),
		sessionRepo,
	)

	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(2 << 20)) // 2 MiB
	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", handler.RegistrationHandler)
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshHandler)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", handler.GetProfileHandler)
			user.PUT("/password", handler.ChangePasswordHandler)
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.DELETE("/", func(c *gin.Context) {
				handler.DeleteUserHandler(c, sessionRepo)
			})
		}

		twoFactor := protected.Group("/2fa")
		{
			twoFactor.POST("/generate", handler.Generate2FASecretHandler)
			twoFactor.POST("/enable", handler.Enable2FAHandler)
			twoFactor.POST("/verify", handler.Verify2FAHandler)
			twoFactor.POST("/disable", handler.Disable2FAHandler)
			twoFactor.POST("/recovery", handler.UseRecoveryCodeHandler)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/", sessionHandler.GetActiveSessions)
			sessions.DELETE("/:id", sessionHandler.LogoutSession)
			sessions.POST("/logout-all", sessionHandler.LogoutAllSessions)
		}

		todos := protected.Group("/todos")
		{
			todos.GET("/:category/:date", todosHandler.GetDay)
			todos.POST("/", todosHandler.AddTodo)
			todos.POST("/:id/toggle", todosHandler.ToggleTodo)
			todos.DELETE("/:id", todosHandler.DeleteTodo)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("/", todosHandler.ListCategories)
			categories.POST("/", todosHandler.CreateCategory)
			categories.DELETE("/:id", todosHandler.DeleteCategory)
		}

		protected.GET("/timeline", todosHandler.GetTimeline)
		protected.GET("/calendar", middleware.CacheControlMiddleware("60"), calendarHandler.GetEvents)

		insights := protected.Group("/insights")
		{
			insights.GET("/kpis", middleware.CacheControlMiddleware("300"), analyticsHandler.GetKPIRows)
			insights.GET("/summary", analyticsHandler.GetKPISummary)
			insights.GET("/weekly-deltas", analyticsHandler.GetWeeklyDeltas)
			insights.GET("/completion/:category/:date", analyticsHandler.GetDayCompletion)
		}

		suggestions := protected.Group("/suggestions")
		{
			suggestions.GET("/", suggestionsHandler.List)
			suggestions.POST("/:id/apply", suggestionsHandler.Apply)
			suggestions.POST("/:id/dismiss", suggestionsHandler.Dismiss)
		}

		coach := protected.Group("/coach")
		{
			coach.POST("/materials", coachHandler.UploadMaterial)
			coach.GET("/materials", coachHandler.ListMaterials)
			coach.GET("/materials/:id", coachHandler.GetMaterial)
			coach.DELETE("/materials/:id", coachHandler.DeleteMaterial)
			coach.GET("/materials/:id/summary", coachHandler.GetSummary)
			coach.PUT("/materials/:id/segments/:segment", coachHandler.MarkSegment)
			coach.POST("/materials/:id/ask", coachHandler.Ask)
		}

		journeys := protected.Group("/journeys")
		{
			journeys.POST("/", journeyHandler.Start)
			journeys.GET("/:id", journeyHandler.Get)
			journeys.POST("/:id/advance", journeyHandler.Advance)
		}

		protected.POST("/plan/generate", plannerHandler.GeneratePlan)
		protected.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	// Redis-backed auth infrastructure is optional in development; warn and
	// continue without it.
	redisURL := utils.GetEnvAsString("REDIS_URL", "")
	if redisURL != "" {
		cache, err := services.NewSessionCache(redisURL)
		if err != nil {
			log.Printf("Warning: session cache disabled: %v", err)
		} else {
			services.GlobalSessionCache = cache
			cache.StartCleanupTask()
		}

		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Warning: token blacklist disabled: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}
	}

	dbCfg := config.LoadDatabaseConfig()
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbCfg.DatabaseName)); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}

	scheduler := services.NewScheduler(repository.GetSessionRepo(utils.MongoClient))
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	router := setupRouter()

	port := utils.GetEnvAsString("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.Close()
	}
	if services.TokenBlacklist != nil {
		services.TokenBlacklist.Close()
	}
	log.Println("Server stopped")
}
