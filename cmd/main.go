package main

import (
  "fmt"
  "os"
  "github.com/joho/godotenv"
  "github.com/Renyaaaa/mlbb-miniapp/internal/db"
  "github.com/Renyaaaa/mlbb-miniapp/internal/handlers"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/repos"
  "github.com/Renyaaaa/mlbb-miniapp/internal/server"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
  "github.com/Renyaaaa/mlbb-miniapp/internal/utils"
)

func main() {
  // .env is optional, real deployments configure through the environment
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Sqlite
  sqliteService, err := db.NewSqliteService(log)
  if err != nil {
    log.Fatal("Sqlite init failed", "error", err)
  }
  if err = sqliteService.AutoMigrateAll(); err != nil {
    log.Fatal("Sqlite auto migration failed", "error", err)
  }
  theDB := sqliteService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  usedHeroRepo := repos.NewUsedHeroRepo(theDB, log)
  quizQuestionRepo := repos.NewQuizQuestionRepo(theDB, log)
  dailyChallengeRepo := repos.NewDailyChallengeRepo(theDB, log)

  // Services
  log.Info("Setting up Services from main...")
  geminiClient, err := services.NewGeminiClient(log)
  if err != nil {
    log.Warn("Could not init GeminiClient, AI responses will use safe fallbacks", "error", err)
    geminiClient = nil
  }
  ytClient, err := services.NewYouTubeClient(log)
  if err != nil {
    log.Warn("Could not init YouTubeClient, video routes will answer 503", "error", err)
    ytClient = nil
  }
  botToken := utils.GetEnv("TELEGRAM_BOT_TOKEN", "", log)
  if botToken == "" {
    log.Warn("TELEGRAM_BOT_TOKEN is not set, /tg/verify will answer 503")
  }

  genService := services.NewGenerationService(log, geminiClient)
  heroService := services.NewDefaultHeroService(log, usedHeroRepo)
  quizService := services.NewQuizService(log, genService, quizQuestionRepo)
  dailyService := services.NewDailyService(log, genService, dailyChallengeRepo)
  postService := services.NewPostService(log, heroService, genService, ytClient)
  tgVerifier := services.NewTelegramVerifier(log, botToken)

  // Handlers
  log.Info("Setting up Handlers from main...")
  corsOrigins := utils.GetEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173"}, log)
  heroHandler := handlers.NewHeroHandler(log, heroService)
  aiHandler := handlers.NewAIHandler(log, genService)
  quizHandler := handlers.NewQuizHandler(log, quizService)
  dailyHandler := handlers.NewDailyHandler(log, dailyService)
  postHandler := handlers.NewPostHandler(log, postService)
  youtubeHandler := handlers.NewYouTubeHandler(log, ytClient)
  telegramHandler := handlers.NewTelegramHandler(log, tgVerifier)
  debugHandler := handlers.NewDebugHandler(log, geminiClient, ytClient, quizService, sqliteService.Path(), corsOrigins)

  // Router
  router := server.NewRouter(server.RouterConfig{
    CORSOrigins:     corsOrigins,
    HeroHandler:     heroHandler,
    AIHandler:       aiHandler,
    QuizHandler:     quizHandler,
    DailyHandler:    dailyHandler,
    PostHandler:     postHandler,
    YouTubeHandler:  youtubeHandler,
    TelegramHandler: telegramHandler,
    DebugHandler:    debugHandler,
  })

  port := utils.GetEnv("PORT", "8000", log)
  log.Info("Starting server...", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
