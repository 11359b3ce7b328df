package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/handlers"
  "github.com/Renyaaaa/mlbb-miniapp/internal/middleware"
)

type RouterConfig struct {
  CORSOrigins     []string
  HeroHandler     *handlers.HeroHandler
  AIHandler       *handlers.AIHandler
  QuizHandler     *handlers.QuizHandler
  DailyHandler    *handlers.DailyHandler
  PostHandler     *handlers.PostHandler
  YouTubeHandler  *handlers.YouTubeHandler
  TelegramHandler *handlers.TelegramHandler
  DebugHandler    *handlers.DebugHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(middleware.RequestID())

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.CORSOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)
  router.GET("/health", handlers.HealthCheck)

  // Heroes
  router.GET("/heroes/remaining", cfg.HeroHandler.Remaining)
  router.POST("/heroes/pick", cfg.HeroHandler.Pick)
  router.POST("/heroes/mark-used", cfg.HeroHandler.MarkUsed)
  router.POST("/heroes/reset", cfg.HeroHandler.Reset)

  // AI
  router.POST("/ai/hero-post", cfg.AIHandler.HeroPost)
  router.POST("/ai/counter-pick", cfg.AIHandler.CounterPick)
  router.POST("/ai/tier-list", cfg.AIHandler.TierList)
  router.POST("/ai/patch-explain", cfg.AIHandler.PatchExplain)

  // Quiz
  router.POST("/quiz/generate", cfg.QuizHandler.Generate)
  router.POST("/quiz/check", cfg.QuizHandler.Check)
  router.GET("/quiz", cfg.QuizHandler.List)
  router.GET("/quiz/:id", cfg.QuizHandler.Get)

  // Daily challenge
  router.POST("/daily/generate", cfg.DailyHandler.Generate)

  // Post composition + YouTube
  router.POST("/post/compose", cfg.PostHandler.Compose)
  router.POST("/youtube/video-for-hero", cfg.YouTubeHandler.VideoForHero)

  // Telegram
  router.POST("/tg/verify", cfg.TelegramHandler.Verify)

  // Debug
  router.GET("/debug/env", cfg.DebugHandler.Env)
  router.GET("/debug/db", cfg.DebugHandler.DB)
  router.GET("/debug/ai-ping", cfg.DebugHandler.AIPing)
  router.GET("/debug/youtube-ping", cfg.DebugHandler.YouTubePing)
  router.POST("/debug/youtube-channel-ping", cfg.DebugHandler.YouTubeChannelPing)

  return router
}
