package main

import (
	"flag"
	"log/slog"
	"os"

	"meetwise/internal/config"
	"meetwise/internal/export"
	"meetwise/internal/extract"
	"meetwise/internal/handler"
	"meetwise/internal/logger"
	"meetwise/internal/middleware"
	"meetwise/internal/model"
	"meetwise/internal/repo"
	"meetwise/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Transcript{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	users := repo.NewUsers(db)
	transcripts := repo.NewTranscripts(db)

	summarizer := service.NewSummarizer(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	authSvc := service.NewAuthService(users)
	intakeSvc := service.NewIntakeService(summarizer, transcripts)

	secret := []byte(cfg.JWT.Secret)
	authH := handler.NewAuthHandler(authSvc, secret)
	transcriptH := handler.NewTranscriptHandler(intakeSvc, extract.NewFetcher())
	exportH := handler.NewExportHandler(
		export.NewSlack(cfg.Slack.WebhookURL),
		export.NewTrello(cfg.Trello.Key, cfg.Trello.Token, cfg.Trello.ListID),
		export.NewNotion(cfg.Notion.Token, cfg.Notion.DatabaseID),
	)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)
	r.POST("/export/:target", exportH.Export)

	auth := r.Group("/", middleware.JWTAuth(secret))
	auth.POST("/transcripts/submit", transcriptH.Submit)
	auth.GET("/transcripts", transcriptH.List)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
