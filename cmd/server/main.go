package main

import (
	"os"

	"template-gateway/internal/api"
	"template-gateway/internal/config"
	"template-gateway/internal/database"
	"template-gateway/internal/events"
	"template-gateway/internal/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	database.InitGorm(cfg)

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPUrl != "" {
		publisher, err = events.New(cfg.AMQPUrl, cfg.AMQPExchange, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to broker")
		}
		defer publisher.Close()
	}

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	client := whatsapp.NewClient(cfg, logger)
	templateHandler := api.NewTemplateHandler(client, cfg, publisher, logger)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/messages", templateHandler.GetMessages)

		templateGroup := apiGroup.Group("/templates")
		{
			templateGroup.POST("/preview", templateHandler.PreviewTemplate)
			templateGroup.POST("/send", templateHandler.SendTemplate)
			templateGroup.POST("/broadcast", templateHandler.SendBroadcast)
			templateGroup.GET("", templateHandler.GetTemplates)
			templateGroup.POST("", templateHandler.CreateTemplate)
			templateGroup.POST("/sync", templateHandler.SyncTemplates)
		}
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}
