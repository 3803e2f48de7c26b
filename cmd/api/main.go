package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"call-audio-control/config"
	_ "call-audio-control/docs" // Swagger docs
	"call-audio-control/internal/channel"
	"call-audio-control/internal/httpserver"
	routingChannel "call-audio-control/internal/routing/delivery/channel"
	"call-audio-control/internal/routing/platform"
	routingUC "call-audio-control/internal/routing/usecase"
	"call-audio-control/internal/securewindow"
	windowChannel "call-audio-control/internal/securewindow/delivery/channel"
	windowUC "call-audio-control/internal/securewindow/usecase"
	"call-audio-control/pkg/log"
)

// @title       Call Audio Control API
// @description Voice-call audio routing and secure window control.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Call Audio Control...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Audio platform: %s (speakerphone source: %s)", cfg.Audio.Platform, cfg.Audio.SpeakerphoneSource)

	// 3. Audio routing
	adapter, err := platform.New(cfg.Audio.Platform)
	if err != nil {
		logger.Error(ctx, "Failed to initialize audio adapter: ", err)
		return
	}
	routingUseCase := routingUC.New(logger, adapter, routingUC.Options{
		LiveSpeakerphone: cfg.Audio.SpeakerphoneSource == config.SpeakerphoneSourceLive,
	})
	defer routingUseCase.Teardown(context.Background())

	// 4. Secure window
	window := securewindow.NewMemoryWindow()
	windowUseCase := windowUC.New(logger, window)
	if cfg.SecureWindow.Initial {
		if err := windowUseCase.SetSecure(ctx, true); err != nil {
			logger.Warnf(ctx, "Failed to apply initial secure window flag: %v", err)
		}
	}

	// 5. Method channels
	channels := channel.NewRegistry(logger)
	if err := channels.Register(routingChannel.Name, routingChannel.New(logger, routingUseCase)); err != nil {
		logger.Error(ctx, "Failed to register audio channel: ", err)
		return
	}
	if err := channels.Register(windowChannel.Name, windowChannel.New(logger, windowUseCase)); err != nil {
		logger.Error(ctx, "Failed to register secure window channel: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		RateLimit:           cfg.RateLimit.PerMin,
		RoutingUseCase:      routingUseCase,
		SecureWindowUseCase: windowUseCase,
		Channels:            channels,
		WebsocketEnabled:    cfg.Channel.WebsocketEnabled,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
