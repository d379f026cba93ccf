package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lyrics-backend/internal/api"
	"lyrics-backend/internal/auth"
	"lyrics-backend/internal/biz"
	"lyrics-backend/internal/conf"
	"lyrics-backend/internal/data"
	"lyrics-backend/internal/server"
	"lyrics-backend/internal/service"
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// load config
	cfg, err := conf.Load(flagconf)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// data layer
	spotifyClient := data.NewSpotifyClient()
	clientFactory := data.NewClientFactory(cfg.OpenAI)

	// auth layer
	redirectURL := cfg.Spotify.GetRedirectURL(cfg.Server.BaseURL)
	cfg.Spotify.RedirectURL = redirectURL
	authClient := auth.NewClient(&cfg.Spotify, redirectURL)
	sessions := auth.NewSessionStore()
	logger.Info("spotify oauth configured", "redirect_url", redirectURL)

	// biz layer
	spotifyUsecase := biz.NewSpotifyUsecase(spotifyClient)
	lyricsUsecase := biz.NewLyricsUsecase(clientFactory, cfg.OpenAI)

	// service layer
	spotifyService := service.NewSpotifyService(spotifyUsecase)
	lyricsService := service.NewLyricsService(lyricsUsecase)

	// api layer
	authHandler := api.NewAuthHandler(authClient, sessions, spotifyService, cfg.Spotify.SuccessURL, cfg.Spotify.FailureURL)
	spotifyHandler := api.NewSpotifyHandler(spotifyService, cfg.Spotify)
	lyricsHandler := api.NewLyricsHandler(lyricsService)
	router := api.NewRouter(authHandler, spotifyHandler, lyricsHandler, sessions.Middleware())
	handler := api.WithCORS(router, cfg.Frontend.Origins)

	srv := server.New(cfg.Server.Addr, handler)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("lyrics backend started", "addr", cfg.Server.Addr)

	// wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
