package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"

	"productPhotoAi/internal/agent"
	"productPhotoAi/internal/api"
	"productPhotoAi/internal/config"
	"productPhotoAi/internal/llm"
	"productPhotoAi/internal/logging"
	"productPhotoAi/internal/server"
	"productPhotoAi/internal/storage"
)

const generativeLanguageScope = "https://www.googleapis.com/auth/generative-language"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(false)
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Setup(cfg.LogJSON)

	client, err := buildClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init model client")
	}
	log.Info().Str("provider", cfg.AIProvider).Msg("model client ready")

	planner := agent.New(client, cfg.AITemperature)
	store := storage.NewInMemoryStore(cfg.SessionTTL())

	handler := api.Handler{
		Planner:        planner,
		Store:          store,
		MaxUploadBytes: cfg.MaxUploadBytes,
		MaxDimension:   cfg.MaxImageDimension,
	}

	srv := server.New(cfg.Address, handler)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Info().Msg("shutting down server")
		if err := srv.Close(); err != nil {
			log.Error().Err(err).Msg("server close error")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func buildClient(cfg config.Config) (llm.Client, error) {
	switch cfg.AIProvider {
	case "gemini":
		geminiCfg := llm.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.AITimeout(),
		}
		if cfg.GeminiCredentialsFile != "" {
			raw, err := os.ReadFile(cfg.GeminiCredentialsFile)
			if err != nil {
				return nil, err
			}
			creds, err := google.CredentialsFromJSON(context.Background(), raw, generativeLanguageScope)
			if err != nil {
				return nil, err
			}
			geminiCfg.TokenSource = creds.TokenSource
		}
		return llm.NewGeminiClient(geminiCfg), nil
	default:
		return llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:    cfg.OpenAIAPIKey,
			Model:     cfg.OpenAIModel,
			MaxTokens: cfg.AIMaxTokens,
			Timeout:   cfg.AITimeout(),
		}), nil
	}
}
