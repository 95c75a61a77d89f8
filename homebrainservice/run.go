// Package homebrainservice wires configuration, storage, collaborators,
// and the HTTP server into a running service.
package homebrainservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/api"
	"github.com/homebrain/homebrain/internal/config"
	"github.com/homebrain/homebrain/internal/factory"
	"github.com/homebrain/homebrain/internal/llm"
	"github.com/homebrain/homebrain/internal/platform/logger"
	"github.com/homebrain/homebrain/internal/scheduler"
	"github.com/homebrain/homebrain/internal/services"
	"github.com/homebrain/homebrain/internal/speech"
)

// Run starts the HomeBrain HTTP server and blocks until shutdown or error.
func Run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("chat_model", cfg.ChatModel).
		Str("transcribe_model", cfg.TranscribeModel).
		Msg("HomeBrain service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := newServerContext()
	defer stop()

	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("store adapter unavailable")
		return err
	}

	// OpenAI collaborators share one client; the key comes from
	// OPENAI_API_KEY in the environment.
	client := openai.NewClient()
	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	provider := llm.NewOpenAIProvider(client, cfg.ChatModel, timeout, log)
	transcriber := speech.NewWhisperTranscriber(client, cfg.TranscribeModel, timeout, log)

	summarySvc := services.NewSummaryService(st, provider, log)
	router := api.NewRouter(api.Deps{
		Store:         st,
		Family:        services.NewFamilyService(st),
		Calendar:      services.NewCalendarService(st),
		Tasks:         services.NewTaskService(st),
		Lists:         services.NewListService(st),
		Meals:         services.NewMealService(st),
		Chat:          services.NewChatService(st, provider, cfg.ChatContextLimit, cfg.ChatHistoryLimit, log),
		Voice:         services.NewVoiceService(st, transcriber, log),
		Summary:       summarySvc,
		Notifications: services.NewNotificationService(st),
		Log:           log,
	})

	sched := scheduler.New(st, summarySvc, log)
	if err := sched.Start(cfg.DailyBriefSpec, cfg.WeeklyRecapSpec); err != nil {
		log.Error().Err(err).Msg("scheduler start failed")
		return err
	}
	defer sched.Stop()

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsProduction() {
		return logger.New("homebrain")
	}
	return logger.NewConsole("homebrain")
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
