package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wortlab/deutschtext/internal/adapter/postgres"
	"github.com/wortlab/deutschtext/internal/adapter/postgres/entry"
	"github.com/wortlab/deutschtext/internal/adapter/postgres/exposure"
	"github.com/wortlab/deutschtext/internal/adapter/postgres/extractedword"
	"github.com/wortlab/deutschtext/internal/adapter/postgres/practiced"
	"github.com/wortlab/deutschtext/internal/adapter/postgres/savedtext"
	"github.com/wortlab/deutschtext/internal/adapter/postgres/user"
	"github.com/wortlab/deutschtext/internal/adapter/provider/translate"
	"github.com/wortlab/deutschtext/internal/auth"
	"github.com/wortlab/deutschtext/internal/config"
	"github.com/wortlab/deutschtext/internal/paradigm"
	authsvc "github.com/wortlab/deutschtext/internal/service/auth"
	"github.com/wortlab/deutschtext/internal/service/texts"
	"github.com/wortlab/deutschtext/internal/service/vocabulary"
	"github.com/wortlab/deutschtext/internal/textproc"
	"github.com/wortlab/deutschtext/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, runs migrations when enabled, wires the
// processing pipeline and services, and serves HTTP until ctx is
// cancelled. Shutdown is graceful within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	store, err := loadParadigms(cfg.Paradigm)
	if err != nil {
		return err
	}
	logger.Info("paradigm bundle loaded", slog.Int("entries", store.Len()))

	txm := postgres.NewTxManager(pool)
	userRepo := user.New(pool)
	entryRepo := entry.New(pool)
	textRepo := savedtext.New(pool)
	wordRepo := extractedword.New(pool)
	practicedRepo := practiced.New(pool)
	exposureRepo := exposure.New(pool)

	processor := textproc.NewProcessor(logger, store, exposureRepo, translate.NewStub())

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, jwtManager, cfg.Auth)
	textsService := texts.NewService(logger, processor, textRepo, wordRepo, entryRepo, txm)
	vocabService := vocabulary.NewService(logger, wordRepo, practicedRepo, entryRepo, store)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		CORS:       cfg.CORS,
		Tokens:     jwtManager,
		Auth:       rest.NewAuthHandler(authService, logger),
		Texts:      rest.NewTextsHandler(textsService, logger),
		Vocabulary: rest.NewVocabularyHandler(vocabService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func loadParadigms(cfg config.ParadigmConfig) (*paradigm.Store, error) {
	if cfg.BundlePath != "" {
		return paradigm.LoadFile(cfg.BundlePath)
	}
	return paradigm.Default()
}
