package httpapi

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// NewLogger builds the JSON logger used by the server.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("service", "sales-bonus").Logger()
}

// Serve runs the HTTP server until ctx is cancelled.
func Serve(ctx context.Context, cfg types.ServerConfig, builder ReportBuilder, logger zerolog.Logger) error {
	h := NewHandler(builder, logger, cfg)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.Routes(cfg.RateLimit),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
