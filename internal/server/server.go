package server

import (
	"context"
	"errors"
	"net/http"

	"apparelstore/internal/config"
	"apparelstore/internal/handler"
	"apparelstore/internal/logger"
	"apparelstore/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// New はミドルウェアとルートを組み立てたechoを返す（起動はしない）
func New(cfg config.Config, gdb *gorm.DB, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.JSONSerializer = jsoniterSerializer{}
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(cfg.ProblemBaseURL, log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))

	RegisterRoutes(e, gdb)
	return e
}

// Run はctxが終わるまで待ち受け、終わったらShutdownTimeout内で止める
func Run(ctx context.Context, e *echo.Echo, cfg config.Config, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Addr(), "env", cfg.GoEnv)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
