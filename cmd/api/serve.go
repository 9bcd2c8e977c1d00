package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/01moynul/autoshop-golang/internal/auth"
	"github.com/01moynul/autoshop-golang/internal/email"
	"github.com/01moynul/autoshop-golang/internal/handlers"
	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/01moynul/autoshop-golang/internal/routes"
	"github.com/01moynul/autoshop-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	// 1. --- Database Connection ---
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AdminPasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}
	mailer := email.NewMailer(cfg.SMTP, logger)
	if !mailer.Enabled() {
		logger.Warn("SMTP_HOST is not set, notifications will only be logged")
	}

	// 2. --- Application Setup ---
	app := &handlers.Handlers{
		Store:         store.New(db, logger),
		Notifier:      mailer,
		Tokens:        auth.NewIssuer(cfg.JWTSecret),
		AdminPassword: models.Password{Hash: cfg.AdminPasswordHash},
		UploadDir:     cfg.UploadDir,
		BaseURL:       cfg.BaseURL,
		Logger:        logger,
	}

	// 3. --- Router Setup ---
	router := routes.SetupRouter(app, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 4. --- Start Server ---
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting autoshop API server", "port", cfg.Port)
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

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
