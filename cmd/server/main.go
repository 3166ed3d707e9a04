package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/http/v1/routes"
	"github.com/portfolio/backend/internal/mail"
	appmiddleware "github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/platform/auth"
	"github.com/portfolio/backend/internal/platform/datastore"
	"github.com/portfolio/backend/internal/respond"
	contactsvc "github.com/portfolio/backend/internal/service/contact"
	portfoliosvc "github.com/portfolio/backend/internal/service/portfolio"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()
	cfg := config.Load()
	respond.Install(cfg.ExposeErrors())

	ctx := context.Background()
	clients, err := datastore.Connect(ctx, datastore.Config{
		ProjectID:       cfg.ProjectID,
		CredentialsFile: cfg.CredentialsFile,
	})
	if err != nil {
		appmiddleware.LogFatal(ctx, "datastore connect failed", err)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			appmiddleware.LogError(ctx, "datastore close error", err)
		}
	}()

	var mailer mail.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromName, cfg.FromAddress)
	} else {
		appmiddleware.LogWarn(ctx, "SENDGRID_API_KEY not set, contact notifications disabled")
	}
	notifier := mail.NewNotifier(mailer, cfg.OwnerAddress)

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.CORS(cfg.AllowedOrigins),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// Only safe behind a trusted reverse proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
	)

	humaCfg := huma.DefaultConfig("Portfolio API", Version)
	humaCfg.DocsPath = "/api-docs"
	if cfg.AdminAuth {
		humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			"bearerAuth": {
				Type:         "http",
				Scheme:       "bearer",
				BearerFormat: "JWT",
			},
		}
	}
	api := humachi.New(router, humaCfg)

	if cfg.AdminAuth {
		api.UseMiddleware(auth.NewMiddleware(api, auth.NewFirebaseVerifier(clients.Auth)))
	}

	routes.Register(api, routes.Deps{
		Contacts:  contactsvc.NewFirestoreStore(clients.Firestore),
		Portfolio: portfoliosvc.NewFirestoreStore(clients.Firestore),
		Notifier:  notifier,
		AdminAuth: cfg.AdminAuth,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(ctx, "server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(ctx, "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(ctx, "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appmiddleware.LogError(shutdownCtx, "server shutdown error", err)
	}
	appmiddleware.LogInfo(ctx, "server exited")
}
