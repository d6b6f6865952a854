package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	admin "late-rooms/internal/adminService"
	"late-rooms/internal/backend"
	bidding "late-rooms/internal/biddingService"
	"late-rooms/internal/config"
	"late-rooms/internal/repository"
	"late-rooms/internal/server"
	"late-rooms/internal/session"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.Log.Level, cfg.Log.Format)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := backend.New(ctx, cfg.Backend)
	if err != nil {
		utils.Fatal("failed to connect to backend", map[string]any{"mode": cfg.Backend.Mode, "error": err.Error()})
	}
	defer client.Close()

	loc := cfg.Location()
	repo := newRepository(cfg, client, loc)

	router, err := server.SetupRouter(server.Dependencies{
		Market:               bidding.NewBiddingService(repo, bidding.WithLocation(loc)),
		Portal:               admin.NewAdminService(client.Auth, repo, admin.WithLocation(loc)),
		Auth:                 client.Auth,
		Rooms:                repo,
		Sessions:             session.NewStore(cfg.Session.Secret, !cfg.IsDevelopment(), cfg.Session.MaxAge.Duration),
		Location:             loc,
		SuccessRedirectDelay: cfg.Admin.SuccessRedirectDelay.Duration,
	})
	if err != nil {
		utils.Fatal("failed to set up router", map[string]any{"error": err.Error()})
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("Starting Late Rooms server", map[string]any{
			"addr":         srv.Addr,
			"environment":  cfg.Environment,
			"backend_mode": cfg.Backend.Mode,
			"timezone":     loc.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}

// newRepository picks the store for the backend mode. Memory mode is seeded
// with demo listings and the demo accounts that own them.
func newRepository(cfg config.Config, client *backend.Client, loc *time.Location) repository.Store {
	if cfg.Backend.Mode == config.ModePostgres {
		return repository.NewPostgresRepo(client.DB)
	}

	repo := repository.NewMemoryRepo()
	repo.SeedDemo(time.Now(), loc)

	if auth, ok := client.Auth.(*backend.MemoryAuth); ok {
		auth.AddUser(repository.DemoPartnerUser, repository.DemoPartnerEmail, repository.DemoPassword, "Eleanor Price")
		auth.AddUser(repository.DemoCustomerID, repository.DemoCustomerEmail, repository.DemoPassword, "Demo Guest")
	}
	utils.Info("memory backend seeded with demo data", map[string]any{
		"partner_login":  repository.DemoPartnerEmail,
		"customer_login": repository.DemoCustomerEmail,
	})
	return repo
}
