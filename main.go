package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inventaris-lab-backend/docs"
	"inventaris-lab-backend/internal/alat"
	"inventaris-lab-backend/internal/bahan"
	"inventaris-lab-backend/internal/export"
	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/laporan"
	"inventaris-lab-backend/internal/peminjaman"
	"inventaris-lab-backend/internal/platform/archive"
	"inventaris-lab-backend/internal/platform/auth"
	"inventaris-lab-backend/internal/platform/config"
	"inventaris-lab-backend/internal/platform/db"
	"inventaris-lab-backend/internal/platform/logger"
	"inventaris-lab-backend/internal/platform/metrics"
	"inventaris-lab-backend/internal/platform/middleware"
	"inventaris-lab-backend/internal/seed"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config")
	seedDir := flag.String("seed", "", "import alat.json, bahan.json and peminjaman.json from this directory into an empty database")
	flag.Parse()

	if err := run(*configPath, *seedDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, seedDir string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Info("starting", "version", cfg.Version, "mode", cfg.Mode, "driver", cfg.DB.Driver)

	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.ApplySchema(ctx, conn); err != nil {
		return err
	}

	if seedDir == "" {
		seedDir = cfg.Seed.Dir
	}
	if seedDir != "" {
		if err := importSeed(ctx, conn, seedDir, log); err != nil {
			return err
		}
	}

	store, err := archive.Open(ctx, cfg.Export)
	if err != nil {
		return err
	}

	authSvc := auth.NewService(conn, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if created, err := authSvc.EnsureBootstrap(ctx, cfg.Auth.BootstrapAdmin, cfg.Auth.BootstrapPassword); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	} else if created {
		log.Info("bootstrap admin created", "id", cfg.Auth.BootstrapAdmin)
	}

	r := newRouter(cfg, conn, store, authSvc, metrics.New(), log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLS() {
			log.Info("listening", "addr", srv.Addr, "tls", true)
			err = srv.ListenAndServeTLS(cfg.Certificate.Cert, cfg.Certificate.Key)
		} else {
			log.Info("listening", "addr", srv.Addr, "tls", false)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func importSeed(ctx context.Context, conn *db.Conn, dir string, log *logger.Logger) error {
	st, err := seed.Load(dir)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	res, err := seed.Import(ctx, conn, st, inventory.RealClock{}, inventory.NewULIDGen())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if res.Skipped {
		log.Info("seed skipped, database not empty", "dir", dir)
		return nil
	}
	log.Info("seed imported", "dir", dir, "alat", res.Tools, "bahan", res.Materials, "peminjaman", res.Loans)
	return nil
}

func newRouter(cfg *config.Config, conn *db.Conn, store archive.Store, authSvc *auth.Service, m *metrics.Metrics, log *logger.Logger) *gin.Engine {
	if cfg.Mode == config.ModeRelease {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log), middleware.Metrics(m))
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == config.ModeDev {
		// CORS is only needed while the frontend runs on its own dev server.
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-Id"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
		docs.SwaggerInfo.Version = cfg.Version
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	exp := export.New(store, log).WithRecorder(m)
	guard := auth.Guard(cfg.Auth.Enabled, authSvc.Secret())

	api := r.Group("/api")
	auth.RegisterRoutes(api, authSvc)
	alat.RegisterRoutes(api, alat.NewService(conn), exp, guard)
	bahan.RegisterRoutes(api, bahan.NewService(conn), exp, guard)
	peminjaman.RegisterRoutes(api, peminjaman.NewService(conn).WithObserver(m), exp, guard)
	laporan.RegisterRoutes(api, laporan.NewService(conn), exp)

	if cfg.Server.StaticDir != "" {
		r.NoRoute(spaHandler(os.DirFS(cfg.Server.StaticDir)))
	}
	return r
}
