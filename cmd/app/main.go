package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/pergola-planner/internal/catalog"
	"github.com/wichananm65/pergola-planner/internal/content"
	"github.com/wichananm65/pergola-planner/internal/infrastructure/config"
	"github.com/wichananm65/pergola-planner/internal/infrastructure/logger"
	"github.com/wichananm65/pergola-planner/internal/infrastructure/metrics"
	"github.com/wichananm65/pergola-planner/internal/option"
	"github.com/wichananm65/pergola-planner/internal/planner"
	"github.com/wichananm65/pergola-planner/internal/recommend"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log configuration: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := buildRepository(cfg, log)
	if err != nil {
		log.Fatal("catalog unavailable", zap.Error(err))
	}
	defer closeRepo()

	app, plannerService := buildApp(cfg, log, repo)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", zap.String("addr", cfg.Addr))
		return app.Listen(cfg.Addr)
	})
	g.Go(func() error {
		plannerService.RunPruner(gctx, cfg.SessionMaxIdle, pruneInterval(cfg.SessionMaxIdle))
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.ShutdownWithTimeout(5 * time.Second)
	})
	if err := g.Wait(); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}

// plansPath prefixes the catalog admin routes, the only ones behind JWT.
const plansPath = "/api/v1/pergola/plans"

// buildApp wires handlers onto a new fiber app. Catalog writes registered
// after the JWT middleware need a bearer token; everything else is public.
func buildApp(cfg config.Config, log *zap.Logger, repo catalog.Repository) (*fiber.App, *planner.Service) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	setupCORS(app)
	app.Use(logger.Middleware(log))

	recorder := metrics.NewRecorder()
	recorder.RegisterRoutes(app)
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	pageCopy := content.Default(cfg.ViewAllURL, cfg.Disclaimer)
	catalogService := catalog.NewService(repo)
	recommendService := recommend.NewService(catalogService, recorder)
	plannerService := planner.NewService(planner.NewInMemoryStore(), recommendService, pageCopy,
		planner.WithObserver(recorder),
		planner.WithLogger(log.Named("planner")))

	catalogHandler := catalog.NewHandler(catalogService, cfg.AllowResetPlans)
	catalogHandler.RegisterPublicRoutes(app)
	content.NewHandler(pageCopy).RegisterPublicRoutes(app)
	option.NewHandler().RegisterPublicRoutes(app)
	recommend.NewHandler(recommendService, pageCopy).RegisterPublicRoutes(app)
	planner.NewHandler(plannerService).RegisterPublicRoutes(app)

	if cfg.JWTSecret != "" {
		app.Use(plansPath, jwtware.New(jwtware.Config{
			SigningKey: []byte(cfg.JWTSecret),
		}))
		catalogHandler.RegisterProtectedRoutes(app)
	} else {
		log.Warn("JWT secret not set; catalog admin routes disabled")
	}
	return app, plannerService
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// buildRepository picks the catalog source: Postgres when a database URL is
// set, else a YAML catalog file, else the built-in sample plans.
func buildRepository(cfg config.Config, log *zap.Logger) (catalog.Repository, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		db, err := openDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo := catalog.NewPostgresRepository(db)
		if err := repo.EnsureSchema(); err != nil {
			db.Close()
			return nil, nil, err
		}
		plans, err := repo.List()
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		if len(plans) == 0 {
			if err := repo.Reset(catalog.DefaultPlans()); err != nil {
				log.Warn("seeding plans failed", zap.Error(err))
			}
		}
		log.Info("catalog source", zap.String("kind", "postgres"))
		return repo, func() { db.Close() }, nil
	case cfg.CatalogFile != "":
		plans, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, nil, err
		}
		log.Info("catalog source", zap.String("kind", "file"),
			zap.String("path", cfg.CatalogFile), zap.Int("plans", len(plans)))
		return catalog.NewInMemoryRepository(plans), func() {}, nil
	default:
		log.Info("catalog source", zap.String("kind", "builtin"))
		return catalog.NewInMemoryRepository(catalog.DefaultPlans()), func() {}, nil
	}
}

func openDB(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// pruneInterval checks four times per idle window, at most once a second.
func pruneInterval(maxIdle time.Duration) time.Duration {
	return max(maxIdle/4, time.Second)
}
