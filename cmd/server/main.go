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

	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/config"
	"github.com/Sujithrababu/attendance-system/internal/api/handler"
	"github.com/Sujithrababu/attendance-system/internal/api/router"
	"github.com/Sujithrababu/attendance-system/internal/facerec"
	"github.com/Sujithrababu/attendance-system/internal/filestore"
	"github.com/Sujithrababu/attendance-system/internal/ocr"
	"github.com/Sujithrababu/attendance-system/internal/repository"
	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/database"
	"github.com/Sujithrababu/attendance-system/pkg/jwt"
	"github.com/Sujithrababu/attendance-system/pkg/logger"
	"github.com/Sujithrababu/attendance-system/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Redis powers the token blacklist and login rate limiting; the API
	// degrades gracefully without it.
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("redis unavailable, blacklist and rate limiting disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	store, err := filestore.NewStore(cfg.Upload.Dir, cfg.Upload.Extensions)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	extractor := ocr.NewExtractor(
		ocr.NewTesseractEngine(cfg.OCR.Language),
		ocr.NewPopplerRenderer(cfg.OCR.Pdftoppm),
		cfg.OCR.WorkDir,
		log,
	)

	repo := repository.NewRepository(db)

	var matcher facerec.Matcher
	if cfg.Face.Mock {
		matcher = facerec.NewMockMatcher(repository.NewGallery(repo.User))
	} else {
		return fmt.Errorf("face.mock=false requires an external matcher, none configured")
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, matcher, extractor, store, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Auth.EnsureDefaultAdmin(ctx); err != nil {
		return fmt.Errorf("ensure default admin: %w", err)
	}

	h := handler.NewHandler(svc, log)
	engine := router.New(cfg, h, jwtMgr, rdb, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
