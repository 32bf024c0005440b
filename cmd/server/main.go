package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/fashion-trend-analysis/internal/config"
	"github.com/iliyamo/fashion-trend-analysis/internal/database"
	"github.com/iliyamo/fashion-trend-analysis/internal/handler"
	"github.com/iliyamo/fashion-trend-analysis/internal/logging"
	"github.com/iliyamo/fashion-trend-analysis/internal/queue"
	"github.com/iliyamo/fashion-trend-analysis/internal/repository"
	"github.com/iliyamo/fashion-trend-analysis/internal/router"
	"github.com/iliyamo/fashion-trend-analysis/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log := logging.New(cfg.LogLevel, cfg.IsDev())

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DB)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer db.Close()

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Warn("redis unavailable; rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	var (
		events   service.EventPublisher = service.NopPublisher{}
		consumer *queue.Consumer
	)
	if cfg.Events.Enabled {
		audit, err := queue.OpenAuditLog(cfg.Events.AuditLog)
		if err != nil {
			return err
		}
		defer audit.Close()
		events = queue.NewPublisher(cfg.Events.URL, cfg.Events.Queue, log)
		consumer = queue.NewConsumer(cfg.Events.URL, cfg.Events.Queue, audit, log)
	}

	categories := repository.NewCategoryRepo(db)
	designers := repository.NewDesignerRepo(db)
	products := repository.NewProductRepo(db)
	trends := repository.NewTrendRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	analysis := repository.NewAnalysisRepo(db)

	authSvc := service.NewAuthService(users, tokens, service.AuthConfig{
		JWTSecret:      cfg.Auth.JWTSecret,
		AccessTTL:      cfg.Auth.AccessTTL(),
		RefreshTTLDays: cfg.Auth.RefreshTTLDays,
		BcryptCost:     cfg.Auth.BcryptCost,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e := router.New(cfg, log, rdb, reg, router.Handlers{
		Health:   handler.Health(db),
		Auth:     handler.NewAuthHandler(authSvc, cfg.Auth.JWTSecret),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categories, events, log)),
		Designer: handler.NewDesignerHandler(service.NewDesignerService(designers)),
		Product:  handler.NewProductHandler(service.NewProductService(products, events, log)),
		Trend:    handler.NewTrendHandler(service.NewTrendService(trends, events, log)),
		Analysis: handler.NewAnalysisHandler(service.NewAnalysisService(analysis)),
		User:     handler.NewUserHandler(service.NewUserService(users, cfg.Auth.BcryptCost)),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := ":" + cfg.Port
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		purgeTokens(gctx, tokens, log)
		return nil
	})

	if consumer != nil {
		g.Go(func() error { return consumer.Run(gctx) })
	}

	return g.Wait()
}

// purgeTokens drops expired and revoked refresh tokens once an hour
// until ctx is done.
func purgeTokens(ctx context.Context, tokens *repository.TokenRepo, log logrus.FieldLogger) {
	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := tokens.PurgeExpired(ctx, time.Now().UTC().Add(-24*time.Hour))
			if err != nil {
				log.WithError(err).Warn("refresh token purge failed")
				continue
			}
			if n > 0 {
				log.WithField("rows", n).Info("purged refresh tokens")
			}
		}
	}
}
