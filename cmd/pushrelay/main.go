package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/swapmarket/pushrelay/pkg/config"
	"github.com/swapmarket/pushrelay/pkg/dedup"
	"github.com/swapmarket/pushrelay/pkg/httpserver"
	"github.com/swapmarket/pushrelay/pkg/logger"
	"github.com/swapmarket/pushrelay/pkg/mongo"
	"github.com/swapmarket/pushrelay/pkg/notifier"
	"github.com/swapmarket/pushrelay/pkg/profile"
	"github.com/swapmarket/pushrelay/pkg/push"
	"github.com/swapmarket/pushrelay/pkg/redis"
	"github.com/swapmarket/pushrelay/pkg/watcher"
)

type appConfig struct {
	Name        string `env:"APP_NAME" envDefault:"pushrelay"`
	Environment string `env:"APP_ENV" envDefault:"development"`
}

// main wires the process: config, logger, store and transport clients, then
// the watcher and the ops HTTP server under one errgroup. Decision logic
// lives in pkg/notifier.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		appCfg     appConfig
		mongoCfg   mongo.Config
		redisCfg   redis.Config
		dedupCfg   dedup.Config
		pushCfg    push.Config
		watcherCfg watcher.Config
		httpCfg    httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&dedupCfg)
	config.MustLoad(&pushCfg)
	config.MustLoad(&watcherCfg)
	config.MustLoad(&httpCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Environment, appCfg.Name))
	logger.SetAsDefault(log)

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	sender, err := push.New(ctx, pushCfg)
	if err != nil {
		return err
	}

	dispatcherOpts := []notifier.DispatcherOption{
		notifier.WithLogger(log),
		notifier.WithMetrics(notifier.NewMetrics()),
	}
	checks := []func(context.Context) error{mongo.Healthcheck(db.Client())}

	if dedupCfg.Enabled {
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = rdb.Close()
		}()
		dispatcherOpts = append(dispatcherOpts, notifier.WithDedupGuard(dedup.New(rdb, dedupCfg)))
		checks = append(checks, redis.Healthcheck(rdb))
	}

	dispatcher := notifier.NewDispatcher(profile.NewStore(db), sender, dispatcherOpts...)
	events := watcher.New(db, dispatcher, watcherCfg, watcher.WithLogger(log))
	ops := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))

	log.InfoContext(ctx, "starting", logger.Component(appCfg.Name))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return events.Run(ctx) })
	g.Go(func() error { return ops.Run(ctx, httpserver.OpsRouter(log, checks...)) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("service terminated", logger.Error(err))
		return err
	}

	log.Info("service stopped")
	return nil
}
