package watcher

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/swapmarket/pushrelay/pkg/logger"
	"github.com/swapmarket/pushrelay/pkg/notifier"
)

// Config tunes the change-stream consumer.
type Config struct {
	MaxConcurrentEvents int           `env:"WATCHER_MAX_CONCURRENT_EVENTS" envDefault:"16"`   // MaxConcurrentEvents bounds in-flight event handlers per process.
	ReopenInterval      time.Duration `env:"WATCHER_REOPEN_INTERVAL" envDefault:"5s"`         // ReopenInterval is the pause before reopening a broken stream.
}

// Dispatcher handles one change event; implemented by notifier.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev notifier.ChangeEvent) notifier.Outcome
}

// target binds a collection to the entity kind and operations it emits.
type target struct {
	collection string
	kind       notifier.EntityKind
	operations []string
}

// Watched collections: notification creates plus order and trade offer
// updates, mirroring the marketplace's write patterns.
var targets = []target{
	{collection: "notifications", kind: notifier.KindNotification, operations: []string{"insert"}},
	{collection: "orders", kind: notifier.KindOrder, operations: []string{"update", "replace"}},
	{collection: "tradeOffers", kind: notifier.KindTradeOffer, operations: []string{"update", "replace"}},
}

// Watcher consumes the marketplace collections' change streams and hands each
// event to the dispatcher on its own goroutine, bounded by a semaphore.
type Watcher struct {
	db         *mongo.Database
	dispatcher Dispatcher
	logger     *slog.Logger
	cfg        Config
	sem        chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the watcher logger, ignoring nil.
func WithLogger(log *slog.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.logger = log
		}
	}
}

// New creates a watcher over the given database and dispatcher.
func New(db *mongo.Database, dispatcher Dispatcher, cfg Config, opts ...Option) *Watcher {
	if cfg.MaxConcurrentEvents <= 0 {
		cfg.MaxConcurrentEvents = 1
	}
	if cfg.ReopenInterval <= 0 {
		cfg.ReopenInterval = 5 * time.Second
	}

	w := &Watcher{
		db:         db,
		dispatcher: dispatcher,
		logger:     slog.Default(),
		cfg:        cfg,
		sem:        make(chan struct{}, cfg.MaxConcurrentEvents),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches all collections until the context is cancelled. A broken stream
// is reopened after the configured interval; a handler outcome never stops a
// stream.
func (w *Watcher) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error { return w.watch(ctx, t) })
	}
	return g.Wait()
}

func (w *Watcher) watch(ctx context.Context, t target) error {
	log := w.logger.With(logger.Component("watcher"), logger.Collection(t.collection))

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: bson.D{{Key: "$in", Value: t.operations}}},
		}}},
	}
	streamOpts := options.ChangeStream().
		SetFullDocument(options.UpdateLookup).
		SetFullDocumentBeforeChange(options.WhenAvailable)

	for {
		stream, err := w.db.Collection(t.collection).Watch(ctx, pipeline, streamOpts)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.ErrorContext(ctx, "failed to open change stream", logger.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.cfg.ReopenInterval):
			}
			continue
		}

		log.InfoContext(ctx, "change stream open")
		w.consume(ctx, log, t, stream)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		log.WarnContext(ctx, "change stream closed, reopening")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.cfg.ReopenInterval):
		}
	}
}

// consume drains one open stream until it breaks or the context ends.
func (w *Watcher) consume(ctx context.Context, log *slog.Logger, t target, stream *mongo.ChangeStream) {
	defer func() {
		_ = stream.Close(context.Background())
	}()

	for stream.Next(ctx) {
		ev, err := decodeEvent(t.kind, stream.Current)
		if err != nil {
			log.ErrorContext(ctx, "dropping undecodable change event", logger.Error(err))
			continue
		}

		select {
		case w.sem <- struct{}{}:
		case <-ctx.Done():
			return
		}
		go func() {
			defer func() { <-w.sem }()
			outcome := w.dispatcher.Dispatch(ctx, ev)
			log.DebugContext(ctx, "change event handled",
				logger.EntityID(ev.EntityID),
				logger.Outcome(string(outcome)),
			)
		}()
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.ErrorContext(ctx, "change stream error", logger.Error(err))
	}
}
