package notifier

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/swapmarket/pushrelay/pkg/logger"
)

// TokenResolver maps a user id to a deliverable device token. An empty token
// with a nil error means the user has no registered device; that is an
// expected outcome, not a failure.
type TokenResolver interface {
	Resolve(ctx context.Context, userID string) (string, error)
}

// Sender delivers one push notification to a device token and returns the
// transport's opaque message id, used only for logging.
type Sender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}

// DedupGuard suppresses repeat deliveries when the trigger infrastructure
// redelivers the same logical change. Guard failures never block delivery.
type DedupGuard interface {
	Seen(ctx context.Context, key string) (bool, error)
	MarkDelivered(ctx context.Context, key string) error
}

// Dispatcher orchestrates the event-to-notification pipeline: policy or
// payload builder, recipient resolution, then a single delivery call. It
// holds no mutable state, so concurrent invocations need no coordination and
// handling the same event twice yields the same decision.
type Dispatcher struct {
	resolver TokenResolver
	sender   Sender
	guard    DedupGuard
	metrics  *Metrics
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the dispatcher logger, ignoring nil.
func WithLogger(log *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if log != nil {
			d.logger = log
		}
	}
}

// WithDedupGuard enables delivery deduplication.
func WithDedupGuard(guard DedupGuard) DispatcherOption {
	return func(d *Dispatcher) { d.guard = guard }
}

// WithMetrics enables outcome counters.
func WithMetrics(m *Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher creates a dispatcher over the given resolver and sender.
func NewDispatcher(resolver TokenResolver, sender Sender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		resolver: resolver,
		sender:   sender,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch routes a change event to the handler for its entity kind. Errors
// are logged with entity and recipient context and never propagated: retrying
// is the job of the event-delivery infrastructure, and a handler error must
// not leak into another invocation.
func (d *Dispatcher) Dispatch(ctx context.Context, ev ChangeEvent) Outcome {
	var (
		outcome Outcome
		err     error
	)

	switch ev.Kind {
	case KindNotification:
		outcome, err = d.HandleNotificationCreated(ctx, ev)
	case KindOrder:
		outcome, err = d.HandleOrderStatusChanged(ctx, ev)
	case KindTradeOffer:
		outcome, err = d.HandleTradeOfferStatusChanged(ctx, ev)
	default:
		outcome, err = OutcomeFailed, ErrUnsupportedKind
	}

	d.metrics.ObserveOutcome(ev.Kind, outcome)
	if err != nil {
		d.logger.ErrorContext(ctx, "event handling failed",
			logger.EntityKind(string(ev.Kind)),
			logger.EntityID(ev.EntityID),
			logger.Error(err),
		)
	}
	return outcome
}

// HandleNotificationCreated reacts to a new notification record.
func (d *Dispatcher) HandleNotificationCreated(ctx context.Context, ev ChangeEvent) (Outcome, error) {
	var doc NotificationDoc
	if err := ev.DecodeAfter(&doc); err != nil {
		return OutcomeFailed, err
	}

	intent := IntentFromCreatedNotification(ev.EntityID, doc)

	// The record id is unique per logical notification, so it doubles as the
	// idempotency key.
	return d.deliver(ctx, ev, intent, "notification:"+ev.EntityID)
}

// HandleOrderStatusChanged reacts to an order update.
func (d *Dispatcher) HandleOrderStatusChanged(ctx context.Context, ev ChangeEvent) (Outcome, error) {
	var before, after OrderSnapshot
	if err := ev.DecodeBefore(&before); err != nil {
		return OutcomeFailed, err
	}
	if err := ev.DecodeAfter(&after); err != nil {
		return OutcomeFailed, err
	}

	decision := DecideOrder(ev.EntityID, before, after)
	if !decision.Actionable() {
		d.logNoAction(ctx, ev, after.Status, decision.NoAction)
		return skipOutcome(decision.NoAction), nil
	}

	return d.deliver(ctx, ev, *decision.Intent, "order:"+ev.EntityID+":"+after.Status)
}

// HandleTradeOfferStatusChanged reacts to a trade offer update.
func (d *Dispatcher) HandleTradeOfferStatusChanged(ctx context.Context, ev ChangeEvent) (Outcome, error) {
	var before, after TradeOfferSnapshot
	if err := ev.DecodeBefore(&before); err != nil {
		return OutcomeFailed, err
	}
	if err := ev.DecodeAfter(&after); err != nil {
		return OutcomeFailed, err
	}

	decision := DecideTradeOffer(ev.EntityID, before, after)
	if !decision.Actionable() {
		d.logNoAction(ctx, ev, after.Status, decision.NoAction)
		return skipOutcome(decision.NoAction), nil
	}

	return d.deliver(ctx, ev, *decision.Intent, "tradeOffer:"+ev.EntityID+":"+after.Status)
}

// deliver resolves the recipient and performs the single delivery call.
func (d *Dispatcher) deliver(ctx context.Context, ev ChangeEvent, intent Intent, dedupKey string) (Outcome, error) {
	attemptID := uuid.NewString()

	if d.guard != nil {
		seen, err := d.guard.Seen(ctx, dedupKey)
		if err != nil {
			// Fail open: a broken guard must not block delivery.
			d.logger.WarnContext(ctx, "dedup guard lookup failed, delivering anyway",
				logger.EntityID(ev.EntityID),
				logger.Error(err),
			)
		} else if seen {
			d.logger.InfoContext(ctx, "duplicate event, delivery suppressed",
				logger.EntityKind(string(ev.Kind)),
				logger.EntityID(ev.EntityID),
				logger.UserID(intent.RecipientID),
			)
			return OutcomeDuplicate, nil
		}
	}

	token, err := d.resolver.Resolve(ctx, intent.RecipientID)
	if err != nil {
		return OutcomeFailed, errors.Join(ErrResolveRecipient, err)
	}
	if token == "" {
		d.logger.InfoContext(ctx, "no deliverable device for recipient",
			logger.EntityKind(string(ev.Kind)),
			logger.EntityID(ev.EntityID),
			logger.UserID(intent.RecipientID),
		)
		return OutcomeNoDevice, nil
	}

	messageID, err := d.sender.Send(ctx, token, intent.Title, intent.Body, intent.Data)
	if err != nil {
		d.metrics.ObserveDeliveryFailure(ev.Kind)
		return OutcomeFailed, errors.Join(ErrDeliver, err)
	}

	if d.guard != nil {
		if err := d.guard.MarkDelivered(ctx, dedupKey); err != nil {
			d.logger.WarnContext(ctx, "failed to record delivery for dedup",
				logger.EntityID(ev.EntityID),
				logger.Error(err),
			)
		}
	}

	d.logger.InfoContext(ctx, "push notification delivered",
		logger.EntityKind(string(ev.Kind)),
		logger.EntityID(ev.EntityID),
		logger.UserID(intent.RecipientID),
		logger.AttemptID(attemptID),
		logger.MessageID(messageID),
	)
	return OutcomeDelivered, nil
}

func (d *Dispatcher) logNoAction(ctx context.Context, ev ChangeEvent, status string, reason NoActionReason) {
	d.logger.DebugContext(ctx, "status change produced no notification",
		logger.EntityKind(string(ev.Kind)),
		logger.EntityID(ev.EntityID),
		logger.Status(status),
		slog.String("reason", string(reason)),
	)
}

func skipOutcome(reason NoActionReason) Outcome {
	if reason == NoActionStatusUnchanged {
		return OutcomeStatusUnchanged
	}
	return OutcomeStatusUnmapped
}
