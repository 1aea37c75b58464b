// Package dedup is the delivery idempotency guard. The trigger infrastructure
// guarantees at-least-once event delivery, so the same logical change can be
// handled more than once; this guard remembers which deliveries already
// happened and lets the dispatcher suppress the repeats.
//
// The guard is advisory: the dispatcher fails open when Redis is unavailable,
// preferring an occasional duplicate notification over a missed one.
package dedup
