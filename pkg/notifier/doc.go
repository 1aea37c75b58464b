// Package notifier holds the event-to-notification decision logic: given a
// document change event, decide whether a notification fires, who receives
// it, and what it says.
//
// The pipeline per event is linear with two early exits:
//
//	change event → policy (updates) or payload builder (creates)
//	            → recipient resolution → single delivery call
//
// Status transitions are table-driven (see policy.go); an unchanged or
// unmapped status and an unresolvable recipient are expected no-ops, not
// errors. The dispatcher reads immutable snapshots and mutates nothing, so it
// is naturally idempotent for identical input; an optional DedupGuard
// additionally suppresses repeat deliveries when the trigger infrastructure
// redelivers an event.
package notifier
