package notifier

// Intent is a fully decided notification: who receives it and what it says.
// Data values are all strings so the receiving client can route the tap
// action without type juggling.
type Intent struct {
	RecipientID string
	Title       string
	Body        string
	Data        map[string]string
}

// NoActionReason explains why a change event produced no notification.
type NoActionReason string

const (
	// NoActionStatusUnchanged means the update touched other fields but not
	// the status; notifying would be a spurious re-trigger.
	NoActionStatusUnchanged NoActionReason = "status_unchanged"

	// NoActionStatusUnmapped means the new status has no entry in the
	// transition table.
	NoActionStatusUnmapped NoActionReason = "status_unmapped"
)

// Decision is the policy result for a status change: either an Intent or an
// explicit no-action with the reason. Modeled as a sum rather than a nil
// sentinel so callers must acknowledge both arms.
type Decision struct {
	Intent   *Intent
	NoAction NoActionReason
}

// Actionable reports whether the decision carries an intent to deliver.
func (d Decision) Actionable() bool { return d.Intent != nil }

func notify(i Intent) Decision           { return Decision{Intent: &i} }
func noAction(r NoActionReason) Decision { return Decision{NoAction: r} }

// Outcome is the terminal result of handling one change event. Skips are
// expected outcomes, not errors.
type Outcome string

const (
	OutcomeDelivered       Outcome = "delivered"
	OutcomeStatusUnchanged Outcome = "skipped_status_unchanged"
	OutcomeStatusUnmapped  Outcome = "skipped_status_unmapped"
	OutcomeNoDevice        Outcome = "skipped_no_device"
	OutcomeDuplicate       Outcome = "skipped_duplicate"
	OutcomeFailed          Outcome = "failed"
)
