package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the recipient user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// EntityKind records the changed entity's kind under the key "entity_kind".
func EntityKind(kind string) slog.Attr {
	return slog.String("entity_kind", kind)
}

// EntityID records the changed entity's identifier under the key "entity_id".
func EntityID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("entity_id", id)
}

// Status records an entity status under the key "status".
func Status(status string) slog.Attr {
	return slog.String("status", status)
}

// Outcome records a dispatch outcome under the key "outcome".
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// AttemptID records the delivery attempt identifier under the key "attempt_id".
func AttemptID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("attempt_id", id)
}

// Collection records a document-store collection name under the key "collection".
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// MessageID records the push transport's response identifier under the key
// "message_id".
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}
