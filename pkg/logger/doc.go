// Package logger builds configured log/slog loggers for the service.
//
// It provides a factory with functional options (format, level, static
// attributes, per-environment presets) plus a handler decorator that injects
// attributes extracted from context on every log call, which keeps
// request-scoped values like delivery attempt ids out of call sites.
//
// The attr helpers define the canonical keys used across the codebase
// (user_id, entity_id, status, outcome, ...) so log aggregation queries stay
// stable.
package logger
