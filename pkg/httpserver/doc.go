// Package httpserver runs the operational HTTP endpoints of the service:
// liveness and readiness probes plus prometheus metrics. The service itself
// has no request-serving surface; everything it does is driven by
// change-stream events.
package httpserver
