// Package redis connects to the Redis server backing the delivery
// deduplication guard.
//
// Connect retries with a configurable interval so the service tolerates Redis
// starting after it; Healthcheck plugs into the ops server's readiness probe.
package redis
