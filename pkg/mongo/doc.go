// Package mongo manages the connection to the document store that holds the
// marketplace collections (notifications, orders, tradeOffers, user-info).
//
// Configuration is environment-driven; the client retries the initial
// connection so the service survives the store starting up after it. The
// Healthcheck helper plugs into the ops HTTP server's readiness probe.
package mongo
