// Package watcher is the event source of the service: it consumes MongoDB
// change streams for the marketplace collections and feeds each change event
// to the notifier dispatcher.
//
// Each collection gets its own stream; events are handled concurrently on
// short-lived goroutines bounded by a semaphore. The watcher never retries a
// handled event — redelivery semantics belong to the stream (resume after
// reopen) — and a broken stream is reopened for as long as the context lives.
package watcher
