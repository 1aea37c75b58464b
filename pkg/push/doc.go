// Package push adapts Firebase Cloud Messaging to the notifier's Sender
// interface. The domain layer hands over a title, body and flat string data
// map; this package attaches the static platform hints (priority, channel,
// sound, badge, click action) and performs the single delivery call.
//
// Delivery retries are FCM's concern, not ours: a send either succeeds with a
// message id or fails with ErrSend.
package push
