package push

import (
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() Config {
	return Config{
		AndroidChannelID: "high_importance_channel",
		Sound:            "default",
		Badge:            1,
		ClickAction:      "FLUTTER_NOTIFICATION_CLICK",
	}
}

func TestNewMessage(t *testing.T) {
	t.Run("carries notification and platform hints", func(t *testing.T) {
		msg := newMessage("tok-1", "Order Shipped", "Your order has been shipped!", map[string]string{
			"type":    "orderUpdate",
			"orderId": "o-1",
			"status":  "shipped",
		}, defaultTestConfig())

		assert.Equal(t, "tok-1", msg.Token)
		require.NotNil(t, msg.Notification)
		assert.Equal(t, "Order Shipped", msg.Notification.Title)
		assert.Equal(t, "Your order has been shipped!", msg.Notification.Body)

		require.NotNil(t, msg.Android)
		assert.Equal(t, "high", msg.Android.Priority)
		require.NotNil(t, msg.Android.Notification)
		assert.Equal(t, "high_importance_channel", msg.Android.Notification.ChannelID)
		assert.Equal(t, "default", msg.Android.Notification.Sound)
		assert.Equal(t, messaging.PriorityHigh, msg.Android.Notification.Priority)

		require.NotNil(t, msg.APNS)
		require.NotNil(t, msg.APNS.Payload)
		require.NotNil(t, msg.APNS.Payload.Aps)
		assert.Equal(t, "default", msg.APNS.Payload.Aps.Sound)
		require.NotNil(t, msg.APNS.Payload.Aps.Badge)
		assert.Equal(t, 1, *msg.APNS.Payload.Aps.Badge)
	})

	t.Run("merges click action without mutating input", func(t *testing.T) {
		data := map[string]string{"type": "general"}
		msg := newMessage("tok-1", "t", "b", data, defaultTestConfig())

		assert.Equal(t, "FLUTTER_NOTIFICATION_CLICK", msg.Data["clickAction"])
		assert.Equal(t, "general", msg.Data["type"])
		assert.NotContains(t, data, "clickAction")
	})

	t.Run("empty click action stays absent", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.ClickAction = ""

		msg := newMessage("tok-1", "t", "b", nil, cfg)
		assert.NotContains(t, msg.Data, "clickAction")
	})
}
