package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swapmarket/pushrelay/pkg/notifier"
)

func TestIntentFromCreatedNotification(t *testing.T) {
	t.Run("all fields populated pass through", func(t *testing.T) {
		intent := notifier.IntentFromCreatedNotification("n-1", notifier.NotificationDoc{
			UserID:       "user-1",
			Title:        "Offer received",
			Message:      "Someone wants your bike",
			Type:         "tradeOffer",
			OrderID:      "order-9",
			TradeOfferID: "offer-3",
			FromUserID:   "user-2",
		})

		assert.Equal(t, "user-1", intent.RecipientID)
		assert.Equal(t, "Offer received", intent.Title)
		assert.Equal(t, "Someone wants your bike", intent.Body)
		assert.Equal(t, map[string]string{
			"notificationId": "n-1",
			"type":           "tradeOffer",
			"orderId":        "order-9",
			"tradeOfferId":   "offer-3",
			"fromUserId":     "user-2",
		}, intent.Data)
	})

	t.Run("missing optional fields degrade to defaults", func(t *testing.T) {
		intent := notifier.IntentFromCreatedNotification("n-2", notifier.NotificationDoc{
			UserID:  "user-1",
			Message: "hello",
		})

		assert.Equal(t, "New Notification", intent.Title)
		assert.Equal(t, "hello", intent.Body)
		assert.Equal(t, map[string]string{
			"notificationId": "n-2",
			"type":           "general",
			"orderId":        "",
			"tradeOfferId":   "",
			"fromUserId":     "",
		}, intent.Data)
	})

	t.Run("empty document still yields a uniform shape", func(t *testing.T) {
		intent := notifier.IntentFromCreatedNotification("n-3", notifier.NotificationDoc{})

		assert.Empty(t, intent.RecipientID)
		assert.Equal(t, "New Notification", intent.Title)
		assert.Empty(t, intent.Body)
		assert.Len(t, intent.Data, 5)
	})
}
