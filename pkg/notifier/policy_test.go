package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapmarket/pushrelay/pkg/notifier"
)

func TestDecideOrder(t *testing.T) {
	tests := []struct {
		name      string
		before    string
		after     string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "confirmed",
			before:    "pending",
			after:     "confirmed",
			wantTitle: "Order Confirmed",
			wantBody:  "Your order has been confirmed and is being prepared.",
		},
		{
			name:      "preparing",
			before:    "confirmed",
			after:     "preparing",
			wantTitle: "Order Preparing",
			wantBody:  "The seller is preparing your order.",
		},
		{
			name:      "shipped",
			before:    "preparing",
			after:     "shipped",
			wantTitle: "Order Shipped",
			wantBody:  "Your order has been shipped!",
		},
		{
			name:      "inDelivery",
			before:    "shipped",
			after:     "inDelivery",
			wantTitle: "Order In Delivery",
			wantBody:  "Your order is on the way to you.",
		},
		{
			name:      "completed",
			before:    "inDelivery",
			after:     "completed",
			wantTitle: "Order Completed",
			wantBody:  "Your order has been delivered. Enjoy!",
		},
		{
			name:      "cancelled",
			before:    "confirmed",
			after:     "cancelled",
			wantTitle: "Order Cancelled",
			wantBody:  "Your order has been cancelled.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := notifier.DecideOrder("order-1",
				notifier.OrderSnapshot{Status: tt.before, BuyerID: "buyer-1"},
				notifier.OrderSnapshot{Status: tt.after, BuyerID: "buyer-1"},
			)

			require.True(t, decision.Actionable())
			assert.Equal(t, "buyer-1", decision.Intent.RecipientID)
			assert.Equal(t, tt.wantTitle, decision.Intent.Title)
			assert.Equal(t, tt.wantBody, decision.Intent.Body)
			assert.Equal(t, map[string]string{
				"type":    "orderUpdate",
				"orderId": "order-1",
				"status":  tt.after,
			}, decision.Intent.Data)
		})
	}

	t.Run("unchanged status produces no action", func(t *testing.T) {
		decision := notifier.DecideOrder("order-1",
			notifier.OrderSnapshot{Status: "shipped", BuyerID: "buyer-1"},
			notifier.OrderSnapshot{Status: "shipped", BuyerID: "buyer-1"},
		)

		assert.False(t, decision.Actionable())
		assert.Equal(t, notifier.NoActionStatusUnchanged, decision.NoAction)
	})

	t.Run("unmapped status produces no action", func(t *testing.T) {
		decision := notifier.DecideOrder("order-1",
			notifier.OrderSnapshot{Status: "pending", BuyerID: "buyer-1"},
			notifier.OrderSnapshot{Status: "refundRequested", BuyerID: "buyer-1"},
		)

		assert.False(t, decision.Actionable())
		assert.Equal(t, notifier.NoActionStatusUnmapped, decision.NoAction)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		decision := notifier.DecideOrder("order-1",
			notifier.OrderSnapshot{Status: "pending"},
			notifier.OrderSnapshot{Status: "Shipped"},
		)

		assert.False(t, decision.Actionable())
		assert.Equal(t, notifier.NoActionStatusUnmapped, decision.NoAction)
	})
}

func TestDecideTradeOffer(t *testing.T) {
	t.Run("accepted references the requested item", func(t *testing.T) {
		decision := notifier.DecideTradeOffer("offer-1",
			notifier.TradeOfferSnapshot{Status: "pending"},
			notifier.TradeOfferSnapshot{
				Status:             "accepted",
				BuyerID:            "buyer-1",
				RequestedItemTitle: "Vintage Watch",
			},
		)

		require.True(t, decision.Actionable())
		assert.Equal(t, "Trade Offer Accepted!", decision.Intent.Title)
		assert.Equal(t, `Your trade offer for "Vintage Watch" has been accepted!`, decision.Intent.Body)
		assert.Equal(t, map[string]string{
			"type":         "tradeOfferUpdate",
			"tradeOfferId": "offer-1",
			"status":       "accepted",
		}, decision.Intent.Data)
	})

	t.Run("rejected with seller response appends the reason", func(t *testing.T) {
		decision := notifier.DecideTradeOffer("offer-1",
			notifier.TradeOfferSnapshot{Status: "pending"},
			notifier.TradeOfferSnapshot{
				Status:             "rejected",
				BuyerID:            "buyer-1",
				RequestedItemTitle: "Vintage Watch",
				SellerResponse:     "Item no longer available",
			},
		)

		require.True(t, decision.Actionable())
		assert.Equal(t, "Trade Offer Declined", decision.Intent.Title)
		assert.Equal(t,
			`Your trade offer for "Vintage Watch" has been declined. Reason: Item no longer available`,
			decision.Intent.Body,
		)
	})

	t.Run("rejected without seller response omits the reason clause", func(t *testing.T) {
		decision := notifier.DecideTradeOffer("offer-1",
			notifier.TradeOfferSnapshot{Status: "pending"},
			notifier.TradeOfferSnapshot{
				Status:             "rejected",
				BuyerID:            "buyer-1",
				RequestedItemTitle: "Vintage Watch",
			},
		)

		require.True(t, decision.Actionable())
		assert.Equal(t, `Your trade offer for "Vintage Watch" has been declined.`, decision.Intent.Body)
		assert.NotContains(t, decision.Intent.Body, "Reason:")
	})

	t.Run("unchanged status produces no action", func(t *testing.T) {
		decision := notifier.DecideTradeOffer("offer-1",
			notifier.TradeOfferSnapshot{Status: "accepted"},
			notifier.TradeOfferSnapshot{Status: "accepted"},
		)

		assert.False(t, decision.Actionable())
		assert.Equal(t, notifier.NoActionStatusUnchanged, decision.NoAction)
	})

	t.Run("unmapped status produces no action", func(t *testing.T) {
		decision := notifier.DecideTradeOffer("offer-1",
			notifier.TradeOfferSnapshot{Status: "pending"},
			notifier.TradeOfferSnapshot{Status: "countered"},
		)

		assert.False(t, decision.Actionable())
		assert.Equal(t, notifier.NoActionStatusUnmapped, decision.NoAction)
	})
}
