package notifier

import "fmt"

// content is one status transition table entry.
type content struct {
	title string
	body  string
}

// orderTransitions maps an order's new status to notification content.
// Statuses absent from the table never notify.
var orderTransitions = map[string]content{
	"confirmed":  {"Order Confirmed", "Your order has been confirmed and is being prepared."},
	"preparing":  {"Order Preparing", "The seller is preparing your order."},
	"shipped":    {"Order Shipped", "Your order has been shipped!"},
	"inDelivery": {"Order In Delivery", "Your order is on the way to you."},
	"completed":  {"Order Completed", "Your order has been delivered. Enjoy!"},
	"cancelled":  {"Order Cancelled", "Your order has been cancelled."},
}

const (
	tradeOfferAcceptedTitle = "Trade Offer Accepted!"
	tradeOfferRejectedTitle = "Trade Offer Declined"
)

// DecideOrder evaluates an order status change. Lookup is exact-match and
// case sensitive; an unchanged or unmapped status is an explicit no-action.
func DecideOrder(orderID string, before, after OrderSnapshot) Decision {
	if before.Status == after.Status {
		return noAction(NoActionStatusUnchanged)
	}

	c, ok := orderTransitions[after.Status]
	if !ok {
		return noAction(NoActionStatusUnmapped)
	}

	return notify(Intent{
		RecipientID: after.BuyerID,
		Title:       c.title,
		Body:        c.body,
		Data: map[string]string{
			"type":    "orderUpdate",
			"orderId": orderID,
			"status":  after.Status,
		},
	})
}

// DecideTradeOffer evaluates a trade offer status change. Only accepted and
// rejected notify; the rejected body carries the seller's reason when one was
// given.
func DecideTradeOffer(offerID string, before, after TradeOfferSnapshot) Decision {
	if before.Status == after.Status {
		return noAction(NoActionStatusUnchanged)
	}

	var c content
	switch after.Status {
	case "accepted":
		c = content{
			title: tradeOfferAcceptedTitle,
			body:  fmt.Sprintf("Your trade offer for %q has been accepted!", after.RequestedItemTitle),
		}
	case "rejected":
		c = content{
			title: tradeOfferRejectedTitle,
			body:  fmt.Sprintf("Your trade offer for %q has been declined.", after.RequestedItemTitle),
		}
		if after.SellerResponse != "" {
			c.body += " Reason: " + after.SellerResponse
		}
	default:
		return noAction(NoActionStatusUnmapped)
	}

	return notify(Intent{
		RecipientID: after.BuyerID,
		Title:       c.title,
		Body:        c.body,
		Data: map[string]string{
			"type":         "tradeOfferUpdate",
			"tradeOfferId": offerID,
			"status":       after.Status,
		},
	})
}
