package notifier

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// EntityKind identifies which marketplace collection a change event came from.
type EntityKind string

const (
	KindNotification EntityKind = "notification"
	KindOrder        EntityKind = "order"
	KindTradeOffer   EntityKind = "tradeOffer"
)

// ChangeEvent is a single document change delivered by the store's trigger
// infrastructure. Before is nil for create events; for update events both
// snapshots are present and structurally comparable.
type ChangeEvent struct {
	Kind     EntityKind
	EntityID string
	Before   bson.Raw
	After    bson.Raw
}

// DecodeBefore decodes the pre-change snapshot into v.
func (e ChangeEvent) DecodeBefore(v any) error {
	if len(e.Before) == 0 {
		return ErrMissingSnapshot
	}
	if err := bson.Unmarshal(e.Before, v); err != nil {
		return errors.Join(ErrDecodeSnapshot, err)
	}
	return nil
}

// DecodeAfter decodes the post-change snapshot into v.
func (e ChangeEvent) DecodeAfter(v any) error {
	if len(e.After) == 0 {
		return ErrMissingSnapshot
	}
	if err := bson.Unmarshal(e.After, v); err != nil {
		return errors.Join(ErrDecodeSnapshot, err)
	}
	return nil
}

// OrderSnapshot is the slice of an order document the policy needs.
type OrderSnapshot struct {
	Status  string `bson:"status"`
	BuyerID string `bson:"buyerId"`
}

// TradeOfferSnapshot is the slice of a trade offer document the policy needs.
// BuyerID is the user who made the offer and the notification recipient.
type TradeOfferSnapshot struct {
	Status             string `bson:"status"`
	BuyerID            string `bson:"buyerId"`
	RequestedItemTitle string `bson:"requestedItemTitle"`
	SellerResponse     string `bson:"sellerResponse"`
}

// NotificationDoc is a freshly created notification record.
type NotificationDoc struct {
	UserID       string `bson:"userId"`
	Title        string `bson:"title"`
	Message      string `bson:"message"`
	Type         string `bson:"type"`
	OrderID      string `bson:"orderId"`
	TradeOfferID string `bson:"tradeOfferId"`
	FromUserID   string `bson:"fromUserId"`
}
