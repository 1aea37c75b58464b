package notifier

const (
	defaultTitle = "New Notification"
	defaultType  = "general"
)

// IntentFromCreatedNotification builds the delivery intent for a freshly
// created notification record. There is no validation failure path: missing
// optional fields degrade to defaults, because a partially informative
// notification beats none. An absent user id surfaces later as a failed
// recipient lookup.
func IntentFromCreatedNotification(notificationID string, doc NotificationDoc) Intent {
	title := doc.Title
	if title == "" {
		title = defaultTitle
	}
	typ := doc.Type
	if typ == "" {
		typ = defaultType
	}

	// Pass-through ids default to empty strings so the structured data shape
	// stays uniform across all notifications of this kind.
	return Intent{
		RecipientID: doc.UserID,
		Title:       title,
		Body:        doc.Message,
		Data: map[string]string{
			"notificationId": notificationID,
			"type":           typ,
			"orderId":        doc.OrderID,
			"tradeOfferId":   doc.TradeOfferID,
			"fromUserId":     doc.FromUserID,
		},
	}
}
