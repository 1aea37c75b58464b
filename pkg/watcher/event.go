package watcher

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/swapmarket/pushrelay/pkg/notifier"
)

// streamDocument is the change-stream envelope shape we care about.
type streamDocument struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID any `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument             bson.Raw `bson:"fullDocument"`
	FullDocumentBeforeChange bson.Raw `bson:"fullDocumentBeforeChange"`
}

// decodeEvent turns a raw change-stream document into a ChangeEvent for the
// dispatcher. Updates without a before image are rejected: the policy cannot
// tell a status change from an unrelated edit without it.
func decodeEvent(kind notifier.EntityKind, raw bson.Raw) (notifier.ChangeEvent, error) {
	var doc streamDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return notifier.ChangeEvent{}, errors.Join(ErrDecodeEvent, err)
	}

	if len(doc.FullDocument) == 0 {
		return notifier.ChangeEvent{}, ErrMissingDocument
	}

	ev := notifier.ChangeEvent{
		Kind:     kind,
		EntityID: entityID(doc.DocumentKey.ID),
		After:    doc.FullDocument,
	}

	switch doc.OperationType {
	case "insert":
	case "update", "replace":
		if len(doc.FullDocumentBeforeChange) == 0 {
			return notifier.ChangeEvent{}, ErrMissingBeforeImage
		}
		ev.Before = doc.FullDocumentBeforeChange
	default:
		return notifier.ChangeEvent{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, doc.OperationType)
	}

	return ev, nil
}

// entityID renders the document key as an opaque string identifier.
func entityID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case bson.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprint(v)
	}
}
