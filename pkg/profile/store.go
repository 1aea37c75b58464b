package profile

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Collection is the user profile collection; documents are keyed by user id.
const Collection = "user-info"

type profileDoc struct {
	FCMToken string `bson:"fcmToken"`
}

// Store reads user profiles from the document store. It satisfies the
// notifier's TokenResolver interface.
type Store struct {
	col *mongo.Collection
}

// NewStore creates a profile store over the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{col: db.Collection(Collection)}
}

// Resolve returns the user's registered device token. A missing profile or a
// profile without a token resolves to an empty string with no error: "cannot
// deliver" is an expected outcome. Only a failed read is an error.
func (s *Store) Resolve(ctx context.Context, userID string) (string, error) {
	var doc profileDoc
	err := s.col.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(ErrLookup, err)
	}
	return doc.FCMToken, nil
}
