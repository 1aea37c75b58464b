package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swapmarket/pushrelay/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Run("error attr", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.Empty(t, logger.Error(nil).Key)
	})

	t.Run("empty ids yield empty attrs", func(t *testing.T) {
		assert.Empty(t, logger.UserID("").Key)
		assert.Empty(t, logger.EntityID("").Key)
		assert.Empty(t, logger.AttemptID("").Key)
		assert.Empty(t, logger.MessageID("").Key)
	})

	t.Run("canonical keys", func(t *testing.T) {
		assert.Equal(t, "user_id", logger.UserID("u1").Key)
		assert.Equal(t, "entity_kind", logger.EntityKind("order").Key)
		assert.Equal(t, "entity_id", logger.EntityID("o1").Key)
		assert.Equal(t, "status", logger.Status("shipped").Key)
		assert.Equal(t, "outcome", logger.Outcome("delivered").Key)
		assert.Equal(t, "collection", logger.Collection("orders").Key)
		assert.Equal(t, "component", logger.Component("watcher").Key)
	})
}
