package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapmarket/pushrelay/pkg/httpserver"
	"github.com/swapmarket/pushrelay/pkg/logger"
)

func TestServerRun(t *testing.T) {
	t.Run("serves until context cancelled", func(t *testing.T) {
		srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
		}()

		// Give the listener a moment, then stop.
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("server did not stop after context cancellation")
		}
	})

	t.Run("start failure is wrapped", func(t *testing.T) {
		srv := httpserver.New(httpserver.WithAddr("256.256.256.256:99999"))
		err := srv.Run(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})
}

func TestOpsRouter(t *testing.T) {
	log := logger.New(logger.WithOutput(io.Discard))

	t.Run("healthz always alive", func(t *testing.T) {
		router := httpserver.OpsRouter(log, func(context.Context) error {
			return errors.New("dependency down")
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("readyz passes when all checks pass", func(t *testing.T) {
		router := httpserver.OpsRouter(log,
			func(context.Context) error { return nil },
			func(context.Context) error { return nil },
		)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("readyz fails when any check fails", func(t *testing.T) {
		router := httpserver.OpsRouter(log,
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("mongo down") },
		)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})

	t.Run("metrics endpoint responds", func(t *testing.T) {
		router := httpserver.OpsRouter(log)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
