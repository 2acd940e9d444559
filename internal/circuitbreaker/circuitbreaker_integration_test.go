//go:build integration

package circuitbreaker_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsawebmaster/delivery/internal/circuitbreaker"
	"github.com/wsawebmaster/delivery/internal/delivery"
	"github.com/wsawebmaster/delivery/internal/repository"
	"github.com/wsawebmaster/delivery/internal/testutil"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          100 * time.Millisecond,
			Name:             name,
		})
	}

	t.Run("healthy logs repository keeps the circuit closed", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_delivery_logs")
		require.NoError(t, err)
		defer func() { _ = db.Close(ctx) }()

		cb := newBreaker("test-logs")
		repo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb)

		err = repo.Create(ctx, &repository.LogEntryDocument{
			Timestamp:  time.Now().UTC(),
			Level:      "info",
			Message:    "Order dispatched",
			SessionID:  "session-1",
			ActionType: "order_submitted",
		})
		require.NoError(t, err)

		count, err := repo.Count(ctx, repository.LogQueryOptions{SessionID: "session-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
		assert.True(t, cb.GetStats().IsHealthy)
	})

	t.Run("disconnected database opens the circuit", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_delivery_closed")
		require.NoError(t, err)
		require.NoError(t, db.Close(ctx))

		cb := newBreaker("test-closed")
		repo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb)

		for i := 0; i < 2; i++ {
			assert.Error(t, repo.Create(ctx, &repository.LogEntryDocument{Level: "info", Message: "lost"}))
		}

		require.True(t, cb.IsOpen())

		// writes are dropped while open, reads report it
		assert.NoError(t, repo.Create(ctx, &repository.LogEntryDocument{Level: "info"}))
		_, err = repo.Count(ctx, repository.LogQueryOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})
}

func TestCircuitBreakerWithViaCEP_Integration(t *testing.T) {
	var (
		outage atomic.Bool
		calls  atomic.Int32
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if outage.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/ws/00000000/json/" {
			_, _ = w.Write([]byte(`{"erro": "true"}`))
			return
		}
		_, _ = w.Write([]byte(`{"logradouro": "Praça da Sé", "bairro": "Sé", "localidade": "São Paulo", "uf": "SP"}`))
	}))
	defer server.Close()

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          50 * time.Millisecond,
		Name:             "test-viacep",
		IsFailure:        delivery.CountsAsOutage,
	})
	client := delivery.NewViaCEPClient(server.URL+"/ws", delivery.WithCircuitBreaker(cb))
	ctx := context.Background()

	t.Run("unknown postal codes do not count", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := client.Lookup(ctx, "00000000")
			assert.ErrorIs(t, err, delivery.ErrPostalCodeNotFound)
		}
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})

	t.Run("outage opens the circuit and short-circuits lookups", func(t *testing.T) {
		outage.Store(true)
		for i := 0; i < 2; i++ {
			_, err := client.Lookup(ctx, "01001000")
			assert.ErrorIs(t, err, delivery.ErrLookupFailed)
		}
		require.True(t, cb.IsOpen())

		before := calls.Load()
		_, err := client.Lookup(ctx, "01001000")
		assert.ErrorIs(t, err, delivery.ErrLookupFailed)
		assert.Equal(t, before, calls.Load())
	})

	t.Run("recovers once the directory answers again", func(t *testing.T) {
		outage.Store(false)
		time.Sleep(60 * time.Millisecond)

		addr, err := client.Lookup(ctx, "01001000")
		require.NoError(t, err)
		assert.Equal(t, "Sé", addr.Neighborhood)
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})
}
