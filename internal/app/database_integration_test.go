//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/middleware"
)

func closeDatabase(components *DatabaseComponents) {
	middleware.StopAsyncLogger()
	_ = components.DB.Close(context.Background())
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Run("enabled database builds the log sink", func(t *testing.T) {
		components := InitializeDatabase(databaseConfig(t))
		require.NotNil(t, components)
		t.Cleanup(func() { closeDatabase(components) })

		assert.NotNil(t, components.LoggingService)
		assert.NoError(t, components.DB.Check())

		stats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})

	t.Run("log entries round trip", func(t *testing.T) {
		components := InitializeDatabase(databaseConfig(t))
		require.NotNil(t, components)
		t.Cleanup(func() { closeDatabase(components) })

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		entry := &model.LogEntry{
			Timestamp:  time.Now().UTC(),
			Level:      "info",
			Message:    "Order dispatched",
			SessionID:  "session-1",
			ActionType: model.ActionOrderSubmitted,
		}
		require.NoError(t, components.LoggingService.CreateLog(ctx, entry))

		entries, err := components.LoggingService.QueryLogs(ctx, model.LogQueryOptions{SessionID: "session-1"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionOrderSubmitted, entries[0].ActionType)
	})

	t.Run("unreachable database returns nil", func(t *testing.T) {
		components := InitializeDatabase(config.DatabaseConfig{
			URI:          "mongodb://127.0.0.1:1",
			DatabaseName: "unreachable",
			Enabled:      true,
		})
		assert.Nil(t, components)
	})
}
