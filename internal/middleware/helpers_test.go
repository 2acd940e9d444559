package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/wsawebmaster/delivery/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockLoggingService is a testify mock of service.LoggingService.
type MockLoggingService struct {
	mock.Mock
	createLogCalls atomic.Int64
	createLogDelay time.Duration

	mu      sync.Mutex
	entries []*model.LogEntry
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	m.createLogCalls.Add(1)
	if m.createLogDelay > 0 {
		time.Sleep(m.createLogDelay)
	}
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLoggingService) stored() []*model.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}
