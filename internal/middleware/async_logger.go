package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/logger"
	"github.com/wsawebmaster/delivery/internal/service"
)

// AsyncLoggerConfig sizes the async logger.
type AsyncLoggerConfig struct {
	BufferSize   int
	NumWorkers   int
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the defaults used by the server.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLoggerStats counts what happened to queued entries.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Errors   int64
}

// AsyncLogger writes log entries through a fixed pool of workers. Entries are dropped,
// never blocked on, when the buffer is full.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	writeTimeout   time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger starts the workers. It returns nil when loggingService is nil.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		writeTimeout:   cfg.WriteTimeout,
	}

	al.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.entryCh:
			al.writeEntry(entry)
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					al.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeEntry(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLog(ctx, entry); err != nil {
		al.errors.Add(1)
		logger.Logger().Warn().Err(err).Str("request_id", entry.RequestID).Msg("Failed to write log entry")
		return
	}
	al.written.Add(1)
}

// Log queues entry. It reports false when the entry was dropped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	select {
	case <-al.stopCh:
		al.dropped.Add(1)
		return false
	default:
	}

	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop drains queued entries and waits for the workers. Safe to call more than once.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		close(al.stopCh)
	})
	al.wg.Wait()
}

// Stats returns the current counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Errors:   al.errors.Load(),
	}
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger replaces the process-wide async logger, stopping the previous one.
func InitAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) {
	next := NewAsyncLogger(loggingService, cfg)

	globalAsyncLoggerMu.Lock()
	prev := globalAsyncLogger
	globalAsyncLogger = next
	globalAsyncLoggerMu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// GetAsyncLogger returns the process-wide async logger, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and removes the process-wide async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	prev := globalAsyncLogger
	globalAsyncLogger = nil
	globalAsyncLoggerMu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// store queues entry on the async logger, or writes it from a goroutine when none runs.
func store(loggingService service.LoggingService, entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := loggingService.CreateLog(ctx, entry); err != nil {
			logger.Logger().Warn().Err(err).Msg("Failed to write log entry")
		}
	}()
}
