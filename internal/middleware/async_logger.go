package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the number of entries that can wait for a worker.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing batches.
	NumWorkers int
	// BatchSize is the largest batch a worker writes in one call.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits before it is written.
	FlushInterval time.Duration
	// WriteTimeout is the timeout for writing one batch to the database.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the async logger defaults.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// AsyncLogger persists audit entries through a bounded queue and a fixed
// worker pool. Entries are written in batches; when the queue is full new
// entries are dropped rather than blocking the request.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	wg             sync.WaitGroup
	stopCh         chan struct{}
	stopOnce       sync.Once
	stopped        atomic.Bool
	batchSize      int
	flushInterval  time.Duration
	writeTimeout   time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts an async logger. It returns nil when loggingService is nil.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	defaults := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = defaults.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaults.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		batchSize:      cfg.BatchSize,
		flushInterval:  cfg.FlushInterval,
		writeTimeout:   cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.flushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.writeBatch(batch)
		batch = make([]*model.LogEntry, 0, al.batchSize)
	}

	for {
		select {
		case entry := <-al.entryCh:
			batch = append(batch, entry)
			if len(batch) >= al.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.stopCh:
			// Drain whatever is still queued.
			for {
				select {
				case entry := <-al.entryCh:
					batch = append(batch, entry)
					if len(batch) >= al.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeBatch(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLogs(ctx, batch); err != nil {
		al.failed.Add(int64(len(batch)))
		metrics.RecordAuditLogEntries("failed", len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to write audit log batch")
		return
	}
	al.written.Add(int64(len(batch)))
	metrics.RecordAuditLogEntries("written", len(batch))
}

// Log enqueues an entry. It returns false when the entry was dropped because
// the queue is full or the logger is stopped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al.stopped.Load() {
		al.dropped.Add(1)
		metrics.RecordAuditLogEntries("dropped", 1)
		return false
	}
	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		metrics.RecordAuditLogEntries("queued", 1)
		return true
	default:
		al.dropped.Add(1)
		metrics.RecordAuditLogEntries("dropped", 1)
		return false
	}
}

// Stop flushes queued entries and waits for the workers to exit. It is safe
// to call more than once.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		al.stopped.Store(true)
		close(al.stopCh)
		al.wg.Wait()
	})
}

// Stats returns the entry counters.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, failed int64) {
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.failed.Load()
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide async logger used by RequestLogger
// and AuditLog, stopping any previous one.
func InitAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(loggingService, cfg)
}

// GetAsyncLogger returns the global async logger, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and removes the global async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
