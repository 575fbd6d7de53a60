package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/logger"
	"github.com/guttosm/cart-sync/internal/metrics"
	"github.com/guttosm/cart-sync/internal/service"
)

// AsyncLoggerConfig sizes the audit write pipeline. Zero fields take the defaults.
type AsyncLoggerConfig struct {
	BufferSize    int
	NumWorkers    int
	BatchSize     int           // entries per CreateLogs call
	FlushInterval time.Duration // upper bound on how long a partial batch waits
	WriteTimeout  time.Duration
}

func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    4,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

func (cfg AsyncLoggerConfig) withDefaults() AsyncLoggerConfig {
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	return cfg
}

// AsyncLogger queues request and audit entries and writes them in batches
// from a fixed set of workers. A full queue drops the entry instead of
// blocking the request.
type AsyncLogger struct {
	store service.LoggingService
	cfg   AsyncLoggerConfig
	queue chan *model.LogEntry
	done  chan struct{}
	wg    sync.WaitGroup

	// mu orders Log against Stop so nothing is queued after the final drain.
	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once

	enqueued, dropped, written, failed atomic.Int64
}

var _ service.AuditRecorder = (*AsyncLogger)(nil)

// NewAsyncLogger starts the workers. A nil store yields a nil logger, and a
// nil *AsyncLogger discards everything it is given.
func NewAsyncLogger(store service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if store == nil {
		return nil
	}
	cfg = cfg.withDefaults()

	al := &AsyncLogger{
		store: store,
		cfg:   cfg,
		queue: make(chan *model.LogEntry, cfg.BufferSize),
		done:  make(chan struct{}),
	}
	al.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go al.run()
	}
	return al
}

func (al *AsyncLogger) run() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.cfg.BatchSize)
	add := func(entry *model.LogEntry) {
		batch = append(batch, entry)
		if len(batch) >= al.cfg.BatchSize {
			batch = al.write(batch)
		}
	}

	for {
		select {
		case entry := <-al.queue:
			add(entry)
		case <-ticker.C:
			batch = al.write(batch)
		case <-al.done:
			for {
				select {
				case entry := <-al.queue:
					add(entry)
				default:
					al.write(batch)
					return
				}
			}
		}
	}
}

// write stores batch and returns a fresh buffer for the next one.
func (al *AsyncLogger) write(batch []*model.LogEntry) []*model.LogEntry {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	if err := al.store.CreateLogs(ctx, batch); err != nil {
		al.failed.Add(int64(len(batch)))
		metrics.RecordAuditEntries("failed", len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to write log batch")
	} else {
		al.written.Add(int64(len(batch)))
		metrics.RecordAuditEntries("written", len(batch))
	}
	return make([]*model.LogEntry, 0, al.cfg.BatchSize)
}

// Log queues entry and reports whether it was accepted. It never blocks.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	al.mu.RLock()
	defer al.mu.RUnlock()

	if !al.closed {
		select {
		case al.queue <- entry:
			al.enqueued.Add(1)
			return true
		default:
		}
	}
	al.dropped.Add(1)
	metrics.RecordAuditEntries("dropped", 1)
	return false
}

func (al *AsyncLogger) Record(entry *model.LogEntry) {
	if al == nil || entry == nil {
		return
	}
	al.Log(entry)
}

// Stop writes whatever is queued and waits for the workers. Later calls are no-ops.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		al.mu.Lock()
		al.closed = true
		al.mu.Unlock()

		close(al.done)
		al.wg.Wait()
	})
}

// Stats reports entry counts since start. errors counts entries whose batch failed.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.failed.Load()
}
