package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

// Monitor periodically probes the document store with a full load, so the
// health endpoint reports whether the storage backend answers and how big the
// blob has grown.
type Monitor struct {
	store *store.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(st *store.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    st,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{LastCheck: time.Now()}

	db, err := m.store.Load()
	if err != nil {
		m.logger.Warn("storage probe failed", zap.Error(err))
	} else {
		status.Storage = true
		status.Records = map[string]int{
			"admins":        len(db.Admins),
			"customers":     len(db.Customers),
			"transactions":  len(db.Transactions),
			"transferCodes": len(db.TransferCodes),
			"offers":        len(db.Offers),
			"leads":         len(db.Leads),
		}
		if size, err := m.store.Size(); err == nil {
			status.BlobBytes = size
		}
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}
