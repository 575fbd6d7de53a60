// Code generated manually. DO NOT EDIT.

package mocks

import (
	"sync"

	"github.com/guttosm/cart-sync/internal/domain/model"
)

// AuditRecorderStub collects recorded entries.
type AuditRecorderStub struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (a *AuditRecorderStub) Record(entry *model.LogEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

// Entries returns the recorded entries in order.
func (a *AuditRecorderStub) Entries() []*model.LogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*model.LogEntry(nil), a.entries...)
}
