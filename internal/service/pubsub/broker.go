package pubsub

import (
	"sync"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

// Broker is an in-process pub/sub hub keyed by tenant. The store is
// embedded and single-process, so there is no external message broker;
// subscribers are callbacks invoked synchronously on publish.
type Broker struct {
	logger       *logger.Logger
	subscriberMu sync.RWMutex
	subscribers  map[string]map[int]func(*dto.AuditLogResponse)
	nextID       int
}

func NewBroker(logger *logger.Logger) *Broker {
	return &Broker{
		logger:      logger,
		subscribers: make(map[string]map[int]func(*dto.AuditLogResponse)),
	}
}

// Publish delivers an audit log to every subscriber of its tenant.
func (b *Broker) Publish(log *dto.AuditLogResponse) {
	b.subscriberMu.RLock()
	callbacks := make([]func(*dto.AuditLogResponse), 0, len(b.subscribers[log.TenantID]))
	for _, cb := range b.subscribers[log.TenantID] {
		callbacks = append(callbacks, cb)
	}
	b.subscriberMu.RUnlock()

	for _, cb := range callbacks {
		cb(log)
	}
}

// Subscribe registers a callback for one tenant's audit logs and returns
// a cancel function.
func (b *Broker) Subscribe(tenantID string, callback func(*dto.AuditLogResponse)) func() {
	b.subscriberMu.Lock()
	defer b.subscriberMu.Unlock()

	if b.subscribers[tenantID] == nil {
		b.subscribers[tenantID] = make(map[int]func(*dto.AuditLogResponse))
	}
	id := b.nextID
	b.nextID++
	b.subscribers[tenantID][id] = callback

	b.logger.Infof("subscribed to tenant channel: %s", tenantID)

	return func() {
		b.subscriberMu.Lock()
		defer b.subscriberMu.Unlock()
		delete(b.subscribers[tenantID], id)
		if len(b.subscribers[tenantID]) == 0 {
			delete(b.subscribers, tenantID)
		}
	}
}
