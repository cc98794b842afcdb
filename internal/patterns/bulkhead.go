package patterns

import (
	"fmt"
	"time"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/metrics"
)

// Bulkhead caps how many shipping quote requests run at once during
// the checkout fan-out.
type Bulkhead struct {
	semaphore chan struct{}
	name      string
}

// NewBulkhead creates a new bulkhead with specified capacity
func NewBulkhead(size int, name string) *Bulkhead {
	return &Bulkhead{
		semaphore: make(chan struct{}, size),
		name:      name,
	}
}

// Execute runs a function within the bulkhead's resource limits
func (b *Bulkhead) Execute(fn func() error) error {
	select {
	case b.semaphore <- struct{}{}:
		metrics.BulkheadActiveRequests.WithLabelValues(b.name).Inc()

		defer func() {
			<-b.semaphore
			metrics.BulkheadActiveRequests.WithLabelValues(b.name).Dec()
		}()

		return fn()

	case <-time.After(1 * time.Second):
		metrics.BulkheadRejectedRequests.WithLabelValues(b.name).Inc()
		return fmt.Errorf("bulkhead %s: timeout acquiring resource", b.name)
	}
}

// GetName returns the bulkhead name
func (b *Bulkhead) GetName() string {
	return b.name
}
