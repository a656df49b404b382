package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	deniedRequests  uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

// Record counts one finished request. 401 and 403 responses count as denied.
func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= http.StatusInternalServerError {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		atomic.AddUint64(&c.deniedRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	denied := atomic.LoadUint64(&c.deniedRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":   total,
		"errorsTotal":     errs,
		"deniedTotal":     denied,
		"avgDurationMs":   avg,
		"totalDurationMs": totalMs,
	}
}
