// Package metrics keeps process-wide counters for the back office and
// serves them as plain text on /metrics.
package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

var (
	Requests      Counter
	ServerErrors  Counter
	LoginFailures Counter
	PaymentsPaid  Counter
	PayoutsPaid   Counter

	started = time.Now()
)

// ObserveStatus counts one finished request.
func ObserveStatus(status int) {
	Requests.Inc()
	if status >= http.StatusInternalServerError {
		ServerErrors.Inc()
	}
}

// Handler writes every counter as "name value", one per line.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "uptime_seconds %d\n", int64(time.Since(started).Seconds()))
	fmt.Fprintf(w, "http_requests_total %d\n", Requests.Load())
	fmt.Fprintf(w, "http_server_errors_total %d\n", ServerErrors.Load())
	fmt.Fprintf(w, "login_failures_total %d\n", LoginFailures.Load())
	fmt.Fprintf(w, "payments_marked_paid_total %d\n", PaymentsPaid.Load())
	fmt.Fprintf(w, "payouts_marked_paid_total %d\n", PayoutsPaid.Load())
}
