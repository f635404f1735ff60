// Package batch validates many addresses concurrently on a pool of worker
// goroutines.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/validator"
)

// Result is the outcome for one input.
type Result struct {
	Index          int                       `json:"index" yaml:"index"`
	Address        string                    `json:"address" yaml:"address"`
	Valid          bool                      `json:"valid" yaml:"valid"`
	Classification *validator.Classification `json:"classification,omitempty" yaml:"classification,omitempty"`
	Error          string                    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Stats holds running counters of a Checker.
type Stats struct {
	Checked     uint64  `json:"checked" yaml:"checked"`
	Valid       uint64  `json:"valid" yaml:"valid"`
	Invalid     uint64  `json:"invalid" yaml:"invalid"`
	Rate        float64 `json:"rate" yaml:"rate"` // addresses per second
	ElapsedSecs float64 `json:"elapsed_secs" yaml:"elapsed_secs"`
}

// Observer is called from worker goroutines for every checked input.
type Observer func(Result)

// Option configures a Checker.
type Option func(*Checker)

// WithWorkers sets the number of goroutines. Zero or less means one per CPU.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithNetwork makes the checker strict: addresses of any other network are
// reported invalid. An empty network accepts all.
func WithNetwork(n chaincfg.Network) Option {
	return func(c *Checker) { c.network = n }
}

// WithObserver registers a callback for every result.
func WithObserver(o Observer) Option {
	return func(c *Checker) { c.observer = o }
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Checker) { c.log = l }
}

// Checker validates addresses on a worker pool. A Checker runs one batch at
// a time; Stats may be read concurrently while it runs.
type Checker struct {
	checked   uint64 // Atomic counters
	valid     uint64
	startNano int64

	workers  int
	network  chaincfg.Network
	observer Observer
	log      *logrus.Entry
}

// NewChecker creates a Checker.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		workers: runtime.NumCPU(),
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Workers returns the size of the worker pool.
func (c *Checker) Workers() int {
	return c.workers
}

// Stats returns the counters of the current or last run.
func (c *Checker) Stats() Stats {
	checked := atomic.LoadUint64(&c.checked)
	valid := atomic.LoadUint64(&c.valid)

	var elapsed float64
	if start := atomic.LoadInt64(&c.startNano); start != 0 {
		elapsed = time.Since(time.Unix(0, start)).Seconds()
	}

	var rate float64
	if elapsed > 0 {
		rate = float64(checked) / elapsed
	}

	return Stats{
		Checked:     checked,
		Valid:       valid,
		Invalid:     checked - valid,
		Rate:        rate,
		ElapsedSecs: elapsed,
	}
}

func (c *Checker) reset() {
	atomic.StoreUint64(&c.checked, 0)
	atomic.StoreUint64(&c.valid, 0)
	atomic.StoreInt64(&c.startNano, time.Now().UnixNano())
}

// CheckAll validates addresses and returns results in input order.
func (c *Checker) CheckAll(ctx context.Context, addresses []string) ([]Result, error) {
	values := make([]any, len(addresses))
	for i, a := range addresses {
		values[i] = a
	}
	return c.CheckValues(ctx, values)
}

// CheckValues is CheckAll for untyped input. Values that are not strings are
// reported invalid. When ctx is cancelled the results checked so far are
// returned together with the context error; unchecked entries hold only
// their index.
func (c *Checker) CheckValues(ctx context.Context, values []any) ([]Result, error) {
	c.reset()
	results := make([]Result, len(values))
	for i := range results {
		results[i].Index = i
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = c.check(idx, values[idx])
			}
		}()
	}

feed:
	for i := range values {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	stats := c.logFinished()
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("batch interrupted after %d of %d: %w", stats.Checked, len(values), err)
	}
	return results, nil
}

// Start validates addresses as they arrive on in. Results are sent in
// completion order, carrying the position of their input. The returned
// channel is closed once in is closed and drained, or ctx is done.
func (c *Checker) Start(ctx context.Context, in <-chan string) <-chan Result {
	c.reset()
	out := make(chan Result, c.workers)

	type job struct {
		idx  int
		addr string
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case out <- c.check(j.idx, j.addr):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer func() {
			close(jobs)
			wg.Wait()
			c.logFinished()
			close(out)
		}()
		for idx := 0; ; idx++ {
			select {
			case <-ctx.Done():
				return
			case addr, ok := <-in:
				if !ok {
					return
				}
				select {
				case jobs <- job{idx, addr}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (c *Checker) logFinished() Stats {
	stats := c.Stats()
	c.log.WithFields(logrus.Fields{
		"checked": stats.Checked,
		"valid":   stats.Valid,
		"invalid": stats.Invalid,
		"workers": c.workers,
		"elapsed": time.Duration(stats.ElapsedSecs * float64(time.Second)),
	}).Debug("batch finished")
	return stats
}

func (c *Checker) check(idx int, v any) Result {
	res := Result{Index: idx}

	addr, isString := validator.AsString(v)
	res.Address = addr

	switch {
	case !isString:
		res.Error = fmt.Sprintf("not a string: %T", v)
	default:
		cls, err := validator.Classify(addr)
		switch {
		case err != nil:
			res.Error = err.Error()
		case c.network != "" && cls.Network != c.network:
			res.Error = fmt.Sprintf("address is on %s, want %s", cls.Network, c.network)
			res.Classification = &cls
		default:
			res.Valid = true
			res.Classification = &cls
		}
	}

	atomic.AddUint64(&c.checked, 1)
	if res.Valid {
		atomic.AddUint64(&c.valid, 1)
	}
	if c.observer != nil {
		c.observer(res)
	}
	return res
}
