package warnings

import (
	"github.com/Invicton-Labs/go-pigudf/gensync"
	"github.com/Invicton-Labs/go-pigudf/log"
	"github.com/Invicton-Labs/go-pigudf/udf"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
)

// Listener is called for every warning an Aggregator receives.
type Listener func(msg string, code udf.WarningCode)

type Registration struct {
	id         string
	aggregator *Aggregator
}

// Close stops the registered listener from receiving further warnings.
func (r Registration) Close() {
	if r.aggregator != nil {
		r.aggregator.listeners.Delete(r.id)
	}
}

type AggregatorInput struct {
	// Logger that each warning is written to. If nil, the default
	// logger is used.
	Logger log.Logger
}

// Aggregator is a udf.Warner that counts warnings by code, the way a
// host engine rolls up per-row warnings into job counters, and logs
// and forwards each one.
type Aggregator struct {
	logger    log.Logger
	counts    gensync.Map[udf.WarningCode, *gensync.AtomicNumeric[int64]]
	listeners gensync.Map[string, Listener]
}

var _ udf.Warner = (*Aggregator)(nil)

func NewAggregator(input AggregatorInput) *Aggregator {
	return &Aggregator{
		logger: input.Logger,
	}
}

func (a *Aggregator) counter(code udf.WarningCode) *gensync.AtomicNumeric[int64] {
	if c, ok := a.counts.Load(code); ok {
		return c
	}
	c, _ := a.counts.LoadOrStore(code, gensync.NewAtomicNumeric[int64](0))
	return c
}

func (a *Aggregator) Warn(msg string, code udf.WarningCode) {
	total := a.counter(code).Add(1)
	if a.logger != nil {
		a.logger.Warnw(msg, "code", string(code), "count", total)
	} else {
		log.Warnw(msg, "code", string(code), "count", total)
	}
	a.listeners.Range(func(_ string, listener Listener) bool {
		listener(msg, code)
		return true
	})
}

// Register adds a listener that will be called for every subsequent warning.
func (a *Aggregator) Register(listener Listener) (Registration, stackerr.Error) {
	if listener == nil {
		return Registration{}, stackerr.Errorf("Cannot register a nil listener")
	}
	registration := Registration{
		id:         uuid.New().String(),
		aggregator: a,
	}
	a.listeners.Store(registration.id, listener)
	return registration, nil
}

// Count returns the number of warnings received for a code.
func (a *Aggregator) Count(code udf.WarningCode) int64 {
	if c, ok := a.counts.Load(code); ok {
		return c.Load()
	}
	return 0
}

// Counts returns a snapshot of the count for every code that has
// been seen since the last reset.
func (a *Aggregator) Counts() map[udf.WarningCode]int64 {
	counts := map[udf.WarningCode]int64{}
	a.counts.Range(func(code udf.WarningCode, c *gensync.AtomicNumeric[int64]) bool {
		if v := c.Load(); v > 0 {
			counts[code] = v
		}
		return true
	})
	return counts
}

// Reset sets every count back to zero. Registered listeners are kept.
func (a *Aggregator) Reset() {
	a.counts.Range(func(_ udf.WarningCode, c *gensync.AtomicNumeric[int64]) bool {
		c.Store(0)
		return true
	})
}
