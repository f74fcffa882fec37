// Package filtercache caches parsed filters by their text.
//
// Parsing is the only fallible step of filter use, and the same rule text is
// typically evaluated against many value sets. Cache parses each distinct
// text once, bounded by an LRU, and shares the immutable *filter.Filter
// between callers. Parse errors are cached too so that a broken rule is not
// re-parsed on every request.
//
// # Thread Safety
//
// Safe for concurrent use. A mutex guards the entry map and LRU list;
// singleflight.Group deduplicates concurrent parses of the same text.
package filtercache

import (
	"container/list"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"github.com/roach88/propfilter/internal/filter"
	"github.com/roach88/propfilter/internal/units"
)

// DefaultMaxEntries bounds the cache when WithMaxEntries is not given.
const DefaultMaxEntries = 1024

// Cache maps filter text to parse results.
type Cache struct {
	table  *units.Table
	logger *slog.Logger

	mu         sync.Mutex
	entries    map[string]*list.Element
	lru        *list.List // front is most recently used
	maxEntries int
	flight     singleflight.Group

	metrics *metrics
}

// entry is one cached parse result.
type entry struct {
	text   string
	filter *filter.Filter
	err    error
}

type metrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	parseErrors prometheus.Counter
	entries     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		hits: f.NewCounter(prometheus.CounterOpts{
			Name: "propfilter_cache_hits_total",
			Help: "Filter lookups served from the cache.",
		}),
		misses: f.NewCounter(prometheus.CounterOpts{
			Name: "propfilter_cache_misses_total",
			Help: "Filter lookups that required a parse.",
		}),
		parseErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "propfilter_cache_parse_errors_total",
			Help: "Filter parses that failed.",
		}),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Name: "propfilter_cache_entries",
			Help: "Filters currently cached.",
		}),
	}
}

type options struct {
	maxEntries int
	registerer prometheus.Registerer
	logger     *slog.Logger
}

// Option configures a Cache.
type Option func(*options)

// WithMaxEntries sets the maximum number of cached texts. Non-positive
// values are ignored.
//
// Default: 1024 (DefaultMaxEntries)
func WithMaxEntries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEntries = n
		}
	}
}

// WithRegisterer registers the cache metrics with reg. Without it the
// metrics are kept but not registered anywhere.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithLogger sets the logger for parse failures and evictions.
//
// Default: slog.Default()
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a cache that parses with table.
func New(table *units.Table, opts ...Option) *Cache {
	o := options{maxEntries: DefaultMaxEntries, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		table:      table,
		logger:     o.logger,
		entries:    make(map[string]*list.Element),
		lru:        list.New(),
		maxEntries: o.maxEntries,
		metrics:    newMetrics(o.registerer),
	}
}

// Get returns the parsed filter for text, parsing it on first use. A text
// that failed to parse returns the same error on every call until it is
// evicted.
func (c *Cache) Get(text string) (*filter.Filter, error) {
	if e, ok := c.lookup(text); ok {
		c.metrics.hits.Inc()
		return e.filter, e.err
	}
	c.metrics.misses.Inc()

	v, _, _ := c.flight.Do(text, func() (any, error) {
		if e, ok := c.lookup(text); ok {
			return e, nil
		}
		f, err := filter.Parse(text, c.table)
		if err != nil {
			c.metrics.parseErrors.Inc()
			c.logger.Debug("filter parse failed",
				"filter", text,
				"error", err,
			)
		}
		e := &entry{text: text, filter: f, err: err}
		c.store(e)
		return e, nil
	})
	e := v.(*entry)
	return e.filter, e.err
}

// Len returns the number of cached texts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
	c.metrics.entries.Set(0)
}

func (c *Cache) lookup(text string) (*entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[text]
	if !ok {
		return nil, false
	}
	c.lru.MoveToFront(el)
	return el.Value.(*entry), true
}

func (c *Cache) store(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[e.text]; ok {
		el.Value = e
		c.lru.MoveToFront(el)
		return
	}
	c.entries[e.text] = c.lru.PushFront(e)
	for c.lru.Len() > c.maxEntries {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		evicted := oldest.Value.(*entry)
		delete(c.entries, evicted.text)
		c.logger.Debug("filter evicted", "filter", evicted.text)
	}
	c.metrics.entries.Set(float64(c.lru.Len()))
}
