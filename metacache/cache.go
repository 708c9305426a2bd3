// Package metacache keeps file upload metadata in a probemap table for fast
// lookups by file id. The cache is volatile: after a restart it is rebuilt
// from the attachment store with Warm.
package metacache

import (
	"context"
	"sync"

	"github.com/efficientgo/core/errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/homier/probemap"
)

// ErrEmptyFileID is returned by Store for metadata without a file id.
var ErrEmptyFileID = errors.Newf("metacache: file id is empty")

// Config sizes the underlying table. Zero fields use the file metadata preset.
type Config struct {
	Capacity   int
	LoadFactor float64
}

func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = probemap.FileMetadataCapacity
	}

	if c.LoadFactor == 0 {
		c.LoadFactor = probemap.DefaultLoadFactor
	}

	return c
}

// Option configures a Cache.
type Option func(c *Cache)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithRegisterer registers the cache metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Cache) {
		c.reg = reg
	}
}

// Cache is safe for concurrent use. Every call holds one mutex for its whole
// duration, since the table's grow and cluster repair must not interleave.
type Cache struct {
	mu    sync.Mutex
	files *probemap.Map[string, FileMetadata]

	cfg     Config
	logger  log.Logger
	reg     prometheus.Registerer
	metrics *metrics
}

// New returns an empty cache sized by cfg.
func New(cfg Config, opts ...Option) (*Cache, error) {
	c := &Cache{
		cfg:    cfg.withDefaults(),
		logger: log.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	files, err := c.newTable(c.cfg.Capacity)
	if err != nil {
		return nil, err
	}

	c.files = files
	c.metrics = newMetrics(c.reg)
	c.metrics.observe(files.Stats())

	return c, nil
}

func (c *Cache) newTable(capacity int) (*probemap.Map[string, FileMetadata], error) {
	files, err := probemap.New[string, FileMetadata](capacity, c.cfg.LoadFactor, probemap.StringKey[string])
	if err != nil {
		return nil, errors.Wrap(err, "create file metadata table")
	}

	return files, nil
}

// Store inserts meta under its FileID, replacing any previous entry.
func (c *Cache) Store(meta FileMetadata) error {
	if meta.FileID == "" {
		return ErrEmptyFileID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.files.Cap()
	if err := c.files.Insert(meta.FileID, meta); err != nil {
		return errors.Wrap(err, "store file metadata")
	}

	if after := c.files.Cap(); after != before {
		level.Debug(c.logger).Log("msg", "file metadata table grew", "from", before, "to", after)
	}

	c.metrics.stores.Inc()
	c.metrics.observe(c.files.Stats())

	return nil
}

// Get returns the metadata cached for fileID.
func (c *Cache) Get(fileID string) (FileMetadata, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	meta, ok := c.files.Get(fileID)
	if ok {
		c.metrics.lookups.WithLabelValues("hit").Inc()
	} else {
		c.metrics.lookups.WithLabelValues("miss").Inc()
	}

	return meta, ok
}

// Delete removes the entry for fileID and reports whether it existed.
func (c *Cache) Delete(fileID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.files.Delete(fileID) {
		return false
	}

	c.metrics.deletes.Inc()
	c.metrics.observe(c.files.Stats())

	return true
}

// All returns every cached entry, in no particular order.
func (c *Cache) All() []FileMetadata {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.files.Values()
}

// ByProduct returns the cached entries attached to productID.
func (c *Cache) ByProduct(productID string) []FileMetadata {
	c.mu.Lock()
	defer c.mu.Unlock()

	var files []FileMetadata
	for _, meta := range c.files.Values() {
		if meta.ProductID == productID {
			files = append(files, meta)
		}
	}

	return files
}

// Clear drops every entry but keeps the table capacity.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files.Clear()
	c.metrics.observe(c.files.Stats())
}

// Returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.files.Len()
}

// Returns the stats of the underlying table.
func (c *Cache) Stats() probemap.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.files.Stats()
}

// Warm replaces the cache content with every attachment in src. The new
// table is built aside and swapped in, so a failed load leaves the cache
// untouched. Returns the number of cached entries.
func (c *Cache) Warm(ctx context.Context, src Source) (int, error) {
	attachments, err := src.Attachments(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "load attachments")
	}

	valid := make([]FileMetadata, 0, len(attachments))
	for _, meta := range attachments {
		if meta.FileID == "" {
			level.Warn(c.logger).Log("msg", "skipping attachment without id", "filepath", meta.Filepath)
			continue
		}

		valid = append(valid, meta)
	}

	capacity := max(c.cfg.Capacity, probemap.CapacityFor(len(valid), c.cfg.LoadFactor))

	files, err := c.newTable(capacity)
	if err != nil {
		return 0, err
	}

	for _, meta := range valid {
		if err := files.Insert(meta.FileID, meta); err != nil {
			return 0, errors.Wrap(err, "warm file metadata")
		}
	}

	c.mu.Lock()
	c.files = files
	stats := files.Stats()
	c.metrics.warms.Inc()
	c.metrics.observe(stats)
	c.mu.Unlock()

	level.Info(c.logger).Log("msg", "warmed file metadata cache", "files", stats.Size, "capacity", stats.Capacity, "load_factor", stats.LoadFactor)

	return stats.Size, nil
}
