package probemap

// Defaults of the attachment and custom presets.
const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75

	// FileMetadataCapacity is the initial capacity of file metadata caches.
	FileMetadataCapacity = 32
)

// Config is the custom preset. Zero fields fall back to DefaultCapacity and
// DefaultLoadFactor.
type Config struct {
	Capacity   int
	LoadFactor float64
}

func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}

	if c.LoadFactor == 0 {
		c.LoadFactor = DefaultLoadFactor
	}

	return c
}

// NewFileMetadataMap returns a map sized for file metadata lookups.
func NewFileMetadataMap[K comparable, V any](key KeyFunc[K], opts ...Option[K, V]) (*Map[K, V], error) {
	return New(FileMetadataCapacity, DefaultLoadFactor, key, opts...)
}

// NewAttachmentMap returns a map sized for attachment tracking.
func NewAttachmentMap[K comparable, V any](key KeyFunc[K], opts ...Option[K, V]) (*Map[K, V], error) {
	return New(DefaultCapacity, DefaultLoadFactor, key, opts...)
}

// NewCustomMap returns a map sized by cfg.
func NewCustomMap[K comparable, V any](cfg Config, key KeyFunc[K], opts ...Option[K, V]) (*Map[K, V], error) {
	cfg = cfg.withDefaults()

	return New(cfg.Capacity, cfg.LoadFactor, key, opts...)
}
