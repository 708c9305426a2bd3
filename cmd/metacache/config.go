package main

import (
	"github.com/xyproto/env/v2"

	"github.com/homier/probemap"
)

type config struct {
	dbPath     string
	capacity   int
	loadFactor float64
	listen     string
}

// loadConfig reads METACACHE_DB, METACACHE_CAPACITY, METACACHE_LOAD_FACTOR
// and METACACHE_LISTEN. Unparsable numbers fall back to the presets; values
// out of range are rejected when the cache is created.
func loadConfig() config {
	return config{
		dbPath:     env.Str("METACACHE_DB", "metacache.db"),
		capacity:   env.Int("METACACHE_CAPACITY", probemap.FileMetadataCapacity),
		loadFactor: env.Float64("METACACHE_LOAD_FACTOR", probemap.DefaultLoadFactor),
		listen:     env.Str("METACACHE_LISTEN"),
	}
}
