// Package config loads process-wide defaults for the engine from the
// environment, optionally populated from a .env file the same way
// pkg/cli/dotenv.go did for the original CLI. It is consulted once, at
// chunk.Source construction time; it has no bearing on the per-call
// Options the public API accepts.
package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// chunkSizeEnv is the only setting this engine reads from the
// environment: an override for the chunk size used by both chunk
// Source variants.
const chunkSizeEnv = "IMGFACTS_CHUNK_SIZE"

// DefaultChunkSize is used when the environment carries no override.
const DefaultChunkSize = 256

var loadOnce sync.Once

// load populates process environment variables from a .env file in the
// working directory, if one exists. Missing files are not an error —
// this mirrors godotenv.Load()'s own behavior of being silently
// optional when no .env is present.
func load() {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// ChunkSize returns the configured chunk size: the value of
// IMGFACTS_CHUNK_SIZE if it is set to a positive integer, otherwise
// DefaultChunkSize.
func ChunkSize() int {
	load()
	raw := os.Getenv(chunkSizeEnv)
	if raw == "" {
		return DefaultChunkSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultChunkSize
	}
	return n
}
