package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for validation result caching. The core
// analyzers are deterministic, so a cached result for identical input is
// exactly the result a fresh validation would produce.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the submission content and bioregion. The
// version segment carries the lexicon version so cached results are
// invalidated when the term tables change.
func Key(lexiconVersion, bioregionID, content string) string {
	h := sha256.New()
	h.Write([]byte(bioregionID))
	h.Write([]byte{'\n'})
	h.Write([]byte(content))
	return "harmonia:" + lexiconVersion + ":" + hex.EncodeToString(h.Sum(nil))
}
