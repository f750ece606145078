package telemetry

import (
	"crypto/sha1"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// projectHashCacheSize bounds the per-process memo. A single invocation
// rarely touches more than one project.
const projectHashCacheSize = 16

// projectHasher memoizes the one-way hash of configured project ids so the
// digest is computed at most once per distinct id per process.
type projectHasher struct {
	cache  *lru.Cache[string, string]
	digest func(string) string
}

func newProjectHasher() *projectHasher {
	cache, _ := lru.New[string, string](projectHashCacheSize)
	return &projectHasher{
		cache:  cache,
		digest: sha1Hex,
	}
}

// hash returns the cached digest for projectID, computing it on first use.
// An empty id yields an empty digest.
func (h *projectHasher) hash(projectID string) string {
	if projectID == "" {
		return ""
	}
	if cached, ok := h.cache.Get(projectID); ok {
		return cached
	}
	digest := h.digest(projectID)
	h.cache.Add(projectID, digest)
	return digest
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
