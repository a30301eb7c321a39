package metadata

import (
	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Chain asks providers in order and keeps, per field, the first non-empty
// answer. It stops early once both fields are known.
type Chain []types.MetadataProvider

// Lookup implements types.MetadataProvider
func (c Chain) Lookup(path string) (types.Metadata, error) {
	var meta types.Metadata
	var lastErr error
	for _, p := range c {
		if p == nil {
			continue
		}
		m, err := p.Lookup(path)
		if err != nil {
			lastErr = err
		}
		meta = meta.Merge(m)
		if meta.CaptureTimestamp != "" && meta.DeclaredExt != "" {
			return meta, nil
		}
	}
	if meta.IsEmpty() {
		if lastErr == nil {
			lastErr = errors.Newf(errors.ErrMetadataUnavailable, "no metadata for %s", path)
		}
		return meta, lastErr
	}
	return meta, nil
}

type cached struct {
	meta types.Metadata
	err  error
}

// Cache memoizes another provider by path for the length of a run. A file
// that is moved gets a new path and is looked up again.
type Cache struct {
	provider types.MetadataProvider
	entries  map[string]cached
}

// NewCache wraps provider
func NewCache(provider types.MetadataProvider) *Cache {
	return &Cache{provider: provider, entries: make(map[string]cached)}
}

// Lookup implements types.MetadataProvider
func (c *Cache) Lookup(path string) (types.Metadata, error) {
	if hit, ok := c.entries[path]; ok {
		return hit.meta, hit.err
	}
	meta, err := c.provider.Lookup(path)
	c.entries[path] = cached{meta: meta, err: err}
	return meta, err
}

// Forget drops the cached answer for path
func (c *Cache) Forget(path string) {
	delete(c.entries, path)
}
