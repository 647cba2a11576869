package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pabigot/idstyle/estree"
)

// treeInput represents the two ways an ESTree document can be provided to a
// tool. Exactly one of File or Content must be set.
type treeInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an ESTree JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline ESTree document content (JSON or YAML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Force the input format: json or yaml (detected when omitted)"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *estree.ParseResult
	insertAt  time.Time
	expiresAt time.Time
}

// treeCacheStore provides a session-scoped cache for decoded trees.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. Decoded trees are never mutated, so a cached result can
// be linted by concurrent calls.
type treeCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var treeCache = &treeCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *treeCacheStore) get(key string) *estree.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result with a specific TTL, evicting the oldest entry if at capacity.
func (c *treeCacheStore) putWithTTL(key string, result *estree.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *treeCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *treeCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *treeCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *treeCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey creates a cache key for the input, or "" when it cannot be cached.
func (t treeInput) cacheKey() string {
	switch {
	case t.File != "":
		absPath, err := filepath.Abs(t.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%s:%d", t.Format, absPath, info.ModTime().UnixNano())
	case t.Content != "":
		h := sha256.Sum256([]byte(t.Content))
		return fmt.Sprintf("content:%s:%s", t.Format, hex.EncodeToString(h[:]))
	default:
		return ""
	}
}

// resolve decodes the tree from whichever input was provided, using the
// cache when enabled.
func (t treeInput) resolve() (*estree.ParseResult, error) {
	if (t.File == "") == (t.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if t.Content != "" && int64(len(t.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set IDSTYLE_MAX_INLINE_SIZE to increase",
			len(t.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = t.cacheKey()
		ttl = cfg.CacheContentTTL
		if t.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := treeCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var opts []estree.Option
	if t.Format != "" {
		format, err := estree.ParseSourceFormat(t.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, estree.WithFormat(format))
	}
	if t.File != "" {
		opts = append(opts, estree.WithFilePath(t.File))
	} else {
		opts = append(opts, estree.WithReader(strings.NewReader(t.Content)), estree.WithSourceName("content"))
	}

	result, err := estree.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		treeCache.putWithTTL(key, result, ttl)
	}
	return result, nil
}
