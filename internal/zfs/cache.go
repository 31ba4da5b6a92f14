package zfs

import "time"

// TopologyTTL is how long zpool status output is reused
const TopologyTTL = 30 * time.Second

type cacheEntry struct {
	text       string
	expiration time.Time // zero means never expires
}

func (e cacheEntry) expired(now time.Time) bool {
	return !e.expiration.IsZero() && now.After(e.expiration)
}

// textCache keeps command output for a while. Expiry is lazy, checked on
// get; there are only a handful of keys so nothing sweeps them.
type textCache struct {
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func newTextCache(ttl time.Duration, now func() time.Time) *textCache {
	return &textCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *textCache) get(key string) (string, bool) {
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if e.expired(c.now()) {
		delete(c.entries, key)
		return "", false
	}
	return e.text, true
}

func (c *textCache) set(key, text string) {
	var exp time.Time
	if c.ttl > 0 {
		exp = c.now().Add(c.ttl)
	}
	c.entries[key] = cacheEntry{text: text, expiration: exp}
}
