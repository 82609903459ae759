package asset

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount must be a power of 2 for shard selection by mask.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCacheCapacity is the default number of assets kept per shard.
	DefaultCacheCapacity = 8
)

// CacheStats is a snapshot of the loader cache counters.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// cache is a sharded LRU keyed by href. Each shard has its own lock so
// concurrent compiles loading different assets rarely contend.
type cache[V any] struct {
	shards   [shardCount]*shard[V]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
	lru     list
}

type entry[V any] struct {
	value V
	node  *node
}

func newCache[V any](capacity int) *cache[V] {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &cache[V]{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[V]{entries: make(map[string]*entry[V])}
	}
	return c
}

func hashKey(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

func (c *cache[V]) shardFor(key string) *shard[V] {
	return c.shards[hashKey(key)&shardMask]
}

func (c *cache[V]) get(key string) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.moveToFront(e.node)
	c.hits.Add(1)
	return e.value, true
}

func (c *cache[V]) set(key string, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.lru.moveToFront(e.node)
		return
	}
	for s.lru.len >= c.capacity {
		oldest, ok := s.lru.removeOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &entry[V]{value: value, node: s.lru.pushFront(key)}
}

func (c *cache[V]) clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*entry[V])
		s.lru = list{}
		s.mu.Unlock()
	}
}

func (c *cache[V]) stats() CacheStats {
	st := CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
	for _, s := range c.shards {
		s.mu.Lock()
		st.Len += len(s.entries)
		s.mu.Unlock()
	}
	return st
}

// list is a doubly-linked recency list. The head is the most recently
// used key. It is not safe for concurrent use.
type list struct {
	head, tail *node
	len        int
}

type node struct {
	key        string
	prev, next *node
}

func (l *list) pushFront(key string) *node {
	n := &node{key: key, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
	return n
}

func (l *list) moveToFront(n *node) {
	if n == l.head {
		return
	}
	l.unlink(n)
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
}

func (l *list) removeOldest() (string, bool) {
	if l.tail == nil {
		return "", false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

func (l *list) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
