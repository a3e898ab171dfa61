package memory

import (
	"container/list"
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/Gunvolt24/greeting_processor/pkg/metrics"
)

var _ ports.LogPageCache = (*LRUCacheTTL)(nil)

type entry struct {
	key       string
	entries   []domain.LogEntry
	expiresAt time.Time
}

// LRUCacheTTL — страницы журнала по ключу limit:offset.
// TTL отсчитывается от Set и на Get не продлевается: журнал растёт, страница устаревает.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, limit, offset int) ([]domain.LogEntry, bool) {
	key := pageKey(limit, offset)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return clonePage(ent.entries), true
}

func (c *LRUCacheTTL) Set(_ context.Context, limit, offset int, entries []domain.LogEntry) error {
	key := pageKey(limit, offset)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.entries = clonePage(entries)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		entries:   clonePage(entries),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// ------вспомогательные функции------

func pageKey(limit, offset int) string {
	return strconv.Itoa(limit) + ":" + strconv.Itoa(offset)
}

func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет просроченные элементы с хвоста до первого актуального.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

// clonePage — копия страницы, чтобы изменения снаружи не попадали в кэш.
func clonePage(entries []domain.LogEntry) []domain.LogEntry {
	if entries == nil {
		return nil
	}
	return append([]domain.LogEntry(nil), entries...)
}
