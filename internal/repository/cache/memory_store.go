package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
)

type memoryKey struct {
	category domain.CacheCategory
	key      string
}

type memoryEntry struct {
	key      memoryKey
	data     []byte
	storedAt time.Time
}

// MemoryStore - URL кеш в памяти с LRU вытеснением
type MemoryStore struct {
	mu         sync.Mutex
	maxEntries int
	items      map[memoryKey]*list.Element
	lruList    *list.List
	now        func() time.Time
}

// NewMemoryStore создает LRU кеш на maxEntries записей
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &MemoryStore{
		maxEntries: maxEntries,
		items:      make(map[memoryKey]*list.Element),
		lruList:    list.New(),
		now:        time.Now,
	}
}

func (c *MemoryStore) GetContent(_ context.Context, key string, category domain.CacheCategory, maxAge time.Duration) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[memoryKey{category: category, key: key}]
	if !ok {
		return nil, false, nil
	}

	ent := elem.Value.(*memoryEntry)
	if c.now().Sub(ent.storedAt) > maxAge {
		return nil, false, nil
	}

	c.lruList.MoveToFront(elem)
	return ent.data, true, nil
}

func (c *MemoryStore) SaveContent(_ context.Context, key string, category domain.CacheCategory, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mk := memoryKey{category: category, key: key}
	if elem, ok := c.items[mk]; ok {
		ent := elem.Value.(*memoryEntry)
		ent.data = data
		ent.storedAt = c.now()
		c.lruList.MoveToFront(elem)
		return nil
	}

	if c.lruList.Len() >= c.maxEntries {
		oldest := c.lruList.Back()
		if oldest != nil {
			delete(c.items, oldest.Value.(*memoryEntry).key)
			c.lruList.Remove(oldest)
		}
	}

	elem := c.lruList.PushFront(&memoryEntry{key: mk, data: data, storedAt: c.now()})
	c.items[mk] = elem
	return nil
}

// Len - число записей
func (c *MemoryStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lruList.Len()
}
