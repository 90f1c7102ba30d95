package cache

import (
	"container/list"
	"context"
	"errors"
	"strings"
	"sync"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// MemoryGeocodeCache is a bounded in-process LRU cache. It is
// caller-owned and explicitly sized; when full, the least recently
// used address is evicted. Safe for concurrent use.
type MemoryGeocodeCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
}

type memoryEntry struct {
	address string
	coords  domain.Coordinates
}

func NewMemoryGeocodeCache(capacity int) (*MemoryGeocodeCache, error) {
	if capacity <= 0 {
		return nil, errors.New("geocode cache: capacity must be positive")
	}
	return &MemoryGeocodeCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}, nil
}

// Fetch cached coordinates for the given addresses.
func (m *MemoryGeocodeCache) GetMany(_ context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]domain.Coordinates)
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if el, ok := m.entries[a]; ok {
			m.order.MoveToFront(el)
			out[a] = el.Value.(*memoryEntry).coords
		}
	}
	return out, nil
}

// Store address -> coordinate mappings, evicting the least recently
// used entries beyond capacity.
func (m *MemoryGeocodeCache) PutMany(_ context.Context, results map[string]domain.Coordinates) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for addr, c := range results {
		if strings.TrimSpace(addr) == "" {
			return errors.New("insert geocode cache: empty address key")
		}

		if el, ok := m.entries[addr]; ok {
			el.Value.(*memoryEntry).coords = c
			m.order.MoveToFront(el)
			continue
		}

		m.entries[addr] = m.order.PushFront(&memoryEntry{address: addr, coords: c})
		if m.order.Len() > m.capacity {
			oldest := m.order.Back()
			m.order.Remove(oldest)
			delete(m.entries, oldest.Value.(*memoryEntry).address)
		}
	}
	return nil
}

// Len reports the number of cached addresses.
func (m *MemoryGeocodeCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

var _ ports.GeocodeCache = (*MemoryGeocodeCache)(nil)
