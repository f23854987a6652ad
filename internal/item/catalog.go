package item

import (
	"sync"

	"github.com/osse101/MudShop_Go/internal/domain"
)

// Catalog is the world's item table (game_items). Templates are keyed by
// catalog key; instantiated items are inserted by uid.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]domain.Object
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]domain.Object)}
}

// Get returns a copy of the record stored under key
func (c *Catalog) Get(key string) (domain.Object, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[key]
	if !ok {
		return domain.Object{}, false
	}
	return it.Clone(), true
}

// Put stores a copy of the record under key
func (c *Catalog) Put(key string, it domain.Object) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = it.Clone()
}

// Register inserts a freshly instantiated item by its uid
func (c *Catalog) Register(it domain.Object) {
	if it.UID == "" {
		return
	}
	c.Put(it.UID, it)
}

// Len returns the number of records
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
