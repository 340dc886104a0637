package cache

import (
	"sync"
	"time"
)

// item es una entrada con su vencimiento en UnixNano
type item struct {
	value      interface{}
	expiration int64
}

// Cache es un cache en memoria con TTL por clave. Lo usan los agregados del
// panel de administración; al ser por proceso no necesita invalidación
// distribuida.
type Cache struct {
	items map[string]item
	mu    sync.RWMutex
}

// New crea el cache y lanza la goroutine de limpieza de entradas vencidas
func New() *Cache {
	c := &Cache{
		items: make(map[string]item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			c.DeleteExpired()
		}
	}()

	return c
}

// Set guarda un valor con el TTL dado
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item{
		value:      value,
		expiration: time.Now().Add(ttl).UnixNano(),
	}
}

// Get retorna el valor si existe y no venció
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().UnixNano() > it.expiration {
		return nil, false
	}
	return it.value, true
}

// Delete elimina una clave
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired purga todas las entradas vencidas
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.expiration {
			delete(c.items, k)
		}
	}
}

// Clear vacía el cache completo
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]item)
}
