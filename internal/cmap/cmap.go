// Package cmap provides a concurrent map with type checking at compile time.
package cmap

import (
	"sync"
)

type ConcurrentMap[T comparable, S any] struct {
	m  map[T]S
	mu sync.RWMutex
}

func New[T comparable, S any]() *ConcurrentMap[T, S] {
	return &ConcurrentMap[T, S]{m: make(map[T]S)}
}

func (c *ConcurrentMap[T, S]) Remove(key T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

func (c *ConcurrentMap[T, S]) Get(key T) (S, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.m[key]
	return value, ok
}

func (c *ConcurrentMap[T, S]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Upsert calls f with the current element, if any, and stores what it returns.
// The whole exchange happens under the write lock. If f fails the map is left
// untouched and the error is returned as is.
func (c *ConcurrentMap[T, S]) Upsert(
	key T, f func(element S, exists bool) (S, error),
) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.m[key]
	value, err := f(current, ok)
	if err != nil {
		return err
	}
	c.m[key] = value
	return nil
}
