package pave

import (
	"sync"
)

// BindingCache provides thread-safe caching of binding data per source
// instance, keyed by the source's address. Entries live only for the
// duration of one Parse call on that source.
type BindingCache[S any, C any] struct {
	cache sync.Map // map[*S]*CacheEntry[C]
}

// CacheEntry holds the cached data for a specific source instance
type CacheEntry[C any] struct {
	data  C
	mutex sync.RWMutex
}

func NewBindingCache[S any, C any]() *BindingCache[S, C] {
	return &BindingCache[S, C]{}
}

// GetOrCreate returns the cache entry for the source, creating one if it
// doesn't exist. The factory runs at most once per source instance, even
// under concurrent access.
func (bc *BindingCache[S, C]) GetOrCreate(source *S, factory func(*S) C) *CacheEntry[C] {
	if v, ok := bc.cache.Load(source); ok {
		return v.(*CacheEntry[C])
	}

	newEntry := &CacheEntry[C]{}
	// Hold the write lock until data is ready so racing readers wait on it
	newEntry.mutex.Lock()

	actual, loaded := bc.cache.LoadOrStore(source, newEntry)
	if loaded {
		newEntry.mutex.Unlock()
		return actual.(*CacheEntry[C])
	}

	newEntry.data = factory(source)
	newEntry.mutex.Unlock()
	return newEntry
}

func (bc *BindingCache[S, C]) Get(source *S) (*CacheEntry[C], bool) {
	if v, ok := bc.cache.Load(source); ok {
		return v.(*CacheEntry[C]), true
	}
	return nil, false
}

func (bc *BindingCache[S, C]) Delete(source *S) {
	bc.cache.Delete(source)
}

// Len counts live entries.
func (bc *BindingCache[S, C]) Len() int {
	n := 0
	bc.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// ReadData provides read access to the cached data
func (ce *CacheEntry[C]) ReadData(fn func(data C)) {
	ce.mutex.RLock()
	defer ce.mutex.RUnlock()
	fn(ce.data)
}

// GetData returns a copy of the cached data
func (ce *CacheEntry[C]) GetData() C {
	ce.mutex.RLock()
	defer ce.mutex.RUnlock()
	return ce.data
}
