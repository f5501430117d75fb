package types

import (
	"sort"
	"sync"
)

// SyncMap is a string keyed map safe for concurrent use.
type SyncMap struct {
	data map[string]interface{}
	lock *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return &SyncMap{
		data: make(map[string]interface{}),
		lock: &sync.RWMutex{},
	}
}

func (wmap *SyncMap) GetGeneric(id string) interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return wmap.data[id]
}

func (wmap *SyncMap) Set(id string, item interface{}) {
	wmap.lock.Lock()
	wmap.data[id] = item
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// ToArrayGeneric returns the items sorted by key.
func (wmap *SyncMap) ToArrayGeneric() []interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	keys := make([]string, 0, len(wmap.data))
	for key := range wmap.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	res := make([]interface{}, len(keys))
	for i, key := range keys {
		res[i] = wmap.data[key]
	}

	return res
}
