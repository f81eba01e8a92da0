// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package ds

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
)

// a SortedMap is a string keyed map that iterates in key order (safe for concurrent use)

type SortedMap[T any] struct {
	lock *sync.Mutex
	tm   *treemap.Map
}

func MakeSortedMap[T any]() *SortedMap[T] {
	return &SortedMap[T]{
		lock: &sync.Mutex{},
		tm:   treemap.NewWithStringComparator(),
	}
}

func (sm *SortedMap[T]) Set(key string, value T) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	sm.tm.Put(key, value)
}

// SetUnless sets the value only if the key is not already present
func (sm *SortedMap[T]) SetUnless(key string, value T) bool {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	if _, found := sm.tm.Get(key); found {
		return false
	}
	sm.tm.Put(key, value)
	return true
}

func (sm *SortedMap[T]) Get(key string) (T, bool) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	v, found := sm.tm.Get(key)
	if !found {
		var zero T
		return zero, false
	}
	return v.(T), true
}

func (sm *SortedMap[T]) Delete(key string) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	sm.tm.Remove(key)
}

func (sm *SortedMap[T]) Len() int {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	return sm.tm.Size()
}

func (sm *SortedMap[T]) Keys() []string {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	rtn := make([]string, 0, sm.tm.Size())
	for _, k := range sm.tm.Keys() {
		rtn = append(rtn, k.(string))
	}
	return rtn
}

// Each calls fn in key order.  fn must not modify the map.
func (sm *SortedMap[T]) Each(fn func(key string, value T)) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	sm.tm.Each(func(k any, v any) {
		fn(k.(string), v.(T))
	})
}
