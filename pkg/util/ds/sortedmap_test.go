package ds

import (
	"slices"
	"testing"
)

func TestSortedMap_SetGet(t *testing.T) {
	sm := MakeSortedMap[int]()
	sm.Set("b", 2)
	sm.Set("a", 1)
	if v, ok := sm.Get("a"); !ok || v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	if v, ok := sm.Get("c"); ok || v != 0 {
		t.Errorf("expected missing key, got %d", v)
	}
}

func TestSortedMap_Order(t *testing.T) {
	sm := MakeSortedMap[string]()
	for _, k := range []string{"zoomIn", "bounce", "fadeIn"} {
		sm.Set(k, k)
	}
	if keys := sm.Keys(); !slices.Equal(keys, []string{"bounce", "fadeIn", "zoomIn"}) {
		t.Errorf("keys not sorted: %v", keys)
	}
	var seen []string
	sm.Each(func(key string, value string) {
		seen = append(seen, value)
	})
	if !slices.Equal(seen, []string{"bounce", "fadeIn", "zoomIn"}) {
		t.Errorf("Each not in order: %v", seen)
	}
}

func TestSortedMap_SetUnlessDelete(t *testing.T) {
	sm := MakeSortedMap[int]()
	if !sm.SetUnless("a", 1) {
		t.Errorf("expected first SetUnless to succeed")
	}
	if sm.SetUnless("a", 2) {
		t.Errorf("expected second SetUnless to fail")
	}
	sm.Delete("a")
	if sm.Len() != 0 {
		t.Errorf("expected empty map, got %d", sm.Len())
	}
}
