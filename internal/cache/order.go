package cache

import "container/list"

// accessOrder tracks recency of use for stored keys, least recently used at
// the back of the list. The map from key to list element makes Touch, Remove
// and EvictOldest O(1) regardless of cache size; a flat ordered slice would
// degrade each of them to a linear scan-and-splice.
//
// Not safe for concurrent use on its own; LRUCache serializes access.
type accessOrder struct {
	ll    *list.List // Front = most recently used
	index map[string]*list.Element
}

func newAccessOrder() *accessOrder {
	return &accessOrder{
		ll:    list.New(),
		index: make(map[string]*list.Element),
	}
}

// Touch marks key as most recently used, inserting it if unseen.
func (o *accessOrder) Touch(key string) {
	if el, ok := o.index[key]; ok {
		o.ll.MoveToFront(el)
		return
	}
	o.index[key] = o.ll.PushFront(key)
}

// EvictOldest removes and returns the least recently used key.
func (o *accessOrder) EvictOldest() (string, bool) {
	el := o.ll.Back()
	if el == nil {
		return "", false
	}
	key := el.Value.(string)
	o.ll.Remove(el)
	delete(o.index, key)
	return key, true
}

// Remove drops key from the order if present.
func (o *accessOrder) Remove(key string) {
	if el, ok := o.index[key]; ok {
		o.ll.Remove(el)
		delete(o.index, key)
	}
}

// Len returns the number of tracked keys.
func (o *accessOrder) Len() int {
	return o.ll.Len()
}

// Clear drops all tracked keys.
func (o *accessOrder) Clear() {
	o.ll.Init()
	o.index = make(map[string]*list.Element)
}
