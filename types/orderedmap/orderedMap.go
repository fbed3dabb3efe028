// Package orderedmap provides a typed, insertion-ordered map.
//
// The storage is github.com/wk8/go-ordered-map; this package only adds type safety and the
// Front/Back iteration style used throughout commando.
package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap definition data is stored in insertion order
type OrderedMap[K comparable, V any] struct {
	store *wk8.OrderedMap
}

// Iterator starting at OrderedMap.Front or OrderedMap.Back
type Iterator[K comparable, V any] struct {
	Key     *K
	Value   V
	forward bool
	pair    *wk8.Pair
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{store: wk8.New()}
}

// Set stores val under key. Overwriting a key keeps its original position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.store.Set(key, val)
}

// Get returns the value stored under key
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, found := o.store.Get(key)
	if !found {
		var zero V
		return zero, false
	}

	val, _ := v.(V)

	return val, true
}

// Has is true when key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, found := o.store.Get(key)

	return found
}

// Delete removes key - deleting a missing key is a no-op
func (o *OrderedMap[K, V]) Delete(key K) {
	o.store.Delete(key)
}

// Count returns the number of entries
func (o *OrderedMap[K, V]) Count() int {
	return o.store.Len()
}

// Keys returns all keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.store.Len())
	for p := o.store.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key.(K))
	}

	return keys
}

// Front returns an iterator positioned on the oldest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	return newIterator[K, V](o.store.Oldest(), true)
}

// Back returns an iterator positioned on the newest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Iterator[K, V] {
	return newIterator[K, V](o.store.Newest(), false)
}

// Next advances the iterator and returns nil once the map is exhausted
func (n *Iterator[K, V]) Next() *Iterator[K, V] {
	if n.forward {
		return newIterator[K, V](n.pair.Next(), true)
	}

	return newIterator[K, V](n.pair.Prev(), false)
}

func newIterator[K comparable, V any](pair *wk8.Pair, forward bool) *Iterator[K, V] {
	if pair == nil {
		return nil
	}
	key := pair.Key.(K)
	// nil values do not satisfy a type assertion, even to an interface type
	value, _ := pair.Value.(V)

	return &Iterator[K, V]{
		Key:     &key,
		Value:   value,
		forward: forward,
		pair:    pair,
	}
}
