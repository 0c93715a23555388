package pair

import (
	"cmp"
	"maps"
	"slices"
)

// FromMap returns one Pair per entry of m, in unspecified order.
func FromMap[K comparable, V any](m map[K]V) ([]Pair[K, V], error) {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		p, err := Of(k, v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// FromSortedMap is like FromMap but orders the pairs by key.
func FromSortedMap[K cmp.Ordered, V any](m map[K]V) ([]Pair[K, V], error) {
	pairs := make([]Pair[K, V], 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		p, err := Of(k, m[k])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// ToMap collects pairs into a map keyed by the left component. For
// duplicate keys the last pair wins.
func ToMap[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.left] = p.right
	}
	return m
}
