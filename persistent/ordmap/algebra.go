package ordmap

import (
	"github.com/npillmayer/ordcoll/compare"
)

// Union returns a map with the entries of both m and other. For keys present
// in both maps, the value from other wins.
func (m Map[K, V]) Union(other Map[K, V]) Map[K, V] {
	m.checkComparator(other, "union")
	if other.Len() == 0 {
		return m
	}
	if m.tree.Compare() == nil { // zero value
		return other
	}
	return FoldL(other, m, func(acc Map[K, V], k K, v V) Map[K, V] {
		return acc.Insert(k, v)
	})
}

// Intersect returns a map with the keys present in both m and other, associated
// with their values from other.
func (m Map[K, V]) Intersect(other Map[K, V]) Map[K, V] {
	m.checkComparator(other, "intersect")
	return FoldL(other, m.accumulator(other), func(acc Map[K, V], k K, v V) Map[K, V] {
		if m.Has(k) {
			return acc.Insert(k, v)
		}
		return acc
	})
}

// Difference returns the symmetric difference of m and other: a map with the keys
// present in exactly one of both maps, together with their original values.
func (m Map[K, V]) Difference(other Map[K, V]) Map[K, V] {
	m.checkComparator(other, "difference")
	onlyIn := func(probe Map[K, V]) func(Map[K, V], K, V) Map[K, V] {
		return func(acc Map[K, V], k K, v V) Map[K, V] {
			if probe.Has(k) {
				return acc
			}
			return acc.Insert(k, v)
		}
	}
	diff := FoldL(m, m.accumulator(other), onlyIn(other))
	return FoldL(other, diff, onlyIn(m))
}

// accumulator returns an empty map with the comparator and options of m, or of
// other if m is the zero value.
func (m Map[K, V]) accumulator(other Map[K, V]) Map[K, V] {
	if m.tree.Compare() == nil {
		return Map[K, V]{tree: other.tree.Empty()}
	}
	return Map[K, V]{tree: m.tree.Empty()}
}

func (m Map[K, V]) checkComparator(other Map[K, V], op string) {
	if m.tree.IsQuiet() || m.tree.Compare() == nil || other.tree.Compare() == nil {
		return
	}
	if !compare.Same(m.tree.Compare(), other.tree.Compare()) {
		tracer().Infof("warning: %s of maps with different comparators; "+
			"the result may be inconsistent. Consider using the same comparator for both maps", op)
	}
}
