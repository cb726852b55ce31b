package ordcoll

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is an entry of an ordered map, i.e. a key together with its associated value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// P is a shortcut for creating a pair.
func P[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Decompose returns key and value of a pair.
func (p Pair[K, V]) Decompose() (K, V) {
	return p.Key, p.Value
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v:%v", p.Key, p.Value)
}

// --- Unit ------------------------------------------------------------------

// Unit is the value type of sets: keys are associated with nothing.
type Unit struct{}

// Key projects a pair onto its key.
func Key[K, V any](p Pair[K, V]) K {
	return p.Key
}

// Value projects a pair onto its value.
func Value[K, V any](p Pair[K, V]) V {
	return p.Value
}
