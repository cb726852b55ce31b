/*
Package compare provides comparator functions for ordered collections.

A comparator is a three-way comparison: it returns a negative number if a < b,
zero if a and b are equal, and a positive number if a > b. Comparators must
implement a total order over the keys of a collection.
*/
package compare

import (
	"reflect"
	"runtime"
	"strings"

	"golang.org/x/exp/constraints"
)

// Func is a three-way comparator over keys of type K.
type Func[K any] func(a, b K) int

// Ordered compares values of a naturally ordered type.
//
// For floating point types NaN is treated as the unique greatest value, comparing
// equal only to itself. This makes NaN usable as a key: it sorts after +Inf.
func Ordered[K constraints.Ordered](a, b K) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case b < a:
		return 1
	}
	return 0
}

// isNaN is true only for floating point NaNs.
func isNaN[K constraints.Ordered](x K) bool {
	return x != x
}

// Reverse returns a comparator for the inverse order of f.
func Reverse[K any](f Func[K]) Func[K] {
	return func(a, b K) int {
		return f(b, a)
	}
}

// natural holds one instantiation of Ordered per predeclared ordered type,
// created outside of any generic function. Function values of Ordered taken
// inside a generic function body get a code pointer of their own.
var natural = map[reflect.Type]any{
	reflect.TypeFor[int]():     Func[int](Ordered[int]),
	reflect.TypeFor[int8]():    Func[int8](Ordered[int8]),
	reflect.TypeFor[int16]():   Func[int16](Ordered[int16]),
	reflect.TypeFor[int32]():   Func[int32](Ordered[int32]),
	reflect.TypeFor[int64]():   Func[int64](Ordered[int64]),
	reflect.TypeFor[uint]():    Func[uint](Ordered[uint]),
	reflect.TypeFor[uint8]():   Func[uint8](Ordered[uint8]),
	reflect.TypeFor[uint16]():  Func[uint16](Ordered[uint16]),
	reflect.TypeFor[uint32]():  Func[uint32](Ordered[uint32]),
	reflect.TypeFor[uint64]():  Func[uint64](Ordered[uint64]),
	reflect.TypeFor[uintptr](): Func[uintptr](Ordered[uintptr]),
	reflect.TypeFor[float32](): Func[float32](Ordered[float32]),
	reflect.TypeFor[float64](): Func[float64](Ordered[float64]),
	reflect.TypeFor[string]():  Func[string](Ordered[string]),
}

// Natural returns Ordered for K. Use it instead of Ordered[K] within generic
// code: the result is recognized by Same as identical to Ordered[K] written
// anywhere else.
func Natural[K constraints.Ordered]() Func[K] {
	if f, ok := natural[reflect.TypeFor[K]()].(Func[K]); ok {
		return f
	}
	return Ordered[K]
}

// Same reports whether f and g are the same comparator.
//
// Go functions are not comparable, so this is a best-effort check on the code
// pointer: two closures created from the same function literal are reported as
// the same, even if they capture different state. Different instantiations of
// a generic function, e.g. Ordered[K] within generic code, are matched by name.
// Use it for diagnostics only.
func Same[K any](f, g Func[K]) bool {
	if f == nil || g == nil {
		return f == nil && g == nil
	}
	pf, pg := reflect.ValueOf(f).Pointer(), reflect.ValueOf(g).Pointer()
	if pf == pg {
		return true
	}
	nf, ng := funcName(pf), funcName(pg)
	return nf != "" && nf == ng
}

// funcName returns the name of the function at pc without type arguments and
// without the suffix of method value wrappers.
func funcName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.Index(name, "["); i >= 0 {
		if j := strings.LastIndex(name, "]"); j > i {
			name = name[:i] + name[j+1:]
		}
	}
	return strings.TrimSuffix(name, "-fm")
}
