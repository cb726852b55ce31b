/*
Package ordset implements a persistent ordered set.

A Set holds keys sorted according to a comparator given at creation time. Sets are
immutable: Insert and Remove return a new set and leave the receiver unchanged.

    s := ordset.FromOrdered([]int{5, 3, 8, 3, 1})
    s = s.Remove(3)
    fmt.Println(s.ToSlice())   // [1 5 8]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordcoll.ordset'.
func tracer() tracing.Trace {
	return tracing.Select("ordcoll.ordset")
}
