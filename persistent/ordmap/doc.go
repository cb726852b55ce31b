/*
Package ordmap implements a persistent ordered map.

A Map associates keys with values and keeps its entries sorted by key, according
to a comparator given at creation time. Maps are immutable: Insert and Remove
return a new map and leave the receiver unchanged, sharing most of the underlying
red-black tree between both.

    m := ordmap.EmptyOrdered[string, int]()
    m = m.Insert("b", 2).Insert("a", 1)
    for k, v := range m.All() {
        fmt.Println(k, v)   // a 1, then b 2
    }

Maps are safe for concurrent use by multiple goroutines without further
synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordcoll.ordmap'.
func tracer() tracing.Trace {
	return tracing.Select("ordcoll.ordmap")
}
