/*
Package ordcoll provides persistent (immutable) ordered collections: an ordered map
and an ordered set, both backed by a red-black tree with structural sharing.

Every “modification” of a collection returns a new collection, leaving the original
unchanged. Untouched subtrees are shared between the old and the new incarnation, so
copies are cheap in terms of space- and time-complexity. Immutable collections are
inherently safe for concurrent readers.

Sub-packages:

   compare               // comparator functions, incl. a NaN-aware natural order
   maybe                 // an option type for absent values
   persistent/rbtree     // the red-black tree engine and in-order iterators
   persistent/ordmap     // ordered map of key/value pairs
   persistent/ordset     // ordered set of keys

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordcoll
