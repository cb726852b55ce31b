/*
Package persistent groups immutable persistent data structures.
They can be copied and modified efficiently, leaving the original unchanged.

*Persistent* immutable data structures offer structural sharing: an updated
version shares every node not on the path to the change with its predecessor.
Making a modified copy therefore costs time and space logarithmic in the size
of the structure. As nodes are never mutated, values may be read from any number
of goroutines without locking.

Sub-packages

■ rbtree: an immutable red-black tree, the engine below the ordered containers.

■ ordmap: a persistent map with keys ordered by a comparator.

■ ordset: a persistent set with keys ordered by a comparator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
