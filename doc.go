/*
Package lptable provides a fixed-capacity string map using open addressing.

A Table holds a fixed number of slots chosen at construction. Keys are placed
at their home slot (hash modulo capacity) and collisions are resolved by
linear probing with a step of one. Deleting a key leaves a tombstone so that
lookups for keys further along the same probe chain still find them; a later
insert may reuse the tombstone.

Basic usage:

	import "github.com/theflywheel/lptable"

	// Prime capacities spread the default hash more evenly
	t, err := lptable.New(31)
	if err != nil {
		log.Fatal(err)
	}

	if err := t.Insert("key1", "value1"); err != nil {
		log.Fatal(err)
	}

	if v, ok := t.Get("key1"); ok {
		fmt.Println("Value:", v)
	}

	t.Delete("key1")

Features:

  - Fixed capacity, no resizing: callers size the table up front
  - Three-state slots (empty, tombstone, occupied)
  - Every probe is bounded by the capacity, so operations always terminate
  - Pluggable hashing: code point sum (default), FNV-1a or xxHash
  - Optional zerolog logger for rejected operations

Errors:

Insert reports ErrTableFull once the number of stored pairs reaches the
capacity and the key is new; updating an existing key still succeeds. The
empty string is reserved as the tombstone marker and Insert rejects it with
ErrReservedKey. Get and Delete never fail: a missing key is reported as
absent or ignored.

A Table is not safe for concurrent use.
*/
package lptable
