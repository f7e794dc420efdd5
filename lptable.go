package lptable

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// TombstoneKey is the reserved key marking a deleted slot. It is never accepted by Insert.
const TombstoneKey = ""

var (
	// ErrTableFull is returned when a new key is inserted into a table whose live entries fill its capacity
	ErrTableFull = errors.New("hash table full")
	// ErrReservedKey is returned when the tombstone marker is used as a key
	ErrReservedKey = errors.New("reserved key")
	// ErrInvalidCapacity is returned when a table is created with a non-positive capacity
	ErrInvalidCapacity = errors.New("invalid capacity")
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type slot struct {
	state slotState
	key   string
	value string
}

type probeMode uint8

const (
	seekInsertable probeMode = iota
	seekExisting
)

// Dictionary is the minimal string map contract implemented by Table
type Dictionary interface {
	Insert(key, value string) error
	Get(key string) (string, bool)
	Delete(key string)
}

var _ Dictionary = (*Table)(nil)

// Options configures a Table at construction time
type Options struct {
	// Hasher maps keys to their home slot. Defaults to CodePointSum.
	Hasher Hasher
	// Logger receives debug events for rejected operations. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Table is a fixed-capacity string map using open addressing with linear probing.
// Deleted entries leave tombstones so lookups keep probing past them.
// A Table must not be used from multiple goroutines at once.
type Table struct {
	slots      []slot
	capacity   uint64
	count      int
	tombstones int
	hasher     Hasher
	log        zerolog.Logger
}

// Stats is a point-in-time summary of slot usage
type Stats struct {
	Capacity   int
	Len        int
	Tombstones int
	Free       int
}

// New creates a table with the given number of slots using the default hasher
func New(capacity int) (*Table, error) {
	return NewWithOptions(capacity, Options{})
}

// NewWithOptions creates a table with the given number of slots
func NewWithOptions(capacity int, opts Options) (*Table, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("failed to create table with %d slots: %w", capacity, ErrInvalidCapacity)
	}

	hasher := opts.Hasher
	if hasher == nil {
		hasher = CodePointSum
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Table{
		slots:    make([]slot, capacity),
		capacity: uint64(capacity),
		hasher:   hasher,
		log:      logger,
	}, nil
}

// Insert adds or updates a key-value pair.
// Updating an existing key always succeeds, even when the table is at capacity.
func (t *Table) Insert(key, value string) error {
	if key == TombstoneKey {
		t.log.Debug().Int("len", t.count).Msg("rejected insert of reserved key")
		return ErrReservedKey
	}

	idx, ok := t.probe(key, seekInsertable)
	if ok && t.slots[idx].state == slotOccupied {
		t.slots[idx].value = value
		return nil
	}

	if t.count >= len(t.slots) {
		t.log.Debug().Str("key", key).Int("len", t.count).Int("capacity", len(t.slots)).Msg("rejected insert into full table")
		return ErrTableFull
	}
	if !ok {
		// Only reachable if the probe chain holds no free slot while count < capacity.
		return fmt.Errorf("no free slot for key %q: %w", key, ErrTableFull)
	}

	if t.slots[idx].state == slotTombstone {
		t.tombstones--
	}
	t.slots[idx] = slot{state: slotOccupied, key: key, value: value}
	t.count++
	return nil
}

// Get returns the value stored for key and whether it was found
func (t *Table) Get(key string) (string, bool) {
	idx, ok := t.probe(key, seekExisting)
	if !ok {
		return "", false
	}
	return t.slots[idx].value, true
}

// Contains reports whether key is stored in the table
func (t *Table) Contains(key string) bool {
	_, ok := t.probe(key, seekExisting)
	return ok
}

// Delete removes key from the table. Deleting a missing key is a no-op.
func (t *Table) Delete(key string) {
	idx, ok := t.probe(key, seekExisting)
	if !ok {
		return
	}
	t.slots[idx] = slot{state: slotTombstone}
	t.count--
	t.tombstones++
}

// Len returns the number of stored pairs
func (t *Table) Len() int {
	return t.count
}

// Cap returns the fixed number of slots
func (t *Table) Cap() int {
	return len(t.slots)
}

// LoadFactor returns the ratio of stored pairs to slots
func (t *Table) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.slots))
}

// Stats returns the current slot usage
func (t *Table) Stats() Stats {
	return Stats{
		Capacity:   len(t.slots),
		Len:        t.count,
		Tombstones: t.tombstones,
		Free:       len(t.slots) - t.count - t.tombstones,
	}
}

func (t *Table) home(key string) uint64 {
	return t.hasher(key) % t.capacity
}

// probe walks the linear probe chain of key for at most capacity steps.
//
// In seekExisting mode it returns the slot holding key; an empty slot ends the chain.
// In seekInsertable mode it returns the slot holding key if it is on the chain,
// otherwise the first empty or tombstone slot seen.
func (t *Table) probe(key string, mode probeMode) (uint64, bool) {
	idx := t.home(key)
	firstFree, haveFree := uint64(0), false

	for i := uint64(0); i < t.capacity; i++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if mode == seekExisting {
				return 0, false
			}
			if !haveFree {
				return idx, true
			}
			return firstFree, true

		case slotTombstone:
			if mode == seekInsertable && !haveFree {
				firstFree, haveFree = idx, true
			}

		case slotOccupied:
			if s.key == key {
				return idx, true
			}
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	if mode == seekInsertable && haveFree {
		return firstFree, true
	}
	return 0, false
}
