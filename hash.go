package lptable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrUnknownHasher is returned by HasherByName for names it does not know
var ErrUnknownHasher = errors.New("unknown hasher")

// Hasher maps a key to a 64-bit hash. The table reduces it modulo its capacity.
type Hasher func(key string) uint64

// CodePointSum hashes a key to the sum of its Unicode code points.
// Anagrams collide, which makes it handy for exercising the probe chain.
func CodePointSum(key string) uint64 {
	var sum uint64
	for _, r := range key {
		sum += uint64(r)
	}
	return sum
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNV1a computes a 32-bit FNV-1a hash of the key bytes
func FNV1a(key string) uint64 {
	hash := uint32(offset32)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return uint64(hash)
}

// XXHash computes the 64-bit xxHash of the key
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// HasherByName resolves "codepoint", "fnv1a" or "xxhash" to its Hasher
func HasherByName(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "codepoint":
		return CodePointSum, nil
	case "fnv1a", "fnv":
		return FNV1a, nil
	case "xxhash", "xxh64":
		return XXHash, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownHasher)
}
