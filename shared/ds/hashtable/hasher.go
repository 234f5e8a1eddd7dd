package hashtable

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a raw 64-bit hash. It must be deterministic: the same
// key yields the same hash on every call. Distribution quality decides chain
// lengths; a clustering hasher degrades every operation toward O(n).
type Hasher[K comparable] func(K) uint64

// HashString hashes a string key with xxhash.
func HashString(key string) uint64 { return xxhash.Sum64String(key) }

// HashInt hashes an int key by xxhashing its little-endian bytes.
func HashInt(key int) uint64 { return hashUint64(uint64(key)) }

// HashInt64 hashes an int64 key.
func HashInt64(key int64) uint64 { return hashUint64(uint64(key)) }

// HashUint64 hashes a uint64 key.
func HashUint64(key uint64) uint64 { return hashUint64(key) }

func hashUint64(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:])
}

// defaultHasher returns the built-in hasher for K, or nil when K has none.
func defaultHasher[K comparable]() Hasher[K] {
	var zero K
	var h any
	switch any(zero).(type) {
	case string:
		h = Hasher[string](HashString)
	case int:
		h = Hasher[int](HashInt)
	case int64:
		h = Hasher[int64](HashInt64)
	case uint64:
		h = Hasher[uint64](HashUint64)
	default:
		return nil
	}
	return h.(Hasher[K])
}
