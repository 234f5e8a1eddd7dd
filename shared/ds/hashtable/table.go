package hashtable

import (
	"errors"
	"fmt"
	"math/rand"
)

// Defaults applied when Config fields are left at their zero value.
const (
	DefaultCapacity   = 8
	DefaultMaxLoad    = 0.75
	DefaultSeed       = 123
	universalPrime    = 2147483647 // 2^31 - 1, modulo step of the universal hash
	universalHashMask = 0x7FFFFFFF
)

var (
	ErrNotFound      = errors.New("hashtable: key not found")
	ErrBadCapacity   = errors.New("hashtable: initial capacity must be positive")
	ErrBadLoadFactor = errors.New("hashtable: max load factor must be in (0, 1]")
	ErrNoHasher      = errors.New("hashtable: no default hasher for key type")
)

// -----------------------------------------------------------------------------
// Structure: Entry / Bucket
// -----------------------------------------------------------------------------

type entry[K comparable, V any] struct {
	key K
	val V
}

// -----------------------------------------------------------------------------
// Structure: Table
// -----------------------------------------------------------------------------

// Table is a chaining hash table: an array of buckets where every bucket is a
// slice of entries that hashed to the same index. Lookups scan the chain
// linearly, so chain length (driven by hasher quality and load factor) is the
// whole performance story.
//
// Bucket index: ((a*h(key) + b) mod p) mod capacity, where a and b are drawn
// from a seeded RNG and redrawn on every resize. Capacity is always a power
// of two.
//
// Single-writer only. Not safe for concurrent use.
type Table[K comparable, V any] struct {
	buckets [][]entry[K, V]
	size    int
	maxLoad float64
	hasher  Hasher[K]

	rng  *rand.Rand
	a, b uint64

	resizes int
	obs     Observer
}

// Config carries construction-time knobs. Zero values mean defaults; explicit
// invalid values are rejected by New.
type Config[K comparable] struct {
	// InitialCapacity is the starting bucket count, rounded up to a power of
	// two. 0 means DefaultCapacity.
	InitialCapacity int

	// MaxLoadFactor is the size/capacity ratio above which the table grows.
	// Must be in (0, 1]. 0 means DefaultMaxLoad.
	MaxLoadFactor float64

	// Seed drives the universal-hash parameters (a, b). Same seed, same key
	// set -> same bucket layout. 0 means DefaultSeed.
	Seed int64

	// Hasher maps a key to a raw hash. Nil picks a built-in hasher for
	// string/int/int64/uint64 keys; other key types must supply one.
	Hasher Hasher[K]

	// Observer receives mutation callbacks. Nil disables instrumentation.
	Observer Observer
}

// Observer hooks table mutations, e.g. for metrics export. All callbacks run
// synchronously on the mutating goroutine.
type Observer interface {
	OnInsert(size, capacity int)
	OnDelete(size, capacity int)
	OnResize(oldCap, newCap, moved int)
}

// New builds an empty table from cfg.
func New[K comparable, V any](cfg Config[K]) (*Table[K, V], error) {
	if cfg.InitialCapacity < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrBadCapacity, cfg.InitialCapacity)
	}
	if cfg.MaxLoadFactor < 0 || cfg.MaxLoadFactor > 1 {
		return nil, fmt.Errorf("%w, got %g", ErrBadLoadFactor, cfg.MaxLoadFactor)
	}

	capacity := cfg.InitialCapacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	realCap := 1
	for realCap < capacity {
		realCap <<= 1
	}

	maxLoad := cfg.MaxLoadFactor
	if maxLoad == 0 {
		maxLoad = DefaultMaxLoad
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = defaultHasher[K]()
		if hasher == nil {
			return nil, fmt.Errorf("%w %T", ErrNoHasher, *new(K))
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	t := &Table[K, V]{
		buckets: make([][]entry[K, V], realCap),
		maxLoad: maxLoad,
		hasher:  hasher,
		rng:     rand.New(rand.NewSource(seed)),
		obs:     cfg.Observer,
	}
	t.reseed()
	return t, nil
}

// reseed redraws the universal-hash parameters. Called at construction and on
// every resize so clustering does not survive a rehash.
func (t *Table[K, V]) reseed() {
	t.a = 1 + uint64(t.rng.Int63n(universalPrime-1))
	t.b = uint64(t.rng.Int63n(universalPrime))
}

// index maps a key into [0, m) for a bucket array of length m (power of two).
func (t *Table[K, V]) index(key K, m int) int {
	h := t.hasher(key) & universalHashMask
	return int(((t.a*h + t.b) % universalPrime) & uint64(m-1))
}

// locate returns the bucket index and the position of key inside that bucket,
// or pos == -1 when absent.
func (t *Table[K, V]) locate(key K) (idx, pos int) {
	idx = t.index(key, len(t.buckets))
	for i := range t.buckets[idx] {
		if t.buckets[idx][i].key == key {
			return idx, i
		}
	}
	return idx, -1
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// Set inserts key with val, or overwrites the existing value in place. An
// overwrite never changes size and never triggers a resize. After a real
// insert the table grows until the load factor is back within the configured
// maximum, so size/capacity <= MaxLoadFactor holds whenever Set returns.
func (t *Table[K, V]) Set(key K, val V) {
	idx, pos := t.locate(key)
	if pos >= 0 {
		t.buckets[idx][pos].val = val
		return
	}

	t.buckets[idx] = append(t.buckets[idx], entry[K, V]{key: key, val: val})
	t.size++

	// A single doubling is enough for thresholds >= 1/capacity; tiny
	// thresholds can need several before the bound holds again.
	for t.LoadFactor() > t.maxLoad {
		t.resize()
	}
	if t.obs != nil {
		t.obs.OnInsert(t.size, len(t.buckets))
	}
}

// Get returns the value stored for key, or ErrNotFound.
func (t *Table[K, V]) Get(key K) (V, error) {
	idx, pos := t.locate(key)
	if pos < 0 {
		var zero V
		return zero, fmt.Errorf("get %v: %w", key, ErrNotFound)
	}
	return t.buckets[idx][pos].val, nil
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, pos := t.locate(key)
	return pos >= 0
}

// Delete removes key and returns the value it held, or ErrNotFound. The table
// never shrinks; an emptied bucket stays in the array.
func (t *Table[K, V]) Delete(key K) (V, error) {
	idx, pos := t.locate(key)
	if pos < 0 {
		var zero V
		return zero, fmt.Errorf("delete %v: %w", key, ErrNotFound)
	}

	bucket := t.buckets[idx]
	removed := bucket[pos].val
	last := len(bucket) - 1
	bucket[pos] = bucket[last]
	bucket[last] = entry[K, V]{}
	t.buckets[idx] = bucket[:last]
	t.size--

	if t.obs != nil {
		t.obs.OnDelete(t.size, len(t.buckets))
	}
	return removed, nil
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int { return t.size }

// Capacity returns the current bucket count.
func (t *Table[K, V]) Capacity() int { return len(t.buckets) }

// LoadFactor returns size/capacity.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Range calls fn for every entry until fn returns false. Iteration order is
// unspecified. The table must not be mutated during Range.
func (t *Table[K, V]) Range(fn func(key K, val V) bool) {
	for i := range t.buckets {
		for j := range t.buckets[i] {
			if !fn(t.buckets[i][j].key, t.buckets[i][j].val) {
				return
			}
		}
	}
}

// resize doubles the bucket array and re-buckets every entry under freshly
// drawn hash parameters. The new array is fully built before it replaces the
// old one. Cost is O(size); amortized O(1) per insert by the usual doubling
// argument.
func (t *Table[K, V]) resize() {
	oldCap := len(t.buckets)
	newCap := oldCap * 2

	t.reseed()

	fresh := make([][]entry[K, V], newCap)
	moved := 0
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			idx := t.index(e.key, newCap)
			fresh[idx] = append(fresh[idx], e)
			moved++
		}
	}
	t.buckets = fresh
	t.resizes++

	if t.obs != nil {
		t.obs.OnResize(oldCap, newCap, moved)
	}
}
