package al

import (
	"cmp"
	"math/rand"
)

// pivotFunc picks a pivot index inside [lo, hi].
type pivotFunc func(lo, hi int) int

// QuickSortRandom sorts data in place with a pivot drawn uniformly at random
// from each sub-range. Expected O(n log n) for every input, sorted and
// reverse-sorted included, because the pivot choice is independent of input
// order. Not stable.
func QuickSortRandom[T cmp.Ordered](data []T) {
	rng := rand.New(rand.NewSource(rand.Int63()))
	quickSort(data, 0, len(data)-1, randomPivot(rng))
}

// QuickSortRandomSeeded is QuickSortRandom with a fixed RNG seed, for
// reproducible pivot sequences.
func QuickSortRandomSeeded[T cmp.Ordered](data []T, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	quickSort(data, 0, len(data)-1, randomPivot(rng))
}

// QuickSortFirst sorts data in place, always taking the first element of the
// current sub-range as pivot. Degrades to O(n^2) on sorted or reverse-sorted
// input (every split is maximally unbalanced) but remains correct.
func QuickSortFirst[T cmp.Ordered](data []T) {
	quickSort(data, 0, len(data)-1, func(lo, hi int) int { return lo })
}

// SortedRandom returns a sorted copy of data, leaving data untouched.
func SortedRandom[T cmp.Ordered](data []T) []T {
	out := append([]T(nil), data...)
	QuickSortRandom(out)
	return out
}

// SortedFirst returns a sorted copy of data using the first-element pivot.
func SortedFirst[T cmp.Ordered](data []T) []T {
	out := append([]T(nil), data...)
	QuickSortFirst(out)
	return out
}

// IsSorted reports whether data is non-decreasing.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func randomPivot(rng *rand.Rand) pivotFunc {
	return func(lo, hi int) int { return lo + rng.Intn(hi-lo+1) }
}

// quickSort recurses on the smaller partition and loops on the larger one,
// keeping stack depth O(log n) even under worst-case splits.
func quickSort[T cmp.Ordered](data []T, lo, hi int, pivot pivotFunc) {
	for lo < hi {
		lt, gt := partition3Way(data, lo, hi, pivot(lo, hi))

		if lt-lo < hi-gt {
			quickSort(data, lo, lt-1, pivot)
			lo = gt + 1
		} else {
			quickSort(data, gt+1, hi, pivot)
			hi = lt - 1
		}
	}
}

// partition3Way is a Dutch-national-flag partition around data[p]. On return
// data[lo:lt] < pivot, data[lt:gt+1] == pivot, data[gt+1:hi+1] > pivot, and
// (lt, gt) bound the equal region. Runs of duplicates therefore collapse into
// the middle region in a single pass.
func partition3Way[T cmp.Ordered](data []T, lo, hi, p int) (lt, gt int) {
	pivot := data[p]
	data[lo], data[p] = data[p], data[lo]

	lt = lo
	i := lo + 1
	gt = hi

	for i <= gt {
		switch {
		case data[i] < pivot:
			lt++
			data[lt], data[i] = data[i], data[lt]
			i++
		case data[i] > pivot:
			data[i], data[gt] = data[gt], data[i]
			gt--
			// the element swapped into i is unprocessed, do not advance
		default:
			i++
		}
	}

	data[lo], data[lt] = data[lt], data[lo]
	return lt, gt
}
