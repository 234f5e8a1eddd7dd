package hashtable

// Stats is a point-in-time snapshot of table shape. UsedBuckets and MaxChain
// are the numbers that expose hasher quality: a clustering hasher shows few
// used buckets and one long chain.
type Stats struct {
	Size        int
	Capacity    int
	LoadFactor  float64
	Resizes     int
	UsedBuckets int
	MaxChain    int
}

// Stats walks the bucket array and returns a snapshot. O(capacity).
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.buckets),
		LoadFactor: t.LoadFactor(),
		Resizes:    t.resizes,
	}
	for i := range t.buckets {
		n := len(t.buckets[i])
		if n == 0 {
			continue
		}
		s.UsedBuckets++
		if n > s.MaxChain {
			s.MaxChain = n
		}
	}
	return s
}
