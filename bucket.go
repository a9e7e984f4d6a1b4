package hashring

const (
	// BucketCount is the number of slots in the discretized bucket table.
	BucketCount = 1024

	// bucketInterval spaces the sample points evenly over the 32-bit
	// circle: 2^32 / BucketCount.
	bucketInterval = 1 << 22
)

// bucketTable returns the cached bucket table, building it on first use
// after a mutation by resolving one evenly spaced sample point per slot.
func (r *Ring) bucketTable() ([]string, error) {
	if r.buckets != nil {
		return r.buckets, nil
	}

	buckets := make([]string, BucketCount)
	for n := 0; n < BucketCount; n++ {
		target, err := r.ResolvePoint(uint32(n) * bucketInterval)
		if err != nil {
			return nil, err
		}
		buckets[n] = target
	}
	r.buckets = buckets
	return buckets, nil
}

// ResolveBucket resolves n modulo BucketCount through the bucket table, a
// fixed-cost approximation of ResolvePoint. Negative n is normalized onto
// [0, BucketCount).
func (r *Ring) ResolveBucket(n int) (string, error) {
	buckets, err := r.bucketTable()
	if err != nil {
		return "", err
	}
	slot := n % BucketCount
	if slot < 0 {
		slot += BucketCount
	}
	return buckets[slot], nil
}

// BucketTable returns the bucket table in slot order. The returned slice
// is a copy; mutating it does not affect the ring.
func (r *Ring) BucketTable() ([]string, error) {
	buckets, err := r.bucketTable()
	if err != nil {
		return nil, err
	}
	table := make([]string, len(buckets))
	copy(table, buckets)
	return table, nil
}

// BucketCounts tallies how many bucket slots resolve to each target, an
// empirical approximation of each target's share of the keyspace.
func (r *Ring) BucketCounts() (map[string]int, error) {
	buckets, err := r.bucketTable()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(r.weights))
	for _, target := range buckets {
		counts[target]++
	}
	return counts, nil
}
