package hashring

import "sync"

// Locked wraps a Ring behind a read-write lock for callers that mutate and
// look up concurrently. The underlying Ring performs no locking of its own.
//
// Operations that can touch the lazily memoized aggregates (total weight,
// bucket table) take the write lock even though they are logically reads,
// since a cache fill mutates the ring.
type Locked struct {
	mu   sync.RWMutex
	ring *Ring
}

// NewLocked creates an empty ring behind a read-write lock.
func NewLocked() *Locked {
	return &Locked{ring: New()}
}

// SetWeights applies a batch of weight updates. See Ring.SetWeights.
func (l *Locked) SetWeights(updates map[string]int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.SetWeights(updates)
}

// Reset removes every active target. See Ring.Reset.
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring.Reset()
}

// Targets returns the active target names in lexicographic order.
func (l *Locked) Targets() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ring.Targets()
}

// TotalWeight returns the sum of all active weights.
func (l *Locked) TotalWeight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.TotalWeight()
}

// WeightPercentage returns the target's share of the total weight.
func (l *Locked) WeightPercentage(target string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.WeightPercentage(target)
}

// ResolvePoint returns the target owning p. See Ring.ResolvePoint.
func (l *Locked) ResolvePoint(p uint32) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ring.ResolvePoint(p)
}

// ResolveKey hashes key with HashKey and resolves the resulting point.
func (l *Locked) ResolveKey(key string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ring.ResolveKey(key)
}

// Successors returns up to k distinct targets clockwise from p.
func (l *Locked) Successors(p uint32, k int) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ring.Successors(p, k)
}

// ResolveBucket resolves n modulo BucketCount through the bucket table.
func (l *Locked) ResolveBucket(n int) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.ResolveBucket(n)
}

// BucketTable returns a copy of the bucket table in slot order.
func (l *Locked) BucketTable() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.BucketTable()
}

// BucketCounts tallies how many bucket slots resolve to each target.
func (l *Locked) BucketCounts() (map[string]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.BucketCounts()
}
