package hashring

import (
	"fmt"
	"sort"
)

// pointsPerWeight is the number of virtual points each unit of target
// weight places on the ring.
const pointsPerWeight = 100

// Ring is a weighted consistent hashing ring. Each active target
// contributes weight x 100 virtual points on a 32-bit circular keyspace;
// a point is owned by the target of the nearest virtual point clockwise.
//
// A Ring performs no internal locking. Lookups may run concurrently with
// each other, but callers that mutate while reading must serialize access
// themselves; Locked provides that for callers that want it.
type Ring struct {
	weights map[string]int    // target -> weight, active targets only
	owners  map[uint32]string // virtual point -> owning target
	points  []uint32          // sorted virtual points

	// Derived aggregates, memoized together and invalidated together by
	// every mutation. Recomputed lazily on next read.
	total      int
	totalValid bool
	buckets    []string
}

// New creates an empty ring.
func New() *Ring {
	return &Ring{
		weights: make(map[string]int),
		owners:  make(map[uint32]string),
	}
}

// SetWeights applies a batch of weight updates. A positive weight sets or
// overwrites the target's weight; a zero weight removes the target from
// the ring entirely. If any weight is negative the whole batch is rejected
// and nothing is applied. The ring is rebuilt once per batch, not once per
// entry.
func (r *Ring) SetWeights(updates map[string]int) error {
	for target, weight := range updates {
		if weight < 0 {
			return fmt.Errorf("%w: target %q has weight %d", ErrNegativeWeight, target, weight)
		}
	}

	for target, weight := range updates {
		if weight == 0 {
			delete(r.weights, target)
		} else {
			r.weights[target] = weight
		}
	}

	r.rebuild()
	return nil
}

// Reset removes every active target and rebuilds to an empty ring.
func (r *Ring) Reset() {
	r.weights = make(map[string]int)
	r.rebuild()
}

// Targets returns the active target names in lexicographic order.
func (r *Ring) Targets() []string {
	targets := make([]string, 0, len(r.weights))
	for target := range r.weights {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}

// TotalWeight returns the sum of all active weights.
func (r *Ring) TotalWeight() int {
	if !r.totalValid {
		total := 0
		for _, weight := range r.weights {
			total += weight
		}
		r.total = total
		r.totalValid = true
	}
	return r.total
}

// WeightPercentage returns the target's share of the total weight as a
// percentage, or 0 if the target is not active.
func (r *Ring) WeightPercentage(target string) float64 {
	weight, ok := r.weights[target]
	if !ok {
		return 0
	}
	return 100 * float64(weight) / float64(r.TotalWeight())
}

// rebuild derives the sorted virtual-point sequence from the current
// weights and drops the memoized aggregates. Targets are expanded in
// sorted order so that an exact point collision (last write wins) resolves
// the same way on every rebuild.
func (r *Ring) rebuild() {
	r.totalValid = false
	r.buckets = nil

	capacity := 0
	for _, weight := range r.weights {
		capacity += weight * pointsPerWeight
	}

	r.owners = make(map[uint32]string, capacity)
	for _, target := range r.Targets() {
		count := r.weights[target] * pointsPerWeight
		for i := 1; i <= count; i++ {
			r.owners[virtualPoint(target, i)] = target
		}
	}

	r.points = make([]uint32, 0, len(r.owners))
	for point := range r.owners {
		r.points = append(r.points, point)
	}
	sort.Slice(r.points, func(i, j int) bool { return r.points[i] < r.points[j] })
}
