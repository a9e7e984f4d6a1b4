package hashring

import "sort"

// ResolvePoint returns the target owning the smallest virtual point at or
// after p. If p is greater than every virtual point it wraps to the
// smallest point on the circle. Runs in O(log n) over the virtual points.
func (r *Ring) ResolvePoint(p uint32) (string, error) {
	if len(r.weights) == 0 {
		return "", ErrNoTargets
	}
	if len(r.points) == 0 {
		panic("hashring: empty point sequence with active targets")
	}

	lo, hi := 0, len(r.points)-1
	for {
		mid := (lo + hi) / 2
		at := r.points[mid]
		var below uint32
		if mid > 0 {
			below = r.points[mid-1]
		}

		if below < p && p <= at {
			return r.owners[at], nil
		}
		if lo == hi {
			// p is past every configured point; wrap to the start of
			// the circle.
			return r.owners[r.points[0]], nil
		}

		if at < p {
			lo = mid + 1
			if lo > hi {
				lo = hi
			}
		} else {
			hi = mid
			if hi < lo {
				hi = lo
			}
		}
	}
}

// ResolveKey hashes key with HashKey and resolves the resulting point.
func (r *Ring) ResolveKey(key string) (string, error) {
	return r.ResolvePoint(HashKey(key))
}

// Successors returns up to k distinct targets encountered walking
// clockwise from p, starting with p's owner. Useful as a replica
// preference list. Fewer than k targets are returned when fewer are
// active.
func (r *Ring) Successors(p uint32, k int) ([]string, error) {
	if len(r.weights) == 0 {
		return nil, ErrNoTargets
	}
	if k <= 0 {
		return []string{}, nil
	}

	idx := sort.Search(len(r.points), func(i int) bool { return r.points[i] >= p })
	if idx == len(r.points) {
		idx = 0
	}

	seen := make(map[string]bool, k)
	result := make([]string, 0, k)
	for i := 0; i < len(r.points) && len(result) < k; i++ {
		target := r.owners[r.points[(idx+i)%len(r.points)]]
		if !seen[target] {
			seen[target] = true
			result = append(result, target)
		}
	}
	return result, nil
}
