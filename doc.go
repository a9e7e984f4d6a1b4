// Package hashring implements a weighted consistent hashing ring.
// It maps 32-bit points to named targets while minimizing key movement
// when weights change, and maintains a discretized bucket table for
// fixed-cost repeated lookups and distribution auditing.
package hashring
