package hashring

import (
	"crypto/sha1"
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// virtualPoint derives virtual point i for a target: the first four bytes
// of the SHA-1 digest of "target-i", read little-endian. The byte order is
// part of the ring's identity; changing it would remap every key.
func virtualPoint(target string, i int) uint32 {
	digest := sha1.Sum([]byte(target + "-" + strconv.Itoa(i)))
	return binary.LittleEndian.Uint32(digest[:4])
}

// HashKey reduces an application-level key to a 32-bit ring point. Any
// reasonably uniform hash works for this; HashKey is the reduction the
// library ships so callers don't each pick their own.
func HashKey(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}
