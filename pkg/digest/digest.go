// Package digest computes a cheap table-driven content digest over raw
// pixel data. It is used to stamp history rows and report a short
// fingerprint after each run; it is not a cryptographic hash.
package digest

// table is a fixed permutation of 0..255, generated once from a
// deterministic xorshift-seeded Fisher-Yates shuffle so every build
// produces identical digests.
var table [256]uint8

func init() {
	for i := range table {
		table[i] = uint8(i)
	}
	state := uint32(0x9E3779B9)
	for i := 255; i > 0; i-- {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		j := int(state % uint32(i+1))
		table[i], table[j] = table[j], table[i]
	}
}

// Sum8 computes the 8-bit digest of data. Empty input digests to 0.
func Sum8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	h := table[data[0]]
	for _, v := range data[1:] {
		h = table[h^v]
	}
	return h
}

// Sum64 concatenates eight seeded 8-bit digests into a 64-bit value,
// for callers that need fewer accidental collisions.
func Sum64(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	var h uint64
	for seed := 0; seed < 8; seed++ {
		hash := table[uint8(seed)^data[0]]
		for _, v := range data[1:] {
			hash = table[hash^v]
		}
		h = h<<8 | uint64(hash)
	}
	return h
}
