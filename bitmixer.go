package nfa

const (
	// Golden ratio bit mixer.
	PHI_C64 = uint64(0x9e3779b97f4a7c15)
)

// MurmurHash3 32-bit finalization step.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// mixPair Combines two ints into one well spread hash.
func mixPair(a, b int) uint64 {
	h := mix32(a)*PHI_C64 ^ mix32(b)
	return h ^ (h >> 32)
}
