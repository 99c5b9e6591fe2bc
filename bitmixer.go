package minidfa

// mix32 is the MurmurHash3 32-bit finalizer. It spreads NFA state ids so
// summed set hashes rarely collide.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}
