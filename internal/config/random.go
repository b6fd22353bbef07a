package config

// Random is the linear congruential generator used to derive sub-seeds.
// The sequence must match the one the training engine uses, so the constants
// are fixed.
type Random struct {
	x uint32
}

// NewRandom seeds the generator.
func NewRandom(seed int) *Random {
	return &Random{x: uint32(seed)}
}

// RandInt16 returns the next value in [0, 32767].
func (r *Random) RandInt16() int {
	r.x = 214013*r.x + 2531011
	return int((r.x >> 16) & 0x7FFF)
}

// NextShort returns the next value in [lo, hi).
func (r *Random) NextShort(lo, hi int) int {
	return r.RandInt16()%(hi-lo) + lo
}
