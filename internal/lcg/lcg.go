// Package lcg implements the 48-bit linear congruential generator that
// drives the daily mission rotation. The constants, seed scrambling and
// bounded-draw behavior reproduce java.util.Random, so a given date seed
// yields the same rotation as the previous backend and any client that
// cached its output.
package lcg

const (
	multiplier = 0x5DEECE66D
	increment  = 0xB
	mask       = (1 << 48) - 1
)

// Source is a deterministic pseudo-random source. It is not safe for
// concurrent use; each selection creates its own.
type Source struct {
	state int64
}

// New returns a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{state: (seed ^ multiplier) & mask}
}

func (s *Source) next(bits uint) int32 {
	s.state = (s.state*multiplier + increment) & mask
	return int32(s.state >> (48 - bits))
}

// Intn returns a uniformly distributed value in [0, n). It panics if
// n is not positive.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("lcg: Intn bound must be positive")
	}
	if n&(n-1) == 0 {
		return int((int64(n) * int64(s.next(31))) >> 31)
	}
	for {
		bits := s.next(31)
		val := bits % int32(n)
		// Reject draws from the truncated final cycle to keep the
		// distribution uniform.
		if bits-val+(int32(n)-1) >= 0 {
			return int(val)
		}
	}
}
