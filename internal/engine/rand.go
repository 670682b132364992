package engine

import "github.com/lgbarn/chessrules-go/internal/errors"

// seededRandom is a 48-bit linear congruential generator. Its constants and
// rejection-sampled Intn are fixed so a seed always yields the same back rank.
type seededRandom struct {
	state int64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

func newSeededRandom(seed int64) *seededRandom {
	return &seededRandom{state: (seed ^ lcgMultiplier) & lcgMask}
}

// next returns the top bits of the advanced state.
func (r *seededRandom) next(bits uint) int32 {
	r.state = (r.state*lcgMultiplier + lcgAddend) & lcgMask
	return int32(uint64(r.state) >> (48 - bits))
}

// Intn returns a uniform value in [0, bound). bound must be positive.
func (r *seededRandom) Intn(bound int32) int32 {
	if bound <= 0 {
		errors.Invariant("Intn bound %d is not positive", bound)
	}
	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % bound
		// Rejects the partial last bucket; the sum overflows there.
		if bits-val+(bound-1) >= 0 {
			return val
		}
	}
}
