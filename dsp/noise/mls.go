package noise

import (
	"fmt"
	"math/bits"
)

// MaxMLSBits is the widest supported MLS state.
const MaxMLSBits = 31

// mlsPoly holds one primitive feedback polynomial per state width. Entry
// n-1 is the tap mask for an n-bit register.
var mlsPoly = [MaxMLSBits]uint32{
	0b1,
	0b11,
	0b110,
	0b1100,
	0b10100,
	0b110000,
	0b1001000,
	0b10111000,
	0b100010000,
	0b1001000000,
	0b10100000000,
	0b110010100000,
	0b1101100000000,
	0b11000010001000,
	0b110000000000000,
	0b1101000000001000,
	0b10010000000000000,
	0b100000010000000000,
	0b1100011000000000000,
	0b10010000000000000000,
	0b101000000000000000000,
	0b1100000000000000000000,
	0b10000100000000000000000,
	0b111000010000000000000000,
	0b1001000000000000000000000,
	0b10000000000000000000100011,
	0b100000000000000000000010011,
	0b1001000000000000000000000000,
	0b10100000000000000000000000000,
	0b100000000000000000000000101001,
	0b1001000000000000000000000000000,
}

// MLS is a maximum length sequence generator: a spectrally flat binary
// pseudorandom sequence that repeats after exactly 2^n - 1 steps and
// visits every nonzero n-bit state once per period.
//
// MLS is an immutable value; Next returns the successor state.
type MLS struct {
	n uint32
	s uint32
}

// NewMLS returns an n-bit MLS starting from the all-ones state. It panics
// unless 1 <= n <= 31.
func NewMLS(n uint32) MLS {
	checkBits(n)
	return MLS{n: n, s: mask(n)}
}

// NewMLSWithSeed returns an n-bit MLS starting from state
// 1 + seed mod (2^n - 1), which is never zero. It panics unless
// 1 <= n <= 31.
func NewMLSWithSeed(n, seed uint32) MLS {
	checkBits(n)
	return MLS{n: n, s: 1 + seed%mask(n)}
}

// NewMLSWithState returns an n-bit MLS in the given state. It panics unless
// 1 <= n <= 31 and 0 < state < 2^n.
func NewMLSWithState(n, state uint32) MLS {
	checkBits(n)
	if state == 0 || state > mask(n) {
		panic(fmt.Sprintf("noise: MLS state %#x invalid for %d bits", state, n))
	}
	return MLS{n: n, s: state}
}

func checkBits(n uint32) {
	if n < 1 || n > MaxMLSBits {
		panic(fmt.Sprintf("noise: MLS width must be in [1,%d]: %d", MaxMLSBits, n))
	}
}

func mask(n uint32) uint32 {
	return 1<<n - 1
}

// Bits returns the state width n.
func (m MLS) Bits() uint32 { return m.n }

// State returns the current register contents.
func (m MLS) State() uint32 { return m.s }

// Length returns the sequence period 2^n - 1.
func (m MLS) Length() uint32 { return mask(m.n) }

// Next returns the following state in the sequence.
func (m MLS) Next() MLS {
	feedback := mlsPoly[m.n-1] & m.s
	parity := uint32(bits.OnesCount32(feedback) & 1)
	return MLS{
		n: m.n,
		s: (m.s<<1 | parity) & m.Length(),
	}
}

// Value returns the current output bit, 0 or 1.
func (m MLS) Value() uint32 {
	return (m.s >> (m.n - 1)) & 1
}
