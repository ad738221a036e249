package noise

import (
	"math/bits"
	"testing"
)

func TestNewMLSPanicsOnBadWidth(t *testing.T) {
	for _, n := range []uint32{0, 32, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewMLS(%d) did not panic", n)
				}
			}()
			NewMLS(n)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewMLSWithSeed(%d, 1) did not panic", n)
				}
			}()
			NewMLSWithSeed(n, 1)
		}()
	}
}

func TestNewMLSWithStatePanicsOnBadState(t *testing.T) {
	for _, tc := range []struct{ n, s uint32 }{{4, 0}, {4, 16}, {1, 2}, {31, 1 << 31}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewMLSWithState(%d, %d) did not panic", tc.n, tc.s)
				}
			}()
			NewMLSWithState(tc.n, tc.s)
		}()
	}
}

func TestMLSConstructors(t *testing.T) {
	m := NewMLS(8)
	if m.Bits() != 8 || m.State() != 0xff || m.Length() != 255 {
		t.Fatalf("NewMLS(8) = bits %d state %#x length %d", m.Bits(), m.State(), m.Length())
	}

	if s := NewMLSWithSeed(5, 12345).State(); s != 1+12345%31 {
		t.Fatalf("seeded state = %d, want %d", s, 1+12345%31)
	}
	if s := NewMLSWithSeed(5, 30).State(); s != 31 {
		t.Fatalf("seed 30 state = %d, want 31", s)
	}
	if s := NewMLSWithSeed(5, 31).State(); s != 1 {
		t.Fatalf("seed 31 state = %d, want 1", s)
	}
	if s := NewMLSWithSeed(31, ^uint32(0)).State(); s == 0 || s > 1<<31-1 {
		t.Fatalf("seed max state = %#x out of range", s)
	}
	if s := NewMLSWithState(12, 0x5a5).State(); s != 0x5a5 {
		t.Fatalf("explicit state = %#x, want 0x5a5", s)
	}
}

func TestMLSKnownSequence(t *testing.T) {
	m := NewMLS(4)
	want := []uint32{1, 1, 1, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 0, 1}
	for i, w := range want {
		if v := m.Value(); v != w {
			t.Fatalf("bit %d = %d, want %d", i, v, w)
		}
		m = m.Next()
	}
}

func TestMLSNextIsPure(t *testing.T) {
	m := NewMLS(10)
	before := m.State()
	_ = m.Next()
	if m.State() != before {
		t.Fatal("Next mutated the receiver")
	}
}

func TestMLSPeriodExhaustive(t *testing.T) {
	maxBits := uint32(20)
	if testing.Short() {
		maxBits = 16
	}

	for n := uint32(1); n <= maxBits; n++ {
		start := NewMLSWithSeed(n, 0x9e3779b9)
		seen := make([]bool, 1<<n)
		m := start
		for step := uint32(0); step < start.Length(); step++ {
			s := m.State()
			if s == 0 {
				t.Fatalf("n=%d: reached zero state at step %d", n, step)
			}
			if seen[s] {
				t.Fatalf("n=%d: state %#x repeated at step %d", n, s, step)
			}
			seen[s] = true
			m = m.Next()
		}
		if m.State() != start.State() {
			t.Fatalf("n=%d: state after 2^n-1 steps = %#x, want %#x", n, m.State(), start.State())
		}
	}
}

// mlsMatrix is the transition of an n-bit register as a GF(2) matrix: output
// bit i is the parity of rows[i] & s.
type mlsMatrix struct {
	n    uint32
	rows [MaxMLSBits]uint32
}

func transitionMatrix(n uint32) mlsMatrix {
	m := mlsMatrix{n: n}
	m.rows[0] = mlsPoly[n-1]
	for i := uint32(1); i < n; i++ {
		m.rows[i] = 1 << (i - 1)
	}
	return m
}

func identityMatrix(n uint32) mlsMatrix {
	m := mlsMatrix{n: n}
	for i := range n {
		m.rows[i] = 1 << i
	}
	return m
}

// mul returns a*b, the transition "apply b, then a".
func (a mlsMatrix) mul(b mlsMatrix) mlsMatrix {
	out := mlsMatrix{n: a.n}
	for i := range a.n {
		var row uint32
		for j := range a.n {
			if a.rows[i]&(1<<j) != 0 {
				row ^= b.rows[j]
			}
		}
		out.rows[i] = row
	}
	return out
}

func (a mlsMatrix) pow(k uint64) mlsMatrix {
	result := identityMatrix(a.n)
	for k > 0 {
		if k&1 != 0 {
			result = result.mul(a)
		}
		a = a.mul(a)
		k >>= 1
	}
	return result
}

func (a mlsMatrix) apply(s uint32) uint32 {
	var out uint32
	for i := range a.n {
		out |= uint32(bits.OnesCount32(a.rows[i]&s)&1) << i
	}
	return out
}

func primeFactors(v uint64) []uint64 {
	var out []uint64
	for p := uint64(2); p*p <= v; p++ {
		if v%p == 0 {
			out = append(out, p)
			for v%p == 0 {
				v /= p
			}
		}
	}
	if v > 1 {
		out = append(out, v)
	}
	return out
}

func TestMLSTransitionMatrixMatchesNext(t *testing.T) {
	for n := uint32(1); n <= MaxMLSBits; n++ {
		m := transitionMatrix(n)
		g := NewMLSWithSeed(n, 0xdeadbeef)
		for range 64 {
			if got, want := m.apply(g.State()), g.Next().State(); got != want {
				t.Fatalf("n=%d: matrix step %#x, Next %#x", n, got, want)
			}
			g = g.Next()
		}
	}
}

// TestMLSPeriodAllWidths proves the period is exactly 2^n-1 for every
// width: the transition raised to 2^n-1 is the identity and no proper
// divisor period exists.
func TestMLSPeriodAllWidths(t *testing.T) {
	for n := uint32(1); n <= MaxMLSBits; n++ {
		m := transitionMatrix(n)
		period := uint64(1)<<n - 1

		if m.pow(period) != identityMatrix(n) {
			t.Fatalf("n=%d: M^(2^n-1) is not the identity", n)
		}
		for _, q := range primeFactors(period) {
			if m.pow(period/q) == identityMatrix(n) {
				t.Fatalf("n=%d: period divides (2^n-1)/%d", n, q)
			}
		}
	}
}

func TestMLSSeedDeterminism(t *testing.T) {
	a := NewMLSWithSeed(17, 42)
	b := NewMLSWithSeed(17, 42)
	c := NewMLSWithSeed(17, 43)
	differ := false
	for range 1000 {
		if a.Value() != b.Value() || a.State() != b.State() {
			t.Fatal("identical seeds diverged")
		}
		if a.State() != c.State() {
			differ = true
		}
		a, b, c = a.Next(), b.Next(), c.Next()
	}
	if !differ {
		t.Fatal("different seeds produced the same states")
	}
}

func TestMLSBalance(t *testing.T) {
	// One period of an n-bit MLS holds 2^(n-1) ones and 2^(n-1)-1 zeros.
	m := NewMLS(12)
	var ones uint32
	for range m.Length() {
		ones += m.Value()
		m = m.Next()
	}
	if ones != 1<<11 {
		t.Fatalf("ones per period = %d, want %d", ones, 1<<11)
	}
}

func BenchmarkMLSNext(b *testing.B) {
	m := NewMLS(31)
	for b.Loop() {
		m = m.Next()
	}
	_ = m
}
