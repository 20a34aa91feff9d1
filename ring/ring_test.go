package ring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func randPoly(seed int16) *Poly {
	p := NewPoly()
	x := seed
	for i := range p.Coeffs {
		x = int16((int32(x)*31 + 7) % int32(Q))
		if x < 0 {
			x += Q
		}
		p.Coeffs[i] = x
	}
	return p
}

func TestNTTRoundTrip(t *testing.T) {
	for seed := int16(0); seed < 8; seed++ {
		p := randPoly(seed)
		orig := p.CopyNew()

		NTTForward(p)
		require.True(t, p.IsNTT)
		NTTInverse(p)
		require.False(t, p.IsNTT)

		p.Reduce()
		orig.Reduce()
		// cmp.Diff gives a per-coefficient-index diff on mismatch, more useful
		// than require.Equal's flat slice dump for a 256-coefficient array.
		if diff := cmp.Diff(orig.Coeffs, p.Coeffs); diff != "" {
			t.Fatalf("NTT^-1(NTT(p)) must equal p (-want +got):\n%s", diff)
		}
	}
}

// schoolbookMul computes a*b in Z_q[X]/(X^N+1) directly, for use as an oracle
// against the NTT-based ring multiplication.
func schoolbookMul(a, b *Poly) *Poly {
	var wide [2 * N]int32
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			wide[i+j] += int32(a.Coeffs[i]) * int32(b.Coeffs[j])
		}
	}
	c := NewPoly()
	for i := 0; i < N; i++ {
		v := wide[i] - wide[i+N] // X^N == -1
		v %= int32(Q)
		if v < 0 {
			v += int32(Q)
		}
		c.Coeffs[i] = int16(v)
	}
	return c
}

func TestRingHomomorphism(t *testing.T) {
	a := randPoly(1)
	b := randPoly(2)
	want := schoolbookMul(a, b)

	got := NewPoly()
	Mul(got, a, b)
	got.Reduce()

	require.Equal(t, want.Coeffs, got.Coeffs)
}

func TestNegacyclicReduction(t *testing.T) {
	// a = 1 + X^(N-1), b = X. a*b should have coefficient of X^0 equal to -1
	// mod Q (i.e. Q-1), confirming X^N -> -1.
	a := NewPoly()
	a.Coeffs[0] = 1
	a.Coeffs[N-1] = 1
	b := NewPoly()
	b.Coeffs[1] = 1

	c := NewPoly()
	Mul(c, a, b)
	c.Reduce()

	require.Equal(t, int16(Q-1), c.Coeffs[0])
}

func TestAddSubInverse(t *testing.T) {
	a := randPoly(3)
	b := randPoly(4)

	sum := NewPoly()
	Add(sum, a, b)
	back := NewPoly()
	Sub(back, sum, b)

	a2, back2 := a.CopyNew(), back.CopyNew()
	a2.Reduce()
	back2.Reduce()
	require.Equal(t, a2.Coeffs, back2.Coeffs)
}

func TestScalarMulIdentity(t *testing.T) {
	a := randPoly(5)
	out := NewPoly()
	ScalarMul(out, a, 1)
	out.Reduce()
	a2 := a.CopyNew()
	a2.Reduce()
	require.Equal(t, a2.Coeffs, out.Coeffs)
}

func TestMatrixTransposeMatchesColumnRead(t *testing.T) {
	k := 3
	m := NewMatrix(k)
	counter := int16(0)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			m.Rows[i][j] = randPoly(counter)
			counter++
		}
	}
	s := NewPolyVec(k)
	for i := range s.Polys {
		s.Polys[i] = randPoly(int16(10 + i))
		NTTForward(s.Polys[i])
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			NTTForward(m.Rows[i][j])
		}
	}

	direct := NewPolyVec(k)
	m.MulVecTranspose(direct, s)

	// Build A^T explicitly and multiply normally as a cross-check.
	transposed := NewMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			transposed.Rows[i][j] = m.Rows[j][i]
		}
	}
	expected := NewPolyVec(k)
	transposed.MulVec(expected, s)

	for _, p := range direct.Polys {
		p.Reduce()
	}
	for _, p := range expected.Polys {
		p.Reduce()
	}
	// cmp.Diff over the whole PolyVec (rather than per-component Coeffs
	// slices) reports which vector component diverges, not just which
	// coefficient.
	if diff := cmp.Diff(expected, direct); diff != "" {
		t.Fatalf("A^T*s via MulVecTranspose must equal explicit-transpose A^T*s (-want +got):\n%s", diff)
	}
}
