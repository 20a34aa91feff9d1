package serde

import "github.com/cryptopix-dev/cryptopix-clwe/ring"

// halfQ is floor((Q+1)/2), the coefficient value EncodeMessage uses to
// represent a set bit.
const halfQ = (ring.Q + 1) / 2

// EncodeMessage maps a 32-byte message bit-for-bit onto a Poly: coefficient i
// is halfQ if bit i of M is set, 0 otherwise, per spec.md §4.6.
func EncodeMessage(m [32]byte) *ring.Poly {
	p := ring.NewPoly()
	for i := 0; i < ring.N; i++ {
		byteIdx, bitIdx := i/8, uint(i%8)
		if (m[byteIdx]>>bitIdx)&1 == 1 {
			p.Coeffs[i] = halfQ
		}
	}
	return p
}

// DecodeMessage recovers the 32-byte message from a Poly, deciding each bit
// by a masked distance-from-Q/2 comparison rather than a data-dependent
// branch: bit i is set iff |coeff_i - Q/2| < Q/4, matching spec.md §4.6's
// constant-time decode rule.
func DecodeMessage(p *ring.Poly) [32]byte {
	var m [32]byte
	for i := 0; i < ring.N; i++ {
		c := int32(toCanonical(p.Coeffs[i]))
		centered := c - int32(ring.Q)/2
		// Absolute value via arithmetic mask, matching ring/reduce.go's
		// condSubQ/condAddQ idiom: no branch on a value derived from secret
		// ciphertext/key material, per spec.md §5.
		sign := centered >> 31
		centered = (centered ^ sign) - sign
		// bit = 1 iff centered < Q/4; computed as an arithmetic mask so the
		// comparison itself has no secret-dependent branch shape.
		diff := centered - int32(ring.Q)/4
		bit := byte((diff >> 31) & 1) // diff<0 (sign bit set) => centered<Q/4
		m[i/8] |= bit << uint(i%8)
	}
	return m
}

// toCanonical brings a coefficient into [0,Q) without depending on ring's
// internal helper of the same name. DecodeMessage is normally called on
// already-reduced polynomials, so this is a defensive normalization rather
// than the hot path.
func toCanonical(c int16) int16 {
	c %= ring.Q
	if c < 0 {
		c += ring.Q
	}
	return c
}
