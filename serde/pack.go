// Package serde implements the byte-level encodings of spec.md §4.6: the
// canonical 12-bit coefficient packing, compression/decompression of ring
// elements, and bit-per-coefficient message encode/decode. The
// pointer-advancing style of Pack/Unpack follows ring.WriteCoeffsTo /
// ring.DecodeCoeffs in the teacher, adapted from 64-bit CRT limbs down to the
// 12-bit limbs a single small-modulus Poly needs.
package serde

import "github.com/cryptopix-dev/cryptopix-clwe/ring"

// PolyBytes is the number of bytes a packed polynomial occupies: 12 bits per
// coefficient, N coefficients.
const PolyBytes = 12 * ring.N / 8

// Pack encodes p's canonical [0,Q) coefficients into PolyBytes bytes, two
// coefficients to three bytes, least-significant nibble first.
func Pack(p *ring.Poly) []byte {
	out := make([]byte, PolyBytes)
	for i := 0; i < ring.N/2; i++ {
		c0 := uint16(p.Coeffs[2*i])
		c1 := uint16(p.Coeffs[2*i+1])
		out[3*i] = byte(c0)
		out[3*i+1] = byte((c0>>8)&0x0F) | byte((c1&0x0F)<<4)
		out[3*i+2] = byte(c1 >> 4)
	}
	return out
}

// Unpack decodes PolyBytes bytes into a polynomial's canonical coefficients.
func Unpack(data []byte) *ring.Poly {
	p := ring.NewPoly()
	for i := 0; i < ring.N/2; i++ {
		b0, b1, b2 := uint16(data[3*i]), uint16(data[3*i+1]), uint16(data[3*i+2])
		p.Coeffs[2*i] = int16(b0 | ((b1 & 0x0F) << 8))
		p.Coeffs[2*i+1] = int16((b1 >> 4) | (b2 << 4))
	}
	return p
}

// PackVec packs each component of v in turn.
func PackVec(v *ring.PolyVec) []byte {
	out := make([]byte, 0, PolyBytes*v.K())
	for _, p := range v.Polys {
		out = append(out, Pack(p)...)
	}
	return out
}

// UnpackVec unpacks k consecutive packed polynomials from data.
func UnpackVec(k int, data []byte) *ring.PolyVec {
	v := ring.NewPolyVec(k)
	for i := 0; i < k; i++ {
		v.Polys[i] = Unpack(data[i*PolyBytes : (i+1)*PolyBytes])
	}
	return v
}
