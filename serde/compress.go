package serde

import "github.com/cryptopix-dev/cryptopix-clwe/ring"

// Compress maps a canonical coefficient x in [0,Q) to a d-bit value via
// compress(x,d) = round((2^d/Q)*x) mod 2^d, computed as
// ((x<<d) + Q/2) / Q: adding Q/2 before the truncating integer division
// rounds to nearest (Q is odd, so no exact ties arise), all in 32-bit
// arithmetic to avoid
// overflow for the largest d (11) and x (< Q).
func Compress(x int16, d int) uint16 {
	wide := (int32(x)<<uint(d) + int32(ring.Q)/2) / int32(ring.Q)
	return uint16(wide) & ((1 << uint(d)) - 1)
}

// Decompress maps a d-bit compressed value back to a coefficient in [0,Q),
// as decompress(y,d) = round((Q/2^d)*y).
func Decompress(y uint16, d int) int16 {
	wide := (int32(y)*int32(ring.Q) + (1 << uint(d-1))) >> uint(d)
	return int16(wide)
}

// CompressPoly compresses every coefficient of p to d bits.
func CompressPoly(p *ring.Poly, d int) []uint16 {
	out := make([]uint16, ring.N)
	for i, c := range p.Coeffs {
		out[i] = Compress(c, d)
	}
	return out
}

// DecompressPoly reconstructs a polynomial from N d-bit compressed values.
func DecompressPoly(vals []uint16, d int) *ring.Poly {
	p := ring.NewPoly()
	for i, v := range vals {
		p.Coeffs[i] = Decompress(v, d)
	}
	return p
}

// PackCompressed bit-packs N d-bit values into ceil(N*d/8) bytes,
// little-endian within each value, consecutive values packed back-to-back.
func PackCompressed(vals []uint16, d int) []byte {
	totalBits := len(vals) * d
	out := make([]byte, (totalBits+7)/8)
	bitPos := 0
	for _, v := range vals {
		for b := 0; b < d; b++ {
			if (v>>uint(b))&1 == 1 {
				out[bitPos/8] |= 1 << uint(bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// UnpackCompressed reverses PackCompressed, reading count d-bit values.
func UnpackCompressed(data []byte, d, count int) []uint16 {
	vals := make([]uint16, count)
	bitPos := 0
	for i := 0; i < count; i++ {
		var v uint16
		for b := 0; b < d; b++ {
			if (data[bitPos/8]>>uint(bitPos%8))&1 == 1 {
				v |= 1 << uint(b)
			}
			bitPos++
		}
		vals[i] = v
	}
	return vals
}

// CompressedPolyBytes returns the byte length of a polynomial compressed to
// d bits per coefficient.
func CompressedPolyBytes(d int) int {
	return (ring.N*d + 7) / 8
}
