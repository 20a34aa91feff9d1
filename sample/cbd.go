package sample

import (
	"github.com/cryptopix-dev/cryptopix-clwe/ring"
	"github.com/cryptopix-dev/cryptopix-clwe/xof"
)

// CBD fills p with N coefficients drawn from the centered binomial
// distribution with parameter eta, seeded from XOF256 keyed by sigma, the
// spec.md §6 domain tag distinguishing the secret-vector class (tag) from
// the error-vector class, and a nonce counting components within that class
// (spec.md §4.5). Each coefficient is the difference of two Hamming weights
// of eta bits drawn from the stream; every bit of the XOF256 output is
// consumed by exactly one addition or subtraction, so the control flow and
// memory access pattern depend only on eta and the public tag/nonce, never
// on the resulting coefficient values.
func CBD(p *ring.Poly, eta int, sigma []byte, tag, nonce byte) {
	nBytes := 2 * eta * ring.N / 8
	buf := xof.Expand256(nBytes, sigma, []byte{tag}, []byte{nonce})

	bitPos := 0
	for i := 0; i < ring.N; i++ {
		var a, b int16
		for j := 0; j < eta; j++ {
			a += int16(bit(buf, bitPos))
			bitPos++
		}
		for j := 0; j < eta; j++ {
			b += int16(bit(buf, bitPos))
			bitPos++
		}
		p.Coeffs[i] = a - b
	}
	p.Reduce()
}

// bit returns bit index i (0 = least significant bit of buf[0]) of buf,
// reading every bit of the stream in a fixed, data-independent access
// pattern.
func bit(buf []byte, i int) byte {
	return (buf[i/8] >> uint(i%8)) & 1
}
