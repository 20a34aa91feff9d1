// Package sample implements the two sampling routines of spec.md §4.5 —
// rejection-sampled uniform-mod-q sampling for matrix entries and
// centered-binomial sampling for secrets and errors — plus deterministic expansion of the
// module-LWE matrix A from a seed. The rejection-loop shape follows
// ring.UniformSampler.Read in the teacher (squeeze a buffer, reject
// out-of-range candidates, replenish on exhaustion); the uniform sampler here
// additionally packs two 12-bit candidates per 3 bytes the way Kyber's
// rejection sampling does, since spec.md §4.5 fixes that exact packing.
package sample

import (
	"github.com/cryptopix-dev/cryptopix-clwe/ring"
	"github.com/cryptopix-dev/cryptopix-clwe/xof"
)

// uniformChunkBytes is how many fresh bytes are squeezed from XOF128 at a
// time while rejection-sampling a polynomial; three input bytes yield two
// 12-bit candidates.
const uniformChunkBytes = 168 // a SHAKE128 rate block (168 bytes), divisible by 3

// Uniform fills p with N coefficients drawn uniformly from [0, Q) by
// rejection-sampling 12-bit candidates out of an XOF128 stream seeded with
// the given parts, per spec.md's exact candidate-extraction rule.
func Uniform(p *ring.Poly, parts ...[]byte) {
	x := xof.New128().Absorb(parts...)
	i := 0
	for i < ring.N {
		buf := x.Squeeze(uniformChunkBytes)
		for j := 0; j+3 <= len(buf) && i < ring.N; j += 3 {
			b0, b1, b2 := buf[j], buf[j+1], buf[j+2]
			d1 := uint16(b0) | (uint16(b1&0x0F) << 8)
			d2 := uint16(b1>>4) | (uint16(b2) << 4)
			if d1 < uint16(ring.Q) {
				p.Coeffs[i] = int16(d1)
				i++
			}
			if i < ring.N && d2 < uint16(ring.Q) {
				p.Coeffs[i] = int16(d2)
				i++
			}
		}
	}
}
