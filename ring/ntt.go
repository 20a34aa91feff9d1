package ring

// zetas holds the 128 powers of the primitive 256th root of unity g=17 modulo
// Q, stored in Montgomery form and indexed in bit-reversed order. Because Q is
// congruent to 1 modulo N (256) but not modulo 2N (512), Z_Q admits only an
// N-th, not a 2N-th, primitive root: the NTT below transforms R_q into a
// product of N/2 quadratic extensions Z_Q[X]/(X^2-zeta) rather than N linear
// factors, and basemul (below) multiplies pair-by-pair inside those extensions.
//
// The table is derived once at package init the way ring.Ring.genNTTParams
// derives NttPsi/NttPsiInv from a primitive root at construction time, rather
// than being hand-transcribed: this avoids baking in a possibly-mistyped
// 128-entry literal and keeps the choice of generator (17, matching the
// scalar/NEON engines referenced in spec.md's open questions) visible as code.
var zetas [N / 2]int16

func init() {
	const g = 17
	pow := make([]int16, N/2)
	acc := int32(1)
	for i := 0; i < N/2; i++ {
		pow[i] = int16(acc)
		acc = (acc * g) % int32(Q)
	}
	for i := 0; i < N/2; i++ {
		zetas[i] = toMontgomery(pow[bitrev7(i)])
	}
}

// bitrev7 reverses the low 7 bits of i (0 <= i < 128).
func bitrev7(i int) int {
	r := 0
	for b := 0; b < 7; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}

// NTTForward transforms p in place from the time domain to the NTT domain,
// using decimation-in-time Cooley-Tukey butterflies. The output is left in
// the bit-reversed order implied by the zetas table; no separate bit-reversal
// permutation is applied, matching spec.md's ntt_forward contract.
func NTTForward(p *Poly) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqMul(zeta, p.Coeffs[j+length])
				p.Coeffs[j+length] = p.Coeffs[j] - t
				p.Coeffs[j] = p.Coeffs[j] + t
			}
		}
		// Each layer at most doubles the coefficient magnitude; normalizing
		// after every layer keeps every subsequent fqMul input comfortably
		// inside montgomeryReduce's working range at the cost of a few
		// redundant reductions the lazy/unsafe-vectorized teacher avoids.
		for i := 0; i < N; i++ {
			p.Coeffs[i] = barrettReduce(p.Coeffs[i])
		}
	}
	p.IsNTT = true
}

// NTTInverse transforms p in place from the NTT domain back to the time
// domain using Gentleman-Sande butterflies, concluding with multiplication by
// (N/2)^-1 mod Q in Montgomery form: the seven butterfly layers scale every
// coefficient by 2^7 = N/2, so this final step makes NTTInverse the exact
// inverse of NTTForward.
func NTTInverse(p *Poly) {
	k := N/2 - 1
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p.Coeffs[j]
				p.Coeffs[j] = barrettReduce(t + p.Coeffs[j+length])
				p.Coeffs[j+length] = fqMul(zeta, p.Coeffs[j+length]-t)
			}
		}
	}
	nInv := toMontgomery(invMod(N/2, Q))
	for i := 0; i < N; i++ {
		p.Coeffs[i] = toCanonical(fqMul(p.Coeffs[i], nInv))
	}
	p.IsNTT = false
}

// invMod returns the inverse of a modulo the prime q, via Fermat's little
// theorem (a^(q-2) == a^-1 mod q).
func invMod(a int, q int16) int16 {
	base := int32(a) % int32(q)
	if base < 0 {
		base += int32(q)
	}
	result := int32(1)
	exp := int32(q) - 2
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % int32(q)
		}
		base = (base * base) % int32(q)
		exp >>= 1
	}
	return int16(result)
}

// Basemul computes c = a*b in R_q for polynomials already in the NTT domain,
// implementing the pair-by-pair quadratic-extension product of spec.md
// §4.3: for each group of four coefficients (a0,a1 | a2,a3) the first pair is
// multiplied in Z_Q[X]/(X^2-zeta) and the second in Z_Q[X]/(X^2+zeta).
func Basemul(c, a, b *Poly) {
	for i := 0; i < N/4; i++ {
		zeta := zetas[64+i]
		basemulPair(c.Coeffs[4*i:4*i+2], a.Coeffs[4*i:4*i+2], b.Coeffs[4*i:4*i+2], zeta)
		basemulPair(c.Coeffs[4*i+2:4*i+4], a.Coeffs[4*i+2:4*i+4], b.Coeffs[4*i+2:4*i+4], -zeta)
	}
	c.IsNTT = true
}

// basemulPair computes (c0,c1) = (a0,a1) * (b0,b1) in Z_Q[X]/(X^2-zeta).
// Each fqMul of two plain coefficients leaves a factor R^-1 in the sums; the
// final toMontgomery multiplies it back out so the product is exact.
func basemulPair(c, a, b []int16, zeta int16) {
	c0 := fqMul(a[1], b[1])
	c0 = fqMul(c0, zeta)
	c0 += fqMul(a[0], b[0])

	c1 := fqMul(a[0], b[1])
	c1 += fqMul(a[1], b[0])

	c[0] = toMontgomery(c0)
	c[1] = toMontgomery(c1)
}
