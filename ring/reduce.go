// Package ring implements arithmetic over the polynomial ring R_q = Z_q[X]/(X^N+1)
// that underlies the module-lattice KEM: Montgomery/Barrett modular reduction,
// the number-theoretic transform (NTT), and the Poly/PolyVec element types.
package ring

// Q is the coefficient modulus. It is prime, smaller than 2^16, and congruent
// to 1 modulo N (but not modulo 2*N), so a primitive 256th root of unity exists
// in Z_Q and the pseudo-negacyclic NTT of ntt.go is well defined.
const Q int16 = 3329

// N is the number of coefficients of a ring element.
const N = 256

// qInvNeg is Q^-1 mod 2^16 (-3327 as a signed 16-bit value), the Montgomery
// reduction constant. Q * qInvNeg == 1 mod 2^16, so montgomeryReduce's
// x - t*Q is divisible by 2^16.
const qInvNeg int32 = 62209

// montR is 2^16 mod Q, i.e. the Montgomery domain's representation of 1.
const montR int16 = 2285

// montgomeryReduce returns a such that a == x * R^-1 (mod Q), with R = 2^16.
// The result lies in (-Q, Q) for any x with |x| < Q * 2^15, matching spec.md's
// mont_reduce contract. The computation is a fixed sequence of arithmetic
// operations on public-shaped int32/int16 values: no branch depends on x.
func montgomeryReduce(x int32) int16 {
	t := int16(x * qInvNeg) // low 16 bits of x * qInvNeg, i.e. t == x*qInvNeg mod 2^16
	u := (x - int32(t)*int32(Q)) >> 16
	return int16(u)
}

// fqMul multiplies two coefficients already understood to carry one Montgomery
// factor between them and returns the product reduced back to a single factor,
// i.e. fqMul(a, bMont) == a*b mod Q when bMont == b*R mod Q.
func fqMul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// montRSquared is R^2 mod Q. fqMul-ing any coefficient against it lifts that
// coefficient into the Montgomery domain in a single reduction.
const montRSquared int16 = 1353

// toMontgomery converts a canonical coefficient in [0, Q) to its Montgomery
// form a*R mod Q.
func toMontgomery(a int16) int16 {
	return fqMul(a, montRSquared)
}

// barrettMultiplier is floor((2^26 + Q/2) / Q), the fixed-point approximation
// of 2^26/Q used by barrettReduce.
const barrettMultiplier = 20159
const barrettShift = 26

// barrettReduce returns a value congruent to x modulo Q in [0, Q]; the value Q
// itself is returned only for negative multiples of Q.
// The multiply-and-shift sequence runs identically regardless of x's value;
// no branch depends on x.
func barrettReduce(x int16) int16 {
	t := int32(barrettMultiplier) * int32(x) >> barrettShift
	t *= int32(Q)
	return x - int16(t)
}

// condSubQ returns a-Q if a >= Q, else a. The subtraction is always computed;
// only the selection is conditional, via an arithmetic mask rather than a
// data-dependent branch, so the routine executes in constant time for secret a.
func condSubQ(a int16) int16 {
	a -= Q
	// a's sign bit is 1 (interpreted as int16) iff the original a < Q.
	mask := a >> 15
	return a + (Q & mask)
}

// condAddQ returns a+Q if a < 0, else a. Used to bring a centered
// representative back into [0, Q) without a data-dependent branch.
func condAddQ(a int16) int16 {
	mask := a >> 15
	return a + (Q & mask)
}

// toCanonical fully normalizes a coefficient that may be anywhere in the
// int16 range into [0, Q).
func toCanonical(a int16) int16 {
	return condSubQ(condAddQ(barrettReduce(a)))
}
