// Package pke implements the CPA-secure public-key encryption triple of
// spec.md §4.7 (KeyGen_PKE, Enc_PKE, Dec_PKE), the module-LWE layer the KEM's
// Fujisaki-Okamoto transform wraps. The key-object shape — plain structs
// returned by a NewKeyGenerator-style constructor rather than opaque handles
// — follows the teacher's rlwe/bgv convention (bgv.NewKeyGenerator,
// rlwe.NewSecretKey / rlwe.NewPublicKey).
package pke

import (
	"github.com/cryptopix-dev/cryptopix-clwe/params"
	"github.com/cryptopix-dev/cryptopix-clwe/ring"
	"github.com/cryptopix-dev/cryptopix-clwe/sample"
	"github.com/cryptopix-dev/cryptopix-clwe/serde"
	"github.com/cryptopix-dev/cryptopix-clwe/xof"
)

// PublicKey is (t-hat, rho): t-hat is the NTT-domain public vector A*s+e,
// rho is the 32-byte seed Matrix A expands from.
type PublicKey struct {
	Set params.Set
	That *ring.PolyVec
	Rho  [32]byte
}

// SecretKeyPKE is s-hat, the NTT-domain secret vector. It is the sole secret
// state of the CPA scheme; the CCA wrapper in package kem adds pk bytes,
// H(pk), and the implicit-rejection seed z around it.
type SecretKeyPKE struct {
	Set  params.Set
	SHat *ring.PolyVec
}

// KeyGen runs KeyGen_PKE(d) of spec.md §4.7: split d into (rho, sigma) via
// G, expand the matrix from rho, sample (s, e) from sigma via CBD_eta1, and
// return the public key t-hat = A*s+e and the secret key s-hat, both already
// transformed into the NTT domain.
func KeyGen(set params.Set, d [32]byte) (*PublicKey, *SecretKeyPKE) {
	rho, sigma := xof.G(xof.TagKeyGenSplit, d[:])

	a := sample.ExpandA(set.K, rho[:])

	s := ring.NewPolyVec(set.K)
	for i := 0; i < set.K; i++ {
		sample.CBD(s.Polys[i], set.Eta1, sigma[:], xof.TagCBDSecretS, byte(i))
	}
	e := ring.NewPolyVec(set.K)
	for i := 0; i < set.K; i++ {
		sample.CBD(e.Polys[i], set.Eta1, sigma[:], xof.TagCBDErrorE, byte(i))
	}

	s.NTTForward()
	e.NTTForward()

	tHat := ring.NewPolyVec(set.K)
	a.MulVec(tHat, s)
	ring.AddVec(tHat, tHat, e)

	pk := &PublicKey{Set: set, That: tHat, Rho: rho}
	sk := &SecretKeyPKE{Set: set, SHat: s}
	return pk, sk
}

// Encrypt runs Enc_PKE(pk, m, coins) of spec.md §4.7: re-expand A from rho,
// sample (r, e1, e2) from coins, and form
// u = NTT^-1(A^T*r-hat) + e1, v = NTT^-1(t-hat*r-hat) + e2 + Encode(m).
func Encrypt(pk *PublicKey, m [32]byte, coins [32]byte) (u *ring.PolyVec, v *ring.Poly) {
	set := pk.Set
	a := sample.ExpandA(set.K, pk.Rho[:])

	r := ring.NewPolyVec(set.K)
	for i := 0; i < set.K; i++ {
		sample.CBD(r.Polys[i], set.Eta1, coins[:], xof.TagCBDSecretS, byte(i))
	}
	e1 := ring.NewPolyVec(set.K)
	for i := 0; i < set.K; i++ {
		sample.CBD(e1.Polys[i], set.Eta2, coins[:], xof.TagCBDErrorE, byte(i))
	}
	e2 := ring.NewPoly()
	sample.CBD(e2, set.Eta2, coins[:], xof.TagCBDErrorE, byte(set.K))

	rHat := r.CopyNew()
	rHat.NTTForward()

	uNTT := ring.NewPolyVec(set.K)
	a.MulVecTranspose(uNTT, rHat)
	u = uNTT.CopyNew()
	u.NTTInverse()
	ring.AddVec(u, u, e1)
	u.Reduce()

	vNTT := ring.NewPoly()
	ring.InnerProduct(vNTT, pk.That, rHat)
	v = vNTT.CopyNew()
	ring.NTTInverse(v)
	ring.Add(v, v, e2)
	encoded := serde.EncodeMessage(m)
	ring.Add(v, v, encoded)
	v.Reduce()

	return u, v
}

// Decrypt runs Dec_PKE(sk, u, v) of spec.md §4.7:
// m' = Decode(v - NTT^-1(s-hat * NTT(u))).
func Decrypt(sk *SecretKeyPKE, u *ring.PolyVec, v *ring.Poly) [32]byte {
	uHat := u.CopyNew()
	uHat.NTTForward()

	noise := ring.NewPoly()
	ring.InnerProduct(noise, sk.SHat, uHat)
	ring.NTTInverse(noise)

	mPoly := ring.NewPoly()
	ring.Sub(mPoly, v, noise)
	mPoly.Reduce()

	return serde.DecodeMessage(mPoly)
}
