// Package kem implements the IND-CCA2 key encapsulation mechanism of
// spec.md §4.8: the Fujisaki-Okamoto transform with implicit rejection,
// wrapping the CPA-secure package pke. The public/secret key and ciphertext
// wire formats follow the teacher's rlwe.PublicKey/rlwe.SecretKey pattern of
// plain, directly-constructible structs with explicit MarshalBinary-style
// byte accessors rather than an opaque handle type.
package kem

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/cryptopix-dev/cryptopix-clwe/params"
	"github.com/cryptopix-dev/cryptopix-clwe/pke"
	"github.com/cryptopix-dev/cryptopix-clwe/ring"
	"github.com/cryptopix-dev/cryptopix-clwe/serde"
	"github.com/cryptopix-dev/cryptopix-clwe/xof"
)

// PublicKey is the CCA public key, identical in content to the CPA pke
// public key: it carries no extra state of its own.
type PublicKey struct {
	Set params.Set
	pk  *pke.PublicKey
}

// SecretKey is the CCA secret key of spec.md §4.8: the CPA secret key
// s-hat, the encoded public key, its hash H(pk), and the 32-byte implicit-
// rejection seed z substituted in for the shared secret whenever decryption
// fails re-encryption.
type SecretKey struct {
	Set   params.Set
	sk    *pke.SecretKeyPKE
	pk    *PublicKey
	pkB   []byte
	hpk   [32]byte
	z     [32]byte
}

// Ciphertext is the encapsulated output (u, v) of spec.md §4.7/4.8, kept in
// unpacked ring form until Bytes is called.
type Ciphertext struct {
	Set params.Set
	u   *ring.PolyVec
	v   *ring.Poly
}

// KeyGen runs KeyGen of spec.md §4.8: derive the CPA key pair from a fresh
// 32-byte seed d, draw a fresh 32-byte implicit-rejection seed z, and bundle
// both public-key bytes and their hash into the secret key. Randomness is
// drawn from crypto/rand; a failure there is an spec.md §7 entropy failure,
// surfaced rather than silently falling back to a weaker source.
func KeyGen(set params.Set) (*PublicKey, *SecretKey, error) {
	var d, z [32]byte
	if _, err := rand.Read(d[:]); err != nil {
		return nil, nil, &EntropyError{Cause: err}
	}
	if _, err := rand.Read(z[:]); err != nil {
		return nil, nil, &EntropyError{Cause: err}
	}
	return keyGenWithSeeds(set, d, z)
}

// KeyGenDeterministic runs KeyGen with caller-supplied seeds d (key-pair
// derivation) and z (implicit-rejection fallback), for reproducible test
// vectors and the zero-seed fingerprinting scenario of spec.md §8.
func KeyGenDeterministic(set params.Set, d, z [32]byte) (*PublicKey, *SecretKey, error) {
	return keyGenWithSeeds(set, d, z)
}

// KeyGenNamed runs KeyGen for the parameter set named setName (e.g. "L1",
// "L3", "L5"), the entry point for a caller that only has a configuration
// string (a flag, a config file field) rather than an already-resolved
// params.Set. An unrecognized name surfaces params.Parse's
// *params.ConfigError unchanged.
func KeyGenNamed(setName string) (*PublicKey, *SecretKey, error) {
	set, err := params.SetByName(setName)
	if err != nil {
		return nil, nil, err
	}
	return KeyGen(set)
}

func keyGenWithSeeds(set params.Set, d, z [32]byte) (*PublicKey, *SecretKey, error) {
	pkePub, pkeSec := pke.KeyGen(set, d)

	pub := &PublicKey{Set: set, pk: pkePub}
	pkBytes := pub.Bytes()
	hpk := xof.Hash256(pkBytes)

	sec := &SecretKey{
		Set: set,
		sk:  pkeSec,
		pk:  pub,
		pkB: pkBytes,
		hpk: hpk,
		z:   z,
	}
	return pub, sec, nil
}

// Encapsulate runs Encaps(pk) of spec.md §4.8: draw a fresh 32-byte coin m,
// split (Kbar, r) = G(m, H(pk)) under the Encaps domain tag, encrypt m under
// r to get the ciphertext, and derive the shared secret K = KDF(Kbar, H(c)).
// The coin is used as drawn; it is not hashed before the G split.
func (pub *PublicKey) Encapsulate() (*Ciphertext, [32]byte, error) {
	var m [32]byte
	if _, err := rand.Read(m[:]); err != nil {
		return nil, [32]byte{}, &EntropyError{Cause: err}
	}
	ct, k := pub.encapsulateWithCoin(m)
	return ct, k, nil
}

// EncapsulateDeterministic runs Encaps with a caller-supplied coin m, for
// reproducible fixtures (spec.md §8's zero-seed Encaps scenario).
func (pub *PublicKey) EncapsulateDeterministic(m [32]byte) (*Ciphertext, [32]byte) {
	return pub.encapsulateWithCoin(m)
}

func (pub *PublicKey) encapsulateWithCoin(m [32]byte) (*Ciphertext, [32]byte) {
	pkBytes := pub.Bytes()
	hpk := xof.Hash256(pkBytes)
	kbar, r := xof.G(xof.TagEncapsSplit, m[:], hpk[:])

	u, v := pke.Encrypt(pub.pk, m, r)
	ct := &Ciphertext{Set: pub.Set, u: u, v: v}

	hc := xof.Hash256(ct.Bytes())
	k := xof.KDF(kbar[:], hc[:])
	return ct, k
}

// Decapsulate runs Decaps(sk, c) of spec.md §4.8: decrypt c under the CPA
// secret key to recover m', re-derive (Kbar', r') and re-encrypt under r' to
// get c'. If c' equals c (compared in constant time), the shared secret is
// KDF(Kbar', H(c)); otherwise it is KDF(z, H(c)), the implicit-rejection
// fallback that makes Decapsulate total and side-channel-silent about which
// branch was taken. A ciphertext mismatch is never reported as an error —
// per spec.md §7 a decapsulation mismatch is not an error condition, only a
// divergent (but still well-formed, still constant-length) output key.
func (sec *SecretKey) Decapsulate(ct *Ciphertext) [32]byte {
	mPrime := pke.Decrypt(sec.sk, ct.u, ct.v)

	kbarPrime, rPrime := xof.G(xof.TagEncapsSplit, mPrime[:], sec.hpk[:])

	uPrime, vPrime := pke.Encrypt(sec.pk.pk, mPrime, rPrime)
	cPrime := &Ciphertext{Set: sec.Set, u: uPrime, v: vPrime}

	ctBytes := ct.Bytes()
	cPrimeBytes := cPrime.Bytes()
	hc := xof.Hash256(ctBytes)

	match := subtle.ConstantTimeCompare(ctBytes, cPrimeBytes)

	kbarOrZ := make([]byte, 32)
	subtle.ConstantTimeCopy(match, kbarOrZ, kbarPrime[:])
	subtle.ConstantTimeCopy(1-match, kbarOrZ, sec.z[:])

	return xof.KDF(kbarOrZ, hc[:])
}

// Bytes serializes pub as (rho, t-hat-packed), matching the order
// params.Set.PublicKeySize expects a wire string to arrive in.
func (pub *PublicKey) Bytes() []byte {
	out := make([]byte, 0, pub.Set.PublicKeySize())
	out = append(out, pub.pk.Rho[:]...)
	out = append(out, serde.PackVec(pub.pk.That)...)
	return out
}

// ParsePublicKey decodes a public key for set from data, rejecting any
// length other than set.PublicKeySize() as an spec.md §7 deserialization
// error before touching a single byte's meaning, so an L3 public key handed
// to an L1 context fails fast. Ciphertexts get the same check from
// ParseCiphertext.
func ParsePublicKey(set params.Set, data []byte) (*PublicKey, error) {
	if len(data) != set.PublicKeySize() {
		return nil, &DeserializeError{Kind: "public key", Got: len(data), Expected: set.PublicKeySize()}
	}
	var rho [32]byte
	copy(rho[:], data[:32])
	that := serde.UnpackVec(set.K, data[32:])
	return &PublicKey{Set: set, pk: &pke.PublicKey{Set: set, That: that, Rho: rho}}, nil
}

// Bytes serializes sec as (s-hat-packed, pk-bytes, H(pk), z), matching the
// order params.Set.SecretKeySize expects.
func (sec *SecretKey) Bytes() []byte {
	out := make([]byte, 0, sec.Set.SecretKeySize())
	out = append(out, serde.PackVec(sec.sk.SHat)...)
	out = append(out, sec.pkB...)
	out = append(out, sec.hpk[:]...)
	out = append(out, sec.z[:]...)
	return out
}

// ParseSecretKey decodes a secret key for set from data, rejecting any
// length other than set.SecretKeySize() as an spec.md §7 deserialization
// error.
func ParseSecretKey(set params.Set, data []byte) (*SecretKey, error) {
	if len(data) != set.SecretKeySize() {
		return nil, &DeserializeError{Kind: "secret key", Got: len(data), Expected: set.SecretKeySize()}
	}
	skBytes := data[:set.K*serde.PolyBytes]
	rest := data[set.K*serde.PolyBytes:]
	pkBytes := rest[:set.PublicKeySize()]
	rest = rest[set.PublicKeySize():]
	var hpk, z [32]byte
	copy(hpk[:], rest[:32])
	copy(z[:], rest[32:64])

	pub, err := ParsePublicKey(set, pkBytes)
	if err != nil {
		return nil, fmt.Errorf("kem: parsing embedded public key: %w", err)
	}
	sHat := serde.UnpackVec(set.K, skBytes)

	return &SecretKey{
		Set: set,
		sk:  &pke.SecretKeyPKE{Set: set, SHat: sHat},
		pk:  pub,
		pkB: pkBytes,
		hpk: hpk,
		z:   z,
	}, nil
}

// Bytes serializes ct as k polynomials compressed to Du bits followed by one
// polynomial compressed to Dv bits, matching params.Set.CiphertextSize.
func (ct *Ciphertext) Bytes() []byte {
	out := make([]byte, 0, ct.Set.CiphertextSize())
	for _, p := range ct.u.Polys {
		out = append(out, serde.PackCompressed(serde.CompressPoly(p, ct.Set.Du), ct.Set.Du)...)
	}
	out = append(out, serde.PackCompressed(serde.CompressPoly(ct.v, ct.Set.Dv), ct.Set.Dv)...)
	return out
}

// ParseCiphertext decodes a ciphertext for set from data, rejecting any
// length other than set.CiphertextSize() as an spec.md §7 deserialization
// error. This is the check that makes a cross-parameter-set ciphertext fail
// before Decapsulate ever runs.
func ParseCiphertext(set params.Set, data []byte) (*Ciphertext, error) {
	if len(data) != set.CiphertextSize() {
		return nil, &DeserializeError{Kind: "ciphertext", Got: len(data), Expected: set.CiphertextSize()}
	}
	uBytes := serde.CompressedPolyBytes(set.Du)
	u := ring.NewPolyVec(set.K)
	offset := 0
	for i := 0; i < set.K; i++ {
		vals := serde.UnpackCompressed(data[offset:offset+uBytes], set.Du, ring.N)
		u.Polys[i] = serde.DecompressPoly(vals, set.Du)
		offset += uBytes
	}
	vVals := serde.UnpackCompressed(data[offset:], set.Dv, ring.N)
	v := serde.DecompressPoly(vVals, set.Dv)
	return &Ciphertext{Set: set, u: u, v: v}, nil
}
