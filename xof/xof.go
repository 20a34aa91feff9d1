// Package xof provides the two extendable-output function configurations
// spec.md §4.1 requires: XOF128 for deterministic matrix expansion and XOF256
// for noise sampling, key derivation, and hashing. Both are backed by the
// SHAKE sponge from golang.org/x/crypto/sha3, the same sponge family the rest
// of the example pack reaches for when it needs a keyed extendable-output
// function (see JonasLazardGIT-SPRUCE/PIOP/fs_helpers.go's Shake256XOF).
package xof

import (
	"golang.org/x/crypto/sha3"
)

// Domain-separation tags absorbed after a shared seed whenever that seed
// feeds more than one use, per spec.md §6.
const (
	TagKeyGenSplit  byte = 0x00
	TagEncapsSplit  byte = 0x01
	TagCBDSecretS   byte = 0x02
	TagCBDErrorE    byte = 0x03
	TagKDF          byte = 0x04
)

// XOF wraps a SHAKE sponge with the absorb-then-squeeze discipline spec.md
// requires: calls are deterministic in their input, and absorbing after a
// squeeze on the same instance is undefined (the underlying sha3.ShakeHash
// permits it mechanically, but callers here always build a fresh instance per
// absorb/squeeze session via New128/New256).
type XOF struct {
	sponge sha3.ShakeHash
}

// New128 returns an XOF128 instance (128-bit security), used for matrix
// expansion.
func New128() *XOF {
	return &XOF{sponge: sha3.NewShake128()}
}

// New256 returns an XOF256 instance (256-bit security), used for noise
// sampling, key derivation, and hashing.
func New256() *XOF {
	return &XOF{sponge: sha3.NewShake256()}
}

// Absorb writes data into the sponge. It never fails on valid input; any
// allocation failure from the underlying hash propagates as a panic from the
// standard library, which this wrapper does not shield callers from (per
// spec.md §4.1, "XOF may not fail on valid inputs").
func (x *XOF) Absorb(data ...[]byte) *XOF {
	for _, d := range data {
		if _, err := x.sponge.Write(d); err != nil {
			panic(err)
		}
	}
	return x
}

// Squeeze returns n fresh bytes of output. Repeated calls on the same
// instance continue the output stream; to restart, build a new XOF.
func (x *XOF) Squeeze(n int) []byte {
	out := make([]byte, n)
	if _, err := x.sponge.Read(out); err != nil {
		panic(err)
	}
	return out
}

// Expand128 is a one-shot helper: absorb parts into a fresh XOF128 instance
// and squeeze n bytes. Matrix expansion does not call it: sample.Uniform
// builds its own New128 instance and squeezes it block by block.
func Expand128(n int, parts ...[]byte) []byte {
	return New128().Absorb(parts...).Squeeze(n)
}

// Expand256 is a one-shot helper: absorb parts into a fresh XOF256 instance
// and squeeze n bytes.
func Expand256(n int, parts ...[]byte) []byte {
	return New256().Absorb(parts...).Squeeze(n)
}

// Hash256 squeezes a 32-byte digest of data from XOF256, used wherever
// the KEM hashes the public key or the ciphertext. The encapsulation coin is
// not passed through it.
func Hash256(data ...[]byte) [32]byte {
	var out [32]byte
	copy(out[:], Expand256(32, data...))
	return out
}

// G splits a 64-byte XOF256 expansion of data into two 32-byte halves, used
// for the (rho, sigma) split in KeyGen_PKE and the (Kbar, r) split in
// Encaps, each disambiguated by a domain tag absorbed alongside data.
func G(tag byte, data ...[]byte) (first, second [32]byte) {
	parts := make([][]byte, 0, len(data)+1)
	parts = append(parts, data...)
	parts = append(parts, []byte{tag})
	wide := Expand256(64, parts...)
	copy(first[:], wide[:32])
	copy(second[:], wide[32:])
	return
}

// KDF derives the final shared secret from K-bar and H(c), tagged per
// spec.md §6.
func KDF(kbar, hc []byte) [32]byte {
	return Hash256(kbar, hc, []byte{TagKDF})
}
