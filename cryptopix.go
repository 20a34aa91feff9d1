/*
Package cryptopixclwe implements a module-lattice key encapsulation
mechanism over the ring R_q = Z_q[X]/(X^N+1), in the Kyber/ML-KEM family:

  - A pure Go implementation of the ring arithmetic, NTT, and sampling
    layers, enabling simple builds without a cgo or assembly dependency.
  - A CPA-secure public-key encryption scheme (package pke) built on module
    learning-with-errors.
  - An IND-CCA2 key encapsulation mechanism (package kem) wrapping the CPA
    scheme with a Fujisaki-Okamoto transform and implicit rejection.

The three named parameter sets L1, L3, and L5 (package params) fix the
module rank, noise distributions, and compression widths for each of the
library's three offered security levels.
*/
package cryptopixclwe
