package sample

import "github.com/cryptopix-dev/cryptopix-clwe/ring"

// ExpandA deterministically derives the k x k matrix A from the 32-byte seed
// rho, returning it already in the NTT domain. Each entry A[i][j] is sampled
// by seeding XOF128 with rho || j || i, the index order of spec.md §4.5.
// Key generation and encryption expand the same matrix; the transposed
// product A^T*r that encryption needs is formed by
// ring.Matrix.MulVecTranspose, which reads the columns of A as rows.
func ExpandA(k int, rho []byte) *ring.Matrix {
	m := ring.NewMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			p := ring.NewPoly()
			Uniform(p, rho, []byte{byte(j)}, []byte{byte(i)})
			ring.NTTForward(p)
			m.Rows[i][j] = p
		}
	}
	return m
}
