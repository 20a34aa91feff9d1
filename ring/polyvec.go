package ring

// PolyVec is an ordered sequence of K Polys sharing a domain tag, used for
// the secret/error/ciphertext vectors of the module-LWE layer.
type PolyVec struct {
	Polys []*Poly
}

// NewPolyVec returns a PolyVec of k zero polynomials.
func NewPolyVec(k int) *PolyVec {
	v := &PolyVec{Polys: make([]*Poly, k)}
	for i := range v.Polys {
		v.Polys[i] = NewPoly()
	}
	return v
}

// K returns the number of components of v.
func (v *PolyVec) K() int {
	return len(v.Polys)
}

// CopyNew returns an exact copy of v.
func (v *PolyVec) CopyNew() *PolyVec {
	w := &PolyVec{Polys: make([]*Poly, len(v.Polys))}
	for i, p := range v.Polys {
		w.Polys[i] = p.CopyNew()
	}
	return w
}

// NTTForward applies NTTForward to every component of v in place.
func (v *PolyVec) NTTForward() {
	for _, p := range v.Polys {
		NTTForward(p)
	}
}

// NTTInverse applies NTTInverse to every component of v in place.
func (v *PolyVec) NTTInverse() {
	for _, p := range v.Polys {
		NTTInverse(p)
	}
}

// Reduce normalizes every component of v into canonical form.
func (v *PolyVec) Reduce() {
	for _, p := range v.Polys {
		p.Reduce()
	}
}

// AddVec sets v = a+b component-wise.
func AddVec(v, a, b *PolyVec) {
	for i := range v.Polys {
		Add(v.Polys[i], a.Polys[i], b.Polys[i])
	}
}

// SubVec sets v = a-b component-wise.
func SubVec(v, a, b *PolyVec) {
	for i := range v.Polys {
		Sub(v.Polys[i], a.Polys[i], b.Polys[i])
	}
}

// InnerProduct sets p = sum_i a_i*b_i, an NTT-domain pointwise dot product
// (both a and b must already be in the NTT domain; the result is returned in
// the NTT domain too since repeated Basemul/NTTInverse round trips would be
// wasteful — callers apply NTTInverse once on the accumulated sum).
func InnerProduct(p *Poly, a, b *PolyVec) {
	p.Zero()
	p.IsNTT = true
	tmp := NewPoly()
	for i := range a.Polys {
		Basemul(tmp, a.Polys[i], b.Polys[i])
		Add(p, p, tmp)
	}
}

// Matrix is a K x K array of Polys in the NTT domain, the expansion of A from
// a seed (see the sample package). Matrix is never serialized; it is always
// regenerated from its seed.
type Matrix struct {
	K     int
	Rows  [][]*Poly // Rows[i][j] is A[i][j]
}

// NewMatrix returns a k x k matrix of zero, time-domain polynomials.
func NewMatrix(k int) *Matrix {
	m := &Matrix{K: k, Rows: make([][]*Poly, k)}
	for i := range m.Rows {
		m.Rows[i] = make([]*Poly, k)
		for j := range m.Rows[i] {
			m.Rows[i][j] = NewPoly()
		}
	}
	return m
}

// MulVec sets v = A*s, the matrix-vector product, where A and s are both in
// the NTT domain. The result is left in the NTT domain.
func (m *Matrix) MulVec(v *PolyVec, s *PolyVec) {
	for i := 0; i < m.K; i++ {
		row := &PolyVec{Polys: m.Rows[i]}
		InnerProduct(v.Polys[i], row, s)
	}
}

// MulVecTranspose sets v = A^T*s, the transposed matrix-vector product used
// by encryption. A^T*s is computed by reading the columns of A as rows; no
// transposed copy of the matrix is built.
func (m *Matrix) MulVecTranspose(v *PolyVec, s *PolyVec) {
	for j := 0; j < m.K; j++ {
		col := make([]*Poly, m.K)
		for i := 0; i < m.K; i++ {
			col[i] = m.Rows[i][j]
		}
		row := &PolyVec{Polys: col}
		InnerProduct(v.Polys[j], row, s)
	}
}
