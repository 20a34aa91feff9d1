package ring

// Poly is a single element of R_q = Z_q[X]/(X^N+1): an ordered sequence of N
// coefficients together with a domain tag. IsNTT records whether Coeffs holds
// a time-domain or NTT-domain representation; callers are responsible for not
// mixing the two except where the ring structure permits (addition is valid
// in either domain, pointwise product only in the NTT domain). A Poly owns
// its coefficient buffer exclusively: copies duplicate it, there is no
// aliasing between distinct Polys.
type Poly struct {
	Coeffs [N]int16
	IsNTT  bool
}

// NewPoly returns a zero polynomial in the time domain.
func NewPoly() *Poly {
	return &Poly{}
}

// CopyNew returns an exact copy of p, including its domain tag.
func (p *Poly) CopyNew() *Poly {
	q := *p
	return &q
}

// Zero sets every coefficient of p to 0 without changing its domain tag.
func (p *Poly) Zero() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}

// Reduce normalizes every coefficient of p into the canonical range [0, Q).
func (p *Poly) Reduce() {
	for i := range p.Coeffs {
		p.Coeffs[i] = toCanonical(p.Coeffs[i])
	}
}

// Add sets p = a+b, coefficient-wise modulo Q. Valid in either domain,
// provided a and b share the same domain tag.
func Add(p, a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = barrettReduce(a.Coeffs[i] + b.Coeffs[i])
	}
	p.IsNTT = a.IsNTT
}

// Sub sets p = a-b, coefficient-wise modulo Q.
func Sub(p, a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = barrettReduce(a.Coeffs[i] - b.Coeffs[i])
	}
	p.IsNTT = a.IsNTT
}

// Neg sets p = -a, coefficient-wise modulo Q.
func Neg(p, a *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = barrettReduce(-a.Coeffs[i])
	}
	p.IsNTT = a.IsNTT
}

// ScalarMul sets p = a*c, coefficient-wise modulo Q, for a plain (not
// Montgomery-form) scalar c.
func ScalarMul(p, a *Poly, c int16) {
	cMont := toMontgomery(toCanonical(c))
	for i := range p.Coeffs {
		p.Coeffs[i] = fqMul(a.Coeffs[i], cMont)
	}
	p.IsNTT = a.IsNTT
}

// Mul sets p = a*b as ring multiplication, i.e. p = NTT^-1(Basemul(NTT(a),
// NTT(b))). a and b are left untouched in the time domain; NTT is applied to
// working copies. If a or b is already tagged as being in the NTT domain, the
// corresponding transform is skipped.
func Mul(p, a, b *Poly) {
	aNTT := a
	if !a.IsNTT {
		aNTT = a.CopyNew()
		NTTForward(aNTT)
	}
	bNTT := b
	if !b.IsNTT {
		bNTT = b.CopyNew()
		NTTForward(bNTT)
	}
	Basemul(p, aNTT, bNTT)
	NTTInverse(p)
}

// InfinityNorm returns max_i |coeff_i - Q/2|, the centered infinity norm used
// by the signature sketch's rejection-sampling bound checks. It is retained
// here for completeness per spec.md §4.4; the KEM core itself does not call it.
func (p *Poly) InfinityNorm() int16 {
	var max int16
	half := Q / 2
	for _, c := range p.Coeffs {
		c = toCanonical(c)
		centered := c - half
		if centered < 0 {
			centered = -centered
		}
		if centered > max {
			max = centered
		}
	}
	return max
}
