// Package edwards implements group operations on the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + -(121665/121666) * x^2 * y^2
//
// over GF(2^255 - 19), the curve behind Ed25519.
//
// Points use extended coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z and
// xy = T/Z, following Hisil, Wong, Carter and Dawson, "Twisted Edwards Curves
// Revisited" (https://eprint.iacr.org/2008/522).
package edwards

import (
	"crypto/subtle"
	"errors"

	"github.com/noot/go-edkeygen/internal/field"
)

var (
	// ErrInvalidLength is returned when decoding an input that is not 32 bytes.
	ErrInvalidLength = errors.New("edwards: invalid point encoding length")
	// ErrNonCanonical is returned for encodings of y >= p and for a set sign
	// bit on x = 0.
	ErrNonCanonical = errors.New("edwards: non-canonical point encoding")
	// ErrNotOnCurve is returned when no x satisfies the curve equation for y.
	ErrNotOnCurve = errors.New("edwards: point is not on the curve")
)

// Point is a point on edwards25519. The zero value is NOT valid; use
// NewIdentityPoint, NewGeneratorPoint or SetBytes.
type Point struct {
	x, y, z, t field.Element
}

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint() *Point {
	return new(Point).Identity()
}

// NewGeneratorPoint returns a new Point set to the canonical generator B.
func NewGeneratorPoint() *Point {
	return new(Point).Set(generator)
}

// Identity sets v to the identity (0, 1), and returns v.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()
	return v
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Add sets v = p + q, and returns v.
//
// This is add-2008-hwcd-3, which is complete for a = -1 and non-square d.
func (v *Point) Add(p, q *Point) *Point {
	var tmp1, tmp2, a, b, c, dd, e, f, g, h field.Element

	tmp1.Subtract(&p.y, &p.x)
	tmp2.Subtract(&q.y, &q.x)
	a.Multiply(&tmp1, &tmp2) // (Y1-X1)*(Y2-X2)
	tmp1.Add(&p.y, &p.x)
	tmp2.Add(&q.y, &q.x)
	b.Multiply(&tmp1, &tmp2) // (Y1+X1)*(Y2+X2)
	tmp1.Multiply(&p.t, &q.t)
	c.Multiply(&tmp1, d2) // T1*2d*T2
	tmp1.Multiply(&p.z, &q.z)
	dd.Add(&tmp1, &tmp1) // 2*Z1*Z2

	e.Subtract(&b, &a)
	f.Subtract(&dd, &c)
	g.Add(&dd, &c)
	h.Add(&b, &a)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	var neg Point
	neg.Negate(q)
	return v.Add(p, &neg)
}

// Double sets v = 2 * p, and returns v.
//
// This is dbl-2008-hwcd with a = -1.
func (v *Point) Double(p *Point) *Point {
	var a, b, c, dd, e, f, g, h, t0 field.Element

	a.Square(&p.x)
	b.Square(&p.y)
	c.Square(&p.z)
	c.Add(&c, &c)
	dd.Negate(&a)

	t0.Add(&p.x, &p.y)
	t0.Square(&t0)
	e.Subtract(&t0, &a)
	e.Subtract(&e, &b)

	g.Add(&dd, &b)
	f.Subtract(&g, &c)
	h.Subtract(&dd, &b)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// Equal returns 1 if v is equivalent to u, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 field.Element
	t1.Multiply(&v.x, &u.z)
	t2.Multiply(&u.x, &v.z)
	t3.Multiply(&v.y, &u.z)
	t4.Multiply(&u.y, &v.z)

	return subtle.ConstantTimeCompare(t1.Bytes(), t2.Bytes()) &
		subtle.ConstantTimeCompare(t3.Bytes(), t4.Bytes())
}

// Select sets v to a if cond == 1 and to b if cond == 0.
func (v *Point) Select(a, b *Point, cond int) *Point {
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.z.Select(&a.z, &b.z, cond)
	v.t.Select(&a.t, &b.t, cond)
	return v
}

// Bytes returns the canonical 32-byte encoding of v: the little-endian
// encoding of y with the sign of x in the most significant bit.
func (v *Point) Bytes() []byte {
	var zInv, x, y field.Element
	zInv.Invert(&v.z)
	x.Multiply(&v.x, &zInv)
	y.Multiply(&v.y, &zInv)

	out := y.Bytes()
	out[31] |= byte(x.IsNegative() << 7)
	return out
}

// SetBytes sets v to the point encoded in x, and returns v.
//
// Decoding is strict, following RFC 8032 section 5.1.3: y must be below p,
// the recovered x^2 must be square, and x = 0 must not carry a sign bit. If x
// is not a valid encoding, SetBytes returns nil and an error and v is
// unchanged. Encodings are public, so decoding returns early on failure.
func (v *Point) SetBytes(x []byte) (*Point, error) {
	if len(x) != 32 {
		return nil, ErrInvalidLength
	}

	y, err := new(field.Element).SetBytes(x)
	if err != nil {
		return nil, err
	}
	var masked [32]byte
	copy(masked[:], x)
	masked[31] &= 0x7f
	if subtle.ConstantTimeCompare(y.Bytes(), masked[:]) != 1 {
		return nil, ErrNonCanonical
	}

	// -x^2 + y^2 = 1 + d*x^2*y^2
	// x^2 = (y^2 - 1) / (d*y^2 + 1)
	y2 := new(field.Element).Square(y)
	u := new(field.Element).Subtract(y2, feOne)
	w := new(field.Element).Multiply(y2, d)
	w.Add(w, feOne)

	xx, wasSquare := new(field.Element).SqrtRatio(u, w)
	if wasSquare == 0 {
		return nil, ErrNotOnCurve
	}

	sign := int(x[31] >> 7)
	if xx.IsZero() == 1 && sign == 1 {
		return nil, ErrNonCanonical
	}
	xx.CondNegate(xx, sign)

	v.x.Set(xx)
	v.y.Set(y)
	v.z.One()
	v.t.Multiply(xx, y)
	return v, nil
}
