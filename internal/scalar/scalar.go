// Package scalar implements arithmetic in Z/LZ, where
//
//	L = 2^252 + 27742317777372353535851937790883648493
//
// is the order of the prime-order subgroup of edwards25519.
//
// Every operation runs in constant time. Scalar has no equality
// method and cannot be compared with ==; code that needs to compare secret
// scalars has a timing leak.
package scalar

import (
	"errors"

	"github.com/noot/go-edkeygen/internal/bigint"
)

// ErrNonCanonical is returned when decoding a 32-byte value that is not below L.
var ErrNonCanonical = errors.New("scalar: value is not reduced modulo L")

var (
	// l is the group order L.
	l = bigint.U256{Limbs: [4]uint64{
		0x5812631a5cf5d3ed,
		0x14def9dea2f79cd6,
		0x0000000000000000,
		0x1000000000000000,
	}}

	// r is the Barrett constant floor(2^506 / L).
	r = bigint.U256{Limbs: [4]uint64{
		0x9fb673968c28b04c,
		0xac84188574218ca6,
		0xffffffffffffffff,
		0x3fffffffffffffff,
	}}

	// rr is 2^256 mod L, used to fold the high half of a wide input.
	rr = Scalar{value: bigint.U256{Limbs: [4]uint64{
		0xd6ec31748d98951d,
		0xc6ef5bf4737dcf70,
		0xfffffffffffffffe,
		0x0fffffffffffffff,
	}}}
)

// Order returns L.
func Order() bigint.U256 {
	return l
}

// Scalar is an element of Z/LZ. Values produced by the arithmetic methods are
// always below L; values produced by Clamped may not be.
type Scalar struct {
	value bigint.U256
}

// New returns x as a scalar.
func New(x uint64) Scalar {
	return Scalar{value: bigint.NewU256(x)}
}

// Clamped applies the RFC 8032 section 5.1.5 clamping to b and interprets the
// result as a little-endian integer: the three low bits are cleared, bit 255
// is cleared and bit 254 is set.
//
// The result is not reduced modulo L. It is meant to be used directly as a
// point multiplier; call Reduce before mixing it with reduced scalars.
func Clamped(b [32]byte) Scalar {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
	return Scalar{value: bigint.U256FromBytes(b)}
}

// SetCanonicalBytes decodes a 32-byte little-endian scalar, rejecting values
// that are not below L.
func SetCanonicalBytes(b [32]byte) (Scalar, error) {
	s := Scalar{value: bigint.U256FromBytes(b)}
	t := s.value
	// Whether the encoding is canonical is public: it decides the error.
	if t.SubWithBorrow(l) == 0 {
		return Scalar{}, ErrNonCanonical
	}
	return s, nil
}

// FromUniformBytes reduces a 64-byte little-endian integer modulo L. With
// uniformly random input the result is uniform up to a negligible bias.
func FromUniformBytes(b [64]byte) Scalar {
	wide := bigint.U512FromBytes(b)
	lo := reduceBarrett(bigint.WidenU256(wide.Lo()))
	hi := reduceBarrett(bigint.WidenU256(wide.Hi()))
	hi.MulAssign(rr)
	lo.AddAssign(hi)
	return lo
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s Scalar) Bytes() [32]byte {
	return s.value.Bytes()
}

// Reduce returns s modulo L. It accepts any 256-bit value, including clamped
// scalars.
func (s Scalar) Reduce() Scalar {
	return reduceBarrett(bigint.WidenU256(s.value))
}

// AddAssign sets s = s + t mod L. Both operands must be below L.
func (s *Scalar) AddAssign(t Scalar) {
	s.value.AddAssign(t.value)
	s.reduceAfterAddition()
}

// Add returns s + t mod L. Both operands must be below L.
func (s Scalar) Add(t Scalar) Scalar {
	s.AddAssign(t)
	return s
}

// MulAssign sets s = s * t mod L. Both operands must be below 2^253, which
// every reduced scalar is.
func (s *Scalar) MulAssign(t Scalar) {
	*s = reduceBarrett(s.value.Mul(t.value))
}

// Mul returns s * t mod L. Both operands must be below 2^253.
func (s Scalar) Mul(t Scalar) Scalar {
	s.MulAssign(t)
	return s
}

// Negate returns -s mod L. s must be below L.
func (s Scalar) Negate() Scalar {
	out := Scalar{value: l.Sub(s.value)}
	// L - 0 = L, which reduces to 0.
	out.reduceAfterAddition()
	return out
}

// Subtract returns s - t mod L. Both operands must be below L.
func (s Scalar) Subtract(t Scalar) Scalar {
	return s.Add(t.Negate())
}

// Invert returns s^-1 mod L, computed as s^(L-2). The inverse of zero is zero.
func (s Scalar) Invert() Scalar {
	e := l.Sub(bigint.NewU256(2)).Bytes()
	out := New(1)
	// The exponent is public, so walking its bits leaks nothing about s.
	for i := 252; i >= 0; i-- {
		out.MulAssign(out)
		if (e[i/8]>>(i%8))&1 == 1 {
			out.MulAssign(s)
		}
	}
	return out
}

// IsZero returns 1 if s is zero and 0 otherwise. s must be reduced.
func (s Scalar) IsZero() int {
	x := s.value.Limbs[0] | s.value.Limbs[1] | s.value.Limbs[2] | s.value.Limbs[3]
	return int(((x | -x) >> 63) ^ 1)
}

// Select returns b if choice == 1 and a if choice == 0.
func Select(a, b Scalar, choice int) Scalar {
	return Scalar{value: bigint.Select(a.value, b.value, uint64(choice))}
}

// ConditionalAssign sets s = t if choice == 1 and leaves s unchanged otherwise.
func (s *Scalar) ConditionalAssign(t Scalar, choice int) {
	*s = Select(*s, t, choice)
}

// reduceAfterAddition subtracts L once if s >= L. It is valid whenever s < 2L,
// which holds after adding two reduced scalars.
func (s *Scalar) reduceAfterAddition() {
	reduced := *s
	borrow := reduced.value.SubWithBorrow(l)
	s.ConditionalAssign(reduced, int(borrow^1))
}

// reduceBarrett returns x mod L for any x < 2^506.
//
// The quotient estimate is q = floor(x * r / 2^506). The 768-bit product x * r
// is split as hi (bits 512..767) and lo (bits 0..511); bit 506 is bit 58 of
// lo limb 7, so each limb of q is (hi[i] << 6) | (previous limb >> 58).
// Because r = floor(2^506 / L), q undershoots floor(x / L) by at most one when
// x < 2^506, leaving x - q*L in [0, 2L). That difference fits in 256 bits, so
// it is computed on the low halves and fixed up with a single conditional
// subtraction.
func reduceBarrett(x bigint.U512) Scalar {
	hi, lo := x.MulU256(r)
	q := bigint.U256{Limbs: [4]uint64{
		hi.Limbs[0]<<6 | lo.Limbs[7]>>58,
		hi.Limbs[1]<<6 | hi.Limbs[0]>>58,
		hi.Limbs[2]<<6 | hi.Limbs[1]>>58,
		hi.Limbs[3]<<6 | hi.Limbs[2]>>58,
	}}
	qL := q.Mul(l)
	s := Scalar{value: x.Lo().Sub(qL.Lo())}
	s.reduceAfterAddition()
	return s
}
