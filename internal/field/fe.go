// Package field implements constant-time arithmetic modulo 2^255 - 19, the
// coordinate field of edwards25519.
package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

// Element represents an element of GF(2^255 - 19). Arguments and receivers
// may alias. The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^51 + t.l2*2^102 + t.l3*2^153 + t.l4*2^204
	//
	// Between operations all limbs are below 2^52.
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
	l4 uint64

	_ [0]func()
}

const maskLow51Bits uint64 = (1 << 51) - 1

var feOne = &Element{l0: 1}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = Element{}
	return v
}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// carryPropagate brings every limb below 2^51, folding the top carry back in
// with the reduction identity 2^255 = 19.
func (v *Element) carryPropagate() *Element {
	c0 := v.l0 >> 51
	c1 := v.l1 >> 51
	c2 := v.l2 >> 51
	c3 := v.l3 >> 51
	c4 := v.l4 >> 51

	v.l0 = v.l0&maskLow51Bits + c4*19
	v.l1 = v.l1&maskLow51Bits + c0
	v.l2 = v.l2&maskLow51Bits + c1
	v.l3 = v.l3&maskLow51Bits + c2
	v.l4 = v.l4&maskLow51Bits + c3
	return v
}

// reduce fully reduces v modulo 2^255 - 19 and returns it.
func (v *Element) reduce() *Element {
	v.carryPropagate()

	// v < 2^255 + 2^13 * 19 here. c is 1 if v >= p, i.e. v + 19 >= 2^255.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l4 &= maskLow51Bits
	return v
}

// Add sets v = a + b, and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v.carryPropagate()
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// Add 2p first so that the limb-wise subtraction cannot underflow.
	v.l0 = (a.l0 + 0xFFFFFFFFFFFDA) - b.l0
	v.l1 = (a.l1 + 0xFFFFFFFFFFFFE) - b.l1
	v.l2 = (a.l2 + 0xFFFFFFFFFFFFE) - b.l2
	v.l3 = (a.l3 + 0xFFFFFFFFFFFFE) - b.l3
	v.l4 = (a.l4 + 0xFFFFFFFFFFFFE) - b.l4
	return v.carryPropagate()
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(&Element{}, a)
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	feMul(v, x, y)
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	feSquare(v, x)
	return v
}

// SetBytes sets v to x, a 32-byte little-endian encoding. The most significant
// bit is ignored and values in [2^255 - 19, 2^255) are accepted and reduced, as
// in RFC 7748. Callers that need canonical encodings must compare the result
// of Bytes with their input.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid element length")
	}

	// Bits 0:51 (bytes 0:8, shift 0).
	v.l0 = binary.LittleEndian.Uint64(x[0:8]) & maskLow51Bits
	// Bits 51:102 (bytes 6:14, shift 3).
	v.l1 = binary.LittleEndian.Uint64(x[6:14]) >> 3 & maskLow51Bits
	// Bits 102:153 (bytes 12:20, shift 6).
	v.l2 = binary.LittleEndian.Uint64(x[12:20]) >> 6 & maskLow51Bits
	// Bits 153:204 (bytes 19:27, shift 1).
	v.l3 = binary.LittleEndian.Uint64(x[19:27]) >> 1 & maskLow51Bits
	// Bits 204:255 (bytes 24:32, shift 12).
	v.l4 = binary.LittleEndian.Uint64(x[24:32]) >> 12 & maskLow51Bits

	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [32]byte
	return v.FillBytes(out[:])
}

// FillBytes writes the canonical encoding of v to b, which must be 32 bytes
// long, and returns b.
func (v *Element) FillBytes(b []byte) []byte {
	if len(b) != 32 {
		panic("field: buffer of the wrong size passed to FillBytes")
	}
	t := *v
	t.reduce()

	binary.LittleEndian.PutUint64(b[0:8], t.l0|t.l1<<51)
	binary.LittleEndian.PutUint64(b[8:16], t.l1>>13|t.l2<<38)
	binary.LittleEndian.PutUint64(b[16:24], t.l2>>26|t.l3<<25)
	binary.LittleEndian.PutUint64(b[24:32], t.l3>>39|t.l4<<12)
	return b
}

// ctEqual returns 1 if v and u represent the same residue, and 0 otherwise.
func (v *Element) ctEqual(u *Element) int {
	var sv, su [32]byte
	v.FillBytes(sv[:])
	u.FillBytes(su[:])
	return subtle.ConstantTimeCompare(sv[:], su[:])
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := -uint64(cond)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := -uint64(cond)
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
	t = m & (v.l4 ^ u.l4)
	v.l4 ^= t
	u.l4 ^= t
}

// CondNegate sets v to -u if cond == 1, and to u if cond == 0.
func (v *Element) CondNegate(u *Element, cond int) *Element {
	var neg Element
	neg.Negate(u)
	return v.Select(&neg, u, cond)
}

// IsNegative returns 1 if v is negative, and 0 otherwise. An element is
// negative when the low bit of its canonical encoding is set.
func (v *Element) IsNegative() int {
	var b [32]byte
	v.FillBytes(b[:])
	return int(b[0] & 1)
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Element) IsZero() int {
	var zero Element
	return v.ctEqual(&zero)
}

// Absolute sets v to |u|, and returns v.
func (v *Element) Absolute(u *Element) *Element {
	return v.CondNegate(u, u.IsNegative())
}
