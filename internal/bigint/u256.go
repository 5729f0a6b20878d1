// Package bigint implements fixed-width unsigned integers used by the scalar
// and point arithmetic. All operations run in time independent of the values
// involved: carries and borrows are propagated through every limb and never
// inspected by a branch.
package bigint

import (
	"encoding/binary"
	"math/bits"
)

// U256 is a 256-bit unsigned integer stored as four 64-bit limbs, least
// significant first.
type U256 struct {
	Limbs [4]uint64

	// Not comparable: == on secret values is a timing leak.
	_ [0]func()
}

// NewU256 returns x as a U256.
func NewU256(x uint64) U256 {
	return U256{Limbs: [4]uint64{x, 0, 0, 0}}
}

// U256FromBytes interprets b as a little-endian integer.
func U256FromBytes(b [32]byte) U256 {
	var u U256
	for i := range u.Limbs {
		u.Limbs[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}
	return u
}

// Bytes returns the little-endian encoding of u.
func (u U256) Bytes() [32]byte {
	var b [32]byte
	for i, l := range u.Limbs {
		binary.LittleEndian.PutUint64(b[i*8:i*8+8], l)
	}
	return b
}

// AddAssign sets u = u + v mod 2^256 and returns the carry out of the top limb.
func (u *U256) AddAssign(v U256) uint64 {
	var carry uint64
	for i := range u.Limbs {
		u.Limbs[i], carry = bits.Add64(u.Limbs[i], v.Limbs[i], carry)
	}
	return carry
}

// Add returns u + v mod 2^256.
func (u U256) Add(v U256) U256 {
	u.AddAssign(v)
	return u
}

// SubWithBorrow sets u = u - v mod 2^256 and returns the final borrow: 0 if
// the original u was >= v, 1 otherwise.
func (u *U256) SubWithBorrow(v U256) uint64 {
	var borrow uint64
	for i := range u.Limbs {
		u.Limbs[i], borrow = bits.Sub64(u.Limbs[i], v.Limbs[i], borrow)
	}
	return borrow
}

// Sub returns u - v mod 2^256.
func (u U256) Sub(v U256) U256 {
	u.SubWithBorrow(v)
	return u
}

// Mul returns the full 512-bit product u * v.
func (u U256) Mul(v U256) U512 {
	var out U512
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(u.Limbs[i], v.Limbs[j])
			var c uint64
			lo, c = bits.Add64(lo, out.Limbs[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			out.Limbs[i+j] = lo
			carry = hi
		}
		out.Limbs[i+4] = carry
	}
	return out
}

// Select returns b if choice == 1 and a if choice == 0. Any other value of
// choice is undefined behavior.
func Select(a, b U256, choice uint64) U256 {
	mask := -choice
	var out U256
	for i := range out.Limbs {
		out.Limbs[i] = a.Limbs[i] ^ (mask & (a.Limbs[i] ^ b.Limbs[i]))
	}
	return out
}

// ConditionalAssign sets u = v if choice == 1 and leaves u unchanged if
// choice == 0.
func (u *U256) ConditionalAssign(v U256, choice uint64) {
	*u = Select(*u, v, choice)
}
