package bigint

import (
	"encoding/binary"
	"math/bits"
)

// U512 is a 512-bit unsigned integer stored as eight 64-bit limbs, least
// significant first. It holds the double-width products of U256 values.
type U512 struct {
	Limbs [8]uint64

	_ [0]func()
}

// WidenU256 returns u zero-extended to 512 bits.
func WidenU256(u U256) U512 {
	var out U512
	copy(out.Limbs[:4], u.Limbs[:])
	return out
}

// U512FromBytes interprets b as a little-endian integer.
func U512FromBytes(b [64]byte) U512 {
	var u U512
	for i := range u.Limbs {
		u.Limbs[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}
	return u
}

// Lo returns the low 256 bits of u.
func (u U512) Lo() U256 {
	var out U256
	copy(out.Limbs[:], u.Limbs[:4])
	return out
}

// Hi returns the high 256 bits of u.
func (u U512) Hi() U256 {
	var out U256
	copy(out.Limbs[:], u.Limbs[4:])
	return out
}

// MulU256 returns the 768-bit product u * v split into its high 256 bits and
// its low 512 bits.
func (u U512) MulU256(v U256) (hi U256, lo U512) {
	var prod [12]uint64
	for i := 0; i < 8; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			h, l := bits.Mul64(u.Limbs[i], v.Limbs[j])
			var c uint64
			l, c = bits.Add64(l, prod[i+j], 0)
			h += c
			l, c = bits.Add64(l, carry, 0)
			h += c
			prod[i+j] = l
			carry = h
		}
		prod[i+4] = carry
	}
	copy(lo.Limbs[:], prod[:8])
	copy(hi.Limbs[:], prod[8:])
	return hi, lo
}
