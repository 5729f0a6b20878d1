package edwards

import (
	"crypto/subtle"

	"github.com/noot/go-edkeygen/internal/scalar"
)

// lookupTable holds the multiples 0*P through 15*P of a point.
type lookupTable struct {
	points [16]Point
}

func newLookupTable(p *Point) *lookupTable {
	var table lookupTable
	table.points[0].Identity()
	table.points[1].Set(p)
	for i := 2; i < 16; i++ {
		table.points[i].Add(&table.points[i-1], p)
	}
	return &table
}

// selectInto sets dst to i*P in constant time by touching every entry.
func (t *lookupTable) selectInto(dst *Point, i uint8) {
	dst.Identity()
	for j := 1; j < 16; j++ {
		dst.Select(&t.points[j], dst, subtle.ConstantTimeByteEq(i, uint8(j)))
	}
}

// ScalarMult sets v = s * p, and returns v.
//
// The scalar is read as 64 unsigned 4-bit windows from the top down, so the
// sequence of operations is the same for every scalar: 256 doublings, 64
// additions and 64 full table scans. s does not need to be reduced, which
// lets clamped scalars be used directly.
func (v *Point) ScalarMult(s scalar.Scalar, p *Point) *Point {
	return v.scalarMultTable(s, newLookupTable(p))
}

// ScalarBaseMult sets v = s * B, where B is the canonical generator, and
// returns v.
func (v *Point) ScalarBaseMult(s scalar.Scalar) *Point {
	return v.scalarMultTable(s, baseTable)
}

func (v *Point) scalarMultTable(s scalar.Scalar, table *lookupTable) *Point {
	b := s.Bytes()
	defer func() {
		for i := range b {
			b[i] = 0
		}
	}()

	var acc, multiple Point
	acc.Identity()
	for i := 63; i >= 0; i-- {
		acc.Double(&acc)
		acc.Double(&acc)
		acc.Double(&acc)
		acc.Double(&acc)

		window := (b[i/2] >> (4 * uint(i%2))) & 0x0f
		table.selectInto(&multiple, window)
		acc.Add(&acc, &multiple)
	}
	return v.Set(&acc)
}
