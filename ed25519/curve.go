// Package ed25519 implements types.Curve for the prime-order subgroup of
// edwards25519.
package ed25519

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/noot/go-edkeygen/internal/edwards"
	"github.com/noot/go-edkeygen/internal/scalar"
	"github.com/noot/go-edkeygen/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

// altBasePoint is a second generator whose discrete log relative to the base
// point is unknown.
const altBasePoint = "8b655970153799af2aeadc9ff1add0ea6c7251d54154cfa92c173a0dd39c1f94"

type CurveImpl struct {
	rand io.Reader
}

// NewCurve returns a Curve that draws random scalars from crypto/rand.
func NewCurve() Curve {
	return &CurveImpl{rand: rand.Reader}
}

// NewCurveWithReader returns a Curve that draws random scalars from r.
func NewCurveWithReader(r io.Reader) Curve {
	return &CurveImpl{rand: r}
}

func (c *CurveImpl) BitSize() uint64 {
	return 252
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards.NewGeneratorPoint(),
	}
}

func (c *CurveImpl) AltBasePoint() Point {
	b, err := hex.DecodeString(altBasePoint)
	if err != nil {
		panic(err)
	}

	p, err := new(edwards.Point).SetBytes(b)
	if err != nil {
		panic(err)
	}

	return &PointImpl{
		inner: p,
	}
}

func (c *CurveImpl) NewRandomScalar() (Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(c.rand, b[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read random bytes")
	}

	s := scalar.FromUniformBytes(b)
	for i := range b {
		b[i] = 0
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	return &ScalarImpl{
		inner: scalar.New(uint64(in)),
	}
}

func (c *CurveImpl) ScalarFromBytes(b [32]byte) (Scalar, error) {
	s, err := scalar.SetCanonicalBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode scalar")
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

// ClampedScalar clamps b as an Ed25519 secret scalar and reduces it modulo
// the group order. Multiplying by the reduced value gives the same point.
func (c *CurveImpl) ClampedScalar(b [32]byte) Scalar {
	return &ScalarImpl{
		inner: scalar.Clamped(b).Reduce(),
	}
}

// HashToScalar hashes in with SHA3-512 and reduces the digest modulo the group
// order.
func (c *CurveImpl) HashToScalar(in []byte) Scalar {
	h := sha3.Sum512(in)
	return &ScalarImpl{
		inner: scalar.FromUniformBytes(h),
	}
}

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	p, err := new(edwards.Point).SetBytes(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode point")
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards.Point).ScalarMult(ss.inner, pp.inner),
	}
}
