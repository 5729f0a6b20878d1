package ed25519

import (
	"github.com/noot/go-edkeygen/internal/scalar"
)

type ScalarImpl struct {
	inner scalar.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: s.inner.Add(ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: s.inner.Subtract(ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: s.inner.Negate(),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: s.inner.Mul(ss.inner),
	}
}

// Inverse returns the multiplicative inverse of s. The inverse of zero is zero.
func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{
		inner: s.inner.Invert(),
	}
}

// Encode returns the canonical 32-byte little-endian encoding of s.
func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}
