// Package types defines a prime-order group interface that callers can
// program against without touching the curve arithmetic directly.
package types

type Curve interface {
	BitSize() uint64
	BasePoint() Point
	AltBasePoint() Point
	NewRandomScalar() (Scalar, error)
	ScalarFrom(uint32) Scalar
	ScalarFromBytes([32]byte) (Scalar, error)
	ClampedScalar([32]byte) Scalar
	HashToScalar([]byte) Scalar
	DecodeToPoint([]byte) (Point, error)
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
}

// Scalar has no equality method; comparing secret scalars is a timing leak.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Inverse() Scalar
	Encode() []byte
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	ScalarMul(Scalar) Point
	Encode() []byte
	IsZero() bool
	Equals(other Point) bool
}
