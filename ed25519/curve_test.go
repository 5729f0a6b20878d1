package ed25519

import (
	"bytes"
	stded25519 "crypto/ed25519"
	"crypto/sha512"
	"math/rand"
	"testing"
	"testing/iotest"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

type otherScalar struct {
	Scalar
}

type otherPoint struct {
	Point
}

func TestCurve_BasePoint(t *testing.T) {
	curve := NewCurve()
	require.Equal(t, edwards25519.NewGeneratorPoint().Bytes(), curve.BasePoint().Encode())
	require.Equal(t, uint64(252), curve.BitSize())
}

func TestCurve_AltBasePoint(t *testing.T) {
	curve := NewCurve()
	alt := curve.AltBasePoint()
	require.False(t, alt.IsZero())
	require.False(t, alt.Equals(curve.BasePoint()))

	ref, err := new(edwards25519.Point).SetBytes(alt.Encode())
	require.NoError(t, err)
	require.Equal(t, ref.Bytes(), alt.Encode())
}

func TestCurve_ScalarArithmetic(t *testing.T) {
	curve := NewCurve()
	for i := 0; i < 10; i++ {
		a, err := curve.NewRandomScalar()
		require.NoError(t, err)
		b, err := curve.NewRandomScalar()
		require.NoError(t, err)

		// (a + b)G = aG + bG
		sum := curve.ScalarBaseMul(a.Add(b))
		parts := curve.ScalarBaseMul(a).Add(curve.ScalarBaseMul(b))
		require.True(t, sum.Equals(parts))

		// (a - b)G = aG - bG
		diff := curve.ScalarBaseMul(a.Sub(b))
		require.True(t, diff.Equals(curve.ScalarBaseMul(a).Sub(curve.ScalarBaseMul(b))))

		// (ab)G = b(aG)
		prod := curve.ScalarBaseMul(a.Mul(b))
		require.True(t, prod.Equals(curve.ScalarMul(b, curve.ScalarBaseMul(a))))
		require.True(t, prod.Equals(curve.ScalarBaseMul(a).ScalarMul(b)))

		// a * a^-1 = 1
		one := a.Mul(a.Inverse())
		require.Equal(t, curve.ScalarFrom(1).Encode(), one.Encode())

		// a + (-a) = 0
		require.True(t, curve.ScalarBaseMul(a.Add(a.Negate())).IsZero())
	}
}

func TestCurve_ScalarFrom(t *testing.T) {
	curve := NewCurve()
	g := curve.BasePoint()
	two := curve.ScalarBaseMul(curve.ScalarFrom(2))
	require.True(t, two.Equals(g.Add(g)))

	enc := curve.ScalarFrom(0x01020304).Encode()
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, enc[:4])
	require.Equal(t, make([]byte, 28), enc[4:])
}

func TestCurve_ScalarFromBytes(t *testing.T) {
	curve := NewCurve()
	s, err := curve.NewRandomScalar()
	require.NoError(t, err)

	var b [32]byte
	copy(b[:], s.Encode())
	decoded, err := curve.ScalarFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, s.Encode(), decoded.Encode())

	var tooLarge [32]byte
	for i := range tooLarge {
		tooLarge[i] = 0xff
	}
	_, err = curve.ScalarFromBytes(tooLarge)
	require.Error(t, err)
}

func TestCurve_NewRandomScalar(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	curve := NewCurveWithReader(r)
	s, err := curve.NewRandomScalar()
	require.NoError(t, err)
	require.Len(t, s.Encode(), 32)

	curve = NewCurveWithReader(iotest.ErrReader(errors.New("no entropy")))
	_, err = curve.NewRandomScalar()
	require.Error(t, err)

	curve = NewCurveWithReader(bytes.NewReader(make([]byte, 63)))
	_, err = curve.NewRandomScalar()
	require.Error(t, err)
}

func TestCurve_HashToScalar(t *testing.T) {
	curve := NewCurve()
	for _, msg := range [][]byte{nil, []byte("hello"), bytes.Repeat([]byte{0xab}, 1000)} {
		h := sha3.Sum512(msg)
		ref, err := edwards25519.NewScalar().SetUniformBytes(h[:])
		require.NoError(t, err)
		require.Equal(t, ref.Bytes(), curve.HashToScalar(msg).Encode())
	}
}

func TestCurve_ClampedScalarMatchesStdlib(t *testing.T) {
	curve := NewCurve()
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		seed := make([]byte, stded25519.SeedSize)
		r.Read(seed)

		h := sha512.Sum512(seed)
		var lower [32]byte
		copy(lower[:], h[:32])

		pub := curve.ScalarBaseMul(curve.ClampedScalar(lower))
		expected := stded25519.NewKeyFromSeed(seed).Public().(stded25519.PublicKey)
		require.Equal(t, []byte(expected), pub.Encode())
	}
}

func TestCurve_DecodeToPoint(t *testing.T) {
	curve := NewCurve()
	s, err := curve.NewRandomScalar()
	require.NoError(t, err)
	p := curve.ScalarBaseMul(s)

	decoded, err := curve.DecodeToPoint(p.Encode())
	require.NoError(t, err)
	require.True(t, p.Equals(decoded))

	cp := p.Copy()
	require.True(t, cp.Equals(p))

	_, err = curve.DecodeToPoint(make([]byte, 31))
	require.Error(t, err)
	bad := make([]byte, 32)
	bad[0] = 2
	_, err = curve.DecodeToPoint(bad)
	require.Error(t, err)
}

func TestCurve_IsZero(t *testing.T) {
	curve := NewCurve()
	g := curve.BasePoint()
	require.False(t, g.IsZero())
	require.True(t, g.Sub(g).IsZero())
	require.True(t, curve.ScalarBaseMul(curve.ScalarFrom(0)).IsZero())
}

func TestCurve_PanicsOnForeignTypes(t *testing.T) {
	curve := NewCurve()
	s := curve.ScalarFrom(1)
	p := curve.BasePoint()

	require.Panics(t, func() { curve.ScalarBaseMul(otherScalar{}) })
	require.Panics(t, func() { curve.ScalarMul(otherScalar{}, p) })
	require.Panics(t, func() { curve.ScalarMul(s, otherPoint{}) })
	require.Panics(t, func() { s.Add(otherScalar{}) })
	require.Panics(t, func() { p.Add(otherPoint{}) })
	require.Panics(t, func() { p.Equals(otherPoint{}) })
}
