package edkeygen

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/noot/go-edkeygen/internal/edwards"
)

var (
	// ErrInvalidPublicKeySize is returned when decoding a public key that is
	// not PublicKeySize bytes long.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")
	// ErrInvalidPoint is returned when a public key is not the canonical
	// encoding of a curve point.
	ErrInvalidPoint = errors.New("public key is not a valid curve point")
)

// PublicKey is a compressed Edwards point: the little-endian y coordinate with
// the sign of x in the top bit of the last byte.
type PublicKey struct {
	bytes [PublicKeySize]byte
}

// PublicKeyFromBytes decodes b, rejecting anything that is not the canonical
// encoding of a point on the curve.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidPublicKeySize, "got %d bytes", len(b))
	}

	if _, err := new(edwards.Point).SetBytes(b); err != nil {
		return nil, errors.Wrap(ErrInvalidPoint, err.Error())
	}

	pub := new(PublicKey)
	copy(pub.bytes[:], b)
	return pub, nil
}

// Bytes returns the 32-byte encoding of k.
func (k *PublicKey) Bytes() [PublicKeySize]byte {
	return k.bytes
}

// Equal reports whether k and other encode the same point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return k.bytes == other.bytes
}

// String returns the hex encoding of k.
func (k *PublicKey) String() string {
	return hex.EncodeToString(k.bytes[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k *PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrap(err, "failed to decode public key hex")
	}

	pub, err := PublicKeyFromBytes(b)
	if err != nil {
		return err
	}

	*k = *pub
	return nil
}
