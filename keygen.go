// Package edkeygen derives Ed25519 public keys from 32-byte private seeds as
// described in RFC 8032 section 5.1.5.
//
// A PrivateKey is a seed; deriving hashes it with SHA-512, clamps the low half
// of the digest into a scalar and multiplies the base point by it. Everything
// downstream of the seed is treated as secret: no value derived from it is
// ever formatted, and PrivateKey prints as a placeholder under every fmt verb.
package edkeygen

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/noot/go-edkeygen/internal/edwards"
	"github.com/noot/go-edkeygen/internal/scalar"
)

const (
	// SeedSize is the size in bytes of a private key seed.
	SeedSize = 32
	// PublicKeySize is the size in bytes of a compressed public key.
	PublicKeySize = 32

	redacted = "edkeygen.PrivateKey{REDACTED}"
)

// ErrInsufficientRandomness is returned when the random source cannot supply
// a full seed.
var ErrInsufficientRandomness = errors.New("insufficient randomness for private key")

// PrivateKey is a 32-byte Ed25519 seed. It is not itself a valid scalar.
type PrivateKey struct {
	seed [SeedSize]byte
}

// NewPrivateKey returns a PrivateKey holding a copy of seed.
func NewPrivateKey(seed [SeedSize]byte) *PrivateKey {
	return &PrivateKey{seed: seed}
}

// Seed returns a copy of the seed, for storage by the caller.
func (k *PrivateKey) Seed() [SeedSize]byte {
	return k.seed
}

// DerivePublicKey computes the public key for k. It is deterministic.
func (k *PrivateKey) DerivePublicKey() *PublicKey {
	h := sha512.Sum512(k.seed[:])
	var lower [32]byte
	copy(lower[:], h[:32])

	s := scalar.Clamped(lower)
	p := new(edwards.Point).ScalarBaseMult(s)

	pub := new(PublicKey)
	copy(pub.bytes[:], p.Bytes())

	s = scalar.Scalar{}
	wipe(h[:])
	wipe(lower[:])
	return pub
}

// Zero overwrites the seed. k must not be used afterwards.
func (k *PrivateKey) Zero() {
	wipe(k.seed[:])
}

// Format implements fmt.Formatter so that no verb, including %x and %#v,
// reaches the seed.
func (k PrivateKey) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// String implements fmt.Stringer.
func (k PrivateKey) String() string {
	return redacted
}

// GoString implements fmt.GoStringer.
func (k PrivateKey) GoString() string {
	return redacted
}

// KeyPair is a private key together with its derived public key.
type KeyPair struct {
	private *PrivateKey
	public  *PublicKey
}

// NewKeyPair derives the public key for sk and returns both.
func NewKeyPair(sk *PrivateKey) *KeyPair {
	return &KeyPair{
		private: sk,
		public:  sk.DerivePublicKey(),
	}
}

// GenerateKey reads a seed from r and derives its key pair. If r is nil,
// crypto/rand.Reader is used.
func GenerateKey(r io.Reader) (*KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}

	sk := new(PrivateKey)
	n, err := io.ReadFull(r, sk.seed[:])
	if err != nil {
		sk.Zero()
		return nil, errors.Wrapf(ErrInsufficientRandomness, "read %d of %d bytes: %s", n, SeedSize, err)
	}

	return NewKeyPair(sk), nil
}

// PrivateKey returns the private half of the pair.
func (kp *KeyPair) PrivateKey() *PrivateKey {
	return kp.private
}

// PublicKey returns the public half of the pair.
func (kp *KeyPair) PublicKey() *PublicKey {
	return kp.public
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
