// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// KeyPair holds a Curve25519 (Montgomery-form) private scalar and its
// corresponding public u-coordinate.  A KeyPair is immutable once
// constructed; both NewKeyPair and NewKeyPairFromSeed return a fully
// clamped, ready-to-use value.
type KeyPair struct {
	privateKey [32]byte
	publicKey  [32]byte
}

// NewKeyPairFromSeed constructs a KeyPair from caller-supplied seed
// material.  seed must be exactly 32 bytes; it is clamped per the
// Curve25519 contract (seed[0] &= 248; seed[31] = seed[31]&127 | 64) and
// stored as the private key, and the public key is derived as
// ScalarBaseMult(private) with its top bit forced to 0.
func NewKeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != 32 {
		return nil, makeError(ErrInvalidSeedLength, "axolotl: seed must be exactly 32 bytes")
	}

	var sk [32]byte
	copy(sk[:], seed)
	sk[0] &= 248
	sk[31] = (sk[31] & 127) | 64

	pk := ScalarBaseMult(&sk)
	pk[31] &= 0x7f

	return &KeyPair{privateKey: sk, publicKey: pk}, nil
}

// NewKeyPair generates a new KeyPair from 32 bytes drawn from the
// package's default random oracle.
func NewKeyPair() (*KeyPair, error) {
	return NewKeyPairFromSeed(randomBytes(32))
}

// KeyPairFromPrivateKey reconstructs a KeyPair from a private scalar that
// was already clamped by a previous NewKeyPair/NewKeyPairFromSeed call —
// for example, one loaded back from storage.  Unlike NewKeyPairFromSeed,
// the bytes are not re-clamped, so a value that isn't already clamped
// will not round-trip to the same key a fresh derivation would produce.
func KeyPairFromPrivateKey(sk []byte) (*KeyPair, error) {
	if len(sk) != 32 {
		return nil, makeError(ErrInvalidPrivateKeyLength, "axolotl: private key must be exactly 32 bytes")
	}
	var privateKey [32]byte
	copy(privateKey[:], sk)

	pk := ScalarBaseMult(&privateKey)
	pk[31] &= 0x7f

	return &KeyPair{privateKey: privateKey, publicKey: pk}, nil
}

// PublicKeyFromBytes validates and copies a 32-byte Montgomery public key
// out of pk, for callers that receive public keys as an untrusted byte
// slice (from the wire or from storage) rather than as a [32]byte.
func PublicKeyFromBytes(pk []byte) ([32]byte, error) {
	if len(pk) != 32 {
		return [32]byte{}, makeError(ErrInvalidPublicKeyLength, "axolotl: public key must be exactly 32 bytes")
	}
	var out [32]byte
	copy(out[:], pk)
	return out, nil
}

// PrivateKey returns a copy of the clamped 32-byte private scalar.
func (kp *KeyPair) PrivateKey() [32]byte {
	return kp.privateKey
}

// PublicKey returns a copy of the 32-byte Montgomery public key.
func (kp *KeyPair) PublicKey() [32]byte {
	return kp.publicKey
}

// String implements fmt.Stringer.  It deliberately omits the private
// scalar; secret material must never be logged or formatted implicitly.
func (kp *KeyPair) String() string {
	return fmt.Sprintf("KeyPair{public: %x}", kp.publicKey)
}

// Inspect returns a go-spew dump of the full KeyPair, private scalar
// included.  It exists purely as a development convenience and is never
// called implicitly by String, Error, or any formatting verb — callers
// opt in explicitly by invoking it.
func (kp *KeyPair) Inspect() string {
	return spew.Sdump(kp)
}
