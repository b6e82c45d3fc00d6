// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// FullSignature signs message under the Curve25519 private scalar sk and
// returns the 64-byte R‖S prefix followed by message itself, from which
// the message can later be recovered with DecodeSignature.
//
// rnd supplies the 64 bytes of fresh randomness the hedged nonce is
// derived from; pass nil to draw them from the package's default random
// oracle. If non-nil, rnd must be exactly 64 bytes.
func FullSignature(sk [32]byte, message, rnd []byte) ([]byte, error) {
	sig, err := hedgedSign(sk, message, rnd)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 64+len(message))
	out = append(out, sig.Bytes()...)
	out = append(out, message...)
	return out, nil
}

// FastSignature returns only the 64-byte R‖S prefix FullSignature would
// produce for the same arguments.
func FastSignature(sk [32]byte, message, rnd []byte) ([]byte, error) {
	sig, err := hedgedSign(sk, message, rnd)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}

// hedgedSign resolves rnd against the default random oracle and invokes
// the randomized signing path.
func hedgedSign(sk [32]byte, message, rnd []byte) (*Signature, error) {
	if rnd == nil {
		rnd = randomBytes(64)
	}
	if len(rnd) != 64 {
		return nil, makeError(ErrInvalidRandomLength, "axolotl: randomness must be exactly 64 bytes")
	}
	var r [64]byte
	copy(r[:], rnd)
	raw := signDirectRnd(sk, message, r)

	sig := &Signature{}
	copy(sig.R[:], raw[:32])
	copy(sig.S[:], raw[32:])
	return sig, nil
}

// ValidateSignature reports whether sig64 is a valid signature over
// message under the Montgomery public key pk.  sig64 must be at least 64
// bytes; any bytes beyond the 64th are ignored.
func ValidateSignature(pk [32]byte, message, sig64 []byte) bool {
	sig, err := ParseSignature(sig64)
	if err != nil {
		return false
	}
	sm := make([]byte, 0, 64+len(message))
	sm = append(sm, sig.Bytes()...)
	sm = append(sm, message...)
	_, err = verifyOpen(pk, sm)
	return err == nil
}

// DecodeSignature verifies a full signature blob (as produced by
// FullSignature) against pk and returns the message it was signed over.
// The second return value reports whether the blob verified; callers must
// check it rather than treating an empty first return as failure, since
// an empty message is itself a valid signing input.
func DecodeSignature(pk [32]byte, blob []byte) ([]byte, bool) {
	message, err := verifyOpen(pk, blob)
	return message, err == nil
}
