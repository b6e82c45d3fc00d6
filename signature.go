// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// Signature is the 64-byte R‖S pair produced by the signing adapter.  The
// high bit of S's last byte (byte 63 of the 64-byte encoding) carries the
// smuggled Edwards sign bit and is not part of the scalar S itself.
type Signature struct {
	R [32]byte
	S [32]byte
}

// Bytes returns the 64-byte R‖S encoding of sig.
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 64)
	copy(out[:32], sig.R[:])
	copy(out[32:], sig.S[:])
	return out
}

// ParseSignature reads the first 64 bytes of b as a Signature.  Any bytes
// beyond the 64th are ignored — callers working with a full signature
// blob should slice the message off separately.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) < 64 {
		return nil, makeError(ErrSignatureTooShort, "axolotl: signed message shorter than 64 bytes")
	}
	sig := &Signature{}
	copy(sig.R[:], b[:32])
	copy(sig.S[:], b[32:64])
	return sig, nil
}
