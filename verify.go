// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// montgomeryUToEdwardsY converts a Montgomery u-coordinate to the
// corresponding twisted-Edwards y-coordinate via y = (u-1)/(u+1), and
// packs it to 32 bytes.  The top bit of the result is always 0; the
// caller is responsible for restoring the smuggled sign bit before
// passing the result to unpackNeg.
func montgomeryUToEdwardsY(pk [32]byte) [32]byte {
	var u, num, den, denInv, y FieldElement
	u.Unpack(&pk)
	num.Sub(&u, &feOne)
	den.Add(&u, &feOne)
	denInv.Invert(&den)
	y.Mul(&num, &denInv)

	var out [32]byte
	y.Pack(&out)
	return out
}

// verifyOpen implements curve25519_sign_open: it reconstructs the Edwards
// public key from the Montgomery public key pk and the smuggled sign bit
// in sm, then checks the Ed25519 signature over sm[64:] encoded in
// sm[0:64].  It returns the recovered message on success. On failure it
// returns nil and an Error identifying which of the three documented
// failure kinds (too-short blob, invalid public key, or a signature that
// does not verify) was hit; ValidateSignature and DecodeSignature collapse
// this to the bool/empty-result contract the public API promises.
func verifyOpen(pk [32]byte, sm []byte) ([]byte, error) {
	if len(sm) < 64 {
		return nil, makeError(ErrSignatureTooShort, "axolotl: signed message shorter than 64 bytes")
	}

	edy := montgomeryUToEdwardsY(pk)
	edy[31] |= sm[63] & 0x80

	var A extendedPoint
	if !unpackNeg(&A, &edy) {
		return nil, makeError(ErrInvalidPublicKey, "axolotl: public key does not decode to a valid curve point")
	}

	var R [32]byte
	copy(R[:], sm[:32])

	var s [32]byte
	copy(s[:], sm[32:64])
	s[31] &^= 0x80

	message := sm[64:]

	hashInput := make([]byte, 64+len(message))
	copy(hashInput[:32], R[:])
	copy(hashInput[32:64], edy[:])
	copy(hashInput[64:], message)
	hDigest := sha512Sum(hashInput)
	h := reduceHash64(&hDigest)

	check := scalarMult(&A, h[:])
	sG := scalarBaseMult(s[:])
	check.add(&sG)
	checkBytes := check.pack()

	if subtleConstantTimeCompare32(&checkBytes, &R) != 0 {
		return nil, makeError(ErrInvalidSignature, "axolotl: reconstructed R does not match signature")
	}

	out := make([]byte, len(message))
	copy(out, message)
	return out, nil
}
