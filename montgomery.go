// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// basePointU is the Curve25519 Montgomery base point's u-coordinate, 9,
// encoded little-endian.
var basePointU = [32]byte{9}

// clampScalar applies the standard Curve25519 clamp to a copy of n: the
// low 3 bits of byte 0 are cleared, the high bit of byte 31 is cleared, and
// the second-highest bit of byte 31 is set.  n is left untouched; the
// clamped copy is returned.
func clampScalar(n *[32]byte) [32]byte {
	z := *n
	z[0] &= 248
	z[31] = (z[31] & 127) | 64
	return z
}

// scalarMultMontgomery computes the Curve25519 Montgomery ladder n*p and
// writes the resulting u-coordinate into out.  n is clamped before use.
func scalarMultMontgomery(out *[32]byte, n, p *[32]byte) {
	z := clampScalar(n)

	var x FieldElement
	x.Unpack(p)

	a, c := feOne, feZero
	b, d := x, feOne

	for i := 254; i >= 0; i-- {
		r := int32((z[i>>3] >> uint(i&7)) & 1)

		condSwap(&a, &b, r)
		condSwap(&c, &d, r)

		var e, f FieldElement
		e.Add(&a, &c)
		a.Sub(&a, &c)
		c.Add(&b, &d)
		b.Sub(&b, &d)
		d.Square(&e)
		f.Square(&a)
		a.Mul(&c, &a)
		c.Mul(&b, &e)
		e.Add(&a, &c)
		a.Sub(&a, &c)
		b.Square(&a)
		c.Sub(&d, &f)
		a.Mul(&c, &fe121665)
		a.Add(&a, &d)
		c.Mul(&c, &a)
		a.Mul(&d, &f)
		d.Mul(&b, &x)
		b.Square(&e)

		condSwap(&a, &b, r)
		condSwap(&c, &d, r)
	}

	var cInv, result FieldElement
	cInv.Invert(&c)
	result.Mul(&a, &cInv)
	result.Pack(out)
}

// ScalarBaseMult computes n*G on the Curve25519 Montgomery curve, where G
// is the base point with u-coordinate 9, and returns the resulting
// u-coordinate.  n is clamped before use, as the Curve25519 contract
// requires.
func ScalarBaseMult(n *[32]byte) [32]byte {
	var out [32]byte
	scalarMultMontgomery(&out, n, &basePointU)
	return out
}

// ScalarMult computes n*p on the Curve25519 Montgomery curve and returns
// the resulting u-coordinate.  n is clamped before use.
func ScalarMult(n, p *[32]byte) [32]byte {
	var out [32]byte
	scalarMultMontgomery(&out, n, p)
	return out
}

// SharedSecret computes a Diffie-Hellman shared secret between this
// KeyPair's private scalar and a peer's Montgomery public key.  The raw
// 32-byte u-coordinate is returned; as with any raw ECDH output, callers
// that need a symmetric key should hash the result first rather than use
// it directly.
func (kp *KeyPair) SharedSecret(peerPublicKey [32]byte) [32]byte {
	return ScalarMult(&kp.privateKey, &peerPublicKey)
}
