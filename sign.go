// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// This file implements Trevor Perrin's Curve25519-to-Ed25519 signing
// adapter: a party holding only a Montgomery (X25519) key pair derives the
// corresponding Ed25519 key at sign time and produces a standard Ed25519
// signature, smuggling the Edwards public key's sign bit into the unused
// top bit of the signature's S half so the verifier can reconstruct the
// same point from the Montgomery public key alone.

// derivedEdwardsKey re-derives the Ed25519 key pair that corresponds to a
// Curve25519 private scalar sk: edsk is sk re-clamped (a no-op, since sk
// is already clamped by construction, but the adapter re-clamps
// defensively), edPub is the packed Edwards public key edsk·G, and sgn is
// the sign bit to be smuggled into a subsequently produced signature.
func derivedEdwardsKey(sk [32]byte) (edsk, edPub [32]byte, sgn byte) {
	edsk = sk
	edsk[0] &= 248
	edsk[31] = (edsk[31] & 127) | 64

	a := scalarBaseMult(edsk[:])
	edPub = a.pack()
	sgn = edPub[31] & 0x80
	return
}

// scalarMulAdd computes (r + h*a) mod L using carry-tracked multiprecision
// arithmetic, the same shape as reduceModL's input construction.
func scalarMulAdd(r, h, a [32]byte) [32]byte {
	var x [64]int32
	for i := 0; i < 32; i++ {
		x[i] = int32(r[i])
	}
	for i := 0; i < 32; i++ {
		hi := int32(h[i])
		for j := 0; j < 32; j++ {
			x[i+j] += hi * int32(a[j])
		}
	}
	// Carry every limb into [0, 255] so reduceModL's 16*x[i]*L products
	// stay within int32.
	for i := 0; i < 63; i++ {
		x[i+1] += x[i] >> 8
		x[i] &= 255
	}
	var out [32]byte
	reduceModL(&out, &x)
	return out
}

// concatBytes returns a freshly allocated concatenation of parts.
func concatBytes(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// signDirect computes a deterministic signature: the nonce r depends only
// on the private scalar and the message, with no external randomness.  It
// underlies signDirectRnd's hedged variant and is kept as a standalone
// primitive because it is the adapter's simplest, most auditable form.
func signDirect(sk [32]byte, message []byte) [64]byte {
	edsk, edPub, sgn := derivedEdwardsKey(sk)

	rDigest := sha512Sum(concatBytes(edsk[:], message))
	r := reduceHash64(&rDigest)

	var sig [64]byte
	Rb := scalarBaseMult(r[:]).pack()
	copy(sig[:32], Rb[:])
	copy(sig[32:], edPub[:])

	hDigest := sha512Sum(concatBytes(sig[:], message))
	h := reduceHash64(&hDigest)

	s := scalarMulAdd(r, h, edsk)
	copy(sig[32:], s[:])

	sig[63] |= sgn
	return sig
}

// signDirectRnd computes a hedged signature: the nonce r is derived from a
// domain-separated hash of the private scalar, the message, and 64 bytes
// of fresh randomness, so an adversary who observes rnd but not sk cannot
// predict r, and a broken randomness source degrades to signDirect's
// determinism rather than catastrophic nonce reuse.
func signDirectRnd(sk [32]byte, message []byte, rnd [64]byte) [64]byte {
	edsk, edPub, sgn := derivedEdwardsKey(sk)

	prefix := make([]byte, 32)
	prefix[0] = 0xfe
	for i := 1; i < 32; i++ {
		prefix[i] = 0xff
	}
	rDigest := sha512Sum(concatBytes(prefix, edsk[:], message, rnd[:]))
	r := reduceHash64(&rDigest)
	rnd = [64]byte{}

	var sig [64]byte
	Rb := scalarBaseMult(r[:]).pack()
	copy(sig[:32], Rb[:])
	copy(sig[32:], edPub[:])

	hDigest := sha512Sum(concatBytes(sig[:], message))
	h := reduceHash64(&hDigest)

	s := scalarMulAdd(r, h, edsk)
	copy(sig[32:], s[:])

	sig[63] |= sgn
	return sig
}
