// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

import (
	"bytes"
	"testing"
)

func seed1KeyPair(t *testing.T) *KeyPair {
	t.Helper()
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = 1
	}
	kp, err := NewKeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("NewKeyPairFromSeed: %v", err)
	}
	return kp
}

func fixedRandomness(b byte) []byte {
	r := make([]byte, 64)
	for i := range r {
		r[i] = b
	}
	return r
}

func TestFastSignatureValidates(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	sig, err := FastSignature(kp.PrivateKey(), message, fixedRandomness(0x11))
	if err != nil {
		t.Fatalf("FastSignature: %v", err)
	}
	if len(sig) != 64 {
		t.Fatalf("fast signature length = %d, want 64", len(sig))
	}
	if !ValidateSignature(kp.PublicKey(), message, sig) {
		t.Fatalf("ValidateSignature rejected a freshly produced fast signature")
	}
}

func TestFullSignatureDecodesMessage(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("hello e25519 axolotl")

	full, err := FullSignature(kp.PrivateKey(), message, fixedRandomness(0x22))
	if err != nil {
		t.Fatalf("FullSignature: %v", err)
	}
	if len(full) != 64+len(message) {
		t.Fatalf("full signature length = %d, want %d", len(full), 64+len(message))
	}

	got, ok := DecodeSignature(kp.PublicKey(), full)
	if !ok {
		t.Fatalf("DecodeSignature rejected a freshly produced full signature")
	}
	if !bytes.Equal(got, message) {
		t.Fatalf("decoded message = %q, want %q", got, message)
	}
}

func TestFastAndFullSignaturesShareAPrefix(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")
	rnd := fixedRandomness(0x33)

	fast, err := FastSignature(kp.PrivateKey(), message, rnd)
	if err != nil {
		t.Fatalf("FastSignature: %v", err)
	}
	full, err := FullSignature(kp.PrivateKey(), message, rnd)
	if err != nil {
		t.Fatalf("FullSignature: %v", err)
	}

	if !bytes.Equal(full[:64], fast) {
		t.Fatalf("full[:64] = %x, want fast = %x", full[:64], fast)
	}
}

func TestValidateSignatureRejectsUnderWrongKey(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	sig, err := FastSignature(kp.PrivateKey(), message, fixedRandomness(0x44))
	if err != nil {
		t.Fatalf("FastSignature: %v", err)
	}

	otherSeed := make([]byte, 32)
	for i := range otherSeed {
		otherSeed[i] = 9
	}
	other, err := NewKeyPairFromSeed(otherSeed)
	if err != nil {
		t.Fatalf("NewKeyPairFromSeed: %v", err)
	}

	if ValidateSignature(other.PublicKey(), message, sig) {
		t.Fatalf("ValidateSignature accepted a signature under the wrong public key")
	}
}

func TestValidateSignatureWrongArgumentGuard(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	sig, err := FastSignature(kp.PrivateKey(), message, fixedRandomness(0x55))
	if err != nil {
		t.Fatalf("FastSignature: %v", err)
	}

	priv := kp.PrivateKey()
	if ValidateSignature(priv, message, sig) {
		t.Fatalf("ValidateSignature accepted the private key in place of the public key")
	}
}

func TestValidateSignatureRejectsShortInput(t *testing.T) {
	kp := seed1KeyPair(t)
	if ValidateSignature(kp.PublicKey(), []byte("Lunes"), make([]byte, 63)) {
		t.Fatalf("ValidateSignature accepted a 63-byte signature")
	}
}

func TestValidateSignatureRejectsTamperedSignature(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	sig, err := FastSignature(kp.PrivateKey(), message, fixedRandomness(0x66))
	if err != nil {
		t.Fatalf("FastSignature: %v", err)
	}

	for _, idx := range []int{0, 31, 32, 63} {
		tampered := make([]byte, len(sig))
		copy(tampered, sig)
		tampered[idx] ^= 0x01
		if ValidateSignature(kp.PublicKey(), message, tampered) {
			t.Fatalf("ValidateSignature accepted a signature tampered at byte %d", idx)
		}
	}
}

func TestValidateSignatureRejectsTamperedMessage(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	sig, err := FastSignature(kp.PrivateKey(), message, fixedRandomness(0x77))
	if err != nil {
		t.Fatalf("FastSignature: %v", err)
	}

	tampered := []byte("Lunew")
	if ValidateSignature(kp.PublicKey(), tampered, sig) {
		t.Fatalf("ValidateSignature accepted a signature over a different message")
	}
}

func TestFullSignatureRejectsShortRandomness(t *testing.T) {
	kp := seed1KeyPair(t)
	if _, err := FullSignature(kp.PrivateKey(), []byte("Lunes"), make([]byte, 63)); err == nil {
		t.Fatalf("expected an error for 63 bytes of randomness")
	}
}

func TestFullSignatureDrawsFromDefaultOracleWhenRndIsNil(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	sig, err := FullSignature(kp.PrivateKey(), message, nil)
	if err != nil {
		t.Fatalf("FullSignature: %v", err)
	}
	if _, ok := DecodeSignature(kp.PublicKey(), sig); !ok {
		t.Fatalf("DecodeSignature rejected a signature produced with oracle-sourced randomness")
	}
}

func TestSignDirectIsDeterministic(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	a := signDirect(kp.PrivateKey(), message)
	b := signDirect(kp.PrivateKey(), message)

	if a != b {
		t.Fatalf("signDirect is not deterministic: %x != %x", a, b)
	}

	sm := make([]byte, 64+len(message))
	copy(sm[:64], a[:])
	copy(sm[64:], message)
	if _, ok := verifyOpenOK(kp.PublicKey(), sm); !ok {
		t.Fatalf("signDirect produced a signature that does not verify")
	}
}

func TestSignDirectRndVariesWithRandomness(t *testing.T) {
	kp := seed1KeyPair(t)
	message := []byte("Lunes")

	var r1, r2 [64]byte
	r1[0] = 1
	r2[0] = 2

	a := signDirectRnd(kp.PrivateKey(), message, r1)
	b := signDirectRnd(kp.PrivateKey(), message, r2)

	if a == b {
		t.Fatalf("signDirectRnd produced identical signatures for different randomness")
	}
}

// verifyOpenOK adapts verifyOpen's (message, error) result to a bool for
// tests that only care whether verification succeeded.
func verifyOpenOK(pk [32]byte, sm []byte) ([]byte, bool) {
	m, err := verifyOpen(pk, sm)
	return m, err == nil
}
