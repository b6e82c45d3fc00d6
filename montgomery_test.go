// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

import "testing"

func TestScalarBaseMultMatchesScalarMultByBasePointU(t *testing.T) {
	n := [32]byte{7, 1, 2, 3}

	got := ScalarBaseMult(&n)
	want := ScalarMult(&n, &basePointU)

	if got != want {
		t.Fatalf("ScalarBaseMult(n) = %x, want ScalarMult(n, 9) = %x", got, want)
	}
}

func TestSharedSecretIsSymmetric(t *testing.T) {
	alice, err := NewKeyPairFromSeed(make([]byte, 32))
	if err != nil {
		t.Fatalf("NewKeyPairFromSeed(alice): %v", err)
	}
	bobSeed := make([]byte, 32)
	for i := range bobSeed {
		bobSeed[i] = byte(i + 1)
	}
	bob, err := NewKeyPairFromSeed(bobSeed)
	if err != nil {
		t.Fatalf("NewKeyPairFromSeed(bob): %v", err)
	}

	aliceSide := alice.SharedSecret(bob.PublicKey())
	bobSide := bob.SharedSecret(alice.PublicKey())

	if aliceSide != bobSide {
		t.Fatalf("shared secrets disagree: alice=%x bob=%x", aliceSide, bobSide)
	}
}

func TestClampScalarMasksBits(t *testing.T) {
	n := [32]byte{}
	for i := range n {
		n[i] = 0xff
	}
	z := clampScalar(&n)
	if z[0]&0x07 != 0 {
		t.Errorf("clampScalar left low bits of byte 0 set: %08b", z[0])
	}
	if z[31]&0xc0 != 0x40 {
		t.Errorf("clampScalar did not set byte 31 to 0b01xxxxxx: %08b", z[31])
	}
}
