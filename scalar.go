// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// groupOrderL is the prime order of the Ed25519 group, little-endian:
// L = 2^252 + 27742317777372353535851937790883648493.
var groupOrderL = [32]int32{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58, 0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x10,
}

// reduceModL reduces a 64-byte value modulo the group order L, writing the
// 32-byte little-endian result into out.  x is interpreted as 64 signed
// limbs (the carry chain below lets limbs run outside [0,255) internally).
func reduceModL(out *[32]byte, x *[64]int32) {
	for i := 63; i >= 32; i-- {
		var carry int32
		j := i - 32
		k := i - 12
		for j < k {
			x[j] += carry - 16*x[i]*groupOrderL[j-(i-32)]
			carry = (x[j] + 128) >> 8
			x[j] -= carry * 256
			j++
		}
		x[j] += carry
		x[i] = 0
	}

	var carry int32
	for j := 0; j < 32; j++ {
		x[j] += carry - (x[31]>>4)*groupOrderL[j]
		carry = x[j] >> 8
		x[j] &= 255
	}
	for j := 0; j < 32; j++ {
		x[j] -= carry * groupOrderL[j]
	}
	for i := 0; i < 31; i++ {
		x[i+1] += x[i] >> 8
		out[i] = byte(x[i] & 255)
	}
	out[31] = byte(x[31] & 255)
}

// reduceHash64 reduces a 64-byte SHA-512 digest modulo L and returns the
// 32-byte little-endian result.
func reduceHash64(digest *[64]byte) [32]byte {
	var x [64]int32
	for i, b := range digest {
		x[i] = int32(b)
	}
	var out [32]byte
	reduceModL(&out, &x)
	return out
}
