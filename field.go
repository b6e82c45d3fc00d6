// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// References:
//   Trevor Perrin, "Curve25519 signatures idea and math"
//     https://moderncrypto.org/mail-archive/curves/2014/000205.html
//   Dmitry Chestnykh, axlsign.js
//     https://github.com/wavesplatform/curve25519-js

// FieldElement is a value in GF(p), p = 2^255 - 19, represented by 16
// signed 64-bit limbs.  Limb i carries weight 2^(16*i).  Limbs need not be
// reduced into [0, 2^16) — the representation is redundant and must be
// carried and fully reduced before comparison or serialization.  The zero
// value is the field element 0.
type FieldElement [16]int64

var (
	feZero = FieldElement{}
	feOne  = FieldElement{1}

	// fe121665 is (A-2)/4 for Curve25519, used in the Montgomery ladder.
	fe121665 = FieldElement{0xdb41, 1}

	// feD and feD2 are the twisted-Edwards curve constant d and 2d.
	feD = FieldElement{
		0x78a3, 0x1359, 0x4dca, 0x75eb, 0xd8ab, 0x4141, 0x0a4d, 0x0070,
		0xe898, 0x7779, 0x4079, 0x8cc7, 0xfe73, 0x2b6f, 0x6cee, 0x5203,
	}
	feD2 = FieldElement{
		0xf159, 0x26b2, 0x9b94, 0xebd6, 0xb156, 0x8283, 0x149a, 0x00e0,
		0xd130, 0xeef3, 0x80f2, 0x198e, 0xfce7, 0x56df, 0xd9dc, 0x2406,
	}

	// feBaseX and feBaseY are the affine coordinates of the Ed25519
	// base point in its twisted-Edwards form.
	feBaseX = FieldElement{
		0xd51a, 0x8f25, 0x2d60, 0xc956, 0xa7b2, 0x9525, 0xc760, 0x692c,
		0xdc5c, 0xfdd6, 0xe231, 0xc0a4, 0x53fe, 0xcd6e, 0x36d3, 0x2169,
	}
	feBaseY = FieldElement{
		0x6658, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666,
		0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666,
	}

	// feSqrtNeg1 is a precomputed square root of -1 mod p, used by
	// unpackNeg when the first candidate root doesn't satisfy the curve
	// equation.
	feSqrtNeg1 = FieldElement{
		0xa0b0, 0x4a0e, 0x1b27, 0xc4ee, 0xe478, 0xad2f, 0x1806, 0x2f43,
		0xd7a7, 0x3dfb, 0x0099, 0x2b4d, 0xdf0b, 0x4fc1, 0x2480, 0x2b83,
	}
)

// Set copies a into o and returns o.
func (o *FieldElement) Set(a *FieldElement) *FieldElement {
	*o = *a
	return o
}

// Add sets o = a + b and returns o.  Limbs may grow; callers chaining more
// than a handful of additions before a multiply or pack should expect the
// limbs to need carrying.
func (o *FieldElement) Add(a, b *FieldElement) *FieldElement {
	for i := 0; i < 16; i++ {
		o[i] = a[i] + b[i]
	}
	return o
}

// Sub sets o = a - b and returns o.
func (o *FieldElement) Sub(a, b *FieldElement) *FieldElement {
	for i := 0; i < 16; i++ {
		o[i] = a[i] - b[i]
	}
	return o
}

// carryPass runs a single carry-propagation pass over o, folding the carry
// out of limb 15 back into limb 0 scaled by 38 (since 2^256 ≡ 38 mod p).
func (o *FieldElement) carryPass() {
	var c int64 = 1
	for i := 0; i < 16; i++ {
		v := o[i] + c + 65535
		c = v / 65536
		o[i] = v - c*65536
	}
	o[0] += c - 1 + 37*(c-1)
}

// Mul sets o = a * b in GF(p) and returns o.  The product is formed as a
// 31-limb schoolbook accumulator, folded once for the 2^256 ≡ 38 reduction,
// then carried twice — two passes are required because the first pass can
// leave limb 0 slightly negative.
func (o *FieldElement) Mul(a, b *FieldElement) *FieldElement {
	var at [31]int64
	for i := 0; i < 16; i++ {
		v := a[i]
		for j := 0; j < 16; j++ {
			at[j+i] += v * b[j]
		}
	}
	for i := 0; i < 15; i++ {
		at[i] += 38 * at[i+16]
	}

	for pass := 0; pass < 2; pass++ {
		var c int64 = 1
		for i := 0; i < 16; i++ {
			v := at[i] + c + 65535
			c = v >> 16 // floor(v / 65536); arithmetic shift floors for negatives too.
			at[i] = v - c*65536
		}
		at[0] += c - 1 + 37*(c-1)
	}

	for i := 0; i < 16; i++ {
		o[i] = at[i]
	}
	return o
}

// Square sets o = a * a and returns o.
func (o *FieldElement) Square(a *FieldElement) *FieldElement {
	return o.Mul(a, a)
}

// Invert sets o = 1/a in GF(p) via Fermat's little theorem (a^(p-2)) using
// a fixed addition chain for the exponent p-2, and returns o.
func (o *FieldElement) Invert(a *FieldElement) *FieldElement {
	var c FieldElement
	c.Set(a)
	for i := 253; i >= 0; i-- {
		c.Square(&c)
		if i != 2 && i != 4 {
			c.Mul(&c, a)
		}
	}
	*o = c
	return o
}

// Pow2523 sets o = a^((p-5)/8) in GF(p), used to compute an inverse square
// root during point decompression, and returns o.
func (o *FieldElement) Pow2523(a *FieldElement) *FieldElement {
	var c FieldElement
	c.Set(a)
	for i := 250; i >= 0; i-- {
		c.Square(&c)
		if i != 1 {
			c.Mul(&c, a)
		}
	}
	*o = c
	return o
}

// Pack reduces o to its unique canonical representative in [0, p) and emits
// it as 32 little-endian bytes.
func (o *FieldElement) Pack(out *[32]byte) {
	var t FieldElement
	t.Set(o)
	t.carryPass()
	t.carryPass()
	t.carryPass()

	var m FieldElement
	for pass := 0; pass < 2; pass++ {
		m[0] = t[0] - 0xffed
		for i := 1; i < 15; i++ {
			m[i] = t[i] - 0xffff - ((m[i-1] >> 16) & 1)
			m[i-1] &= 0xffff
		}
		m[15] = t[15] - 0x7fff - ((m[14] >> 16) & 1)
		b := (m[15] >> 16) & 1
		m[14] &= 0xffff
		condSwap(&t, &m, int32(1-b))
	}

	for i := 0; i < 16; i++ {
		out[2*i] = byte(t[i] & 0xff)
		out[2*i+1] = byte((t[i] >> 8) & 0xff)
	}
}

// Unpack reads o from 32 little-endian bytes, pairing consecutive bytes into
// limbs and masking the top limb to 15 bits.  Input need not be a canonical
// encoding; the result is only fully reduced after a Pack round-trip.
func (o *FieldElement) Unpack(in *[32]byte) *FieldElement {
	for i := 0; i < 16; i++ {
		o[i] = int64(in[2*i]) + int64(in[2*i+1])<<8
	}
	o[15] &= 0x7fff
	return o
}

// Equal reports whether a and b pack to the same canonical 32-byte value,
// comparing in constant time.
func (a *FieldElement) Equal(b *FieldElement) bool {
	var pa, pb [32]byte
	a.Pack(&pa)
	b.Pack(&pb)
	return subtleConstantTimeCompare32(&pa, &pb) == 0
}

// Parity returns the low bit of a's canonical packed representation — the
// parity of a as an integer in [0, p).
func (a *FieldElement) Parity() byte {
	var p [32]byte
	a.Pack(&p)
	return p[0] & 1
}

// condSwap conditionally swaps the limbs of p and q in constant time: when
// b is 1 the two are exchanged, when b is 0 neither is touched.  b must be
// exactly 0 or 1; it must never be branched on.
func condSwap(p, q *FieldElement, b int32) {
	mask := int64(-b)
	for i := 0; i < 16; i++ {
		t := mask & (p[i] ^ q[i])
		p[i] ^= t
		q[i] ^= t
	}
}

// subtleConstantTimeCompare32 returns 0 if x and y are equal and nonzero
// otherwise, examining every byte regardless of where the first difference
// occurs.
func subtleConstantTimeCompare32(x, y *[32]byte) int {
	var d byte
	for i := 0; i < 32; i++ {
		d |= x[i] ^ y[i]
	}
	return int(d)
}
