// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

// extendedPoint is a twisted-Edwards curve point in extended coordinates
// (X, Y, Z, T) with T = X*Y/Z.  Equality between two extendedPoints is
// projective, not limb-wise; compare via pack or via X/Z, Y/Z ratios.
type extendedPoint struct {
	X, Y, Z, T FieldElement
}

// identityPoint returns the twisted-Edwards identity element (0, 1, 1, 0).
func identityPoint() extendedPoint {
	return extendedPoint{X: feZero, Y: feOne, Z: feOne, T: feZero}
}

// basePoint returns the Ed25519 base point in extended coordinates.
func basePoint() extendedPoint {
	var t FieldElement
	t.Mul(&feBaseX, &feBaseY)
	return extendedPoint{X: feBaseX, Y: feBaseY, Z: feOne, T: t}
}

// add sets p = p + q using the standard Hisil-Wong-Carter-Dawson unified
// addition formulas for twisted-Edwards curves with curve constant 2d, and
// returns p.
func (p *extendedPoint) add(q *extendedPoint) *extendedPoint {
	var a, b, c, d, e, f, g, h, t FieldElement

	a.Sub(&p.Y, &p.X)
	t.Sub(&q.Y, &q.X)
	a.Mul(&a, &t)

	b.Add(&p.X, &p.Y)
	t.Add(&q.X, &q.Y)
	b.Mul(&b, &t)

	c.Mul(&p.T, &q.T)
	c.Mul(&c, &feD2)

	d.Mul(&p.Z, &q.Z)
	d.Add(&d, &d)

	e.Sub(&b, &a)
	f.Sub(&d, &c)
	g.Add(&d, &c)
	h.Add(&b, &a)

	p.X.Mul(&e, &f)
	p.Y.Mul(&h, &g)
	p.Z.Mul(&g, &f)
	p.T.Mul(&e, &h)
	return p
}

// cswapPoints conditionally swaps p and q in constant time, as condSwap
// does for a single FieldElement, across all four coordinates.
func cswapPoints(p, q *extendedPoint, b int32) {
	condSwap(&p.X, &q.X, b)
	condSwap(&p.Y, &q.Y, b)
	condSwap(&p.Z, &q.Z, b)
	condSwap(&p.T, &q.T, b)
}

// scalarMult computes s*q via a 256-bit constant-time double-and-add that
// walks the bits of s from bit 255 down to bit 0, and returns the result.  s is a little-endian scalar of at
// least 32 bytes.
func scalarMult(q *extendedPoint, s []byte) extendedPoint {
	p := identityPoint()
	working := *q
	for i := 255; i >= 0; i-- {
		b := int32((s[i/8] >> uint(i&7)) & 1)
		cswapPoints(&p, &working, b)
		working.add(&p)
		pp := p
		p.add(&pp)
		cswapPoints(&p, &working, b)
	}
	return p
}

// scalarBaseMult computes s*G, where G is the Ed25519 base point, and
// returns the result.
func scalarBaseMult(s []byte) extendedPoint {
	base := basePoint()
	return scalarMult(&base, s)
}

// pack computes the affine coordinates (x, y) = (X/Z, Y/Z) of p, emits
// pack25519(y), and stashes the parity of x in bit 7 of the last byte.
func (p extendedPoint) pack() [32]byte {
	var zi, tx, ty FieldElement
	zi.Invert(&p.Z)
	tx.Mul(&p.X, &zi)
	ty.Mul(&p.Y, &zi)

	var out [32]byte
	ty.Pack(&out)
	out[31] ^= tx.Parity() << 7
	return out
}

// unpackNeg decompresses a 32-byte canonical point encoding into an
// extendedPoint with x negated (the sign convention the verification
// adapter expects downstream), and reports whether the input decodes to a
// valid curve point.
func unpackNeg(p *extendedPoint, in *[32]byte) bool {
	p.Z = feOne
	p.Y.Unpack(in)

	var num, den, den2, den4, den6, t, chk FieldElement
	num.Square(&p.Y)
	den.Mul(&num, &feD)
	num.Sub(&num, &p.Z)
	den.Add(&p.Z, &den)

	den2.Square(&den)
	den4.Square(&den2)
	den6.Mul(&den4, &den2)
	t.Mul(&den6, &num)
	t.Mul(&t, &den)

	t.Pow2523(&t)
	t.Mul(&t, &num)
	t.Mul(&t, &den)
	t.Mul(&t, &den)
	p.X.Mul(&t, &den)

	chk.Square(&p.X)
	chk.Mul(&chk, &den)
	if !chk.Equal(&num) {
		p.X.Mul(&p.X, &feSqrtNeg1)
	}

	chk.Square(&p.X)
	chk.Mul(&chk, &den)
	if !chk.Equal(&num) {
		return false
	}

	if p.X.Parity() == in[31]>>7 {
		p.X.Sub(&feZero, &p.X)
	}

	p.T.Mul(&p.X, &p.Y)
	return true
}
