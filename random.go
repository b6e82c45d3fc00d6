// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package axolotl

import "crypto/rand"

// randomBytes returns n cryptographically random bytes, read from the
// package's default random oracle, crypto/rand.  It panics if the system
// entropy source fails, the same contract crypto/rand.Read itself carries;
// a failure here means the host environment cannot be trusted to produce
// secret key material at all.
func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
