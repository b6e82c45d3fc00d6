// Copyright 2022 Developers of the Lunes Platform.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package axolotl implements Axolotl-style signatures: signing and verifying
messages using X25519 (Montgomery-form Curve25519) key material, where the
signing/verification algorithm is derived from Ed25519.

A party that holds only an X25519 key pair — the kind ordinarily used for
Diffie-Hellman key agreement — can additionally produce Ed25519-compatible
signatures on messages without maintaining a separate Ed25519 key. This
follows Trevor Perrin's construction: the Montgomery key is converted to its
twisted-Edwards equivalent at sign/verify time, Ed25519 is performed, and the
Edwards x-coordinate parity is stashed in the otherwise-unused top bit of the
signature's last byte.

An overview of the features provided by this package:

  - Finite-field arithmetic in GF(2^255-19) via the FieldElement type
  - Curve25519 Montgomery-ladder scalar multiplication (ScalarBaseMult,
    ScalarMult, SharedSecret)
  - Twisted-Edwards point operations and base-point scalar multiplication
  - A from-scratch SHA-512 core used as the Ed25519 hash
  - Scalar reduction modulo the group order L
  - KeyPair construction from a seed or fresh randomness, with clamping
  - Two signing modes (full, fast) and message recovery from a full
    signature, plus validation of a detached signature

This package does not implement a general-purpose X25519 key-encapsulation
mechanism, strict RFC 8032 Ed25519 (the private-key representation differs —
there is no SHA-512 prehash of a seed), batch verification, multi-signatures,
streaming hashing, or key derivation. Point validation during verification
has a data-dependent branch and is not constant-time; callers must not run it
over secret inputs.
*/
package axolotl
