// Copyright (c) 2024 The ed25519compact Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS
// IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED
// TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
// PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
// TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR
// PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF
// LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
// SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package ed25519compact

import (
	"bytes"
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

// expandSeed performs the RFC 8032 §5.1.5 key-expansion step: h =
// SHA-512(seed); the low half of h, clamped, is the secret scalar a;
// the high half is the nonce-derivation prefix; A is the compression
// of a*B.
func expandSeed(seed Seed) (a *edwards25519.Scalar, prefix []byte, publicPoint *edwards25519.Point) {
	h := sha512.Sum512(seed[:])

	a, err := edwards25519.NewScalar().SetBytesWithClamping(h[:SeedSize])
	if err != nil {
		// SetBytesWithClamping only fails on a wrong-length input, and h[:32]
		// is always 32 bytes; this is unreachable.
		panic("ed25519compact: clamping a 32-byte buffer failed: " + err.Error())
	}

	prefix = append([]byte(nil), h[SeedSize:]...)
	publicPoint = edwards25519.NewIdentityPoint().ScalarBaseMult(a)
	return a, prefix, publicPoint
}

// reduceWide reduces a 64-byte buffer mod the group order ℓ.
func reduceWide(digest []byte) (*edwards25519.Scalar, error) {
	s, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return s, nil
}

// decompressPublic parses the 32-byte compressed encoding of a public
// key, rejecting non-canonical y >= p and encodings with no valid x.
func decompressPublic(pk PublicKey) (*edwards25519.Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(pk[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	// SetBytes accepts an unreduced y and a set sign bit with x = 0;
	// only the canonical encoding re-encodes to the same bytes.
	if !bytes.Equal(p.Bytes(), pk[:]) {
		return nil, fmt.Errorf("%w: non-canonical encoding", ErrInvalidPublicKey)
	}
	return p, nil
}

// decompressR parses the R component of a signature with the same
// canonicality rules as a public key: R is itself a compressed
// EdwardsPoint, so the same decompression failures (y >= p, or no
// root) apply here too.
func decompressR(r []byte) (*edwards25519.Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(r)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid R in signature: %v", ErrInvalidPublicKey, err)
	}
	if !bytes.Equal(p.Bytes(), r) {
		return nil, fmt.Errorf("%w: non-canonical R in signature", ErrInvalidPublicKey)
	}
	return p, nil
}

// canonicalScalar parses the s component of a signature, rejecting
// s >= ℓ per the non-malleability requirement.
func canonicalScalar(s []byte) (*edwards25519.Scalar, error) {
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonCanonicalScalar, err)
	}
	return sc, nil
}

// challenge computes k = reduce(SHA-512(R || A || M)), the Fiat-Shamir
// challenge scalar shared by signing and verification.
func challenge(r, a, m []byte) (*edwards25519.Scalar, error) {
	h := sha512.New()
	h.Write(r)
	h.Write(a)
	h.Write(m)
	return reduceWide(h.Sum(nil))
}

// cofactoredEqual reports whether [8]p == [8]q, the torsion-tolerant
// equality check the cofactored verification equation relies on.
func cofactoredEqual(p, q *edwards25519.Point) bool {
	lhs := edwards25519.NewIdentityPoint().MultByCofactor(p)
	rhs := edwards25519.NewIdentityPoint().MultByCofactor(q)
	return lhs.Equal(rhs) == 1
}

// zeroizeScalar overwrites a secret scalar's encoding. filippo.io/edwards25519
// does not expose direct limb access, so the best this module can do
// without forking that dependency is scrub the scalar back to zero;
// this is best-effort only.
func zeroizeScalar(s *edwards25519.Scalar) {
	s.Set(edwards25519.NewScalar())
}
