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
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

// BlindingSeedSize is the size, in bytes, of the seed a caller supplies
// to derive a blinding factor.
const BlindingSeedSize = 32

// deriveBlindingScalar turns a caller-supplied seed into the blinding
// scalar b, via the same SHA-512 -> clamp pipeline FromSeed uses to
// derive a secret scalar.
func deriveBlindingScalar(blindingSeed [BlindingSeedSize]byte) (*edwards25519.Scalar, error) {
	h := sha512.Sum512(blindingSeed[:])
	b, err := edwards25519.NewScalar().SetBytesWithClamping(h[:SeedSize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// BlindedSecretKey is a secret key produced by KeyPair.Blind. Unlike an
// ordinary SecretKey, it is not seed‖publickey: it stores the
// pre-multiplied scalar a*b mod ℓ directly, plus the re-derived prefix
// prefix' = SHA-512(prefix‖b)[0:32], because a*b mod ℓ is not (in
// general) the clamp of any SHA-512 digest, so it cannot be re-expanded
// the way an ordinary seed can.
type BlindedSecretKey struct {
	scalar *edwards25519.Scalar
	prefix [SeedSize]byte
	public [PublicKeySize]byte
}

// BlindedKeyPair bundles a BlindedSecretKey with the PublicKey it signs
// under.
type BlindedKeyPair struct {
	Secret BlindedSecretKey
	Public PublicKey
}

// Blind derives a BlindedKeyPair (pk*b, sk*b mod ℓ) from kp and a
// blinding seed. A signature produced by the blinded secret key
// verifies under the correspondingly-blinded public key
// (PublicKey.Blind with the same seed), with no change to the signing
// or verification algorithm itself.
func (kp KeyPair) Blind(blindingSeed [BlindingSeedSize]byte) (BlindedKeyPair, error) {
	b, err := deriveBlindingScalar(blindingSeed)
	if err != nil {
		return BlindedKeyPair{}, err
	}
	defer zeroizeScalar(b)

	a, prefix, _ := expandSeed(kp.Secret.Seed())
	defer zeroizeScalar(a)

	blindedScalar := edwards25519.NewScalar().Multiply(a, b)

	ph := sha512.New()
	ph.Write(prefix)
	ph.Write(b.Bytes())
	blindedPrefixDigest := ph.Sum(nil)

	publicPoint, err := decompressPublic(kp.Public)
	if err != nil {
		return BlindedKeyPair{}, err
	}
	blindedPublicPoint := edwards25519.NewIdentityPoint().ScalarMult(b, publicPoint)
	blindedPublicBytes := blindedPublicPoint.Bytes()

	var out BlindedKeyPair
	out.Secret.scalar = blindedScalar
	copy(out.Secret.prefix[:], blindedPrefixDigest[:SeedSize])
	copy(out.Secret.public[:], blindedPublicBytes)
	copy(out.Public[:], blindedPublicBytes)
	return out, nil
}

// Sign signs message under the blinded secret key, using exactly the
// construction SecretKey.Sign uses, with the pre-derived blinded scalar
// and prefix in place of a fresh seed expansion.
func (bsk *BlindedSecretKey) Sign(message []byte, noise *Noise) (Signature, error) {
	h := sha512.New()
	if noise != nil {
		h.Write(noise[:])
	}
	h.Write(bsk.prefix[:])
	h.Write(message)
	r, err := reduceWide(h.Sum(nil))
	if err != nil {
		return Signature{}, err
	}
	defer zeroizeScalar(r)

	capitalR := edwards25519.NewIdentityPoint().ScalarBaseMult(r)
	capitalRBytes := capitalR.Bytes()

	k, err := challenge(capitalRBytes, bsk.public[:], message)
	if err != nil {
		return Signature{}, err
	}

	s := edwards25519.NewScalar().MultiplyAdd(k, bsk.scalar, r)

	var sig Signature
	copy(sig[:SeedSize], capitalRBytes)
	copy(sig[SeedSize:], s.Bytes())
	return sig, nil
}

// Blind derives the blinded public key b*A for the same blinding seed
// KeyPair.Blind would use, letting a verifier blind a public key it
// holds without access to the corresponding secret key.
func (pk PublicKey) Blind(blindingSeed [BlindingSeedSize]byte) (PublicKey, error) {
	b, err := deriveBlindingScalar(blindingSeed)
	if err != nil {
		return PublicKey{}, err
	}
	defer zeroizeScalar(b)

	a, err := decompressPublic(pk)
	if err != nil {
		return PublicKey{}, err
	}

	blinded := edwards25519.NewIdentityPoint().ScalarMult(b, a)

	var out PublicKey
	copy(out[:], blinded.Bytes())
	return out, nil
}
