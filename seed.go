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
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// SeedSize is the size, in bytes, of an Ed25519 key-derivation seed.
	SeedSize = 32

	// PublicKeySize is the size, in bytes, of an Ed25519 public key.
	PublicKeySize = 32

	// SecretKeySize is the size, in bytes, of an Ed25519 secret key: the
	// 32-byte seed followed by the 32-byte public key it derives.
	SecretKeySize = 64

	// SignatureSize is the size, in bytes, of an Ed25519 signature.
	SignatureSize = 64

	// NoiseSize is the size, in bytes, of the optional domain-separating
	// randomness mixed into nonce derivation.
	NoiseSize = 16
)

// RandReader is the randomness source used by Generate and by any
// caller-requested default Noise. It is a package variable, rather than
// a parameter threaded through every call, so embedders can swap in
// their own entropy source once at program start; the default is
// crypto/rand.Reader.
var RandReader io.Reader = rand.Reader

// Seed is the 32-byte input to Ed25519 key derivation. The same seed
// deterministically yields the same KeyPair.
type Seed [SeedSize]byte

// PublicKey is the little-endian, compressed encoding of an Edwards
// curve point, per RFC 8032.
type PublicKey [PublicKeySize]byte

// SecretKey is the concatenation of a Seed and the PublicKey it
// derives. It is binary-compatible with crypto/ed25519.PrivateKey.
type SecretKey [SecretKeySize]byte

// Signature is a 64-byte Ed25519 signature, R (32 bytes) followed by a
// canonically-reduced scalar s (32 bytes).
type Signature [SignatureSize]byte

// Noise is optional domain-separating randomness mixed into nonce
// derivation, a defense in depth against fault attacks and nonce-reuse
// from a broken deterministic-nonce construction.
type Noise [NoiseSize]byte

// Seed returns the 32-byte seed this secret key was derived from.
func (sk SecretKey) Seed() Seed {
	var s Seed
	copy(s[:], sk[:SeedSize])
	return s
}

// PublicKey returns the public key half of this secret key.
func (sk SecretKey) PublicKey() PublicKey {
	var pk PublicKey
	copy(pk[:], sk[SeedSize:])
	return pk
}

// KeyPair bundles a SecretKey with the PublicKey it derives.
type KeyPair struct {
	Secret SecretKey
	Public PublicKey
}

// FromSeed deterministically derives a KeyPair from a 32-byte seed, per
// RFC 8032 §5.1.5: h = SHA-512(seed); the low half of h is clamped into
// the secret scalar a; the public key is the compression of a*B.
func FromSeed(seed Seed) KeyPair {
	a, _, publicPoint := expandSeed(seed)
	defer zeroizeScalar(a)

	var kp KeyPair
	copy(kp.Secret[:SeedSize], seed[:])
	copy(kp.Secret[SeedSize:], publicPoint.Bytes())
	kp.Public = kp.Secret.PublicKey()
	return kp
}

// Generate derives a KeyPair from a freshly-drawn random seed, reading
// SeedSize bytes from RandReader.
func Generate() (KeyPair, error) {
	var seed Seed
	if _, err := io.ReadFull(RandReader, seed[:]); err != nil {
		return KeyPair{}, fmt.Errorf("%w: %v", ErrRandomnessFailure, err)
	}
	return FromSeed(seed), nil
}

// RandomNoise draws a fresh Noise value from RandReader, for callers
// that want hedged signing but don't want to manage their own entropy
// for the noise parameter.
func RandomNoise() (Noise, error) {
	var n Noise
	if _, err := io.ReadFull(RandReader, n[:]); err != nil {
		return Noise{}, fmt.Errorf("%w: %v", ErrRandomnessFailure, err)
	}
	return n, nil
}
