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
	"hash"

	"filippo.io/edwards25519"
)

// SigningState is a one-pass, bounded-memory streaming signer. It
// absorbs message bytes incrementally into a single running SHA-512
// context, and on Sign produces a signature over the 64-byte digest of
// everything absorbed rather than over the raw message; this makes
// streaming signatures differ from one-shot signatures over the same
// bytes. No domain-separation prefix is added: a streaming signature
// over M is the same as a one-shot signature over SHA-512(M).
//
// A SigningState is single-use: once Sign has been called, further
// calls to Absorb or Sign return ErrStateReused.
type SigningState struct {
	a           *edwards25519.Scalar
	prefix      []byte
	publicBytes []byte
	noise       *Noise
	h           hash.Hash
	done        bool
}

// NewSigningState begins a streaming signature over whatever bytes are
// subsequently passed to Absorb. noise, if non-nil, is mixed into nonce
// derivation exactly as in the one-shot Sign.
func (sk SecretKey) NewSigningState(noise *Noise) *SigningState {
	a, prefix, publicPoint := expandSeed(sk.Seed())
	return &SigningState{
		a:           a,
		prefix:      prefix,
		publicBytes: publicPoint.Bytes(),
		noise:       noise,
		h:           sha512.New(),
	}
}

// Absorb feeds chunk into the streaming digest. absorb(A); absorb(B) is
// equivalent to absorb(concat(A, B)), since hash.Hash.Write is itself
// associative across calls.
func (st *SigningState) Absorb(chunk []byte) error {
	if st.done {
		return ErrStateReused
	}
	st.h.Write(chunk)
	return nil
}

// Sign finalizes the streaming digest and produces the Ed25519ph-style
// signature over it. The state is consumed: subsequent calls to Absorb
// or Sign fail with ErrStateReused.
func (st *SigningState) Sign() (Signature, error) {
	if st.done {
		return Signature{}, ErrStateReused
	}
	st.done = true
	defer zeroizeScalar(st.a)

	messageDigest := st.h.Sum(nil)

	rh := sha512.New()
	if st.noise != nil {
		rh.Write(st.noise[:])
	}
	rh.Write(st.prefix)
	rh.Write(messageDigest)
	r, err := reduceWide(rh.Sum(nil))
	if err != nil {
		return Signature{}, err
	}
	defer zeroizeScalar(r)

	capitalR := edwards25519.NewIdentityPoint().ScalarBaseMult(r)
	capitalRBytes := capitalR.Bytes()

	k, err := challenge(capitalRBytes, st.publicBytes, messageDigest)
	if err != nil {
		return Signature{}, err
	}

	s := edwards25519.NewScalar().MultiplyAdd(k, st.a, r)

	var sig Signature
	copy(sig[:SeedSize], capitalRBytes)
	copy(sig[SeedSize:], s.Bytes())
	return sig, nil
}

// VerifyingState is the streaming counterpart to SigningState: it
// absorbs message bytes incrementally and, on Verify, checks the
// signature against the digest of everything absorbed using the same
// construction SigningState.Sign used to produce it.
type VerifyingState struct {
	pk   PublicKey
	sig  Signature
	h    hash.Hash
	done bool
}

// NewVerifyingState begins a streaming verification of sig against
// whatever bytes are subsequently passed to Absorb.
func (pk PublicKey) NewVerifyingState(sig Signature) *VerifyingState {
	return &VerifyingState{
		pk:  pk,
		sig: sig,
		h:   sha512.New(),
	}
}

// Absorb feeds chunk into the streaming digest.
func (st *VerifyingState) Absorb(chunk []byte) error {
	if st.done {
		return ErrStateReused
	}
	st.h.Write(chunk)
	return nil
}

// Verify finalizes the streaming digest and checks it against the
// signature supplied to NewVerifyingState. The state is consumed:
// subsequent calls to Absorb or Verify fail with ErrStateReused.
func (st *VerifyingState) Verify() error {
	if st.done {
		return ErrStateReused
	}
	st.done = true

	rBytes := st.sig[:SeedSize]
	sBytes := st.sig[SeedSize:]

	s, err := canonicalScalar(sBytes)
	if err != nil {
		return err
	}

	a, err := decompressPublic(st.pk)
	if err != nil {
		return err
	}

	capitalR, err := decompressR(rBytes)
	if err != nil {
		return err
	}

	messageDigest := st.h.Sum(nil)

	k, err := challenge(rBytes, st.pk[:], messageDigest)
	if err != nil {
		return err
	}

	minusA := edwards25519.NewIdentityPoint().Negate(a)
	check := edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(k, minusA, s)
	if !cofactoredEqual(check, capitalR) {
		return fmt.Errorf("%w (streaming)", ErrSignatureMismatch)
	}
	return nil
}
