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

// SignOption customizes a single call to SecretKey.Sign.
type SignOption func(*signOptions)

type signOptions struct {
	selfVerify bool
}

// WithSelfVerify re-verifies a signature immediately after producing
// it, returning ErrFaultDetected instead of the signature if the check
// fails. This guards against hardware fault attacks and implementation
// bugs that could otherwise leak the secret scalar through a bad
// signature.
func WithSelfVerify() SignOption {
	return func(o *signOptions) { o.selfVerify = true }
}

// Sign produces a deterministic Ed25519 signature over message. If
// noise is non-nil, its 16 bytes are mixed into the nonce derivation
// (hedged signing); the resulting signature is no longer a pure
// function of (sk, message) but gains defense in depth against nonce
// reuse under hash collisions or fault injection.
func (sk SecretKey) Sign(message []byte, noise *Noise, opts ...SignOption) (Signature, error) {
	var o signOptions
	for _, opt := range opts {
		opt(&o)
	}

	seed := sk.Seed()
	a, prefix, publicPoint := expandSeed(seed)
	defer zeroizeScalar(a)

	publicKey := sk.PublicKey()
	publicBytes := publicPoint.Bytes()

	h := sha512.New()
	if noise != nil {
		h.Write(noise[:])
	}
	h.Write(prefix)
	h.Write(message)
	r, err := reduceWide(h.Sum(nil))
	if err != nil {
		return Signature{}, err
	}
	defer zeroizeScalar(r)

	capitalR := edwards25519.NewIdentityPoint().ScalarBaseMult(r)
	capitalRBytes := capitalR.Bytes()

	k, err := challenge(capitalRBytes, publicBytes, message)
	if err != nil {
		return Signature{}, err
	}

	s := edwards25519.NewScalar().MultiplyAdd(k, a, r)

	var sig Signature
	copy(sig[:SeedSize], capitalRBytes)
	copy(sig[SeedSize:], s.Bytes())

	if o.selfVerify {
		if err := publicKey.Verify(message, sig); err != nil {
			return Signature{}, fmt.Errorf("%w: %v", ErrFaultDetected, err)
		}
	}

	return sig, nil
}

// Verify checks that sig is a valid Ed25519 signature by pk over
// message, using the cofactored verification equation
// [8*s]B = [8]R + [8*k]A, which tolerates small-subgroup components in
// both R and A.
func (pk PublicKey) Verify(message []byte, sig Signature) error {
	rBytes := sig[:SeedSize]
	sBytes := sig[SeedSize:]

	s, err := canonicalScalar(sBytes)
	if err != nil {
		return err
	}

	a, err := decompressPublic(pk)
	if err != nil {
		return err
	}

	capitalR, err := decompressR(rBytes)
	if err != nil {
		return err
	}

	k, err := challenge(rBytes, pk[:], message)
	if err != nil {
		return err
	}

	// check = s*B - k*A, compared cofactored against R.
	minusA := edwards25519.NewIdentityPoint().Negate(a)
	check := edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(k, minusA, s)
	if !cofactoredEqual(check, capitalR) {
		return ErrSignatureMismatch
	}
	return nil
}
