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

import "errors"

// Sentinel errors, one per error kind in the module's failure taxonomy.
// Callers should use errors.Is against these rather than string-matching
// messages; call sites wrap them with fmt.Errorf("%w: ...") to attach
// context.
var (
	// ErrInvalidEncoding reports a buffer of the wrong length, or a
	// reserved field that violates its required shape.
	ErrInvalidEncoding = errors.New("ed25519compact: invalid encoding")

	// ErrInvalidPublicKey reports a public key whose y-coordinate is not
	// canonical (y >= p) or whose decompression has no square root.
	ErrInvalidPublicKey = errors.New("ed25519compact: invalid public key")

	// ErrNonCanonicalScalar reports a signature whose s component is not
	// reduced mod the group order (a malleability defense).
	ErrNonCanonicalScalar = errors.New("ed25519compact: non-canonical scalar")

	// ErrSignatureMismatch reports that the verification equation did
	// not hold for the given (public key, message, signature) triple.
	ErrSignatureMismatch = errors.New("ed25519compact: signature mismatch")

	// ErrWeakPublicKey names the X25519 all-zero shared secret failure
	// kind. Nothing in this package returns it; x25519.DH reports that
	// case with its own x25519.ErrWeakPublicKey, a distinct value that
	// errors.Is does not match against this one.
	ErrWeakPublicKey = errors.New("ed25519compact: weak public key")

	// ErrRandomnessFailure reports that the configured randomness
	// provider failed to produce bytes.
	ErrRandomnessFailure = errors.New("ed25519compact: randomness source failed")

	// ErrFaultDetected reports that a self-verify pass immediately
	// after signing did not match, indicating a hardware fault or a bug.
	ErrFaultDetected = errors.New("ed25519compact: self-verify failed after signing")

	// ErrParse reports a malformed PEM or other textual wrapper; it is
	// only ever returned from the pem subpackage.
	ErrParse = errors.New("ed25519compact: parse error")

	// ErrStateReused reports that a SigningState or VerifyingState was
	// absorbed into or finalized after it had already produced a result.
	ErrStateReused = errors.New("ed25519compact: streaming state already finalized")
)
