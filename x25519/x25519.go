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

// Package x25519 implements the X25519 Diffie-Hellman function (RFC
// 7748) over Curve25519. It shares no code with the sibling
// ed25519compact package beyond the field arithmetic
// golang.org/x/crypto/curve25519 itself builds on; a binary that
// imports only this package never links the Ed25519 engine.
package x25519

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// ScalarSize is the size, in bytes, of an X25519 scalar.
const ScalarSize = 32

// ErrWeakPublicKey reports an all-zero shared secret: the u-coordinate
// supplied was a point of small order, so the computed "shared secret"
// carries no security. The raw (all-zero) bytes are still returned
// alongside this error for callers that want the non-contributory
// historical RFC 7748 behavior.
var ErrWeakPublicKey = fmt.Errorf("x25519: weak public key (all-zero shared secret)")

// Base computes the X25519 base-point scalar multiplication [k]B,
// i.e. the public key corresponding to the clamped scalar k.
func Base(scalar [ScalarSize]byte) [ScalarSize]byte {
	var out [ScalarSize]byte
	var basepoint [ScalarSize]byte
	copy(basepoint[:], curve25519.Basepoint)
	curve25519.ScalarMult(&out, &scalar, &basepoint)
	return out
}

// DH computes the X25519 shared secret [scalar]u for an arbitrary
// u-coordinate. curve25519.ScalarMult performs the clamping and
// Montgomery-ladder conditional swap from RFC 7748 §5, and accepts
// non-canonical u >= p by masking the high bit per RFC 7748's
// acceptance policy. This calls the low-level ScalarMult rather than
// the higher-level curve25519.X25519 specifically so it controls the
// weak-key policy itself: an all-zero result is reported via
// ErrWeakPublicKey (contributory-behavior detection), but the computed
// bytes are returned regardless so a caller that wants the raw RFC
// 7748 behavior can opt in by ignoring the error.
func DH(scalar, u [ScalarSize]byte) ([ScalarSize]byte, error) {
	var out [ScalarSize]byte
	curve25519.ScalarMult(&out, &scalar, &u)

	var zero [ScalarSize]byte
	if subtle.ConstantTimeCompare(out[:], zero[:]) == 1 {
		return out, ErrWeakPublicKey
	}
	return out, nil
}
