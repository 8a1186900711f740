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
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal: %v", err)
	}
	return b
}

// rfc8032Vector is one of the RFC 8032 §7.1 test vectors: a seed,
// message, expected public key, and expected signature.
type rfc8032Vector struct {
	name      string
	seedHex   string
	pubHex    string
	msgHex    string
	sigHex    string
}

var rfc8032Vectors = []rfc8032Vector{
	{
		name:    "vector 1 (empty message)",
		seedHex: "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		pubHex:  "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		msgHex:  "",
		sigHex:  "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		name:    "vector 2 (one-byte message)",
		seedHex: "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		pubHex:  "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		msgHex:  "72",
		sigHex:  "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
	{
		name:    "vector 3 (two-byte message)",
		seedHex: "c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7",
		pubHex:  "fc51cd8e6218a1a38da47ed00230f0580816ed13ba3303ac5deb911548908025",
		msgHex:  "af82",
		sigHex:  "6291d657deec24024827e69c3abe01a30ce548a284743a445e3680d7db5ac3ac18ff9b538d16f290ae67f760984dc6594a7c15e9716ed28dc027beceea1ec40a",
	},
}

func (v rfc8032Vector) seed(t *testing.T) Seed {
	t.Helper()
	raw := mustHex(t, v.seedHex)
	if len(raw) != SeedSize {
		t.Fatalf("%s: seed literal has wrong length %d", v.name, len(raw))
	}
	var s Seed
	copy(s[:], raw)
	return s
}

func TestRFC8032Vectors(t *testing.T) {
	for _, v := range rfc8032Vectors {
		v := v
		t.Run(v.name, func(t *testing.T) {
			kp := FromSeed(v.seed(t))

			wantPub := mustHex(t, v.pubHex)
			if !bytes.Equal(kp.Public[:], wantPub) {
				t.Fatalf("public key mismatch:\n got  %x\n want %x", kp.Public[:], wantPub)
			}

			msg := mustHex(t, v.msgHex)
			sig, err := kp.Secret.Sign(msg, nil)
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}

			wantSig := mustHex(t, v.sigHex)
			if !bytes.Equal(sig[:], wantSig) {
				t.Fatalf("signature mismatch:\n got  %x\n want %x", sig[:], wantSig)
			}

			if err := kp.Public.Verify(msg, sig); err != nil {
				t.Fatalf("Verify of a known-good signature failed: %v", err)
			}
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	kp := FromSeed(Seed{1, 2, 3})
	msg := []byte("determinism check")

	sig1, err := kp.Secret.Sign(msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig2, err := kp.Secret.Sign(msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if sig1 != sig2 {
		t.Fatalf("sign(sk, m, nil) is not deterministic:\n %x\n %x", sig1, sig2)
	}
}

func TestSignWithNoiseStillVerifies(t *testing.T) {
	kp := FromSeed(Seed{9, 9, 9})
	msg := []byte("hedged signing")
	noise := Noise{0xaa, 0xbb, 0xcc}

	sig, err := kp.Secret.Sign(msg, &noise)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := kp.Public.Verify(msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	sigNoNoise, err := kp.Secret.Sign(msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if sig == sigNoNoise {
		t.Fatalf("noise did not change the signature")
	}
}

func TestVerifyRejectsFlippedMessageBit(t *testing.T) {
	kp := FromSeed(Seed{4, 5, 6})
	msg := []byte("some message of consequence")

	sig, err := kp.Secret.Sign(msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 0x01

	if err := kp.Public.Verify(tampered, sig); err == nil {
		t.Fatalf("Verify accepted a signature over a tampered message")
	}
}

func TestVerifyRejectsNonCanonicalScalar(t *testing.T) {
	kp := FromSeed(Seed{7, 7, 7})
	msg := []byte("malleability check")

	sig, err := kp.Secret.Sign(msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	// ℓ = 2^252 + 27742317777372353535851937790883648493. Adding ℓ to s
	// (mod 2^256) produces a distinct 32-byte encoding that must be
	// rejected, even though it represents the same residue class.
	tampered := sig
	ell := mustHex(t, "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	var carry int
	for i := 0; i < 32; i++ {
		sum := int(tampered[SeedSize+i]) + int(ell[i]) + carry
		tampered[SeedSize+i] = byte(sum)
		carry = sum >> 8
	}

	if err := kp.Public.Verify(msg, tampered); !errors.Is(err, ErrNonCanonicalScalar) {
		t.Fatalf("Verify did not reject s+ℓ as non-canonical: err=%v", err)
	}
}

func TestDecompressRejectsInvalidPublicKey(t *testing.T) {
	// y = p - 1, sign bit set: there is no valid x for this y.
	pMinus1 := mustHex(t, "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	var invalid PublicKey
	copy(invalid[:], pMinus1)
	invalid[31] |= 0x80

	msg := []byte("anything")
	var sig Signature
	if err := invalid.Verify(msg, sig); !errors.Is(err, ErrInvalidPublicKey) {
		t.Fatalf("Verify did not reject an undecodable public key: err=%v", err)
	}
}

func TestGenerateRoundTrips(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	msg := []byte("freshly generated key pair")
	sig, err := kp.Secret.Sign(msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := kp.Public.Verify(msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestWithSelfVerify(t *testing.T) {
	kp := FromSeed(Seed{42})
	msg := []byte("self-verify path")

	sig, err := kp.Secret.Sign(msg, nil, WithSelfVerify())
	if err != nil {
		t.Fatalf("Sign with WithSelfVerify: %v", err)
	}
	if err := kp.Public.Verify(msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}
