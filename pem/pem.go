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

// Package pem provides OpenSSL-compatible PEM encoding and decoding for
// the raw Ed25519 key formats in the sibling ed25519compact package.
// This is intentionally a thin I/O boundary layer, not part of the
// cryptographic engine: crypto/ed25519 keys are binary-compatible with
// ed25519compact's SecretKey (seed‖publickey) and PublicKey, so this
// package is a thin adapter onto crypto/x509's existing PKCS8/PKIX
// support rather than a hand-rolled ASN.1 encoder.
package pem

import (
	stded25519 "crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	ed25519compact "github.com/go-compact/ed25519compact"
)

const (
	privateKeyBlockType = "PRIVATE KEY"
	publicKeyBlockType  = "PUBLIC KEY"
)

// MarshalSecretKey encodes sk as a PKCS#8 "PRIVATE KEY" PEM block, the
// same format OpenSSL produces for an Ed25519 key (openssl genpkey
// -algorithm ed25519).
func MarshalSecretKey(sk ed25519compact.SecretKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(stded25519.PrivateKey(sk[:]))
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling secret key: %v", ed25519compact.ErrParse, err)
	}
	block := &pem.Block{Type: privateKeyBlockType, Bytes: der}
	return pem.EncodeToMemory(block), nil
}

// ParseSecretKey decodes a PKCS#8 "PRIVATE KEY" PEM block produced by
// MarshalSecretKey or by OpenSSL, returning the raw 64-byte SecretKey.
func ParseSecretKey(data []byte) (ed25519compact.SecretKey, error) {
	var out ed25519compact.SecretKey

	block, _ := pem.Decode(data)
	if block == nil || block.Type != privateKeyBlockType {
		return out, fmt.Errorf("%w: no PRIVATE KEY block found", ed25519compact.ErrParse)
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return out, fmt.Errorf("%w: parsing PKCS8 key: %v", ed25519compact.ErrParse, err)
	}

	sk, ok := key.(stded25519.PrivateKey)
	if !ok {
		return out, fmt.Errorf("%w: PEM block does not contain an Ed25519 key", ed25519compact.ErrParse)
	}
	if len(sk) != ed25519compact.SecretKeySize {
		return out, fmt.Errorf("%w: unexpected Ed25519 key length %d", ed25519compact.ErrParse, len(sk))
	}

	copy(out[:], sk)
	return out, nil
}

// MarshalPublicKey encodes pk as a PKIX "PUBLIC KEY" PEM block.
func MarshalPublicKey(pk ed25519compact.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(stded25519.PublicKey(pk[:]))
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling public key: %v", ed25519compact.ErrParse, err)
	}
	block := &pem.Block{Type: publicKeyBlockType, Bytes: der}
	return pem.EncodeToMemory(block), nil
}

// ParsePublicKey decodes a PKIX "PUBLIC KEY" PEM block produced by
// MarshalPublicKey or by OpenSSL, returning the raw 32-byte PublicKey.
func ParsePublicKey(data []byte) (ed25519compact.PublicKey, error) {
	var out ed25519compact.PublicKey

	block, _ := pem.Decode(data)
	if block == nil || block.Type != publicKeyBlockType {
		return out, fmt.Errorf("%w: no PUBLIC KEY block found", ed25519compact.ErrParse)
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return out, fmt.Errorf("%w: parsing PKIX key: %v", ed25519compact.ErrParse, err)
	}

	pk, ok := key.(stded25519.PublicKey)
	if !ok {
		return out, fmt.Errorf("%w: PEM block does not contain an Ed25519 key", ed25519compact.ErrParse)
	}
	if len(pk) != ed25519compact.PublicKeySize {
		return out, fmt.Errorf("%w: unexpected Ed25519 key length %d", ed25519compact.ErrParse, len(pk))
	}

	copy(out[:], pk)
	return out, nil
}
