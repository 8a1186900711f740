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

import "testing"

func TestStreamingSignVerifyRoundTrip(t *testing.T) {
	kp := FromSeed(Seed{11, 22, 33})
	chunks := [][]byte{
		[]byte("the quick brown fox "),
		[]byte("jumps over "),
		[]byte("the lazy dog"),
	}

	st := kp.Secret.NewSigningState(nil)
	for _, c := range chunks {
		if err := st.Absorb(c); err != nil {
			t.Fatalf("Absorb: %v", err)
		}
	}
	sig, err := st.Sign()
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	vst := kp.Public.NewVerifyingState(sig)
	for _, c := range chunks {
		if err := vst.Absorb(c); err != nil {
			t.Fatalf("Absorb: %v", err)
		}
	}
	if err := vst.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestStreamingAbsorbIsChunkAgnostic(t *testing.T) {
	kp := FromSeed(Seed{1, 1, 1})
	message := []byte("absorb(A); absorb(B) == absorb(concat(A, B))")

	chunked := kp.Secret.NewSigningState(nil)
	chunked.Absorb(message[:10])
	chunked.Absorb(message[10:])
	sigChunked, err := chunked.Sign()
	if err != nil {
		t.Fatalf("Sign (chunked): %v", err)
	}

	whole := kp.Secret.NewSigningState(nil)
	whole.Absorb(message)
	sigWhole, err := whole.Sign()
	if err != nil {
		t.Fatalf("Sign (whole): %v", err)
	}

	if sigChunked != sigWhole {
		t.Fatalf("streaming signatures over the same bytes differed by chunking:\n %x\n %x", sigChunked, sigWhole)
	}
}

func TestStreamingSignatureDomainDistinctFromOneShot(t *testing.T) {
	kp := FromSeed(Seed{5, 5, 5})
	message := []byte("same bytes, two constructions")

	oneShot, err := kp.Secret.Sign(message, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	st := kp.Secret.NewSigningState(nil)
	st.Absorb(message)
	streamed, err := st.Sign()
	if err != nil {
		t.Fatalf("Sign (streaming): %v", err)
	}

	if oneShot == streamed {
		t.Fatalf("streaming and one-shot signatures over identical bytes coincided; they must be domain-distinct")
	}

	// Streaming verify must accept the streaming signature...
	vst := kp.Public.NewVerifyingState(streamed)
	vst.Absorb(message)
	if err := vst.Verify(); err != nil {
		t.Fatalf("streaming Verify rejected its own signature: %v", err)
	}

	// ...but not the one-shot signature over the same bytes.
	vst2 := kp.Public.NewVerifyingState(oneShot)
	vst2.Absorb(message)
	if err := vst2.Verify(); err == nil {
		t.Fatalf("streaming Verify accepted a one-shot signature")
	}
}

func TestStreamingStateSingleUse(t *testing.T) {
	kp := FromSeed(Seed{2, 4, 6})

	st := kp.Secret.NewSigningState(nil)
	st.Absorb([]byte("payload"))
	if _, err := st.Sign(); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := st.Absorb([]byte("more")); err != ErrStateReused {
		t.Fatalf("Absorb after Sign: got %v, want ErrStateReused", err)
	}
	if _, err := st.Sign(); err != ErrStateReused {
		t.Fatalf("Sign after Sign: got %v, want ErrStateReused", err)
	}
}
