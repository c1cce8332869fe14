// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/sha256"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// benchSigHash is the SHA-256 hash of the message used by the benchmark
// signature below.
var benchSigHash = func() []byte {
	hash := sha256.Sum256([]byte("Satoshi Nakamoto"))
	return hash[:]
}()

// benchSig is the signature over benchSigHash for the private key one with
// its well-known RFC6979 nonce.
var benchSig = &Signature{
	r: *hexToModNScalar("934b1ea10a4b3c1757e2b0c017d0b6143ce3c9a7e6a4a49860d7a6ab210ee3d8"),
	s: *hexToModNScalar("2442ce9d2b916064108014783e923ec36b49743e2ffa1c4496f01a512aafd9e5"),
}

// benchPubKey is the public key for the private key one, which is the curve
// generator point.
var benchPubKey = secp256k1.NewPublicKey(
	hexToFieldVal("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
	hexToFieldVal("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
)

// BenchmarkSigVerify benchmarks how long it takes to verify signatures.
func BenchmarkSigVerify(b *testing.B) {
	if !benchSig.Verify(benchSigHash, benchPubKey) {
		b.Fatal("signature failed to verify")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSig.Verify(benchSigHash, benchPubKey)
	}
}

// BenchmarkSign benchmarks how long it takes to sign a message hash with a
// precomputed nonce.
func BenchmarkSign(b *testing.B) {
	privKey := secp256k1.PrivKeyFromBytes(hexToBytes(
		"0000000000000000000000000000000000000000000000000000000000000001"))
	nonce := hexToModNScalar(
		"8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sign(privKey, benchSigHash, nonce)
	}
}

// BenchmarkSigSerialize benchmarks how long it takes to serialize a typical
// signature with the strict DER encoding.
func BenchmarkSigSerialize(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSig.Serialize()
	}
}

// BenchmarkSigParse benchmarks how long it takes to parse a typical DER
// encoded signature.
func BenchmarkSigParse(b *testing.B) {
	der := benchSig.Serialize()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseDERSignature(der); err != nil {
			b.Fatalf("failed to parse signature: %v", err)
		}
	}
}

// BenchmarkRecoverPubkey benchmarks how long it takes to recover a public key
// from a signature and the message hash it signs.
func BenchmarkRecoverPubkey(b *testing.B) {
	// Recovery code zero applies to the benchmark signature since the
	// ephemeral point for its nonce has an even Y coordinate and an X
	// coordinate below the group order.
	if _, err := RecoverPubkey(benchSig, 0, benchSigHash); err != nil {
		b.Fatalf("failed to recover public key: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RecoverPubkey(benchSig, 0, benchSigHash)
	}
}
