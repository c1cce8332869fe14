// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"testing"

	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// TestCrossCheckVerifyBtcec ensures deterministic signatures produced by the
// btcec module parse under the strict DER decoder and verify here.
func TestCrossCheckVerifyBtcec(t *testing.T) {
	for i := 0; i < 16; i++ {
		name := fmt.Sprintf("test %d", i)
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("%s: failed to generate private key: %v", name, err)
		}
		hash := sha256.Sum256([]byte(name))

		theirSig := btcecdsa.Sign(priv, hash[:])
		sig, err := ParseDERSignature(theirSig.Serialize())
		if err != nil {
			t.Fatalf("%s: failed to parse btcec signature: %v", name, err)
		}
		if !sig.Verify(hash[:], priv.PubKey()) {
			t.Fatalf("%s: btcec signature failed to verify", name)
		}
	}
}

// TestCrossCheckSignBtcec ensures signatures produced here parse and verify
// under the btcec module.
func TestCrossCheckSignBtcec(t *testing.T) {
	for i := 0; i < 16; i++ {
		name := fmt.Sprintf("test %d", i)
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("%s: failed to generate private key: %v", name, err)
		}
		hash := make([]byte, 32)
		if _, err := rand.Read(hash); err != nil {
			t.Fatalf("%s: failed to read random hash: %v", name, err)
		}
		nonce := randModNScalar(t)

		sig, _, err := Sign(priv, hash, nonce)
		if err != nil {
			t.Fatalf("%s: unexpected signing err: %v", name, err)
		}
		theirSig, err := btcecdsa.ParseDERSignature(sig.Serialize())
		if err != nil {
			t.Fatalf("%s: btcec failed to parse signature: %v", name, err)
		}
		if !theirSig.Verify(hash, priv.PubKey()) {
			t.Fatalf("%s: signature failed to verify under btcec", name)
		}
	}
}
