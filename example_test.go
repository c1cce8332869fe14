// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa_test

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	ecdsa "github.com/outtherelabs/secp256k1-ecdsa"
)

// This example demonstrates signing a message with a secp256k1 private key
// and a caller-supplied nonce, and then verifying the signature against the
// associated public key.
func Example_signMessage() {
	// Decode a hex-encoded private key.
	pkBytes, err := hex.DecodeString("22a47fa09a223f2aa079edf85a7c2d4f87" +
		"20ee63e502ee2869afab7de234b80c")
	if err != nil {
		fmt.Println(err)
		return
	}
	privKey := secp256k1.PrivKeyFromBytes(pkBytes)

	// Sign a message using the private key.  The nonce must be unique and
	// unpredictable per message and would normally come from a deterministic
	// scheme such as RFC6979; a fixed one is used here for illustration only.
	message := "test message"
	messageHash := chainhash.HashB([]byte(message))
	nonceBytes, err := hex.DecodeString("a6df66500afeb7711d4c8e2220960855" +
		"d02a5aeacd680a08d03bd1f66dd8aecb")
	if err != nil {
		fmt.Println(err)
		return
	}
	var nonce secp256k1.ModNScalar
	nonce.SetByteSlice(nonceBytes)

	signature, recoveryCode, err := ecdsa.Sign(privKey, messageHash, &nonce)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Verify the signature for the message using the public key.
	pubKey := privKey.PubKey()
	verified := signature.Verify(messageHash, pubKey)
	fmt.Println("Signature Verified?", verified)

	// Recover the public key from the signature and the recovery code that
	// was produced alongside it.
	recoveredKey, err := ecdsa.RecoverPubkey(signature, recoveryCode,
		messageHash)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Recovered Key Matches?", recoveredKey.IsEqual(pubKey))

	// Output:
	// Signature Verified? true
	// Recovered Key Matches? true
}

// This example demonstrates verifying a DER encoded signature that is first
// parsed from raw bytes.  The signature here is one of the well-known
// RFC6979 reference signatures for secp256k1 with SHA-256.
func Example_verifySignature() {
	// Decode hex-encoded serialized public key.
	pubKeyBytes, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b" +
		"07029bfcdb2dce28d959f2815b16f81798")
	if err != nil {
		fmt.Println(err)
		return
	}
	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Decode hex-encoded serialized signature.
	sigBytes, err := hex.DecodeString("3045022100934b1ea10a4b3c1757e2b0c0" +
		"17d0b6143ce3c9a7e6a4a49860d7a6ab210ee3d802202442ce9d2b9160641080" +
		"14783e923ec36b49743e2ffa1c4496f01a512aafd9e5")
	if err != nil {
		fmt.Println(err)
		return
	}
	signature, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Verify the signature for the message using the public key.
	messageHash := sha256.Sum256([]byte("Satoshi Nakamoto"))
	verified := signature.Verify(messageHash[:], pubKey)
	fmt.Println("Signature Verified?", verified)

	// Output:
	// Signature Verified? true
}
