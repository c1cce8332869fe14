// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa provides secp256k1-optimized ECDSA signing and verification
along with strict DER encoding and decoding of the resulting signatures.

This package provides data structures and functions necessary to produce and
verify canonical low-S signatures from a caller-supplied nonce, as well as a
public key recovery code with each signature so the associated public key
can be recovered from the signature and the message it signs.

All of the scalar, field, and group arithmetic is provided by the
github.com/decred/dcrd/dcrec/secp256k1/v4 module.

# ECDSA use in Bitcoin-derived consensus systems

The DER parser in this package is strict: signatures which are not minimally
encoded per DER, which use indefinite or reserved length forms, or which
contain trailing data are rejected outright rather than tolerated.  One
notable exception is preserved for compatibility with the original
implementation this package follows: an integer component that overflows
(is negative, has more than 32 significant bytes, or is not less than the
group order) parses successfully as the scalar value zero.  Such signatures
are subsequently rejected by verification, which never accepts a signature
with a zero R or S component.

# Errors

Errors returned by this package are of type ecdsa.Error and fully support
the standard library errors.Is and errors.As functions.  This allows the
caller to programmatically determine the specific error by examining the
ErrorCode field of the type asserted ecdsa.Error while still providing rich
error messages with contextual information.
*/
package ecdsa
