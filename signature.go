// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/bits"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes,
//     Vanstone)
//
//   [ISO/IEC 8825-1]: Information technology — ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)
//
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     https://www.secg.org/sec1-v2.pdf

const (
	// asn1SequenceID is the ASN.1 identifier for a constructed sequence.
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for a primitive integer.
	asn1IntegerID = 0x02

	// maxDERLenOctets is the maximum number of octets a long form ASN.1
	// length may occupy before the decoded value would no longer fit into
	// the native int type.
	maxDERLenOctets = bits.UintSize / 8

	// maxSigLen is the maximum length of a DER encoded signature: a one byte
	// sequence identifier and length, two one byte integer identifiers and
	// lengths, and two integers up to 33 bytes each since a leading zero
	// byte is retained when the most significant bit of a component would
	// otherwise make it appear negative.
	maxSigLen = 6 + 2*33
)

// orderAsFieldVal is the group order of the secp256k1 curve represented as a
// field value.  It is used to check for the second possible case of the X
// coordinate of the ephemeral point during verification as well as when
// recovering a public key from a signature with an overflowed R component.
//
// The difference between the field prime and the group order is less than
// 2^129, so there is no counterpart constant here for that value.  The
// comparison against it is provided by the field value itself via
// IsGtOrEqPrimeMinusOrder.
var orderAsFieldVal = func() *secp256k1.FieldVal {
	var f secp256k1.FieldVal
	f.SetByteSlice(secp256k1.Params().N.Bytes())
	return &f
}()

// Signature is a type representing an ECDSA signature.
type Signature struct {
	r secp256k1.ModNScalar
	s secp256k1.ModNScalar
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r, s *secp256k1.ModNScalar) *Signature {
	var sig Signature
	sig.r.Set(r)
	sig.s.Set(s)
	return &sig
}

// R returns the r value of the signature.
func (sig *Signature) R() secp256k1.ModNScalar {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() secp256k1.ModNScalar {
	return sig.s
}

// IsEqual compares this signature instance to the one passed, returning true
// if both signatures are equivalent.  A signature is equivalent to another,
// if they both have the same scalar value for R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Equals(&otherSig.r) && sig.s.Equals(&otherSig.s)
}

// zeroArray32 zeroes the provided 32-byte buffer.
func zeroArray32(b *[32]byte) {
	*b = [32]byte{}
}

// fieldToModNScalar converts a field value to a scalar modulo the group order
// and returns the scalar along with either 1 if it was reduced (aka it
// overflowed) or 0 otherwise.
//
// Note that a bool is not used here because it is not possible in Go to
// convert from a bool to numeric value in constant time and many constant
// time operations require a numeric value.
func fieldToModNScalar(v *secp256k1.FieldVal) (secp256k1.ModNScalar, uint32) {
	var buf [32]byte
	v.PutBytes(&buf)
	var s secp256k1.ModNScalar
	overflow := s.SetBytes(&buf)
	zeroArray32(&buf)
	return s, overflow
}

// modNScalarToField converts a scalar modulo the group order to a field value.
func modNScalarToField(v *secp256k1.ModNScalar) secp256k1.FieldVal {
	var buf [32]byte
	v.PutBytes(&buf)
	var fv secp256k1.FieldVal
	fv.SetBytes(&buf)
	return fv
}

// derReadLen deserializes an ASN.1 length starting at the provided offset
// into the given signature and returns it along with the offset of the first
// byte after the length octets.
//
// All of the length forms permitted by DER are supported and everything else
// is rejected:
//
//   - Short form (single octet with the high bit clear) per
//     [ISO/IEC 8825-1] 8.1.3.4
//   - Minimally encoded long form (initial octet with the high bit set
//     specifying the number of subsequent length octets) per
//     [ISO/IEC 8825-1] 8.1.3.5 and 10.1
//
// Notably that means the reserved initial octet 0xff, the indefinite form
// 0x80, long form encodings of values less than 128 or with leading zero
// octets, and lengths that claim more data than the signature has are all
// rejected here.
func derReadLen(sig []byte, idx int) (int, int, error) {
	if idx >= len(sig) {
		str := "malformed signature: no length octets"
		return 0, 0, signatureError(ErrSigTooShort, str)
	}
	b1 := sig[idx]
	idx++

	// [ISO/IEC 8825-1] 8.1.3.5.c: the initial octet 0xff is reserved.
	if b1 == 0xff {
		str := "malformed signature: reserved length octet 0xff"
		return 0, 0, signatureError(ErrSigInvalidLength, str)
	}

	// Short form length octet.
	if b1&0x80 == 0 {
		return int(b1), idx, nil
	}

	// The indefinite form is not allowed in DER.
	if b1 == 0x80 {
		str := "malformed signature: indefinite length"
		return 0, 0, signatureError(ErrSigInvalidLength, str)
	}

	// Long form length octets.  The low 7 bits of the initial octet specify
	// the number of octets that make up the length.
	numOctets := int(b1 & 0x7f)
	if numOctets > len(sig)-idx {
		str := fmt.Sprintf("malformed signature: %d length octets exceed the "+
			"%d remaining bytes", numOctets, len(sig)-idx)
		return 0, 0, signatureError(ErrSigTooShort, str)
	}
	if sig[idx] == 0x00 {
		str := "malformed signature: length is not minimally encoded"
		return 0, 0, signatureError(ErrSigInvalidLength, str)
	}
	if numOctets > maxDERLenOctets {
		// The resulting length would exceed the range of the native int
		// type, so it is certainly longer than the signature itself.
		str := fmt.Sprintf("malformed signature: %d length octets exceed the "+
			"native integer range", numOctets)
		return 0, 0, signatureError(ErrSigInvalidLength, str)
	}

	// Accumulate the length octets big endian while ensuring at every step
	// that the partial value along with the remaining length octets does not
	// already claim more data than the signature has.  This prevents
	// maliciously large length values without any overflow concerns since
	// the accumulated value is bounded by the signature length once the
	// first iteration passes.
	length := 0
	for lenleft := numOctets; lenleft > 0; lenleft-- {
		length = length<<8 | int(sig[idx])
		if length+lenleft > len(sig)-idx {
			str := fmt.Sprintf("malformed signature: length %d exceeds the "+
				"remaining bytes", length)
			return 0, 0, signatureError(ErrSigInvalidDataLen, str)
		}
		idx++
	}

	// Values below 128 must use the short form.
	if length < 128 {
		str := fmt.Sprintf("malformed signature: length %d is not minimally "+
			"encoded", length)
		return 0, 0, signatureError(ErrSigInvalidLength, str)
	}

	return length, idx, nil
}

// derIntErrorCodes houses the error codes to return for each failure mode of
// a DER integer so the same parsing logic can be shared between the R and S
// components of a signature while still producing component-specific errors.
type derIntErrorCodes struct {
	invalidIntID   ErrorCode
	zeroLen        ErrorCode
	invalidLen     ErrorCode
	tooMuchPadding ErrorCode
}

var (
	derIntErrorCodesR = derIntErrorCodes{ErrSigInvalidRIntID, ErrSigZeroRLen,
		ErrSigInvalidRLen, ErrSigTooMuchRPadding}
	derIntErrorCodesS = derIntErrorCodes{ErrSigInvalidSIntID, ErrSigZeroSLen,
		ErrSigInvalidSLen, ErrSigTooMuchSPadding}
)

// parseDERInt parses an ASN.1 integer starting at the provided offset into
// the given signature as a scalar modulo the group order and returns the
// offset of the first byte after the integer.
//
// The encoding of the integer itself is strict in that zero-length integers
// and excessive 0x00 or 0xff padding are rejected.  However, the value is
// deliberately coerced rather than rejected when it cannot be represented as
// a canonical scalar: integers that are negative (high bit of the first
// content byte set), have more than 32 significant bytes, or are not less
// than the group order all parse successfully with a resulting scalar of
// zero.  Signatures with a zero component never verify, so the coercion
// preserves compatibility with implementations that defer that rejection to
// verification time.
func parseDERInt(sig []byte, idx int, name string, codes *derIntErrorCodes,
	out *secp256k1.ModNScalar) (int, error) {

	// The integer must start with the expected ASN.1 identifier.
	if idx >= len(sig) {
		str := fmt.Sprintf("malformed signature: no %s integer", name)
		return 0, signatureError(ErrSigTooShort, str)
	}
	if sig[idx] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: %s integer identifier: "+
			"%#x != %#x", name, sig[idx], asn1IntegerID)
		return 0, signatureError(codes.invalidIntID, str)
	}
	idx++

	// [ISO/IEC 8825-1] 8.3.1: the contents of an integer consist of one or
	// more octets.
	dlen, idx, err := derReadLen(sig, idx)
	if err != nil {
		return 0, err
	}
	if dlen == 0 {
		str := fmt.Sprintf("malformed signature: %s integer has zero length",
			name)
		return 0, signatureError(codes.zeroLen, str)
	}
	if dlen > len(sig)-idx {
		str := fmt.Sprintf("malformed signature: %s integer length %d "+
			"exceeds the %d remaining bytes", name, dlen, len(sig)-idx)
		return 0, signatureError(codes.invalidLen, str)
	}
	contents := sig[idx : idx+dlen]

	// [ISO/IEC 8825-1] 8.3.2: the first nine bits of an integer must not all
	// be ones or all be zeros.
	if contents[0] == 0x00 && dlen > 1 && contents[1]&0x80 == 0 {
		str := fmt.Sprintf("malformed signature: %s integer has excessive "+
			"0x00 padding", name)
		return 0, signatureError(codes.tooMuchPadding, str)
	}
	if contents[0] == 0xff && dlen > 1 && contents[1]&0x80 == 0x80 {
		str := fmt.Sprintf("malformed signature: %s integer has excessive "+
			"0xff padding", name)
		return 0, signatureError(codes.tooMuchPadding, str)
	}

	// A set high bit means the integer is negative.  Valid scalars are
	// non-negative, so the value cannot be represented and overflows.
	overflow := contents[0]&0x80 == 0x80

	// Strip the leading zero byte that disambiguates the sign bit, if any,
	// and anything with more than 32 significant bytes necessarily exceeds
	// the group order.
	for len(contents) > 0 && contents[0] == 0x00 {
		contents = contents[1:]
	}
	if len(contents) > 32 {
		overflow = true
	}

	// Interpret the remaining bytes as a big endian scalar which itself may
	// overflow the group order.  Any overflow coerces the result to zero.
	if !overflow {
		var buf [32]byte
		copy(buf[32-len(contents):], contents)
		overflow = out.SetBytes(&buf) != 0
	}
	if overflow {
		out.SetInt(0)
	}

	return idx + dlen, nil
}

// ParseDERSignature parses a signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1] and enforces the following
// additional restrictions specific to secp256k1:
//
//   - The R and S values must be in the valid range for secp256k1 scalars,
//     otherwise they are coerced to the scalar value zero which in turn can
//     never successfully verify
//   - All length identifiers must be encoded minimally and must exactly
//     match the number of bytes of the content they describe, meaning
//     neither truncated signatures nor signatures with trailing bytes are
//     accepted
//   - R and S must be ASN.1 integers without excessive 0x00 or 0xff padding
func ParseDERSignature(sig []byte) (*Signature, error) {
	// The signature must start with the ASN.1 sequence identifier.
	if len(sig) == 0 {
		str := "malformed signature: no sequence identifier"
		return nil, signatureError(ErrSigTooShort, str)
	}
	if sig[0] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: sequence identifier: "+
			"%#x != %#x", sig[0], asn1SequenceID)
		return nil, signatureError(ErrSigInvalidSeqID, str)
	}

	// The sequence length must exactly describe the remaining bytes so both
	// truncated signatures and signatures with trailing bytes are invalid.
	seqLen, idx, err := derReadLen(sig, 1)
	if err != nil {
		return nil, err
	}
	switch {
	case seqLen > len(sig)-idx:
		str := fmt.Sprintf("malformed signature: sequence length %d exceeds "+
			"the %d remaining bytes", seqLen, len(sig)-idx)
		return nil, signatureError(ErrSigInvalidDataLen, str)
	case seqLen < len(sig)-idx:
		str := fmt.Sprintf("malformed signature: %d trailing bytes after "+
			"sequence of length %d", len(sig)-idx-seqLen, seqLen)
		return nil, signatureError(ErrSigTooLong, str)
	}

	// Parse the R and S components of the signature in order.
	var r, s secp256k1.ModNScalar
	idx, err = parseDERInt(sig, idx, "R", &derIntErrorCodesR, &r)
	if err != nil {
		return nil, err
	}
	idx, err = parseDERInt(sig, idx, "S", &derIntErrorCodesS, &s)
	if err != nil {
		return nil, err
	}

	// Both integers together must account for every byte the sequence
	// declared.
	if idx != len(sig) {
		str := fmt.Sprintf("malformed signature: %d trailing bytes inside "+
			"sequence", len(sig)-idx)
		return nil, signatureError(ErrSigInvalidDataLen, str)
	}

	return &Signature{r: r, s: s}, nil
}

// SerializeTo encodes the signature into the passed destination buffer in
// the Distinguished Encoding Rules (DER) format and returns the number of
// bytes written.  The S component of the encoded signature is normalized to
// be at most half the group order since both S and its negation are valid
// modulo the order and validators of canonical signatures require the lower
// of the two.
//
// The number of bytes required to hold the encoded signature is returned in
// all cases.  When the destination buffer is too small to hold it, nothing
// is written and an error with the kind ErrSigBufferTooSmall is returned so
// the caller can retry with a buffer of the reported size.
func (sig *Signature) SerializeTo(dst []byte) (int, error) {
	// The format of a DER encoded signature is as follows:
	//
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	//   - 0x30 is the ASN.1 identifier for a sequence
	//   - Total length is 1 byte and specifies length of all remaining data
	//   - 0x02 is the ASN.1 identifier that specifies an integer follows
	//   - Length of R is 1 byte and specifies how many bytes R occupies
	//   - R is the arbitrary length big-endian encoded number which
	//     represents the R value of the signature.  DER encoding dictates
	//     that the value must be encoded using the minimum possible number
	//     of bytes.  This implies the first byte can only be null if the
	//     highest bit of the next byte is set in order to prevent it from
	//     being interpreted as a negative number.
	//   - 0x02 is once again the ASN.1 integer identifier
	//   - Length of S is 1 byte and specifies how many bytes S occupies
	//   - S is the arbitrary length big-endian encoded number which
	//     represents the S value of the signature.  The encoding rules are
	//     identical as those for R.

	// Ensure the S component of the signature is less than or equal to the
	// half order of the group because both S and its negation are valid
	// signatures modulo the order, so this forces a consistent choice to
	// reduce signature malleability.
	sigS := new(secp256k1.ModNScalar).Set(&sig.s)
	if sigS.IsOverHalfOrder() {
		sigS.Negate()
	}

	// Serialize the R and S components of the signature into their fixed
	// 32-byte big-endian encoding with a leading zero byte that is trimmed
	// below as needed.
	var rBuf, sBuf [33]byte
	sig.r.PutBytesUnchecked(rBuf[1:])
	sigS.PutBytesUnchecked(sBuf[1:])

	// Ensure the encoded bytes for the R and S components are canonical per
	// DER by trimming all leading zero bytes so long as the next byte does
	// not have the high bit set and it's not the final byte.
	canonR, canonS := rBuf[:], sBuf[:]
	for len(canonR) > 1 && canonR[0] == 0x00 && canonR[1]&0x80 == 0 {
		canonR = canonR[1:]
	}
	for len(canonS) > 1 && canonS[0] == 0x00 && canonS[1]&0x80 == 0 {
		canonS = canonS[1:]
	}

	// Total length of the signature is 1 byte for each magic and length (6
	// total), plus lengths of R and S.  Report the required size without
	// writing anything when the destination cannot hold it.
	totalLen := 6 + len(canonR) + len(canonS)
	if len(dst) < totalLen {
		str := fmt.Sprintf("buffer of %d bytes is too small to hold %d byte "+
			"signature", len(dst), totalLen)
		return totalLen, signatureError(ErrSigBufferTooSmall, str)
	}

	dst[0] = asn1SequenceID
	dst[1] = byte(totalLen - 2)
	dst[2] = asn1IntegerID
	dst[3] = byte(len(canonR))
	copy(dst[4:], canonR)
	offset := 4 + len(canonR)
	dst[offset] = asn1IntegerID
	dst[offset+1] = byte(len(canonS))
	copy(dst[offset+2:], canonS)
	return totalLen, nil
}

// Serialize returns the ECDSA signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1] and such that the S
// component of the signature is less than or equal to the half order of the
// group.
//
// Note that the serialized bytes returned do not include the appended hash
// type used in Decred signature scripts.
func (sig *Signature) Serialize() []byte {
	buf := make([]byte, maxSigLen)
	size, _ := sig.SerializeTo(buf)
	return buf[:size]
}

// Verify returns whether or not the signature is valid for the provided hash
// and secp256k1 public key.
func (sig *Signature) Verify(hash []byte, pubKey *secp256k1.PublicKey) bool {
	// The algorithm for verifying an ECDSA signature is given as algorithm
	// 4.30 in [GECC].
	//
	// The following is a paraphrased version for reference:
	//
	// G = curve generator
	// N = group order
	// Q = public key
	// m = message
	// R, S = signature
	//
	// 1. Fail if R and S are not in [1, N-1]
	// 2. e = H(m)
	// 3. w = S^-1 mod N
	// 4. u1 = e * w mod N
	//    u2 = R * w mod N
	// 5. X = u1G + u2Q
	// 6. Fail if X is the point at infinity
	// 7. x = X.x mod N (X.x is the x coordinate of X)
	// 8. Verified if x == R
	//
	// However, since all group operations are done internally in Jacobian
	// projective space, the algorithm is modified slightly here in order to
	// avoid an expensive inversion back into affine coordinates at step 7.
	// Credits to Greg Maxwell for originally suggesting this optimization.
	//
	// Ordinarily, step 7 involves converting the x coordinate to affine by
	// calculating x = X.x / X.z^2.  Consequently, the verification equation
	// in step 8 becomes x == R <=> X.x / X.z^2 == R.  Multiplying both
	// sides by X.z^2 gives X.x == R * X.z^2, which avoids the inversion.
	//
	// There is one complication: R is reduced modulo the group order N while
	// the x coordinate of X lives modulo the field prime P.  Since 2*N > P,
	// there are exactly two field candidates that reduce to any given R: R
	// itself and, when R < P - N, also R + N.  Both must be checked and an
	// implementation that skips the second case will reject a small but
	// nonzero fraction of otherwise valid signatures.

	// Step 1.
	//
	// Fail if R and S are not in [1, N-1].  The signature scalars are
	// already reduced modulo N, so only the zero checks remain.
	if sig.r.IsZero() || sig.s.IsZero() {
		return false
	}

	// Step 2.
	//
	// e = H(m)
	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	// Step 3.
	//
	// w = S^-1 mod N
	//
	// Note that a variable time inversion is used here since the inputs to
	// verification are public values.
	w := new(secp256k1.ModNScalar).InverseValNonConst(&sig.s)

	// Step 4.
	//
	// u1 = e * w mod N
	// u2 = R * w mod N
	u1 := new(secp256k1.ModNScalar).Mul2(&e, w)
	u2 := new(secp256k1.ModNScalar).Mul2(&sig.r, w)

	// Step 5.
	//
	// X = u1G + u2Q
	var X, Q, u1G, u2Q secp256k1.JacobianPoint
	pubKey.AsJacobian(&Q)
	secp256k1.ScalarBaseMultNonConst(u1, &u1G)
	secp256k1.ScalarMultNonConst(u2, &Q, &u2Q)
	secp256k1.AddNonConst(&u1G, &u2Q, &X)

	// Step 6.
	//
	// Fail if X is the point at infinity.
	if (X.X.IsZero() && X.Y.IsZero()) || X.Z.IsZero() {
		return false
	}

	// Steps 7 and 8 modified per the above: verified if
	// R * X.z^2 == X.x (mod P).
	z := new(secp256k1.FieldVal).SquareVal(&X.Z)
	sigRModP := modNScalarToField(&sig.r)
	result := new(secp256k1.FieldVal).Mul2(&sigRModP, z).Normalize()
	if result.Equals(&X.X) {
		return true
	}

	// The second candidate only exists when R + N is still a valid field
	// value, so when R >= P - N there is nothing more to check.
	if sigRModP.IsGtOrEqPrimeMinusOrder() {
		return false
	}

	// Verified if (R + N) * X.z^2 == X.x (mod P).
	sigRModP.Add(orderAsFieldVal)
	result.Mul2(&sigRModP, z).Normalize()
	return result.Equals(&X.X)
}

// sign generates an ECDSA signature over the secp256k1 curve for the
// provided hash (which should be the result of hashing a larger message)
// using the given nonce and private key and returns it along with an
// additional public key recovery code.
//
// Note that the signature is not canonicalized here beyond ensuring the S
// component is at most half the group order.
func sign(privKey, nonce *secp256k1.ModNScalar, hash []byte) (*Signature, byte, error) {
	// The algorithm for producing an ECDSA signature is given as algorithm
	// 4.29 in [GECC] with the modification of accepting the nonce directly
	// rather than generating it:
	//
	// G = curve generator
	// N = group order
	// d = private key
	// m = message
	// r, s = signature
	// k = nonce
	//
	// 1. R = kG
	// 2. r = R.x mod N (R.x is the x coordinate of the point R)
	//    Fail if r = 0
	// 3. e = H(m)
	// 4. s = k^-1(e + dr) mod N
	//    Fail if s = 0
	// 5. Return (r, s)

	// Step 1.
	//
	// R = kG
	var kG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(nonce, &kG)
	kG.ToAffine()

	// Step 2 with a modification to the failure condition.
	//
	// r = R.x mod N
	//
	// A zero r, as well as an R.x that overflows the group order during the
	// reduction, requires choosing a new nonce.  Hitting either case
	// requires finding the discrete log of a point whose x coordinate has a
	// specific form, which is cryptographically negligible (on the order of
	// 1 in 2^128), so reaching this code with such a nonce is caller misuse
	// rather than bad input and is treated as an unrecoverable assertion.
	r, overflow := fieldToModNScalar(&kG.X)
	if overflow != 0 || r.IsZero() {
		panic("the provided nonce yields an unusable signature R component " +
			"and must be regenerated")
	}

	// The public key recovery code packs the overflow of the reduction in
	// step 2 into bit 1 and the oddness of the y coordinate of R into bit 0
	// so the ephemeral point, and from it the public key, can be uniquely
	// reconstructed from the signature later.
	pubKeyRecoveryCode := byte(overflow<<1) | byte(kG.Y.IsOddBit())

	// Step 3.
	//
	// e = H(m)
	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	// Step 4.
	//
	// s = k^-1(e + dr) mod N
	kInv := new(secp256k1.ModNScalar).InverseValNonConst(nonce)
	s := new(secp256k1.ModNScalar).Mul2(&r, privKey).Add(&e).Mul(kInv)

	// The inverse of the nonce is derived from secret material, so zero it
	// out before returning along either path to limit the exposure window.
	kInv.Zero()

	if s.IsZero() {
		str := "calculated S is zero; the nonce must be regenerated"
		return nil, 0, signatureError(ErrSigSIsZero, str)
	}

	// Negate S when it is over the half order of the group so validators of
	// canonical signatures agree on a single form, and flip the oddness bit
	// of the recovery code to compensate since negating S negates the y
	// coordinate of the implied ephemeral point.
	if s.IsOverHalfOrder() {
		s.Negate()
		pubKeyRecoveryCode ^= 0x01
	}

	// Step 5.
	//
	// Return (r, s)
	return &Signature{r: r, s: *s}, pubKeyRecoveryCode, nil
}

// Sign generates an ECDSA signature over the secp256k1 curve for the
// provided hash (which should be the result of hashing a larger message)
// using the given nonce and private key.  It returns the signature along
// with a public key recovery code that allows the public key associated
// with the private key to be reconstructed from the signature and hash via
// RecoverPubkey.
//
// The nonce MUST be generated either cryptographically randomly or via a
// deterministic scheme such as RFC6979 and MUST NOT be reused with the same
// private key for a different hash, since reuse reveals the private key.  A
// nonce whose resulting ephemeral point has an x coordinate that is zero or
// that overflows the group order after reduction cannot produce a
// signature; since such nonces only exist with cryptographically negligible
// probability, encountering one indicates caller misuse and results in a
// panic rather than an error.
//
// An error with the kind ErrSigSIsZero is returned in the similarly
// negligible case that the calculated S component of the signature is zero,
// in which case the caller must generate a new nonce and sign again.
func Sign(privKey *secp256k1.PrivateKey, hash []byte, nonce *secp256k1.ModNScalar) (*Signature, byte, error) {
	return sign(&privKey.Key, nonce, hash)
}

// RecoverPubkey attempts to recover the secp256k1 public key associated with
// the private key that produced the given signature over the provided hash
// using the public key recovery code returned by Sign.
//
// The hash must be exactly the value that was originally signed since the
// recovery process will otherwise succeed for many inputs while producing an
// unrelated key.  Callers are expected to compare the recovered key against
// an expected key or an address derived from it.
func RecoverPubkey(sig *Signature, pubKeyRecoveryCode byte, hash []byte) (*secp256k1.PublicKey, error) {
	// The public key recovery code is two bits: bit 0 specifies the oddness
	// of the y coordinate of the ephemeral point R and bit 1 specifies
	// whether the x coordinate of R overflowed the group order when it was
	// reduced to produce the R component of the signature.
	if pubKeyRecoveryCode > 3 {
		str := fmt.Sprintf("invalid public key recovery code %d",
			pubKeyRecoveryCode)
		return nil, signatureError(ErrSigInvalidRecoveryCode, str)
	}

	// A signature with a zero R or S component never verifies, so there is
	// no key to recover.
	if sig.r.IsZero() {
		str := "signature R is 0"
		return nil, signatureError(ErrSigRIsZero, str)
	}
	if sig.s.IsZero() {
		str := "signature S is 0"
		return nil, signatureError(ErrSigSIsZero, str)
	}

	// Reconstruct the x coordinate of the ephemeral point from the R
	// component, adding back the group order when the recovery code says the
	// original coordinate overflowed it.  In that case R + N must still be a
	// valid field value.
	fieldR := modNScalarToField(&sig.r)
	if pubKeyRecoveryCode&0x02 != 0 {
		if fieldR.IsGtOrEqPrimeMinusOrder() {
			str := "signature R + N >= P"
			return nil, signatureError(ErrSigOverflowsPrime, str)
		}
		fieldR.Add(orderAsFieldVal).Normalize()
	}

	// Reconstruct the full ephemeral point from its x coordinate and the
	// oddness specified by the recovery code.
	oddY := pubKeyRecoveryCode&0x01 != 0
	var y secp256k1.FieldVal
	if !secp256k1.DecompressY(&fieldR, oddY, &y) {
		str := "signature R is not a valid X coordinate on the curve"
		return nil, signatureError(ErrPointNotOnCurve, str)
	}

	var R secp256k1.JacobianPoint
	R.X.Set(&fieldR)
	R.Y.Set(y.Normalize())
	R.Z.SetInt(1)

	// The signature equation s = k^-1(e + dr) mod N rearranges to
	//
	//   Q = dG = r^-1(sR - eG)
	//
	// so the public key is recovered by computing u1 = -e * r^-1 mod N and
	// u2 = s * r^-1 mod N and summing u1G + u2R.
	rInv := new(secp256k1.ModNScalar).InverseValNonConst(&sig.r)
	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)
	u1 := new(secp256k1.ModNScalar).Mul2(&e, rInv).Negate()
	u2 := new(secp256k1.ModNScalar).Mul2(&sig.s, rInv)

	var Q, u1G, u2R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(u1, &u1G)
	secp256k1.ScalarMultNonConst(u2, &R, &u2R)
	secp256k1.AddNonConst(&u1G, &u2R, &Q)

	// The point at infinity is not a valid public key.
	if (Q.X.IsZero() && Q.Y.IsZero()) || Q.Z.IsZero() {
		str := "recovered public key is the point at infinity"
		return nil, signatureError(ErrPointAtInfinity, str)
	}

	Q.ToAffine()
	return secp256k1.NewPublicKey(&Q.X, &Q.Y), nil
}
