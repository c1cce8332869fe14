// Copyright (c) 2020-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
)

// ErrorCode identifies a kind of signature error.  It has full support
// for errors.Is and errors.As, so the caller can directly check against an
// error code when determining the reason for an error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrSigTooShort is returned when a signature that should be a DER
	// signature runs out of bytes before a required ASN.1 identifier or
	// length octet.
	ErrSigTooShort ErrorCode = iota

	// ErrSigTooLong is returned when a signature that should be a DER
	// signature has trailing bytes after the ASN.1 sequence.
	ErrSigTooLong

	// ErrSigInvalidSeqID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 sequence ID.
	ErrSigInvalidSeqID

	// ErrSigInvalidLength is returned when a signature that should be a DER
	// signature contains malformed ASN.1 length octets.  That includes the
	// reserved length octet 0xff, the indefinite form 0x80, long form
	// encodings that are not minimal, and length octet counts that exceed
	// the width of the native integer type.
	ErrSigInvalidLength

	// ErrSigInvalidDataLen is returned when a signature that should be a DER
	// signature specifies a length that does not match the number of bytes
	// actually available.
	ErrSigInvalidDataLen

	// ErrSigInvalidRIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for R.
	ErrSigInvalidRIntID

	// ErrSigZeroRLen is returned when a signature that should be a DER
	// signature has an R length of zero.
	ErrSigZeroRLen

	// ErrSigInvalidRLen is returned when a signature that should be a DER
	// signature specifies a length for R that exceeds the remaining bytes.
	ErrSigInvalidRLen

	// ErrSigTooMuchRPadding is returned when a signature that should be a DER
	// signature has excessive leading 0x00 or 0xff padding for R.
	ErrSigTooMuchRPadding

	// ErrSigInvalidSIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for S.
	ErrSigInvalidSIntID

	// ErrSigZeroSLen is returned when a signature that should be a DER
	// signature has an S length of zero.
	ErrSigZeroSLen

	// ErrSigInvalidSLen is returned when a signature that should be a DER
	// signature specifies a length for S that exceeds the remaining bytes.
	ErrSigInvalidSLen

	// ErrSigTooMuchSPadding is returned when a signature that should be a DER
	// signature has excessive leading 0x00 or 0xff padding for S.
	ErrSigTooMuchSPadding

	// ErrSigBufferTooSmall is returned when the destination buffer provided
	// for a serialized signature is too small to hold it.  The serialization
	// function reports the required size alongside this error.
	ErrSigBufferTooSmall

	// ErrSigSIsZero is returned when the calculated S component of a
	// signature is zero.  This means the caller must provide a different
	// nonce and try again.
	ErrSigSIsZero

	// ErrSigRIsZero is returned when attempting to recover a public key from
	// a signature that has R set to the value zero.
	ErrSigRIsZero

	// ErrSigInvalidRecoveryCode is returned when the public key recovery
	// code associated with a signature is not in the supported range.
	ErrSigInvalidRecoveryCode

	// ErrSigOverflowsPrime is returned when the recovery code associated
	// with a signature indicates the X coordinate of the ephemeral point
	// overflowed the group order, but adding the order to R would exceed the
	// underlying field prime.
	ErrSigOverflowsPrime

	// ErrPointNotOnCurve is returned when attempting to recover a public key
	// from a signature whose implied X coordinate is not on the curve.
	ErrPointNotOnCurve

	// ErrPointAtInfinity is returned when attempting to recover a public key
	// from a signature and the recovered point is the point at infinity.
	ErrPointAtInfinity

	// numSigErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numSigErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrSigTooShort:            "ErrSigTooShort",
	ErrSigTooLong:             "ErrSigTooLong",
	ErrSigInvalidSeqID:        "ErrSigInvalidSeqID",
	ErrSigInvalidLength:       "ErrSigInvalidLength",
	ErrSigInvalidDataLen:      "ErrSigInvalidDataLen",
	ErrSigInvalidRIntID:       "ErrSigInvalidRIntID",
	ErrSigZeroRLen:            "ErrSigZeroRLen",
	ErrSigInvalidRLen:         "ErrSigInvalidRLen",
	ErrSigTooMuchRPadding:     "ErrSigTooMuchRPadding",
	ErrSigInvalidSIntID:       "ErrSigInvalidSIntID",
	ErrSigZeroSLen:            "ErrSigZeroSLen",
	ErrSigInvalidSLen:         "ErrSigInvalidSLen",
	ErrSigTooMuchSPadding:     "ErrSigTooMuchSPadding",
	ErrSigBufferTooSmall:      "ErrSigBufferTooSmall",
	ErrSigSIsZero:             "ErrSigSIsZero",
	ErrSigRIsZero:             "ErrSigRIsZero",
	ErrSigInvalidRecoveryCode: "ErrSigInvalidRecoveryCode",
	ErrSigOverflowsPrime:      "ErrSigOverflowsPrime",
	ErrPointNotOnCurve:        "ErrPointNotOnCurve",
	ErrPointAtInfinity:        "ErrPointAtInfinity",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error implements the error interface.
func (e ErrorCode) Error() string {
	return e.String()
}

// Is implements the interface to work with the standard library's errors.Is.
//
// It returns true in the following cases:
// - The target is a Error and the error codes match
// - The target is a ErrorCode and the error codes match
func (e ErrorCode) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e == target.ErrorCode

	case ErrorCode:
		return e == target
	}

	return false
}

// Error identifies a signature-related error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error code.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library's errors.Is.
//
// It returns true in the following cases:
// - The target is a Error and the error codes match
// - The target is a ErrorCode and it the error codes match
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e.ErrorCode == target.ErrorCode

	case ErrorCode:
		return target == e.ErrorCode
	}

	return false
}

// Unwrap returns the underlying wrapped error code.
func (e Error) Unwrap() error {
	return e.ErrorCode
}

// signatureError creates a Error given a set of arguments.
func signatureError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
