// Package errs defines the sentinel errors returned by intpack.
//
// Operations wrap these sentinels with additional context, so callers should match
// them with errors.Is rather than by equality.
package errs

import "errors"

// Codec errors.
var (
	// ErrInvalidArgument is returned for empty input, zero output capacity or an
	// out-of-range configuration value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCapacityExceeded is returned when the output buffer cannot hold the encoded stream.
	// It is detected before anything is written to the caller's buffer.
	ErrCapacityExceeded = errors.New("output capacity exceeded")

	// ErrFormatMismatch is returned when a stream does not contain the number of values
	// the caller expects.
	ErrFormatMismatch = errors.New("encoded stream does not match expected value count")

	// ErrUnknownCodec is returned when a codec identifier has no registered implementation.
	ErrUnknownCodec = errors.New("unknown codec")
)

// Container errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidMagic          = errors.New("invalid magic number")
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	ErrChecksumMismatch      = errors.New("payload checksum mismatch")
	ErrListNotIncreasing     = errors.New("posting list must be strictly increasing")
	ErrInvalidListIndex      = errors.New("list index out of range")
	ErrEncoderFinished       = errors.New("encoder already finished")
	ErrPayloadSizeMismatch   = errors.New("decompressed payload size mismatch")
)
