package x86dec

import (
	"errors"
	"strconv"
)

// Decode errors form a closed set. Every failure returned by this package
// wraps exactly one of these sentinels; callers dispatch with errors.Is.
var (
	// ErrInvalidEncoding reports that no instruction definition matches the
	// byte/mode/prefix combination (genuinely undefined opcode space).
	ErrInvalidEncoding = errors.New("x86dec: invalid encoding")

	// ErrBufferTooSmall reports that a matching definition exists but the
	// supplied buffer ends before the encoding is complete. Decoding may
	// succeed if the caller retries with more bytes.
	ErrBufferTooSmall = errors.New("x86dec: buffer too small")

	// ErrLengthExceeded reports that the instruction would exceed the
	// architectural 15-byte limit, even though every field is otherwise valid.
	ErrLengthExceeded = errors.New("x86dec: 15-byte length exceeded")
)

// DecodeError carries the failing byte offset along with the sentinel.
type DecodeError struct {
	Off int   // offset into the input buffer at which decoding failed
	Err error // one of ErrInvalidEncoding, ErrBufferTooSmall, ErrLengthExceeded
}

func (e *DecodeError) Error() string {
	return e.Err.Error() + " at offset " + strconv.Itoa(e.Off)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(off int, sentinel error) error {
	return &DecodeError{Off: off, Err: sentinel}
}
