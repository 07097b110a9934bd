package animfile

import "errors"

var (
	// ErrStreamOpen means the file could not be opened for reading or writing.
	ErrStreamOpen = errors.New("animfile: stream could not be opened")
	// ErrTruncated means the stream ended before a field was fully read.
	ErrTruncated = errors.New("animfile: truncated catalog")
	// ErrMalformed means a length or count prefix is negative.
	ErrMalformed = errors.New("animfile: malformed catalog")
	// ErrPointerResolution means a pointer file does not lead to a readable
	// binary catalog.
	ErrPointerResolution = errors.New("animfile: pointer file does not resolve")
)
