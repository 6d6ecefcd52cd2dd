package pdf417

import "errors"

var (
	// ErrCapacityExceeded is returned when an append would write past the
	// end of the codeword buffer. The buffer is left as it was before the
	// call.
	ErrCapacityExceeded = errors.New("codeword capacity exceeded")

	// ErrNotEnoughCapacity is returned when no error correction level or
	// symbol size in the search space can hold the data.
	ErrNotEnoughCapacity = errors.New("not enough capacity")

	// ErrInvalidLevel is returned for an error correction level outside 0..8.
	ErrInvalidLevel = errors.New("invalid error correction level")

	// ErrDimensionMismatch is returned when buffer sizes do not agree with
	// the symbol dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNotEncodable is returned when input cannot be represented in the
	// requested compaction mode.
	ErrNotEncodable = errors.New("not encodable")

	// ErrSealed is returned when an encoder is used after it was sealed.
	ErrSealed = errors.New("encoder already sealed")
)
