package hamming

// Errors
var (
	ErrInvalidRedundancy = &CodecError{"invalid redundancy level"}
	ErrLengthMismatch    = &CodecError{"length mismatch"}
	ErrInvalidBit        = &CodecError{"invalid bit value"}
)

// CodecError represents a codec contract violation
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
