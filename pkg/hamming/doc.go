// Package hamming provides an extended Hamming SECDED codec.
//
// The codec turns a fixed-length message of bits into a larger block carrying
// redundancy, and recovers the message from a possibly-corrupted block. Any
// single-bit error is corrected and any double-bit error is detected.
//
// # Block Format
//
// A codec is configured with a redundancy level m (the number of Hamming
// parity bits, excluding the overall parity bit). Blocks are n = 2^m bits long
// and carry k = n - m - 1 message bits:
//
//	position 0        overall (SECDED) parity bit
//	position 2^i      Hamming parity bit i, for i in [0, m)
//	everything else   message bits, lowest index first
//
// For m = 3 an 8-bit block looks like:
//
//	[P0][P1][P2][D0][P4][D1][D2][D3]
//
// # Parity Coverage
//
// Parity bit i (stored at position 2^i) covers every position whose index has
// the bit of weight 2^i set, including its own position. After encoding every
// coverage set has even parity, so on decode the parities of the coverage sets
// spell out the index of a single flipped bit. The overall parity bit at
// position 0 makes the whole block even, which separates single errors (odd
// block) from double errors (even block with a non-zero syndrome).
//
// # Usage
//
//	codec, err := hamming.New(4)
//	if err != nil {
//	    return err
//	}
//
//	block, err := codec.Encode(message) // len(message) == codec.MessageLen()
//	if err != nil {
//	    return err
//	}
//
//	res, err := codec.Decode(block)
//	if err != nil {
//	    return err // wrong length or non-binary input
//	}
//	if !res.Valid {
//	    return errRetransmit // double-bit error detected
//	}
//
// # Error Handling
//
// Construction fails with ErrInvalidRedundancy for m outside [2, MaxParityBits].
// Encode and Decode fail with ErrLengthMismatch for wrongly sized input and
// ErrInvalidBit for elements other than 0 or 1. A corrupted but correctly
// sized block is never an error: it is reported through Result.Valid and
// Result.Corrected.
//
// # Thread Safety
//
// Codec instances are immutable after New and safe for concurrent use. Encode
// and Decode never modify their arguments.
package hamming
