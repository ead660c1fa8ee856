// Package frame reads paired binary/descriptor log directories.
//
// A directory holds binary files named {BinPrefix}{n} and descriptor files
// named {LenPrefix}{n}. Every non-blank descriptor line describes one frame:
//
//	2025-12-20-16:46:33:522,0,26,1024
//
// that is timestamp, a reserved field, the frame type id and the payload
// length. Payloads are stored back to back in the binary file of the same
// index, in descriptor line order.
//
// Reader streams frames lazily through range-over-func iterators and hands
// each payload to a Decoder; Load materializes a whole directory.
package frame
