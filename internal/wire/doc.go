// Package wire holds the SR_Info message family as it appears in sensing-stack
// logs: protobuf-encoded records, one per frame.
//
// The codecs are written against protowire rather than protoc output so the
// message set stays small and dependency-free at runtime. Encoding follows
// proto3 rules: zero scalars and nil messages are omitted, unknown fields are
// skipped on decode.
package wire
