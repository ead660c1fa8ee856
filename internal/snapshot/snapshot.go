// Package snapshot exports decoded frames as a zstd-compressed stream of
// CBOR records.
//
// A snapshot starts with a header item followed by one Record per frame.
// Records use Core Deterministic Encoding, so exporting the same frames
// twice produces identical bytes.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"

	"framemap/internal/frame"
	"framemap/internal/model"
)

const (
	magic   = "framemap-snapshot"
	version = 1
)

var ErrNotSnapshot = errors.New("snapshot: not a framemap snapshot")

type header struct {
	Magic   string `cbor:"1,keyasint"`
	Version int    `cbor:"2,keyasint"`
}

// Record is one exported frame. Err holds the text of a truncation or size
// fault; Data is then the partial payload.
type Record struct {
	Index     int               `cbor:"1,keyasint"`
	Seq       int               `cbor:"2,keyasint"`
	Timestamp uint64            `cbor:"3,keyasint"`
	Reserved  string            `cbor:"4,keyasint,omitempty"`
	TypeID    int               `cbor:"5,keyasint"`
	Length    int               `cbor:"6,keyasint"`
	Data      []byte            `cbor:"7,keyasint"`
	Common    *model.CommonData `cbor:"8,keyasint,omitempty"`
	Err       string            `cbor:"9,keyasint,omitempty"`
}

// Frame converts r back into a frame.Frame.
func (r Record) Frame() frame.Frame {
	return frame.Frame{
		Index: r.Index,
		Seq:   r.Seq,
		Triplet: frame.Triplet{
			Timestamp: r.Timestamp,
			Reserved:  r.Reserved,
			TypeID:    r.TypeID,
			Length:    r.Length,
		},
		Data:   r.Data,
		Common: r.Common,
	}
}

// Stats summarizes a Write call.
type Stats struct {
	Frames       int
	Decoded      int
	Faults       int
	PayloadBytes int64
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("snapshot: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("snapshot: CBOR decoder initialization failed: " + err.Error())
	}
}

// Write encodes every frame of frames into w. Truncated and oversized
// frames are recorded with their error text; any other error stops the
// export and is returned.
func Write(w io.Writer, frames iter.Seq2[frame.Frame, error]) (Stats, error) {
	var stats Stats

	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return stats, fmt.Errorf("snapshot: zstd writer: %w", err)
	}

	enc := encMode.NewEncoder(zw)

	if err := enc.Encode(header{Magic: magic, Version: version}); err != nil {
		_ = zw.Close()
		return stats, fmt.Errorf("snapshot: writing header: %w", err)
	}

	for f, ferr := range frames {
		if ferr != nil && !recordable(ferr) {
			_ = zw.Close()
			return stats, ferr
		}

		rec := Record{
			Index:     f.Index,
			Seq:       f.Seq,
			Timestamp: f.Triplet.Timestamp,
			Reserved:  f.Triplet.Reserved,
			TypeID:    f.Triplet.TypeID,
			Length:    f.Triplet.Length,
			Data:      f.Data,
			Common:    f.Common,
		}

		if ferr != nil {
			rec.Err = ferr.Error()
			stats.Faults++
		}

		if err := enc.Encode(rec); err != nil {
			_ = zw.Close()
			return stats, fmt.Errorf("snapshot: writing frame %d/%d: %w", f.Index, f.Seq, err)
		}

		stats.Frames++
		stats.PayloadBytes += int64(len(f.Data))

		if f.Common != nil {
			stats.Decoded++
		}
	}

	if err := zw.Close(); err != nil {
		return stats, fmt.Errorf("snapshot: flushing: %w", err)
	}

	return stats, nil
}

func recordable(err error) bool {
	return errors.Is(err, frame.ErrTruncated) || errors.Is(err, frame.ErrFrameTooLarge)
}

// Read yields the records of a snapshot in write order. A damaged stream
// yields one error and ends the sequence.
func Read(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			yield(Record{}, fmt.Errorf("%w: %w", ErrNotSnapshot, err))
			return
		}
		defer zr.Close()

		dec := decMode.NewDecoder(zr)

		var h header
		if err := dec.Decode(&h); err != nil {
			yield(Record{}, fmt.Errorf("%w: %w", ErrNotSnapshot, err))
			return
		}

		if h.Magic != magic {
			yield(Record{}, ErrNotSnapshot)
			return
		}

		if h.Version != version {
			yield(Record{}, fmt.Errorf("snapshot: unsupported version %d", h.Version))
			return
		}

		for {
			var rec Record

			err := dec.Decode(&rec)
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(Record{}, fmt.Errorf("snapshot: reading record: %w", err))
				return
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}
