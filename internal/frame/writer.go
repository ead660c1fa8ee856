package frame

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// Writer appends frames to one file pair. The descriptor length field is
// always the length of Frame.Data; Triplet.Length is ignored.
type Writer struct {
	index int
	bin   *os.File
	lens  *os.File
	binW  *bufio.Writer
	lenW  *bufio.Writer
	log   zerolog.Logger
	count int
}

// NewWriter creates, or truncates, the file pair with the given index in dir.
func NewWriter(dir string, index int, opts ...Option) (*Writer, error) {
	o := buildOptions(opts)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	bin, err := os.Create(filepath.Join(dir, o.cfg.BinPrefix+strconv.Itoa(index)))
	if err != nil {
		return nil, fmt.Errorf("creating binary file: %w", err)
	}

	lens, err := os.Create(filepath.Join(dir, o.cfg.LenPrefix+strconv.Itoa(index)))
	if err != nil {
		_ = bin.Close()
		return nil, fmt.Errorf("creating descriptor file: %w", err)
	}

	return &Writer{
		index: index,
		bin:   bin,
		lens:  lens,
		binW:  bufio.NewWriter(bin),
		lenW:  bufio.NewWriter(lens),
		log:   o.log,
	}, nil
}

// Write appends f's payload and its descriptor line.
func (w *Writer) Write(f Frame) error {
	if _, err := w.binW.Write(f.Data); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}

	_, err := fmt.Fprintf(w.lenW, "%s,%s,%d,%d\n",
		FormatTimestamp(f.Triplet.Timestamp), reservedOrZero(f.Triplet.Reserved), f.Triplet.TypeID, len(f.Data))
	if err != nil {
		return fmt.Errorf("writing descriptor: %w", err)
	}

	w.count++

	return nil
}

// Close flushes and closes both files.
func (w *Writer) Close() error {
	err := errors.Join(
		w.binW.Flush(),
		w.lenW.Flush(),
		w.bin.Close(),
		w.lens.Close(),
	)

	w.log.Debug().Int("index", w.index).Int("frames", w.count).Msg("file pair written")

	return err
}

// WriteDirectory writes one file pair per map key.
func WriteDirectory(dir string, files map[int][]Frame, opts ...Option) error {
	for idx, frames := range files {
		w, err := NewWriter(dir, idx, opts...)
		if err != nil {
			return err
		}

		for _, f := range frames {
			if err := w.Write(f); err != nil {
				_ = w.Close()
				return fmt.Errorf("index %d: %w", idx, err)
			}
		}

		if err := w.Close(); err != nil {
			return fmt.Errorf("index %d: %w", idx, err)
		}
	}

	return nil
}

func reservedOrZero(s string) string {
	if s == "" {
		return "0"
	}

	return s
}
