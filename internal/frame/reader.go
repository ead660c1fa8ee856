package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"framemap/internal/model"
)

// Decoder turns a frame payload into the normalized model. It reports false
// for unknown type ids and undecodable payloads.
type Decoder interface {
	Decode(typeID int, data []byte) (*model.CommonData, bool)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(typeID int, data []byte) (*model.CommonData, bool)

func (f DecoderFunc) Decode(typeID int, data []byte) (*model.CommonData, bool) {
	return f(typeID, data)
}

// Frame is one descriptor line together with its payload.
type Frame struct {
	// Index is the numeric suffix of the file pair.
	Index int
	// Seq is the ordinal of the frame among the valid lines of its file.
	Seq     int
	Triplet Triplet
	Data    []byte
	// Common is nil when the type id is unknown or decoding failed.
	Common *model.CommonData
}

// FileData holds the frames of one file pair.
type FileData struct {
	Index  int
	Frames []Frame
	// Skipped lists descriptor lines that were ignored.
	Skipped []LineError
	// Err is a truncation or I/O fault that ended the file early.
	Err error
}

// Directory is an eagerly loaded log directory keyed by file index.
type Directory struct {
	Path  string
	Files map[int]*FileData
}

// Option configures a Reader or Writer.
type Option func(*options)

type options struct {
	cfg Config
	log zerolog.Logger
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLogger sets the logger for skipped lines, missing pairs and trailing
// bytes. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func buildOptions(opts []Option) options {
	o := options{cfg: DefaultConfig(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.cfg.MaxFrameBytes <= 0 {
		o.cfg.MaxFrameBytes = DefaultMaxFrameBytes
	}

	return o
}

// Reader iterates the frames of one directory. Iterators may be ranged over
// repeatedly; each pass rescans the directory. A Reader must not be ranged
// over from two goroutines at once.
type Reader struct {
	dir string
	dec Decoder
	options
}

// NewReader returns a Reader for dir. A nil dec leaves Frame.Common nil.
func NewReader(dir string, dec Decoder, opts ...Option) *Reader {
	return &Reader{dir: dir, dec: dec, options: buildOptions(opts)}
}

// Frames yields every frame of the directory in index and line order.
//
// A directory-level fault (ErrDirNotFound, ErrCountMismatch, ErrNoIndex) is
// yielded once with a zero Frame and ends the sequence. A truncated frame is
// yielded with the bytes that were available and an error wrapping
// ErrTruncated; iteration then moves on to the next index.
func (r *Reader) Frames() iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		first, count, err := r.scan()
		if err != nil {
			yield(Frame{}, err)
			return
		}

		for idx := first; idx < first+count; idx++ {
			if !r.paired(idx) {
				r.log.Debug().Int("index", idx).Msg("skipping incomplete file pair")
				continue
			}

			if !r.readPair(idx, nil, yield) {
				return
			}
		}
	}
}

// Files yields one FileData per present file pair. Directory-level faults
// are yielded once with a nil FileData. A fault within one pair is stored in
// FileData.Err and yielded alongside it.
func (r *Reader) Files() iter.Seq2[*FileData, error] {
	return func(yield func(*FileData, error) bool) {
		first, count, err := r.scan()
		if err != nil {
			yield(nil, err)
			return
		}

		for idx := first; idx < first+count; idx++ {
			if !r.paired(idx) {
				r.log.Debug().Int("index", idx).Msg("skipping incomplete file pair")
				continue
			}

			fd := &FileData{Index: idx, Frames: []Frame{}}
			r.readPair(idx, &fd.Skipped, func(f Frame, err error) bool {
				if err != nil {
					fd.Err = err
					return true
				}

				fd.Frames = append(fd.Frames, f)

				return true
			})

			if !yield(fd, fd.Err) {
				return
			}
		}
	}
}

// Load reads the whole directory. Only directory-level faults are returned;
// per-file faults are kept in FileData.Err.
func Load(dir string, dec Decoder, opts ...Option) (*Directory, error) {
	out := &Directory{Path: dir, Files: map[int]*FileData{}}

	for fd, err := range NewReader(dir, dec, opts...).Files() {
		if fd == nil {
			return nil, err
		}

		out.Files[fd.Index] = fd
	}

	return out, nil
}

func (r *Reader) binPath(idx int) string {
	return filepath.Join(r.dir, r.cfg.BinPrefix+strconv.Itoa(idx))
}

func (r *Reader) lenPath(idx int) string {
	return filepath.Join(r.dir, r.cfg.LenPrefix+strconv.Itoa(idx))
}

func (r *Reader) paired(idx int) bool {
	return isFile(r.binPath(idx)) && isFile(r.lenPath(idx))
}

// scan counts the indexed files of both kinds and finds the lowest binary
// index.
func (r *Reader) scan() (first, count int, err error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return 0, 0, fmt.Errorf("%w: %s", ErrDirNotFound, r.dir)
		}

		return 0, 0, fmt.Errorf("reading %s: %w", r.dir, err)
	}

	var (
		bins, lens int
		found      bool
	)

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		if _, ok := indexSuffix(name, r.cfg.LenPrefix); ok {
			lens++

			continue
		}

		suffix, ok := indexSuffix(name, r.cfg.BinPrefix)
		if !ok {
			continue
		}

		bins++

		if idx, err := strconv.Atoi(suffix); err == nil && (!found || idx < first) {
			first, found = idx, true
		}
	}

	if bins != lens || bins == 0 {
		return 0, 0, fmt.Errorf("%w: %d binary, %d descriptor", ErrCountMismatch, bins, lens)
	}

	if !found {
		return 0, 0, ErrNoIndex
	}

	return first, bins, nil
}

// readPair streams the frames of one file pair into yield and stores the
// ignored descriptor lines in skippedOut when it is non-nil. It returns false
// when the consumer stopped.
func (r *Reader) readPair(idx int, skippedOut *[]LineError, yield func(Frame, error) bool) bool {
	binPath, lenPath := r.binPath(idx), r.lenPath(idx)

	triplets, skipped, err := ParseDescriptorFile(lenPath)
	if err != nil {
		return yield(Frame{Index: idx}, err)
	}

	if skippedOut != nil {
		*skippedOut = skipped
	}

	for _, le := range skipped {
		r.log.Debug().Int("index", idx).Int("line", le.Line).Err(le.Err).Msg("skipping descriptor line")
	}

	f, err := os.Open(binPath)
	if err != nil {
		return yield(Frame{Index: idx}, fmt.Errorf("opening binary: %w", err))
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return yield(Frame{Index: idx}, fmt.Errorf("stat binary: %w", err))
	}

	size := st.Size()
	br := bufio.NewReader(f)

	var consumed int64

	for seq, t := range triplets {
		fr := Frame{Index: idx, Seq: seq, Triplet: t}

		if t.Length > r.cfg.MaxFrameBytes {
			return yield(fr, fmt.Errorf("%w: %s line %d declares %d bytes, limit %d",
				ErrFrameTooLarge, filepath.Base(lenPath), t.Line, t.Length, r.cfg.MaxFrameBytes))
		}

		// Only the bytes the file still holds are allocated for a short frame.
		want := int64(t.Length)
		if left := size - consumed; want > left {
			want = max(left, 0)
		}

		data := make([]byte, want)

		n, err := io.ReadFull(br, data)
		if err == nil && want < int64(t.Length) {
			err = io.ErrUnexpectedEOF
		}

		consumed += int64(n)

		if err != nil {
			if !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
				return yield(fr, fmt.Errorf("reading %s: %w", filepath.Base(binPath), err))
			}

			fr.Data = data[:n]

			return yield(fr, fmt.Errorf("%w: %s line %d declares %d bytes, %d left: %w",
				ErrTruncated, filepath.Base(lenPath), t.Line, t.Length, n, io.ErrUnexpectedEOF))
		}

		fr.Data = data
		if r.dec != nil {
			fr.Common, _ = r.dec.Decode(t.TypeID, data)
		}

		if !yield(fr, nil) {
			return false
		}
	}

	if size > consumed {
		r.log.Warn().Int("index", idx).Int64("trailing", size-consumed).Msg("binary file has unread trailing bytes")
	}

	return true
}

// indexSuffix reports the digits following prefix in name.
func indexSuffix(name, prefix string) (string, bool) {
	suffix, ok := strings.CutPrefix(name, prefix)
	if !ok || suffix == "" {
		return "", false
	}

	for _, c := range suffix {
		if c < '0' || c > '9' {
			return "", false
		}
	}

	return suffix, true
}

func isFile(path string) bool {
	st, err := os.Stat(path)

	return err == nil && st.Mode().IsRegular()
}
