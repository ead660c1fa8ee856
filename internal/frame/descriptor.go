package frame

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const maxLineBytes = 1 << 20

// Triplet is one parsed descriptor line.
type Triplet struct {
	// Timestamp is Unix milliseconds, 0 when the field is unparseable.
	Timestamp uint64
	// Reserved is the second field, kept verbatim.
	Reserved string
	TypeID   int
	Length   int
	// Line is the 1-based line number in the descriptor file.
	Line int
}

// ParseDescriptors reads descriptor lines from r. Blank lines are ignored.
// Lines with fewer than four fields, or a non-numeric or negative type id
// or length, are skipped and reported. A UTF-8 or UTF-16 byte order mark is
// honored.
func ParseDescriptors(r io.Reader) ([]Triplet, []LineError) {
	var (
		triplets []Triplet
		skipped  []LineError
	)

	sc := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		t, err := parseLine(text)
		if err != nil {
			skipped = append(skipped, LineError{Line: line, Text: text, Err: err})
			continue
		}

		t.Line = line
		triplets = append(triplets, t)
	}

	if err := sc.Err(); err != nil {
		skipped = append(skipped, LineError{Line: line + 1, Err: err})
	}

	return triplets, skipped
}

// ParseDescriptorFile parses the descriptor file at path.
func ParseDescriptorFile(path string) ([]Triplet, []LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening descriptor: %w", err)
	}
	defer f.Close()

	triplets, skipped := ParseDescriptors(f)

	return triplets, skipped, nil
}

func parseLine(text string) (Triplet, error) {
	parts := strings.Split(text, ",")
	if len(parts) < 4 {
		return Triplet{}, fmt.Errorf("%w: %d fields, want at least 4", ErrBadLine, len(parts))
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		return Triplet{}, fmt.Errorf("%w: type id %q", ErrBadLine, parts[2])
	}

	length, err := strconv.Atoi(parts[3])
	if err != nil || length < 0 {
		return Triplet{}, fmt.Errorf("%w: length %q", ErrBadLine, parts[3])
	}

	ts, _ := ParseTimestamp(parts[0])

	return Triplet{Timestamp: ts, Reserved: parts[1], TypeID: id, Length: length}, nil
}
