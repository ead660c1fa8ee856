package wire

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrWireType is returned when a known field arrives with an unexpected wire type.
var ErrWireType = errors.New("wire: unexpected wire type")

// Message is implemented by every type in this package.
type Message interface {
	Marshal() []byte
	Unmarshal(b []byte) error
}

// fieldFunc consumes the value of one field and returns the bytes used.
// Returning -1 means the field is unknown and should be skipped.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// decodeFields walks every field of one encoded message.
func decodeFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("wire: tag: %w", protowire.ParseError(n))
		}

		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("wire: field %d: %w", num, err)
		}

		if m < 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("wire: field %d: %w", num, protowire.ParseError(m))
			}
		}

		b = b[m:]
	}

	return nil
}

func expect(typ, want protowire.Type) error {
	if typ != want {
		return fmt.Errorf("%w: got %d, want %d", ErrWireType, typ, want)
	}

	return nil
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, error) {
	if err := expect(typ, protowire.VarintType); err != nil {
		return 0, 0, err
	}

	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}

	return v, n, nil
}

func consumeUint32(typ protowire.Type, b []byte, dst *uint32) (int, error) {
	v, n, err := consumeVarint(typ, b)
	*dst = uint32(v)

	return n, err
}

func consumeUint64(typ protowire.Type, b []byte, dst *uint64) (int, error) {
	v, n, err := consumeVarint(typ, b)
	*dst = v

	return n, err
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, error) {
	v, n, err := consumeVarint(typ, b)
	*dst = int64(v)

	return n, err
}

func consumeFloat(typ protowire.Type, b []byte, dst *float32) (int, error) {
	if err := expect(typ, protowire.Fixed32Type); err != nil {
		return 0, err
	}

	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	*dst = math.Float32frombits(v)

	return n, nil
}

func consumeDouble(typ protowire.Type, b []byte, dst *float64) (int, error) {
	if err := expect(typ, protowire.Fixed64Type); err != nil {
		return 0, err
	}

	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	*dst = math.Float64frombits(v)

	return n, nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	if err := expect(typ, protowire.BytesType); err != nil {
		return 0, err
	}

	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	*dst = string(v)

	return n, nil
}

// consumeMessage decodes one embedded message into m.
func consumeMessage(typ protowire.Type, b []byte, m Message) (int, error) {
	if err := expect(typ, protowire.BytesType); err != nil {
		return 0, err
	}

	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	if err := m.Unmarshal(v); err != nil {
		return 0, err
	}

	return n, nil
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.VarintType)

	return protowire.AppendVarint(b, uint64(v))
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.VarintType)

	return protowire.AppendVarint(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendUint64(b, num, uint64(v))
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 && !math.Signbit(float64(v)) {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.Fixed32Type)

	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 && !math.Signbit(v) {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.Fixed64Type)

	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)

	return protowire.AppendString(b, v)
}

// appendMessage writes m as an embedded message. A nil m is omitted; callers
// pass typed nils through isNil since Message is an interface.
func appendMessage(b []byte, num protowire.Number, m Message, isNil bool) []byte {
	if isNil {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)

	return protowire.AppendBytes(b, m.Marshal())
}

// consumeItem decodes one element of a repeated message field and appends it.
func consumeItem[T any, P interface {
	*T
	Message
}](typ protowire.Type, b []byte, dst *[]*T) (int, error) {
	item := P(new(T))
	n, err := consumeMessage(typ, b, item)
	if err != nil {
		return 0, err
	}

	*dst = append(*dst, (*T)(item))

	return n, nil
}

// appendItems writes every element of a repeated message field. Nil elements
// are encoded as empty messages so element positions survive a round trip.
func appendItems[T any, P interface {
	*T
	Message
}](b []byte, num protowire.Number, items []*T) []byte {
	for _, item := range items {
		if item == nil {
			item = new(T)
		}

		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, P(item).Marshal())
	}

	return b
}
