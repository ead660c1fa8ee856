// Package router dispatches raw frame payloads to per-type decoders.
package router

import (
	"errors"
	"fmt"
	"sort"

	"framemap/internal/model"
)

// ErrDuplicateID is returned when a type id is registered twice.
var ErrDuplicateID = errors.New("router: duplicate type id")

// DecodeFunc parses one payload. It returns false when the bytes are not a
// valid record of its type.
type DecodeFunc func(data []byte) (*model.CommonData, bool)

// Table maps type ids to decoders. The zero value is not usable; call NewTable.
// A Table is safe for concurrent Decode calls once registration is finished.
type Table struct {
	decoders map[int]DecodeFunc
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{decoders: make(map[int]DecodeFunc)}
}

// Register installs fn for id.
func (t *Table) Register(id int, fn DecodeFunc) error {
	if fn == nil {
		return fmt.Errorf("router: nil decoder for type id %d", id)
	}

	if _, ok := t.decoders[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	t.decoders[id] = fn

	return nil
}

// RegisterAll installs every entry of fns in ascending id order. It stops at
// the first failure; entries registered before it stay in place.
func (t *Table) RegisterAll(fns map[int]DecodeFunc) error {
	ids := make([]int, 0, len(fns))
	for id := range fns {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	for _, id := range ids {
		if err := t.Register(id, fns[id]); err != nil {
			return err
		}
	}

	return nil
}

// Decode routes data to the decoder registered for id. Unknown ids, decode
// failures and panicking decoders all report (nil, false).
func (t *Table) Decode(id int, data []byte) (out *model.CommonData, ok bool) {
	fn, found := t.decoders[id]
	if !found {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			out, ok = nil, false
		}
	}()

	out, ok = fn(data)
	if !ok {
		return nil, false
	}

	return out, true
}

// Has reports whether a decoder is registered for id.
func (t *Table) Has(id int) bool {
	_, ok := t.decoders[id]

	return ok
}

// IDs returns the registered type ids in ascending order.
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.decoders))
	for id := range t.decoders {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids
}
