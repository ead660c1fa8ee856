package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framemap/internal/frame"
	"framemap/internal/model"
)

type item struct {
	f   frame.Frame
	err error
}

func seq(items ...item) iter.Seq2[frame.Frame, error] {
	return func(yield func(frame.Frame, error) bool) {
		for _, it := range items {
			if !yield(it.f, it.err) {
				return
			}
		}
	}
}

func sampleItems() []item {
	c := model.NewCommonData()
	c.EgoPose.Latitude = 31.25
	c.Obstacles.Obstacles = []model.Obstacle{{ID: 3, Type: model.ObjectTypeCar, Position: model.Vector3{X: 1.5}}}

	truncated := fmt.Errorf("%w: line 5", frame.ErrTruncated)

	return []item{
		{f: frame.Frame{Index: 0, Seq: 0, Triplet: frame.Triplet{Timestamp: 1766220393522, Reserved: "0", TypeID: 26, Length: 4}, Data: []byte{1, 2, 3, 4}, Common: c}},
		{f: frame.Frame{Index: 0, Seq: 1, Triplet: frame.Triplet{TypeID: 9999, Length: 2}, Data: []byte{5, 6}}},
		{f: frame.Frame{Index: 1, Seq: 0, Triplet: frame.Triplet{TypeID: 26, Length: 8}, Data: []byte{7}}, err: truncated},
	}
}

func TestWriteRead(t *testing.T) {
	var buf bytes.Buffer

	stats, err := Write(&buf, seq(sampleItems()...))
	require.NoError(t, err)
	assert.Equal(t, Stats{Frames: 3, Decoded: 1, Faults: 1, PayloadBytes: 7}, stats)

	var recs []Record
	for rec, err := range Read(&buf) {
		require.NoError(t, err)
		recs = append(recs, rec)
	}

	require.Len(t, recs, 3)

	first := recs[0].Frame()
	assert.Equal(t, uint64(1766220393522), first.Triplet.Timestamp)
	assert.Equal(t, "0", first.Triplet.Reserved)
	assert.Equal(t, []byte{1, 2, 3, 4}, first.Data)
	require.NotNil(t, first.Common)
	assert.InDelta(t, 31.25, first.Common.EgoPose.Latitude, 0)
	require.Len(t, first.Common.Obstacles.Obstacles, 1)
	assert.Equal(t, model.ObjectTypeCar, first.Common.Obstacles.Obstacles[0].Type)
	assert.InDelta(t, 1.5, first.Common.Obstacles.Obstacles[0].Position.X, 0)

	assert.Nil(t, recs[1].Common)
	assert.Equal(t, 9999, recs[1].TypeID)
	assert.Empty(t, recs[1].Err)

	assert.Equal(t, 1, recs[2].Index)
	assert.Equal(t, 8, recs[2].Length)
	assert.Contains(t, recs[2].Err, "line 5")
}

func TestWrite_Deterministic(t *testing.T) {
	var a, b bytes.Buffer

	_, err := Write(&a, seq(sampleItems()...))
	require.NoError(t, err)
	_, err = Write(&b, seq(sampleItems()...))
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWrite_StopsOnDirectoryError(t *testing.T) {
	var buf bytes.Buffer

	stats, err := Write(&buf, seq(item{err: frame.ErrCountMismatch}))
	require.ErrorIs(t, err, frame.ErrCountMismatch)
	assert.Zero(t, stats.Frames)
}

func TestRead_Empty(t *testing.T) {
	var buf bytes.Buffer

	_, err := Write(&buf, seq())
	require.NoError(t, err)

	n := 0
	for _, err := range Read(&buf) {
		require.NoError(t, err)
		n++
	}

	assert.Zero(t, n)
}

func TestRead_NotSnapshot(t *testing.T) {
	for _, err := range Read(bytes.NewReader([]byte("plain text"))) {
		require.ErrorIs(t, err, ErrNotSnapshot)
	}

	zw, err := zstd.NewWriter(nil)
	require.NoError(t, err)

	other, err := encMode.Marshal(header{Magic: "something-else", Version: 1})
	require.NoError(t, err)

	calls := 0
	for _, err := range Read(bytes.NewReader(zw.EncodeAll(other, nil))) {
		calls++
		require.ErrorIs(t, err, ErrNotSnapshot)
	}

	assert.Equal(t, 1, calls)
}

func TestRead_EarlyBreak(t *testing.T) {
	var buf bytes.Buffer

	_, err := Write(&buf, seq(sampleItems()...))
	require.NoError(t, err)

	n := 0
	for range Read(&buf) {
		n++
		break
	}

	assert.Equal(t, 1, n)
}

func TestRead_Corrupt(t *testing.T) {
	var buf bytes.Buffer

	_, err := Write(&buf, seq(sampleItems()...))
	require.NoError(t, err)

	data := buf.Bytes()
	data = data[:len(data)/2]

	var last error
	for _, err := range Read(bytes.NewReader(data)) {
		if err != nil {
			last = err
		}
	}

	require.Error(t, last)
	assert.False(t, errors.Is(last, frame.ErrTruncated))
}
