package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt32(t *testing.T) {
	assert.Equal(t, int32(42), ToInt32(uint32(42)))
	assert.Equal(t, int32(-7), ToInt32(int64(-7)))
	assert.Equal(t, int32(math.MaxInt32), ToInt32(uint32(math.MaxUint32)))
	assert.Equal(t, int32(math.MinInt32), ToInt32(int64(math.MinInt64)))
	assert.Equal(t, int32(3), ToInt32(float32(3.9)))
	assert.Equal(t, int32(0), ToInt32(math.NaN()))
	assert.Equal(t, int32(math.MaxInt32), ToInt32(math.Inf(1)))
}

func TestToUInt64(t *testing.T) {
	assert.Equal(t, uint64(0), ToUInt64(int64(-2)))
	assert.Equal(t, uint64(12), ToUInt64(int32(12)))
	assert.Equal(t, uint64(math.MaxUint64), ToUInt64(uint64(math.MaxUint64)))
	assert.Equal(t, uint64(0), ToUInt64(float32(-1.5)))
	assert.Equal(t, uint64(1500), ToUInt64(1500.7))
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), ToInt64(uint64(math.MaxUint64)))
	assert.Equal(t, int64(-3), ToInt64(int8(-3)))
	assert.Equal(t, int64(math.MinInt64), ToInt64(math.Inf(-1)))
}

func TestToUInt32(t *testing.T) {
	assert.Equal(t, uint32(0), ToUInt32(-1))
	assert.Equal(t, uint32(math.MaxUint32), ToUInt32(uint64(1)<<40))
	assert.Equal(t, uint32(250), ToUInt32(float32(250)))
}
