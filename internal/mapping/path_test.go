package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
		wantErr  bool
	}{
		{"simple", "Longitude", []string{"Longitude"}, false},
		{"nested", "Obstacles.Obstacles", []string{"Obstacles", "Obstacles"}, false},
		{"deep", "HPAData.PathDetail.SlotList", []string{"HPAData", "PathDetail", "SlotList"}, false},
		{"underscore", "_x1", []string{"_x1"}, false},
		{"empty", "", nil, true},
		{"empty segment", "A..B", nil, true},
		{"trailing dot", "A.", nil, true},
		{"digit first", "1A", nil, true},
		{"slice syntax", "Items[]", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, err := ParsePath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			var names []string
			for _, seg := range fp.Segments {
				names = append(names, seg.Name)
			}

			assert.Equal(t, tt.expected, names)
			assert.Equal(t, tt.path, fp.String())
		})
	}
}

func TestFieldPathHelpers(t *testing.T) {
	fp, err := ParsePath("Position.X")
	require.NoError(t, err)

	assert.False(t, fp.IsSimple())
	assert.Equal(t, "Position", fp.Root())
	assert.Equal(t, "Position", fp.Parent().String())
	assert.True(t, fp.Parent().IsSimple())
	assert.True(t, fp.Parent().Parent().IsEmpty())
}

func TestIsIdent(t *testing.T) {
	assert.True(t, IsIdent("Vector3"))
	assert.True(t, IsIdent("_"))
	assert.False(t, IsIdent(""))
	assert.False(t, IsIdent("3D"))
	assert.False(t, IsIdent("a-b"))
	assert.False(t, IsIdent("Vector3.Zero"))
}
