package inspect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framemap/internal/frame"
	"framemap/internal/model"
)

func sampleFrame() frame.Frame {
	c := model.NewCommonData()
	c.EgoPose.Speed = 42.5
	c.Obstacles.Obstacles = append(c.Obstacles.Obstacles, model.Obstacle{
		ID:       7,
		Type:     model.ObjectTypeCar,
		Position: model.Vector3{X: 1, Y: 2.5, Z: -3},
	})
	c.TrajectoryPoints.Points = []model.Vector3{{X: 1}, {Y: 2}}
	c.LaneLines.LaneLines = []model.LaneLine{{LineID: 9, LinePoints: []model.Vector3{{X: 4}}}}

	return frame.Frame{
		Index:   2,
		Seq:     5,
		Triplet: frame.Triplet{TypeID: 26},
		Data:    make([]byte, 16),
		Common:  c,
	}
}

func TestBuild(t *testing.T) {
	root := Build(sampleFrame(), "Frame 5")

	assert.Equal(t, "Frame 5", root.Name)
	assert.Equal(t, "type 26, 16 bytes", root.Value)
	assert.Equal(t, "2_5", root.ID)

	speed := root.Find("EgoPose", "Speed")
	require.NotNil(t, speed)
	assert.Equal(t, "42.5000", speed.Value)
	assert.Equal(t, "2_5_EgoPose_Speed", speed.ID)

	obstacles := root.Find("Obstacles")
	require.NotNil(t, obstacles)
	assert.Equal(t, "[1]", obstacles.Value)

	pos := root.Find("Obstacles", "Obstacle_7", "Position")
	require.NotNil(t, pos)
	assert.Equal(t, "(1.00, 2.50, -3.00)", pos.Value)
	assert.Empty(t, pos.Children)

	points := root.Find("TrajectoryPoints")
	require.NotNil(t, points)
	require.Len(t, points.Children, 2)
	assert.Equal(t, "[1]", points.Children[1].Name)
	assert.Equal(t, "(0.00, 2.00, 0.00)", points.Children[1].Value)

	linePoints := root.Find("LaneLines", "LaneLine_9", "LinePoints")
	require.NotNil(t, linePoints)
	assert.Equal(t, "[1]", linePoints.Value)
	require.Len(t, linePoints.Children, 1)

	assert.Nil(t, root.Find("RoadMarkers"), "empty sections are omitted")
	assert.Nil(t, root.Find("ParkingSlots"))
	assert.NotNil(t, root.Find("HPAData", "PathDetail", "SlotList", "Slots"))
	assert.NotNil(t, root.Find("StateInfo"))
}

func TestBuild_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}

	var walk func(n *Node)
	walk = func(n *Node) {
		assert.False(t, seen[n.ID], n.ID)
		seen[n.ID] = true

		for _, c := range n.Children {
			walk(c)
		}
	}

	walk(Build(sampleFrame(), "f"))
}

func TestBuild_Undecoded(t *testing.T) {
	root := Build(frame.Frame{Triplet: frame.Triplet{TypeID: 9999}, Data: []byte{1, 2, 3}}, "raw")

	require.Len(t, root.Children, 1)
	assert.Equal(t, "Raw", root.Children[0].Name)
	assert.Equal(t, "[3 bytes] not decoded", root.Children[0].Value)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, &Node{
		Name: "root",
		Children: []*Node{
			{Name: "a", Value: "1"},
			{Name: "b", Children: []*Node{{Name: "c", Value: "x"}}},
		},
	}))

	assert.Equal(t, "root\n  a: 1\n  b\n    c: x\n", buf.String())
}

func TestDump(t *testing.T) {
	out := Dump(model.Vector3{X: 1})

	assert.Contains(t, out, "model.Vector3")
	assert.Contains(t, out, "X: (float32) 1")
	assert.NotContains(t, out, "0x")
}
