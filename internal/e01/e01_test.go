package e01

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"framemap/internal/model"
	"framemap/internal/router"
	"framemap/internal/wire"
)

func sampleSRInfo() *wire.SRInfo {
	return &wire.SRInfo{
		EgoPose: &wire.EgoPose{Longitude: 121.47, Latitude: 31.23, Altitude: 4, Heading: 1.5, Speed: 42, TimestampMs: 1000},
		LaneLines: &wire.LaneLineArray{LaneLines: []*wire.LaneLine{
			{LineIndex: 1, LineID: 77, LineColor: 2, LineType: 1, C0: 1.75,
				LinePoints: []*wire.LinePoint{{X: 100, Y: 200}, nil, {X: 300, Y: 400, Z: 50}}},
		}},
		DynamicObjects: &wire.DynamicObjectArray{Objects: []*wire.DynamicObject{
			{ID: 3, Type: 0x03, PosX: 1200, VelX: -50, Length: 450, LightStatus: 4, Timestamp: 1700000000000, LaneID: -2},
			{ID: 4, Type: 0x99},
		}},
		StaticObjects: &wire.StaticObjectArray{Objects: []*wire.StaticObject{{ID: 9, Type: 0x101, PosY: 80}}},
		RoadMarkers:   &wire.RoadMarkerArray{RoadMarkers: []*wire.RoadMarker{{Type: 15, ID: 8, Color: 2}}},
		ParkingSlots: &wire.ParkingSlotArray{Slots: []*wire.ParkingSlot{
			{SlotID: 4, SlotStatus: 1, Top1: &wire.SlotPoint{X: 10}, Bottom2: &wire.SlotPoint{Y: -10}, SlotFloor: 2},
		}},
		TrajectoryPoints: &wire.TrajectoryPointArray{Points: []*wire.TrajectoryPoint{{CoordinateX: 100}, {CoordinateY: 250}}},
		StateInfo:        &wire.StateInfo{AccSts: 3, ApaRpaSts: 12, ParkingStopDist: 250, HpaPathSelectID: 5},
		HPAPath:          &wire.HPAPathInfo{PathID: 5, PathName: "home", PathState: 0xFF, PathLabel: 1},
	}
}

// padTo appends an unknown length-delimited field so that b is exactly size
// bytes long.
func padTo(t *testing.T, b []byte, size int) []byte {
	t.Helper()

	for n := size - len(b) - 3; n >= 0; n-- {
		p := protowire.AppendTag(append([]byte(nil), b...), 100, protowire.BytesType)
		p = protowire.AppendBytes(p, make([]byte, n))

		if len(p) == size {
			return p
		}
	}

	t.Fatalf("cannot pad %d bytes to %d", len(b), size)

	return nil
}

func TestSRInfoToModel(t *testing.T) {
	out := SRInfoToModel(sampleSRInfo())

	assert.InDelta(t, 121.47, out.EgoPose.Longitude, 1e-9)
	assert.InDelta(t, 42, out.EgoPose.Speed, 1e-6)

	require.Len(t, out.LaneLines.LaneLines, 1)
	line := out.LaneLines.LaneLines[0]
	assert.Equal(t, model.ColorWhite, line.LineColor)
	assert.Equal(t, model.LaneLineTypeSingleSolid, line.LineType)
	assert.Equal(t, []model.Vector3{{X: 1, Y: 2}, {}, {X: 3, Y: 4, Z: 0.5}}, line.LinePoints)

	require.Len(t, out.Obstacles.Obstacles, 3)
	car := out.Obstacles.Obstacles[0]
	assert.Equal(t, int32(3), car.ID)
	assert.Equal(t, model.ObjectTypeCar, car.Type)
	assert.InDelta(t, 12, car.Position.X, 1e-6)
	assert.InDelta(t, -0.5, car.Velocity.X, 1e-6)
	assert.InDelta(t, 4.5, car.Length, 1e-6)
	assert.Equal(t, model.CarLightStatusBrake, car.CarLightStatus)
	assert.Equal(t, uint64(0), car.LaneID, "negative lane ids saturate")

	assert.Equal(t, model.ObjectTypeUnknown, out.Obstacles.Obstacles[1].Type, "unmapped type falls back")

	cone := out.Obstacles.Obstacles[2]
	assert.Equal(t, model.ObjectTypeConeBucket, cone.Type)
	assert.InDelta(t, 0.8, cone.Position.Y, 1e-6)
	assert.Equal(t, model.Vector3Zero, cone.Velocity)

	require.Len(t, out.RoadMarkers.RoadMarkers, 1)
	assert.Equal(t, model.RoadMarkerTypeCrosswalk, out.RoadMarkers.RoadMarkers[0].Type)

	require.Len(t, out.SlotList.Slots, 1)
	slot := out.SlotList.Slots[0]
	assert.Equal(t, uint32(4), slot.ID)
	assert.Equal(t, model.ParkingSlotStatusEmpty, slot.Status)
	assert.Equal(t, model.ParkingSlotFloorG1, slot.Floor)
	assert.Equal(t, model.Vector3{X: 0.1}, slot.Top1)
	assert.Equal(t, model.Vector3{}, slot.Top2, "missing corner is the origin")
	assert.Equal(t, model.Vector3{Y: -0.1}, slot.Bottom2)

	assert.Equal(t, []model.Vector3{{X: 1}, {Y: 2.5}}, out.TrajectoryPoints.Points)

	assert.Equal(t, model.AccStateActiveControl, out.StateInfo.AccState)
	assert.Equal(t, model.ApaRpaStateReserved, out.StateInfo.ApaRpaState)
	assert.InDelta(t, 2.5, out.StateInfo.ParkingStopDist, 1e-6)
	assert.Equal(t, uint32(5), out.StateInfo.HpaPathSelectedID)

	path := out.HPAData.PathDetail
	assert.Equal(t, "home", path.PathName)
	assert.Equal(t, model.HpaPathStateInvalid, path.PathState)
	assert.Equal(t, model.HpaPathLabelHome, path.PathLabel)
	assert.NotNil(t, path.SlotList.Slots)
	assert.NotNil(t, path.Obstacles.Obstacles)
}

func TestSRInfoToModel_EmptyMessage(t *testing.T) {
	for _, in := range []*wire.SRInfo{nil, {}} {
		out := SRInfoToModel(in)
		require.NotNil(t, out)
		assert.Equal(t, model.NewCommonData(), out)
	}
}

func TestEgoPose_RoundTrip(t *testing.T) {
	in := &wire.EgoPose{Longitude: 121.4737, Latitude: 31.2304, Altitude: 12.5, Heading: -0.75, Speed: 33.3, TimestampMs: 1234.5}

	common := EgoPoseToModel(in)
	assert.Equal(t, in, EgoPoseToWire(&common))
}

func TestObstacleFilters_Partition(t *testing.T) {
	data := model.NewCommonData()
	for _, typ := range []model.ObjectType{
		model.ObjectTypeCar, model.ObjectTypeConeBucket, model.ObjectTypePedestrian,
		model.ObjectTypeSpeedBump, model.ObjectTypeVan,
	} {
		data.Obstacles.Obstacles = append(data.Obstacles.Obstacles, model.Obstacle{Type: typ})
	}

	out := SRInfoToWire(data)

	assert.Len(t, out.DynamicObjects.Objects, 3)
	assert.Len(t, out.StaticObjects.Objects, 2)

	for _, o := range data.Obstacles.Obstacles {
		assert.NotEqual(t, IsDynamicType(o.Type), IsStaticType(o.Type), "type %d", o.Type)
	}
}

// objectTypes lists every declared ObjectType member.
func objectTypes() []model.ObjectType {
	var out []model.ObjectType

	for v := model.ObjectType(0); v < 0x200; v++ {
		if !strings.HasPrefix(v.String(), "ObjectType(") {
			out = append(out, v)
		}
	}

	return out
}

func TestObstacleFilters_PartitionEveryMember(t *testing.T) {
	types := objectTypes()
	require.Len(t, types, 33)

	obstacles := make([]model.Obstacle, len(types))
	want := make([]uint32, len(types))

	for i, typ := range types {
		obstacles[i] = model.Obstacle{ID: int32(i + 1), Type: typ}
		want[i] = uint32(i + 1)
	}

	var got []uint32
	for _, o := range DynamicObstaclesToWire(obstacles).Objects {
		got = append(got, o.ID)
	}

	for _, o := range StaticObstaclesToWire(obstacles).Objects {
		got = append(got, o.ID)
	}

	assert.ElementsMatch(t, want, got)
}

func TestSlotFilters_Partition(t *testing.T) {
	var (
		slots []model.ParkingSlot
		want  []uint32
	)

	for st := model.ParkingSlotStatus(0); !strings.HasPrefix(st.String(), "ParkingSlotStatus("); st++ {
		for n := range 2 {
			id := uint32(len(slots) + 1)
			slots = append(slots, model.ParkingSlot{ID: id, Status: st, Num: uint32(n)})
			want = append(want, id)
		}
	}

	require.Len(t, slots, 14)

	parkable := ParkableSlotsToWire(slots).Slots
	rest := UnparkableSlotsToWire(slots).Slots

	var got []uint32
	for _, s := range parkable {
		assert.Equal(t, uint32(model.ParkingSlotStatusParkable), s.SlotStatus)
		got = append(got, s.SlotID)
	}

	for _, s := range rest {
		assert.NotEqual(t, uint32(model.ParkingSlotStatusParkable), s.SlotStatus)
		got = append(got, s.SlotID)
	}

	assert.Len(t, parkable, 2)
	assert.ElementsMatch(t, want, got)
}

func TestEnumConverters_Total(t *testing.T) {
	for v := uint32(0); v < 0x200; v++ {
		assert.True(t, IsDynamicType(DynamicObjectTypeConverterToModel(v)), "dynamic %#x", v)
		assert.True(t, IsStaticType(StaticObjectTypeConverterToModel(v)), "static %#x", v)

		_ = HpaPathStateConverterToModel(v)
		_ = ApaRpaStateConverterToModel(v)
	}

	for k, member := range dynamicObjectTypeConverterToModel {
		assert.Equal(t, k, DynamicObjectTypeConverterToWire(member))
	}

	for k, member := range staticObjectTypeConverterToModel {
		assert.Equal(t, k, StaticObjectTypeConverterToWire(member))
	}

	assert.Equal(t, uint32(0x116), StaticObjectTypeConverterToWire(model.ObjectTypeCar))
	assert.Equal(t, uint32(0xFF), HpaPathStateConverterToWire(model.HpaPathState(7)))
}

func TestDecode(t *testing.T) {
	data := sampleSRInfo().Marshal()

	for _, id := range TypeIDs() {
		out, ok := Decode(id, data)
		require.True(t, ok, "type id %d", id)
		assert.Len(t, out.Obstacles.Obstacles, 3)
	}

	out, ok := Decode(9999, data)
	assert.False(t, ok)
	assert.Nil(t, out)

	out, ok = Decode(21, []byte{0xff, 0xff, 0xff})
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestDecode_Padded1024ByteFrame(t *testing.T) {
	msg := &wire.SRInfo{
		EgoPose:   &wire.EgoPose{Longitude: 116.39, Latitude: 39.9, Speed: 12},
		StateInfo: &wire.StateInfo{HpaSts: 7},
	}

	data := padTo(t, msg.Marshal(), 1024)
	require.Len(t, data, 1024)

	out, ok := Decode(26, data)
	require.True(t, ok)
	assert.InDelta(t, 116.39, out.EgoPose.Longitude, 1e-9)
	assert.Equal(t, model.HpaStateTraining, out.StateInfo.HpaState)
}

func TestRegister(t *testing.T) {
	table := router.NewTable()
	require.NoError(t, Register(table))
	assert.Equal(t, TypeIDs(), table.IDs())

	out, ok := table.Decode(27, sampleSRInfo().Marshal())
	require.True(t, ok)
	assert.Equal(t, "home", out.HPAData.PathDetail.PathName)

	_, ok = table.Decode(9999, nil)
	assert.False(t, ok)

	require.ErrorIs(t, Register(table), router.ErrDuplicateID)
}
