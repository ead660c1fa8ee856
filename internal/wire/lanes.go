package wire

import "google.golang.org/protobuf/encoding/protowire"

// LaneLineArray carries every lane boundary detected in one frame.
type LaneLineArray struct {
	LaneLines []*LaneLine
}

// Marshal encodes m in protobuf wire format.
func (m *LaneLineArray) Marshal() []byte {
	return appendItems(nil, 1, m.LaneLines)
}

// Unmarshal replaces m with the message decoded from b.
func (m *LaneLineArray) Unmarshal(b []byte) error {
	*m = LaneLineArray{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeItem(typ, b, &m.LaneLines)
		}

		return -1, nil
	})
}

// LaneLine is one lane boundary: a cubic polynomial C0..C3 over the
// longitudinal range StartX..EndX plus the sampled points it was fitted to.
type LaneLine struct {
	LineIndex  uint32
	LineID     uint64
	LineColor  uint32
	LineType   uint32
	C0         float32
	C1         float32
	C2         float32
	C3         float32
	Width      float32
	StartX     float32
	StartY     float32
	EndX       float32
	EndY       float32
	LinePoints []*LinePoint
}

// Marshal encodes m in protobuf wire format.
func (m *LaneLine) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.LineIndex)
	b = appendUint64(b, 2, m.LineID)
	b = appendUint32(b, 3, m.LineColor)
	b = appendUint32(b, 4, m.LineType)
	b = appendFloat(b, 5, m.C0)
	b = appendFloat(b, 6, m.C1)
	b = appendFloat(b, 7, m.C2)
	b = appendFloat(b, 8, m.C3)
	b = appendFloat(b, 9, m.Width)
	b = appendFloat(b, 10, m.StartX)
	b = appendFloat(b, 11, m.StartY)
	b = appendFloat(b, 12, m.EndX)
	b = appendFloat(b, 13, m.EndY)
	b = appendItems(b, 14, m.LinePoints)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *LaneLine) Unmarshal(b []byte) error {
	*m = LaneLine{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.LineIndex)
		case 2:
			return consumeUint64(typ, b, &m.LineID)
		case 3:
			return consumeUint32(typ, b, &m.LineColor)
		case 4:
			return consumeUint32(typ, b, &m.LineType)
		case 5:
			return consumeFloat(typ, b, &m.C0)
		case 6:
			return consumeFloat(typ, b, &m.C1)
		case 7:
			return consumeFloat(typ, b, &m.C2)
		case 8:
			return consumeFloat(typ, b, &m.C3)
		case 9:
			return consumeFloat(typ, b, &m.Width)
		case 10:
			return consumeFloat(typ, b, &m.StartX)
		case 11:
			return consumeFloat(typ, b, &m.StartY)
		case 12:
			return consumeFloat(typ, b, &m.EndX)
		case 13:
			return consumeFloat(typ, b, &m.EndY)
		case 14:
			return consumeItem(typ, b, &m.LinePoints)
		}

		return -1, nil
	})
}

// LinePoint is one sampled lane point in cm.
type LinePoint struct {
	X float32
	Y float32
	Z float32
}

// Marshal encodes m in protobuf wire format.
func (m *LinePoint) Marshal() []byte {
	var b []byte
	b = appendFloat(b, 1, m.X)
	b = appendFloat(b, 2, m.Y)
	b = appendFloat(b, 3, m.Z)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *LinePoint) Unmarshal(b []byte) error {
	*m = LinePoint{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeFloat(typ, b, &m.X)
		case 2:
			return consumeFloat(typ, b, &m.Y)
		case 3:
			return consumeFloat(typ, b, &m.Z)
		}

		return -1, nil
	})
}

// RoadMarkerArray carries the painted markings seen in one frame.
type RoadMarkerArray struct {
	RoadMarkers []*RoadMarker
}

// Marshal encodes m in protobuf wire format.
func (m *RoadMarkerArray) Marshal() []byte {
	return appendItems(nil, 1, m.RoadMarkers)
}

// Unmarshal replaces m with the message decoded from b.
func (m *RoadMarkerArray) Unmarshal(b []byte) error {
	*m = RoadMarkerArray{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeItem(typ, b, &m.RoadMarkers)
		}

		return -1, nil
	})
}

// RoadMarker is a painted marking given by its four corner poses in cm.
type RoadMarker struct {
	Type           uint32
	ID             uint64
	TrackingStatus uint32
	Pose1X         float32
	Pose1Y         float32
	Pose2X         float32
	Pose2Y         float32
	Width          uint32
	Pose3X         float32
	Pose3Y         float32
	Pose4X         float32
	Pose4Y         float32
	Color          uint32
}

// Marshal encodes m in protobuf wire format.
func (m *RoadMarker) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.Type)
	b = appendUint64(b, 2, m.ID)
	b = appendUint32(b, 3, m.TrackingStatus)
	b = appendFloat(b, 4, m.Pose1X)
	b = appendFloat(b, 5, m.Pose1Y)
	b = appendFloat(b, 6, m.Pose2X)
	b = appendFloat(b, 7, m.Pose2Y)
	b = appendUint32(b, 8, m.Width)
	b = appendFloat(b, 9, m.Pose3X)
	b = appendFloat(b, 10, m.Pose3Y)
	b = appendFloat(b, 11, m.Pose4X)
	b = appendFloat(b, 12, m.Pose4Y)
	b = appendUint32(b, 13, m.Color)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *RoadMarker) Unmarshal(b []byte) error {
	*m = RoadMarker{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.Type)
		case 2:
			return consumeUint64(typ, b, &m.ID)
		case 3:
			return consumeUint32(typ, b, &m.TrackingStatus)
		case 4:
			return consumeFloat(typ, b, &m.Pose1X)
		case 5:
			return consumeFloat(typ, b, &m.Pose1Y)
		case 6:
			return consumeFloat(typ, b, &m.Pose2X)
		case 7:
			return consumeFloat(typ, b, &m.Pose2Y)
		case 8:
			return consumeUint32(typ, b, &m.Width)
		case 9:
			return consumeFloat(typ, b, &m.Pose3X)
		case 10:
			return consumeFloat(typ, b, &m.Pose3Y)
		case 11:
			return consumeFloat(typ, b, &m.Pose4X)
		case 12:
			return consumeFloat(typ, b, &m.Pose4Y)
		case 13:
			return consumeUint32(typ, b, &m.Color)
		}

		return -1, nil
	})
}
