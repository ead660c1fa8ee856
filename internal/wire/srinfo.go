package wire

import "google.golang.org/protobuf/encoding/protowire"

// SRInfo is the scene reconstruction root published on type ids 21, 26 and 27.
type SRInfo struct {
	EgoPose          *EgoPose
	LaneLines        *LaneLineArray
	DynamicObjects   *DynamicObjectArray
	StaticObjects    *StaticObjectArray
	RoadMarkers      *RoadMarkerArray
	ParkingSlots     *ParkingSlotArray
	TrajectoryPoints *TrajectoryPointArray
	StateInfo        *StateInfo
	HPAPath          *HPAPathInfo
}

// Marshal encodes m in protobuf wire format.
func (m *SRInfo) Marshal() []byte {
	var b []byte
	b = appendMessage(b, 1, m.EgoPose, m.EgoPose == nil)
	b = appendMessage(b, 2, m.LaneLines, m.LaneLines == nil)
	b = appendMessage(b, 3, m.DynamicObjects, m.DynamicObjects == nil)
	b = appendMessage(b, 4, m.StaticObjects, m.StaticObjects == nil)
	b = appendMessage(b, 5, m.RoadMarkers, m.RoadMarkers == nil)
	b = appendMessage(b, 6, m.ParkingSlots, m.ParkingSlots == nil)
	b = appendMessage(b, 7, m.TrajectoryPoints, m.TrajectoryPoints == nil)
	b = appendMessage(b, 8, m.StateInfo, m.StateInfo == nil)
	b = appendMessage(b, 9, m.HPAPath, m.HPAPath == nil)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *SRInfo) Unmarshal(b []byte) error {
	*m = SRInfo{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			m.EgoPose = &EgoPose{}
			return consumeMessage(typ, b, m.EgoPose)
		case 2:
			m.LaneLines = &LaneLineArray{}
			return consumeMessage(typ, b, m.LaneLines)
		case 3:
			m.DynamicObjects = &DynamicObjectArray{}
			return consumeMessage(typ, b, m.DynamicObjects)
		case 4:
			m.StaticObjects = &StaticObjectArray{}
			return consumeMessage(typ, b, m.StaticObjects)
		case 5:
			m.RoadMarkers = &RoadMarkerArray{}
			return consumeMessage(typ, b, m.RoadMarkers)
		case 6:
			m.ParkingSlots = &ParkingSlotArray{}
			return consumeMessage(typ, b, m.ParkingSlots)
		case 7:
			m.TrajectoryPoints = &TrajectoryPointArray{}
			return consumeMessage(typ, b, m.TrajectoryPoints)
		case 8:
			m.StateInfo = &StateInfo{}
			return consumeMessage(typ, b, m.StateInfo)
		case 9:
			m.HPAPath = &HPAPathInfo{}
			return consumeMessage(typ, b, m.HPAPath)
		}

		return -1, nil
	})
}

// EgoPose is the ego vehicle's GNSS pose.
type EgoPose struct {
	Longitude   float64
	Latitude    float64
	Altitude    float32
	Heading     float32
	Speed       float32
	TimestampMs float32
}

// Marshal encodes m in protobuf wire format.
func (m *EgoPose) Marshal() []byte {
	var b []byte
	b = appendDouble(b, 1, m.Longitude)
	b = appendDouble(b, 2, m.Latitude)
	b = appendFloat(b, 3, m.Altitude)
	b = appendFloat(b, 4, m.Heading)
	b = appendFloat(b, 5, m.Speed)
	b = appendFloat(b, 6, m.TimestampMs)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *EgoPose) Unmarshal(b []byte) error {
	*m = EgoPose{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeDouble(typ, b, &m.Longitude)
		case 2:
			return consumeDouble(typ, b, &m.Latitude)
		case 3:
			return consumeFloat(typ, b, &m.Altitude)
		case 4:
			return consumeFloat(typ, b, &m.Heading)
		case 5:
			return consumeFloat(typ, b, &m.Speed)
		case 6:
			return consumeFloat(typ, b, &m.TimestampMs)
		}

		return -1, nil
	})
}

// TrajectoryPointArray is a planned or recorded path, coordinates in cm.
type TrajectoryPointArray struct {
	Points []*TrajectoryPoint
}

// Marshal encodes m in protobuf wire format.
func (m *TrajectoryPointArray) Marshal() []byte {
	return appendItems(nil, 1, m.Points)
}

// Unmarshal replaces m with the message decoded from b.
func (m *TrajectoryPointArray) Unmarshal(b []byte) error {
	*m = TrajectoryPointArray{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeItem(typ, b, &m.Points)
		}

		return -1, nil
	})
}

// TrajectoryPoint is one path sample in cm.
type TrajectoryPoint struct {
	CoordinateX float32
	CoordinateY float32
	CoordinateZ float32
}

// Marshal encodes m in protobuf wire format.
func (m *TrajectoryPoint) Marshal() []byte {
	var b []byte
	b = appendFloat(b, 1, m.CoordinateX)
	b = appendFloat(b, 2, m.CoordinateY)
	b = appendFloat(b, 3, m.CoordinateZ)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *TrajectoryPoint) Unmarshal(b []byte) error {
	*m = TrajectoryPoint{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeFloat(typ, b, &m.CoordinateX)
		case 2:
			return consumeFloat(typ, b, &m.CoordinateY)
		case 3:
			return consumeFloat(typ, b, &m.CoordinateZ)
		}

		return -1, nil
	})
}
