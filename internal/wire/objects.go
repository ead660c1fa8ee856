package wire

import "google.golang.org/protobuf/encoding/protowire"

// DynamicObjectArray carries the tracked traffic participants of one frame.
type DynamicObjectArray struct {
	Objects []*DynamicObject
}

// Marshal encodes m in protobuf wire format.
func (m *DynamicObjectArray) Marshal() []byte {
	return appendItems(nil, 1, m.Objects)
}

// Unmarshal replaces m with the message decoded from b.
func (m *DynamicObjectArray) Unmarshal(b []byte) error {
	*m = DynamicObjectArray{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeItem(typ, b, &m.Objects)
		}

		return -1, nil
	})
}

// DynamicObject is a tracked traffic participant. Positions are in cm,
// velocities in cm/s.
type DynamicObject struct {
	ID          uint32
	Type        uint32
	PosX        float32
	PosY        float32
	PosZ        float32
	VelX        float32
	VelY        float32
	VelZ        float32
	Length      float32
	Width       float32
	Height      float32
	Heading     float32
	LightStatus uint32
	Color       uint32
	Timestamp   uint64
	LaneID      int64
}

// Marshal encodes m in protobuf wire format.
func (m *DynamicObject) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.ID)
	b = appendUint32(b, 2, m.Type)
	b = appendFloat(b, 3, m.PosX)
	b = appendFloat(b, 4, m.PosY)
	b = appendFloat(b, 5, m.PosZ)
	b = appendFloat(b, 6, m.VelX)
	b = appendFloat(b, 7, m.VelY)
	b = appendFloat(b, 8, m.VelZ)
	b = appendFloat(b, 9, m.Length)
	b = appendFloat(b, 10, m.Width)
	b = appendFloat(b, 11, m.Height)
	b = appendFloat(b, 12, m.Heading)
	b = appendUint32(b, 13, m.LightStatus)
	b = appendUint32(b, 14, m.Color)
	b = appendUint64(b, 15, m.Timestamp)
	b = appendInt64(b, 16, m.LaneID)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *DynamicObject) Unmarshal(b []byte) error {
	*m = DynamicObject{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.ID)
		case 2:
			return consumeUint32(typ, b, &m.Type)
		case 3:
			return consumeFloat(typ, b, &m.PosX)
		case 4:
			return consumeFloat(typ, b, &m.PosY)
		case 5:
			return consumeFloat(typ, b, &m.PosZ)
		case 6:
			return consumeFloat(typ, b, &m.VelX)
		case 7:
			return consumeFloat(typ, b, &m.VelY)
		case 8:
			return consumeFloat(typ, b, &m.VelZ)
		case 9:
			return consumeFloat(typ, b, &m.Length)
		case 10:
			return consumeFloat(typ, b, &m.Width)
		case 11:
			return consumeFloat(typ, b, &m.Height)
		case 12:
			return consumeFloat(typ, b, &m.Heading)
		case 13:
			return consumeUint32(typ, b, &m.LightStatus)
		case 14:
			return consumeUint32(typ, b, &m.Color)
		case 15:
			return consumeUint64(typ, b, &m.Timestamp)
		case 16:
			return consumeInt64(typ, b, &m.LaneID)
		}

		return -1, nil
	})
}

// StaticObjectArray carries the fixed obstacles and facilities of one frame.
type StaticObjectArray struct {
	Objects []*StaticObject
}

// Marshal encodes m in protobuf wire format.
func (m *StaticObjectArray) Marshal() []byte {
	return appendItems(nil, 1, m.Objects)
}

// Unmarshal replaces m with the message decoded from b.
func (m *StaticObjectArray) Unmarshal(b []byte) error {
	*m = StaticObjectArray{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeItem(typ, b, &m.Objects)
		}

		return -1, nil
	})
}

// StaticObject is a fixed obstacle or facility, positions in cm.
type StaticObject struct {
	ID      uint32
	Type    uint32
	PosX    float32
	PosY    float32
	PosZ    float32
	Length  float32
	Width   float32
	Height  float32
	Heading float32
}

// Marshal encodes m in protobuf wire format.
func (m *StaticObject) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.ID)
	b = appendUint32(b, 2, m.Type)
	b = appendFloat(b, 3, m.PosX)
	b = appendFloat(b, 4, m.PosY)
	b = appendFloat(b, 5, m.PosZ)
	b = appendFloat(b, 6, m.Length)
	b = appendFloat(b, 7, m.Width)
	b = appendFloat(b, 8, m.Height)
	b = appendFloat(b, 9, m.Heading)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *StaticObject) Unmarshal(b []byte) error {
	*m = StaticObject{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.ID)
		case 2:
			return consumeUint32(typ, b, &m.Type)
		case 3:
			return consumeFloat(typ, b, &m.PosX)
		case 4:
			return consumeFloat(typ, b, &m.PosY)
		case 5:
			return consumeFloat(typ, b, &m.PosZ)
		case 6:
			return consumeFloat(typ, b, &m.Length)
		case 7:
			return consumeFloat(typ, b, &m.Width)
		case 8:
			return consumeFloat(typ, b, &m.Height)
		case 9:
			return consumeFloat(typ, b, &m.Heading)
		}

		return -1, nil
	})
}
