package wire

import "google.golang.org/protobuf/encoding/protowire"

// ParkingSlotArray carries the parking slots perceived in one frame.
type ParkingSlotArray struct {
	Slots []*ParkingSlot
}

// Marshal encodes m in protobuf wire format.
func (m *ParkingSlotArray) Marshal() []byte {
	return appendItems(nil, 1, m.Slots)
}

// Unmarshal replaces m with the message decoded from b.
func (m *ParkingSlotArray) Unmarshal(b []byte) error {
	*m = ParkingSlotArray{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeItem(typ, b, &m.Slots)
		}

		return -1, nil
	})
}

// ParkingSlot is a perceived slot. Corner points are in cm; SlotNum is the
// painted slot number when one was read.
type ParkingSlot struct {
	SlotID     uint32
	SlotType   uint32
	SlotStatus uint32
	Top1       *SlotPoint
	Top2       *SlotPoint
	Bottom1    *SlotPoint
	Bottom2    *SlotPoint
	SlotNum    uint32
	SlotFloor  uint32
}

// Marshal encodes m in protobuf wire format.
func (m *ParkingSlot) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.SlotID)
	b = appendUint32(b, 2, m.SlotType)
	b = appendUint32(b, 3, m.SlotStatus)
	b = appendMessage(b, 4, m.Top1, m.Top1 == nil)
	b = appendMessage(b, 5, m.Top2, m.Top2 == nil)
	b = appendMessage(b, 6, m.Bottom1, m.Bottom1 == nil)
	b = appendMessage(b, 7, m.Bottom2, m.Bottom2 == nil)
	b = appendUint32(b, 8, m.SlotNum)
	b = appendUint32(b, 9, m.SlotFloor)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *ParkingSlot) Unmarshal(b []byte) error {
	*m = ParkingSlot{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.SlotID)
		case 2:
			return consumeUint32(typ, b, &m.SlotType)
		case 3:
			return consumeUint32(typ, b, &m.SlotStatus)
		case 4:
			m.Top1 = &SlotPoint{}
			return consumeMessage(typ, b, m.Top1)
		case 5:
			m.Top2 = &SlotPoint{}
			return consumeMessage(typ, b, m.Top2)
		case 6:
			m.Bottom1 = &SlotPoint{}
			return consumeMessage(typ, b, m.Bottom1)
		case 7:
			m.Bottom2 = &SlotPoint{}
			return consumeMessage(typ, b, m.Bottom2)
		case 8:
			return consumeUint32(typ, b, &m.SlotNum)
		case 9:
			return consumeUint32(typ, b, &m.SlotFloor)
		}

		return -1, nil
	})
}

// SlotPoint is a slot corner in cm.
type SlotPoint struct {
	X float32
	Y float32
	Z float32
}

// Marshal encodes m in protobuf wire format.
func (m *SlotPoint) Marshal() []byte {
	var b []byte
	b = appendFloat(b, 1, m.X)
	b = appendFloat(b, 2, m.Y)
	b = appendFloat(b, 3, m.Z)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *SlotPoint) Unmarshal(b []byte) error {
	*m = SlotPoint{}

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

// HPAPathInfo describes the learned route currently selected for home-zone
// parking.
type HPAPathInfo struct {
	PathID       uint32
	PathState    uint32
	PathName     string
	SaveProgress uint32
	PathLength   float32
	PathLabel    uint32
	PathType     uint32
}

// Marshal encodes m in protobuf wire format.
func (m *HPAPathInfo) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.PathID)
	b = appendUint32(b, 2, m.PathState)
	b = appendString(b, 3, m.PathName)
	b = appendUint32(b, 4, m.SaveProgress)
	b = appendFloat(b, 5, m.PathLength)
	b = appendUint32(b, 6, m.PathLabel)
	b = appendUint32(b, 7, m.PathType)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *HPAPathInfo) Unmarshal(b []byte) error {
	*m = HPAPathInfo{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.PathID)
		case 2:
			return consumeUint32(typ, b, &m.PathState)
		case 3:
			return consumeString(typ, b, &m.PathName)
		case 4:
			return consumeUint32(typ, b, &m.SaveProgress)
		case 5:
			return consumeFloat(typ, b, &m.PathLength)
		case 6:
			return consumeUint32(typ, b, &m.PathLabel)
		case 7:
			return consumeUint32(typ, b, &m.PathType)
		}

		return -1, nil
	})
}
