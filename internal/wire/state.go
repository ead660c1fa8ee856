package wire

import "google.golang.org/protobuf/encoding/protowire"

// StateInfo carries the driving and parking state machines. ParkingStopDist
// is reported in cm.
type StateInfo struct {
	AccSts              uint32
	CruiseAccelerateSts uint32
	HnopSts             uint32
	IcaSts              uint32
	AlcDestPoseX        float32
	AlcDestPoseY        float32
	AlcDestPoseHeading  float32
	LksLeftTrackingSt   uint32
	LksRightTrackingSt  uint32
	ApaRpaSts           uint32
	ParkingStopDist     uint32
	HpaSts              uint32
	HpaPathSelectID     uint32
}

// Marshal encodes m in protobuf wire format.
func (m *StateInfo) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.AccSts)
	b = appendUint32(b, 2, m.CruiseAccelerateSts)
	b = appendUint32(b, 3, m.HnopSts)
	b = appendUint32(b, 4, m.IcaSts)
	b = appendFloat(b, 5, m.AlcDestPoseX)
	b = appendFloat(b, 6, m.AlcDestPoseY)
	b = appendFloat(b, 7, m.AlcDestPoseHeading)
	b = appendUint32(b, 8, m.LksLeftTrackingSt)
	b = appendUint32(b, 9, m.LksRightTrackingSt)
	b = appendUint32(b, 10, m.ApaRpaSts)
	b = appendUint32(b, 11, m.ParkingStopDist)
	b = appendUint32(b, 12, m.HpaSts)
	b = appendUint32(b, 13, m.HpaPathSelectID)

	return b
}

// Unmarshal replaces m with the message decoded from b.
func (m *StateInfo) Unmarshal(b []byte) error {
	*m = StateInfo{}

	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.AccSts)
		case 2:
			return consumeUint32(typ, b, &m.CruiseAccelerateSts)
		case 3:
			return consumeUint32(typ, b, &m.HnopSts)
		case 4:
			return consumeUint32(typ, b, &m.IcaSts)
		case 5:
			return consumeFloat(typ, b, &m.AlcDestPoseX)
		case 6:
			return consumeFloat(typ, b, &m.AlcDestPoseY)
		case 7:
			return consumeFloat(typ, b, &m.AlcDestPoseHeading)
		case 8:
			return consumeUint32(typ, b, &m.LksLeftTrackingSt)
		case 9:
			return consumeUint32(typ, b, &m.LksRightTrackingSt)
		case 10:
			return consumeUint32(typ, b, &m.ApaRpaSts)
		case 11:
			return consumeUint32(typ, b, &m.ParkingStopDist)
		case 12:
			return consumeUint32(typ, b, &m.HpaSts)
		case 13:
			return consumeUint32(typ, b, &m.HpaPathSelectID)
		}

		return -1, nil
	})
}
