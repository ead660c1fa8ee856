package model

//go:generate go tool stringer -type=ParkingSlotType -trimprefix=ParkingSlotType

type ParkingSlotType uint32

const (
	ParkingSlotTypeUndefined ParkingSlotType = iota
	ParkingSlotTypeParallel
	ParkingSlotTypeVertical
	ParkingSlotTypeSlanted
)

//go:generate go tool stringer -type=ParkingSlotStatus -trimprefix=ParkingSlotStatus

type ParkingSlotStatus uint32

const (
	ParkingSlotStatusUnknown ParkingSlotStatus = iota
	ParkingSlotStatusEmpty
	ParkingSlotStatusOccupied
	ParkingSlotStatusParkable
	ParkingSlotStatusTarget
	ParkingSlotStatusNarrowTargetSlot
	ParkingSlotStatusOccupiedTargetSlot
)

//go:generate go tool stringer -type=ParkingSlotFloor -trimprefix=ParkingSlotFloor

type ParkingSlotFloor uint32

const (
	ParkingSlotFloorNone ParkingSlotFloor = iota
	ParkingSlotFloorL1
	ParkingSlotFloorG1
	ParkingSlotFloorL2
	ParkingSlotFloorG2
	ParkingSlotFloorL3
	ParkingSlotFloorG3
)

// ParkingSlot is a perceived slot with its four corners.
type ParkingSlot struct {
	ID      uint32
	Type    ParkingSlotType
	Status  ParkingSlotStatus
	Top1    Vector3
	Top2    Vector3
	Bottom1 Vector3
	Bottom2 Vector3
	Num     uint32
	Floor   ParkingSlotFloor
}

type ParkingSlotList struct {
	Slots []ParkingSlot
}
