package model

//go:generate go tool stringer -type=HpaPathState -trimprefix=HpaPathState

type HpaPathState uint32

const (
	HpaPathStateNotActive HpaPathState = 0x0
	HpaPathStateSaving    HpaPathState = 0x1
	HpaPathStateSaved     HpaPathState = 0x2
	HpaPathStateFailed    HpaPathState = 0x3
	HpaPathStateInvalid   HpaPathState = 0xFF
)

//go:generate go tool stringer -type=HpaPathLabel -trimprefix=HpaPathLabel

type HpaPathLabel uint32

const (
	HpaPathLabelNoLabel HpaPathLabel = iota
	HpaPathLabelHome
	HpaPathLabelOffice
	HpaPathLabelOther
)

//go:generate go tool stringer -type=HpaPathType -trimprefix=HpaPathType

type HpaPathType uint32

const (
	HpaPathTypeNone HpaPathType = iota
	HpaPathTypeParkIn
	HpaPathTypeParkOut
)

// HPAData groups home-zone parking assist outputs.
type HPAData struct {
	PathDetail HPAPathDetail
}

// NewHPAData returns HPAData with its nested lists allocated.
func NewHPAData() HPAData {
	return HPAData{PathDetail: NewHPAPathDetail()}
}

// HPAPathDetail describes one learned route.
type HPAPathDetail struct {
	PathID       uint32
	PathState    HpaPathState
	PathName     string
	SaveProgress uint32
	PathLength   float32
	PathLabel    HpaPathLabel
	PathType     HpaPathType
	SlotList     ParkingSlotList
	Obstacles    ObstacleList
}

// NewHPAPathDetail returns an HPAPathDetail with its nested lists allocated.
func NewHPAPathDetail() HPAPathDetail {
	return HPAPathDetail{
		SlotList:  ParkingSlotList{Slots: []ParkingSlot{}},
		Obstacles: ObstacleList{Obstacles: []Obstacle{}},
	}
}
