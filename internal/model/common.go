package model

// CommonData is the normalized view of one decoded frame.
type CommonData struct {
	EgoPose          EgoPose
	LaneLines        LaneLineList
	Obstacles        ObstacleList
	RoadMarkers      RoadMarkerList
	HPAData          HPAData
	TrajectoryPoints TrajectoryPoints
	StateInfo        StateInfo
	SlotList         ParkingSlotList
}

// NewCommonData returns a CommonData with every nested list allocated.
func NewCommonData() *CommonData {
	return &CommonData{
		LaneLines:        LaneLineList{LaneLines: []LaneLine{}},
		Obstacles:        ObstacleList{Obstacles: []Obstacle{}},
		RoadMarkers:      RoadMarkerList{RoadMarkers: []RoadMarker{}},
		HPAData:          NewHPAData(),
		TrajectoryPoints: TrajectoryPoints{Points: []Vector3{}},
		SlotList:         ParkingSlotList{Slots: []ParkingSlot{}},
	}
}

// EgoPose is the ego vehicle's global pose.
type EgoPose struct {
	Longitude   float64
	Latitude    float64
	Altitude    float32
	Heading     float32
	Speed       float32 // km/h
	TimestampMs float32
}

//go:generate go tool stringer -type=Color -trimprefix=Color

// Color is shared by lane lines, road markers and obstacles.
type Color uint32

const (
	ColorNone Color = iota
	ColorGray
	ColorWhite
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorRedFlashing
	ColorDarkgrey
	ColorReserved
)
