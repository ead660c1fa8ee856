package model

//go:generate go tool stringer -type=RoadMarkerType -trimprefix=RoadMarkerType

type RoadMarkerType uint32

const (
	RoadMarkerTypeUnknown RoadMarkerType = iota
	RoadMarkerTypeArrowUp
	RoadMarkerTypeArrowLeft
	RoadMarkerTypeArrowRight
	RoadMarkerTypeArrowUpLeft
	RoadMarkerTypeArrowUpRight
	RoadMarkerTypeArrowLeftRight
	RoadMarkerTypeArrowLeftUpRight
	RoadMarkerTypeArrowUTurn
	RoadMarkerTypeArrowUpUTurn
	RoadMarkerTypeArrowLeftUTurn
	RoadMarkerTypeArrowLeftMerge
	RoadMarkerTypeArrowRightMerge
	RoadMarkerTypeArrowProhibition
	RoadMarkerTypeArrowDashedLine
	RoadMarkerTypeCrosswalk
	RoadMarkerTypeStopline
	RoadMarkerTypeVirtualStopline
)

// RoadMarker is a painted marking described by up to four corner points.
type RoadMarker struct {
	Type           RoadMarkerType
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
	Color          Color
}

type RoadMarkerList struct {
	RoadMarkers []RoadMarker
}
