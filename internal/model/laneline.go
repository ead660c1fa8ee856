package model

//go:generate go tool stringer -type=LaneLineType -trimprefix=LaneLineType

type LaneLineType uint32

const (
	LaneLineTypeUnknown LaneLineType = iota
	LaneLineTypeSingleSolid
	LaneLineTypeSingleDashed
	LaneLineTypeDoubleDashedSolid
	LaneLineTypeDoubleSolidDashed
	LaneLineTypeDoubleDashedDashed
	LaneLineTypeDoubleSolidSolid
	LaneLineTypeLeftRoadEdge
	LaneLineTypeRightRoadEdge
	LaneLineTypeFishBoneDashed
	LaneLineTypeFishBoneSolid
	LaneLineTypeLeftGuardrail
	LaneLineTypeRightGuardrail
	LaneLineTypeLeftGreenLand
	LaneLineTypeRightGreenLand
	LaneLineTypeWall
	LaneLineTypeDiversionArea
	LaneLineTypeConstructionArea
	LaneLineTypeDenseWideDash
)

// LaneLine is a cubic lane boundary plus its sampled points.
// Start/end coordinates and width are in centimeters, as reported.
type LaneLine struct {
	LineIndex  uint32
	LineID     uint64
	LineColor  Color
	LineType   LaneLineType
	C0         float32 // m
	C1         float32 // rad
	C2         float32 // 1/m
	C3         float32 // 1/m^2
	Width      float32
	StartX     float32
	StartY     float32
	EndX       float32
	EndY       float32
	LinePoints []Vector3
}

type LaneLineList struct {
	LaneLines []LaneLine
}
