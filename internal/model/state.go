package model

//go:generate go tool stringer -type=AccState -trimprefix=AccState

type AccState uint32

const (
	AccStateOff AccState = iota
	AccStatePassive
	AccStateStandby
	AccStateActiveControl
	AccStateBrakeOnly
	AccStateOverride
	AccStateStandWait
	AccStateFailure
	AccStateStandActive
)

//go:generate go tool stringer -type=CruiseAccelerationState -trimprefix=CruiseAccelerationState

type CruiseAccelerationState uint32

const (
	CruiseAccelerationStateNone CruiseAccelerationState = iota
	CruiseAccelerationStateAccelerating
	CruiseAccelerationStateDecelerating
)

//go:generate go tool stringer -type=HnopState -trimprefix=HnopState

type HnopState uint32

const (
	HnopStateOff HnopState = iota
	HnopStatePassive
	HnopStateReady
	HnopStateActiveControl
	HnopStateLongitudinalSuspend
	HnopStateTOR
	HnopStateSafeStop
	HnopStateFailure
	HnopStateLateralSuspend
)

//go:generate go tool stringer -type=IcaState -trimprefix=IcaState

type IcaState uint32

const (
	IcaStateOff IcaState = iota
	IcaStatePassive
	IcaStateStandby
	IcaStateActive
	IcaStateFailure
	IcaStateSuspend
	IcaStateSafeStop
)

//go:generate go tool stringer -type=LaneTrackingState -trimprefix=LaneTrackingState

type LaneTrackingState uint32

const (
	LaneTrackingStateInactive LaneTrackingState = iota
	LaneTrackingStateLaneTracking
	LaneTrackingStateIntervention
	LaneTrackingStateWarning
)

//go:generate go tool stringer -type=ApaRpaState -trimprefix=ApaRpaState

type ApaRpaState uint32

const (
	ApaRpaStateOff ApaRpaState = iota
	ApaRpaStateStandby
	ApaRpaStateSearching
	ApaRpaStateGuidanceActive
	ApaRpaStateCompleted
	ApaRpaStateFailure
	ApaRpaStateTerminate
	ApaRpaStatePause
	ApaRpaStateUndo
	ApaRpaStateQuit
	ApaRpaStateReserved ApaRpaState = 0x10
)

//go:generate go tool stringer -type=HpaState -trimprefix=HpaState

type HpaState uint32

const (
	HpaStateOff HpaState = iota
	HpaStateStandby
	HpaStateGuidanceActive
	HpaStateCompleted
	HpaStateFailure
	HpaStateTerminate
	HpaStatePause
	HpaStateTraining
	HpaStateTrainingCompleted
	HpaStateTrainingTerminate
	HpaStateMapping
	HpaStateTrackPreparing
)

// StateInfo carries driving and parking state machine outputs.
type StateInfo struct {
	AccState              AccState
	CruiseAccelerateState CruiseAccelerationState
	HnopState             HnopState
	IcaState              IcaState

	AlcDestPoseX       float32
	AlcDestPoseY       float32
	AlcDestPoseHeading float32

	LksLeftTracking  LaneTrackingState
	LksRightTracking LaneTrackingState

	ApaRpaState     ApaRpaState
	ParkingStopDist float32 // m

	HpaState          HpaState
	HpaPathSelectedID uint32
}
