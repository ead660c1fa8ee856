package model

//go:generate go tool stringer -type=ObjectType -trimprefix=ObjectType

// ObjectType classifies obstacles. Values below 0x100 are dynamic traffic
// participants, values from 0x101 are static obstacles and facilities.
type ObjectType uint32

const (
	ObjectTypeUnknown                 ObjectType = 0x00
	ObjectTypePedestrian              ObjectType = 0x01
	ObjectTypeCyclist                 ObjectType = 0x02
	ObjectTypeCar                     ObjectType = 0x03
	ObjectTypeTruck                   ObjectType = 0x04
	ObjectTypeBus                     ObjectType = 0x05
	ObjectTypeMotorcycle              ObjectType = 0x06
	ObjectTypeBicycle                 ObjectType = 0x07
	ObjectTypeSUV                     ObjectType = 0x08
	ObjectTypeLargeTruck              ObjectType = 0x09
	ObjectTypeTricycle                ObjectType = 0x0A
	ObjectTypeSpecialOperationVehicle ObjectType = 0x0B
	ObjectTypeOtherVehicle            ObjectType = 0x0C
	ObjectTypeMotorcyclist            ObjectType = 0x0D
	ObjectTypeElectricBicycle         ObjectType = 0x0E
	ObjectTypeDynamicPedestrian       ObjectType = 0x17
	ObjectTypeVan                     ObjectType = 0x1A
	ObjectTypePoliceCar               ObjectType = 0x1E
	ObjectTypeFireFightingTruck       ObjectType = 0x1F

	ObjectTypeConeBucket            ObjectType = 0x101
	ObjectTypeWaterHorse            ObjectType = 0x102
	ObjectTypeTriangularWarningSign ObjectType = 0x103
	ObjectTypeParkingBarrierClosed  ObjectType = 0x104
	ObjectTypeSpeedBump             ObjectType = 0x105
	ObjectTypeParkingLock           ObjectType = 0x106
	ObjectTypeSquareColumn          ObjectType = 0x107
	ObjectTypeCircularColumn        ObjectType = 0x108
	ObjectTypePole                  ObjectType = 0x109
	ObjectTypeParkingBarrierOpen    ObjectType = 0x10A
	ObjectTypeChargingPile          ObjectType = 0x110
	ObjectTypeStonePier             ObjectType = 0x111
	ObjectTypeLimiter               ObjectType = 0x112
	ObjectTypeOtherStaticObject     ObjectType = 0x116
)

//go:generate go tool stringer -type=CarLightStatus -trimprefix=CarLightStatus

// CarLightStatus is the observed light state of another vehicle.
type CarLightStatus uint32

const (
	CarLightStatusNa CarLightStatus = iota
	CarLightStatusTurnLeft
	CarLightStatusTurnRight
	CarLightStatusDoubleFlash
	CarLightStatusBrake
	CarLightStatusReverse
	CarLightStatusTurnLeftBrake
	CarLightStatusTurnRightBrake
)

// Obstacle unifies dynamic and static detections. Static obstacles leave
// Velocity and CarLightStatus at their zero values.
type Obstacle struct {
	ID             int32
	Type           ObjectType
	Position       Vector3
	Velocity       Vector3
	Width          float64
	Height         float64
	Length         float64
	Heading        float64
	CarLightStatus CarLightStatus
	Color          Color
	Timestamp      uint64
	LaneID         uint64
}

type ObstacleList struct {
	Obstacles []Obstacle
}
