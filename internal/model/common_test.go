package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCommonData(t *testing.T) {
	c := NewCommonData()

	assert.NotNil(t, c.LaneLines.LaneLines)
	assert.NotNil(t, c.Obstacles.Obstacles)
	assert.NotNil(t, c.RoadMarkers.RoadMarkers)
	assert.NotNil(t, c.TrajectoryPoints.Points)
	assert.NotNil(t, c.SlotList.Slots)
	assert.NotNil(t, c.HPAData.PathDetail.SlotList.Slots)
	assert.NotNil(t, c.HPAData.PathDetail.Obstacles.Obstacles)
	assert.Empty(t, c.Obstacles.Obstacles)
	assert.Equal(t, EgoPose{}, c.EgoPose)
	assert.Equal(t, Vector3{}, Vector3Zero)
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "Car", ObjectTypeCar.String())
	assert.Equal(t, "OtherStaticObject", ObjectTypeOtherStaticObject.String())
	assert.Equal(t, "ObjectType(153)", ObjectType(0x99).String())
	assert.Equal(t, "Reserved", ApaRpaStateReserved.String())
	assert.Equal(t, "White", ColorWhite.String())
}
