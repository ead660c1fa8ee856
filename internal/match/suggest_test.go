package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var converterNames = []string{
	"ColorConverter",
	"DynamicObjectTypeConverter",
	"LaneLineTypeConverter",
	"LinePointsConverter",
	"StaticObjectTypeConverter",
}

func TestSuggest_Typo(t *testing.T) {
	got := Suggest("ColourConverter", converterNames)
	assert.Equal(t, []string{"ColorConverter"}, got)
}

func TestSuggest_MissingSuffix(t *testing.T) {
	got := Suggest("Color", converterNames)
	assert.Contains(t, got, "ColorConverter")
}

func TestSuggest_RanksBestFirst(t *testing.T) {
	got := Suggest("DynamicObjectType", converterNames)
	assert.NotEmpty(t, got)
	assert.Equal(t, "DynamicObjectTypeConverter", got[0])
}

func TestSuggest_NothingClose(t *testing.T) {
	assert.Empty(t, Suggest("ParkingStopDist", converterNames))
}

func TestSuggest_ExactMatch(t *testing.T) {
	assert.Nil(t, Suggest("ColorConverter", converterNames))
}

func TestSuggestN_Limit(t *testing.T) {
	known := []string{"LaneLine1", "LaneLine2", "LaneLine3", "LaneLine4"}
	got := SuggestN("LaneLine", known, 2, DefaultThreshold)
	assert.Equal(t, []string{"LaneLine1", "LaneLine2"}, got)
	assert.Nil(t, SuggestN("", known, 2, DefaultThreshold))
}
