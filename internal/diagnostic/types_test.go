package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Severities(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("nested_path_skipped", "skipped", "DynamicObstacle", "Position.X")
	d.AddInfo("verbatim_expr", "inserted verbatim", "ParkingStopDistConverter", "")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError("unknown_mapping", `unknown mapping "LaneLin"`, "SRInfo", "LaneLines", "LaneLine")
	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 3)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
}

func TestDiagnostics_ErrorString(t *testing.T) {
	d := &Diagnostics{}
	d.AddError("unknown_converter", `unknown converter "ColorConv"`, "LaneLine", "LineColor", "ColorConverter")
	d.AddError("duplicate_id", `duplicate type mapping id "EgoPose"`, "", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[LaneLine] LineColor: [unknown_converter] unknown converter "ColorConv" (did you mean "ColorConverter"?); `+
			`[duplicate_id] duplicate type mapping id "EgoPose"`,
		err.Error())
}

func TestDiagnostics_MergeAndByCode(t *testing.T) {
	a := &Diagnostics{}
	a.AddWarning("enum_inverse_collision", "first", "ColorConverter", "")

	b := Diagnostics{}
	b.AddWarning("enum_inverse_collision", "second", "ApaRpaStateConverter", "")
	b.AddError("bad_expr", "bad", "X", "")

	a.Merge(b)
	assert.Len(t, a.ByCode("enum_inverse_collision"), 2)
	assert.Len(t, a.ByCode("bad_expr"), 1)
	assert.Empty(t, a.ByCode("missing"))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
