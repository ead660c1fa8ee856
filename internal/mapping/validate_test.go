package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framemap/internal/diagnostic"
)

func parseSample(t *testing.T) *Schema {
	t.Helper()

	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	return s
}

func requireCode(t *testing.T, res *diagnostic.Diagnostics, code string) diagnostic.Diagnostic {
	t.Helper()

	found := res.ByCode(code)
	require.NotEmpty(t, found, "expected diagnostic %q, got %v", code, res.All())

	return found[0]
}

func TestValidate_Sample(t *testing.T) {
	res := Validate(parseSample(t))
	assert.True(t, res.IsValid(), "unexpected errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	requireCode(t, res, "schema_is_nil")
}

func TestValidate_UnknownConverter(t *testing.T) {
	s := parseSample(t)
	tm, _ := s.TypeMapping("DynamicObstacle")
	tm.FieldMappings[1].Converter = "DynamicObjectTypeConvertor"

	res := Validate(s)
	d := requireCode(t, res, "unknown_converter")
	assert.Equal(t, "DynamicObstacle", d.Mapping)
	assert.Equal(t, "Type", d.FieldPath)
	require.NotEmpty(t, d.Suggestions)
	assert.Equal(t, "DynamicObjectTypeConverter", d.Suggestions[0])
}

func TestValidate_UnknownExtractorMapping(t *testing.T) {
	s := parseSample(t)
	s.AggregateMappings[0].Extractors[1].Mapping = "DynamicObstacle_s"

	res := Validate(s)
	d := requireCode(t, res, "unknown_mapping")
	assert.Equal(t, "SRInfo", d.Mapping)
	assert.Contains(t, d.Suggestions, "DynamicObstacles")
	assert.Contains(t, res.Error().Error(), "did you mean")
}

func TestValidate_UnknownItemMapping(t *testing.T) {
	s := parseSample(t)
	s.CollectionMappings[0].ItemMapping = "DynObstacle"

	res := Validate(s)
	d := requireCode(t, res, "unknown_mapping")
	assert.Equal(t, "DynamicObstacles", d.Mapping)
}

func TestValidate_RoutedTypeWithoutAggregate(t *testing.T) {
	s := parseSample(t)
	s.DataIDRouting[30] = "SRInfos"

	res := Validate(s)
	d := requireCode(t, res, "unknown_routed_type")
	assert.Equal(t, "dataIdRouting[30]", d.Mapping)
	assert.Equal(t, []string{"SRInfo"}, d.Suggestions)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	s := parseSample(t)
	s.TypeMappings = append(s.TypeMappings, TypeMapping{ID: "EgoPose", ProtoType: "EgoPose", CommonType: "EgoPose"})
	s.CollectionMappings = append(s.CollectionMappings, CollectionMapping{
		ID: "StopDist", ProtoType: "X", ProtoItemsPath: "Items", ItemMapping: "EgoPose", FilterField: "Type",
	})

	res := Validate(s)
	dups := res.ByCode("duplicate_id")
	require.Len(t, dups, 2)
	assert.Contains(t, dups[0].Message, "already used by a type mapping")
	assert.Contains(t, dups[1].Message, "already used by a converter")
}

func TestValidate_BadExpressions(t *testing.T) {
	s := parseSample(t)
	tm, _ := s.TypeMapping("DynamicObstacle")
	tm.FieldMappings[0].ToCommon = "ToInt32({0}"
	tm.DefaultValues.Common["Velocity"] = "Vector3..Zero"

	res := Validate(s)
	assert.Len(t, res.ByCode("invalid_expression"), 2)
}

func TestValidate_Converters(t *testing.T) {
	tests := []struct {
		name    string
		def     ConverterDef
		code    string
		suggest string
	}{
		{"unknown type", ConverterDef{Type: "enumMapp"}, "unknown_converter_type", ConverterEnumMap},
		{"missing type", ConverterDef{}, "missing_field", ""},
		{
			"unknown transform",
			ConverterDef{Type: ConverterCustom, Transform: "scalepoints", ProtoType: "P"},
			"unknown_transform", TransformScalePoints,
		},
		{
			"bad wire value",
			ConverterDef{Type: ConverterEnumMap, CommonType: "Color", ProtoType: "uint32",
				DefaultToCommon: "None", DefaultToProto: "0", Mappings: map[string]string{"-1": "None"}},
			"invalid_enum_value", "",
		},
		{
			"axes",
			ConverterDef{Type: ConverterCustom, Transform: TransformPoint, ProtoType: "P", Axes: []string{"X", "Y"}, Scale: 1},
			"invalid_axes", "",
		},
		{
			"expr without code",
			ConverterDef{Type: ConverterCustom, Transform: TransformExpr, ProtoType: "uint32", CommonType: "float32"},
			"missing_field", "",
		},
		{
			"role on custom",
			ConverterDef{Type: ConverterCustom, Transform: TransformIdentity, ProtoType: "string", Role: RoleStatic},
			"invalid_role", "",
		},
		{
			"unknown role",
			ConverterDef{Type: ConverterEnumDirect, CommonType: "X", ProtoType: "uint32", Role: "dynamik"},
			"unknown_role", RoleDynamic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Schema{Converters: map[string]ConverterDef{"Conv": tt.def}}

			res := Validate(s)
			d := requireCode(t, res, tt.code)
			assert.Equal(t, "Conv", d.Mapping)

			if tt.suggest != "" {
				assert.Contains(t, d.Suggestions, tt.suggest)
			}
		})
	}
}

func TestValidate_DuplicateRole(t *testing.T) {
	s := parseSample(t)
	s.Converters["OtherTypes"] = ConverterDef{
		Type: ConverterEnumMap, CommonType: "ObjectType", ProtoType: "uint32",
		DefaultToCommon: "Unknown", DefaultToProto: "0", Role: RoleDynamic,
		Mappings: map[string]string{"0": "Unknown"},
	}

	res := Validate(s)
	d := requireCode(t, res, "duplicate_role")
	assert.Equal(t, "OtherTypes", d.Mapping)
}

func TestValidate_RoleFilterWithoutConverter(t *testing.T) {
	s := parseSample(t)
	s.CollectionMappings[0].ToProtoFilter = RoleStatic

	res := Validate(s)
	requireCode(t, res, "missing_role_converter")
}

func TestValidate_WholeMessageNeedsPoint(t *testing.T) {
	s := parseSample(t)
	tm, _ := s.TypeMapping("DynamicObstacle")
	tm.FieldMappings[2].Converter = "LaneLineTypeConverter"

	res := Validate(s)
	d := requireCode(t, res, "invalid_whole_message")
	assert.Equal(t, "Position", d.FieldPath)
}

func TestValidate_Modes(t *testing.T) {
	s := parseSample(t)
	s.AggregateMappings[0].Extractors[0].Mode = ModeAddRange
	s.AggregateMappings[0].Extractors[1].Mode = "append"

	res := Validate(s)
	assert.Len(t, res.ByCode("invalid_mode"), 2)
}

func TestValidate_EmptyEnumMapWarns(t *testing.T) {
	s := &Schema{Converters: map[string]ConverterDef{"Empty": {
		Type: ConverterEnumMap, CommonType: "Color", ProtoType: "uint32", DefaultToCommon: "None", DefaultToProto: "0",
	}}}

	res := Validate(s)
	assert.True(t, res.IsValid())
	requireCode(t, res, "empty_enum_map")
}

func TestCheckTemplate(t *testing.T) {
	require.NoError(t, CheckTemplate("float32({0}) / 100"))
	require.NoError(t, CheckTemplate("ToUInt64({0})"))
	require.Error(t, CheckTemplate("{0} +"))
	require.Error(t, CheckTemplate("x := {0}"))
}

func TestParseWireValue(t *testing.T) {
	v, err := ParseWireValue("0x10")
	require.NoError(t, err)
	assert.Equal(t, uint64(16), v)

	v, err = ParseWireValue(" 255 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(255), v)

	_, err = ParseWireValue("Car")
	require.Error(t, err)
}
