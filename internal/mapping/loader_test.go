package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
pluginName: E01
namespace: Plugins.E01
version: "2.1.0"
dataIdRouting:
  21: SRInfo
  "26": SRInfo
typeMappings:
  - id: EgoPose
    protoType: EgoPose
    commonType: EgoPose
    description: GNSS pose
    fieldMappings:
      - proto: Longitude
        common: Longitude
      - proto: Speed
        common: Speed
  - id: DynamicObstacle
    protoType: DynamicObject
    commonType: Obstacle
    category: dynamic
    fieldMappings:
      - proto: ID
        common: ID
        toCommon: "ToInt32({0})"
        toProto: "uint32({0})"
      - proto: Type
        common: Type
        converter: DynamicObjectTypeConverter
      - proto: "."
        common: Position
        converter: DynamicObjectPosition
    defaultValues:
      common:
        Velocity: Vector3.Zero
      proto:
        LightStatus: 0
collectionMappings:
  - id: DynamicObstacles
    protoType: DynamicObjectArray
    protoItemsPath: Objects
    itemMapping: DynamicObstacle
    toProtoFilter: dynamic
converters:
  DynamicObjectTypeConverter:
    type: enumMap
    commonType: ObjectType
    mappings:
      0: Unknown
      1: Pedestrian
      0x03: Car
  DynamicObjectPosition:
    type: custom
    transform: point
    protoType: DynamicObject
    axes: PosX, PosY, PosZ
  LaneLineTypeConverter:
    type: enumDirect
    commonType: LaneLineType
  StopDist:
    type: custom
    protoType: uint32
    commonType: float32
    toCommonCode: "float32({0}) / 100"
    toProtoCode: "uint32({0} * 100)"
aggregateMappings:
  - protoRoot: SRInfo
    commonRoot: CommonData
    extractors:
      - protoPath: EgoPose
        commonPath: EgoPose
        mapping: EgoPose
      - protoPath: DynamicObjects
        commonPath: Obstacles.Obstacles
        mapping: DynamicObstacles
        mode: addRange
unknownTopLevel: ignored
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "E01", s.PluginName)
	assert.Equal(t, "e01", s.PackageName())
	assert.Equal(t, "2.1.0", s.Version)
	assert.Equal(t, DefaultWireImport, s.WireImport)
	assert.Equal(t, DefaultModelImport, s.ModelImport)
	assert.Equal(t, "wire", s.WireAlias())
	assert.Equal(t, "model", s.ModelAlias())
	assert.Equal(t, []byte(sampleYAML), s.Source)

	// Routing keys may be plain or quoted
	assert.Equal(t, RoutingTable{21: "SRInfo", 26: "SRInfo"}, s.DataIDRouting)
	assert.Equal(t, []int{21, 26}, s.RoutedIDs())

	// Type mappings keep their order
	require.Len(t, s.TypeMappings, 2)
	assert.Equal(t, "EgoPose", s.TypeMappings[0].ID)
	assert.Equal(t, "GNSS pose", s.TypeMappings[0].Description)

	obstacle, ok := s.TypeMapping("DynamicObstacle")
	require.True(t, ok)
	assert.Equal(t, "dynamic", obstacle.Category)
	require.Len(t, obstacle.FieldMappings, 3)
	assert.Equal(t, "ToInt32({0})", obstacle.FieldMappings[0].ToCommon)
	assert.True(t, obstacle.FieldMappings[2].IsWholeMessage())
	assert.Equal(t, "Vector3.Zero", obstacle.DefaultValues.Common["Velocity"])
	assert.Equal(t, "0", obstacle.DefaultValues.Proto["LightStatus"])

	// Converter defaults
	enum := s.Converters["DynamicObjectTypeConverter"]
	assert.Equal(t, "uint32", enum.ProtoType)
	assert.Equal(t, "Unknown", enum.DefaultToCommon)
	assert.Equal(t, "0", enum.DefaultToProto)
	assert.Equal(t, "Car", enum.Mappings["0x03"])
	assert.Equal(t, RoleDynamic, enum.EffectiveRole("DynamicObjectTypeConverter"))

	point := s.Converters["DynamicObjectPosition"]
	assert.Equal(t, []string{"PosX", "PosY", "PosZ"}, point.Axes)
	assert.InDelta(t, 100.0, point.Scale, 0)

	assert.Equal(t, "uint32", s.Converters["LaneLineTypeConverter"].ProtoType)
	assert.Equal(t, TransformExpr, s.Converters["StopDist"].Transform)
	assert.Equal(t, []string{"DynamicObjectPosition", "DynamicObjectTypeConverter", "LaneLineTypeConverter", "StopDist"},
		s.ConverterNames())

	// Collection and aggregate defaults
	cm, ok := s.CollectionMapping("DynamicObstacles")
	require.True(t, ok)
	assert.Equal(t, "Type", cm.FilterField)
	assert.Equal(t, RoleDynamic, s.FilterRole(cm))

	am, ok := s.Aggregate("SRInfo")
	require.True(t, ok)
	assert.Equal(t, "NewCommonData", am.CommonConstructor)
	assert.Equal(t, ModeAssign, am.Extractors[0].Mode)
	assert.Equal(t, ModeAddRange, am.Extractors[1].Mode)

	name, ok := s.ConverterFor(RoleDynamic)
	assert.True(t, ok)
	assert.Equal(t, "DynamicObjectTypeConverter", name)

	_, ok = s.ConverterFor(RoleStatic)
	assert.False(t, ok)
}

func TestParseMinimal(t *testing.T) {
	s, err := Parse([]byte("pluginName: X\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", s.Version)
	assert.Equal(t, "generated", s.PackageName())
	assert.NotNil(t, s.DataIDRouting)
	assert.Empty(t, s.TypeMappings)
	assert.Empty(t, s.ConverterNames())
}

func TestParseJSONC(t *testing.T) {
	doc := `{
  // routing for the scene reconstruction root
  "pluginName": "E01",
  "namespace": "e01",
  "dataIdRouting": {"27": "SRInfo"},
  "converters": {
    "ColorConverter": {"type": "enumMap", "commonType": "Color", "mappings": {"0": "None", "2": "White"},},
  },
}`

	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, RoutingTable{27: "SRInfo"}, s.DataIDRouting)
	assert.Equal(t, "White", s.Converters["ColorConverter"].Mappings["2"])
	assert.Equal(t, "Unknown", s.Converters["ColorConverter"].DefaultToCommon)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad yaml", "typeMappings: [", "failed to parse schema"},
		{"non-integer routing key", "dataIdRouting:\n  abc: SRInfo\n", `type id "abc" is not an integer`},
		{"duplicate routing key", "dataIdRouting:\n  26: SRInfo\n  \"26\": Other\n", "duplicate type id 26"},
		{"routing not a map", "dataIdRouting: [1, 2]\n", "expected mapping"},
		{"axes not a list", "converters:\n  P:\n    type: custom\n    axes: {a: b}\n", "axes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))

	s, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "E01", s.PluginName)

	jsonPath := filepath.Join(dir, "schema.jsonc")
	jsonDoc := "// leading comment\n{\"pluginName\": \"J\", \"version\": \"3\",}\n"
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o644))

	s, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "J", s.PluginName)
	assert.Equal(t, "3", s.Version)
	assert.Equal(t, []byte(jsonDoc), s.Source)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"e01", "e01"},
		{"Company.Plugins.E01", "e01"},
		{"sr-info", "srinfo"},
		{"", "generated"},
		{"9lives", "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			s := &Schema{Namespace: tt.namespace}
			assert.Equal(t, tt.expected, s.PackageName())
		})
	}
}
