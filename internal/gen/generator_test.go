package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framemap/internal/diagnostic"
	"framemap/internal/mapping"
)

const demoSchema = `
pluginName: Demo
namespace: Plugins.Demo
version: "1.0"
dataIdRouting:
  21: SRInfo
  26: SRInfo
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
        toCommon: "{0} * 3.6"
        toProto: "{0} / 3.6"
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
        LightStatus: "0"
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
      3: Car
      4: Car
  DynamicObjectPosition:
    type: custom
    transform: point
    protoType: DynamicObject
    axes: PosX, PosY, PosZ
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
`

func generate(t *testing.T, src string) (map[string]string, *diagnostic.Diagnostics) {
	t.Helper()

	s, err := mapping.Parse([]byte(src))
	require.NoError(t, err)

	files, diags, err := NewGenerator(GeneratorConfig{OutputDir: t.TempDir()}).Generate(s)
	require.NoError(t, err, "diagnostics: %v", diags)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Filename] = string(f.Content)
	}

	return out, diags
}

func TestGenerate_FilesParse(t *testing.T) {
	files, _ := generate(t, demoSchema)

	require.Len(t, files, 5)

	for _, name := range []string{EnumFile, TypeFile, CollectionFile, AggregateFile, RouterFile} {
		content, ok := files[name]
		require.True(t, ok, "missing %s", name)

		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, name, content, parser.ParseComments)
		require.NoError(t, err, "%s:\n%s", name, content)
		assert.Equal(t, "demo", f.Name.Name)
		assert.True(t, strings.HasPrefix(content, "// Code generated by framemap-gen from schema Demo version 1.0 (blake3 "))
		assert.Contains(t, content, "DO NOT EDIT.")
	}
}

func TestGenerate_Header(t *testing.T) {
	s, err := mapping.Parse([]byte(demoSchema))
	require.NoError(t, err)

	files, _, err := NewGenerator(DefaultGeneratorConfig()).Generate(s)
	require.NoError(t, err)

	fp := Fingerprint([]byte(demoSchema))
	assert.Len(t, fp, 16)
	assert.Contains(t, string(files[0].Content), "(blake3 "+fp+")")
}

func TestGenerate_PackageOverride(t *testing.T) {
	s, err := mapping.Parse([]byte(demoSchema))
	require.NoError(t, err)

	files, _, err := NewGenerator(GeneratorConfig{PackageName: "custom"}).Generate(s)
	require.NoError(t, err)

	for _, f := range files {
		assert.Contains(t, string(f.Content), "\npackage custom\n")
	}
}

func TestGenerate_EnumConverter(t *testing.T) {
	files, diags := generate(t, demoSchema)
	src := files[EnumFile]

	assert.Contains(t, src, "func DynamicObjectTypeConverterToModel(v uint32) model.ObjectType {")
	assert.Contains(t, src, "func DynamicObjectTypeConverterToWire(v model.ObjectType) uint32 {")
	assert.Contains(t, src, "return model.ObjectTypeUnknown")
	assert.Contains(t, src, "func IsDynamicType(v model.ObjectType) bool {")
	assert.Contains(t, src, "case model.ObjectTypeUnknown, model.ObjectTypePedestrian, model.ObjectTypeCar:")
	assert.Regexp(t, `model\.ObjectTypeCar:\s+3,`, src)
	assert.NotRegexp(t, `model\.ObjectTypeCar:\s+4,`, src)
	assert.Contains(t, src, `"framemap/internal/model"`)
	assert.NotContains(t, src, `"framemap/internal/convert"`)

	collision := diags.ByCode("enum_inverse_collision")
	require.Len(t, collision, 1)
	assert.Equal(t, "DynamicObjectTypeConverter", collision[0].Mapping)
}

func TestGenerate_PointConverter(t *testing.T) {
	files, _ := generate(t, demoSchema)
	src := files[EnumFile]

	assert.Contains(t, src, "func DynamicObjectPositionToModel(in *wire.DynamicObject) model.Vector3 {")
	assert.Contains(t, src, "return model.Vector3{X: in.PosX / 100, Y: in.PosY / 100, Z: in.PosZ / 100}")
	assert.Contains(t, src, "func DynamicObjectPositionToWire(v model.Vector3, out *wire.DynamicObject) {")
}

func TestGenerate_TypeMappings(t *testing.T) {
	files, diags := generate(t, demoSchema)
	src := files[TypeFile]

	assert.Contains(t, src, "func EgoPoseToModel(in *wire.EgoPose) model.EgoPose {")
	assert.Contains(t, src, "// GNSS pose")
	assert.Contains(t, src, "out.Speed = in.Speed * 3.6")
	assert.Contains(t, src, "out.Speed = in.Speed / 3.6")
	assert.Contains(t, src, "out.ID = convert.ToInt32(in.ID)")
	assert.Contains(t, src, "out.ID = uint32(in.ID)")
	assert.Contains(t, src, "out.Type = DynamicObjectTypeConverterToModel(in.Type)")
	assert.Contains(t, src, "out.Type = DynamicObjectTypeConverterToWire(in.Type)")
	assert.Contains(t, src, "out.Position = DynamicObjectPositionToModel(in)")
	assert.Contains(t, src, "DynamicObjectPositionToWire(in.Position, out)")
	assert.Contains(t, src, "out.Velocity = model.Vector3Zero")
	assert.Contains(t, src, "out.LightStatus = 0")
	assert.Contains(t, src, `"framemap/internal/convert"`)

	assert.NotEmpty(t, diags.ByCode("verbatim_expression"))
}

func TestGenerate_DefaultsFollowMappings(t *testing.T) {
	src := strings.Replace(demoSchema, "        Velocity: Vector3.Zero\n", "        Velocity: Vector3.Zero\n        ID: \"7\"\n", 1)
	files, _ := generate(t, src)
	out := files[TypeFile]

	start := strings.Index(out, "func DynamicObstacleToModel(")
	end := strings.Index(out, "func DynamicObstacleToWire(")
	require.Positive(t, start)
	require.Greater(t, end, start)

	body := out[start:end]
	nilCheck := strings.Index(body, "if in == nil")
	mapped := strings.Index(body, "out.ID = convert.ToInt32(in.ID)")
	def := strings.Index(body, "out.ID = 7")

	require.Positive(t, nilCheck)
	require.Positive(t, mapped)
	require.Positive(t, def)
	assert.Less(t, nilCheck, mapped)
	assert.Less(t, mapped, def, "default must overwrite the mapped value")
	assert.Less(t, nilCheck, strings.Index(body, "out.Velocity = model.Vector3Zero"))
}

func TestGenerate_Collection(t *testing.T) {
	files, _ := generate(t, demoSchema)
	src := files[CollectionFile]

	assert.Contains(t, src, "func DynamicObstaclesToModel(in *wire.DynamicObjectArray) []model.Obstacle {")
	assert.Contains(t, src, "out = append(out, DynamicObstacleToModel(item))")
	assert.Contains(t, src, "if !IsDynamicType(item.Type) {")
	assert.Contains(t, src, "out.Objects = append(out.Objects, DynamicObstacleToWire(item))")
}

func TestGenerate_CollectionExpressionFilter(t *testing.T) {
	src := strings.Replace(demoSchema, "toProtoFilter: dynamic", `toProtoFilter: "{0}.ID > 10"`, 1)
	src = strings.Replace(src, "category: dynamic\n", "", 1)

	files, diags := generate(t, src)
	out := files[CollectionFile]

	assert.Contains(t, out, "keep := func(item *model.Obstacle) bool {")
	assert.Contains(t, out, "return item.ID > 10")
	assert.Contains(t, out, "if !keep(item) {")

	var filterWarned bool
	for _, d := range diags.ByCode("verbatim_expression") {
		filterWarned = filterWarned || d.Mapping == "DynamicObstacles"
	}

	assert.True(t, filterWarned)
}

func TestGenerate_Aggregate(t *testing.T) {
	files, _ := generate(t, demoSchema)
	src := files[AggregateFile]

	assert.Contains(t, src, "func SRInfoToModel(in *wire.SRInfo) *model.CommonData {")
	assert.Contains(t, src, "out := model.NewCommonData()")
	assert.Contains(t, src, "if in.EgoPose != nil {")
	assert.Contains(t, src, "out.EgoPose = EgoPoseToModel(in.EgoPose)")
	assert.Contains(t, src, "out.Obstacles.Obstacles = append(out.Obstacles.Obstacles, DynamicObstaclesToModel(in.DynamicObjects)...)")
	assert.Contains(t, src, "out.EgoPose = EgoPoseToWire(&in.EgoPose)")
	assert.Contains(t, src, "out.DynamicObjects = DynamicObstaclesToWire(in.Obstacles.Obstacles)")
}

func TestGenerate_Router(t *testing.T) {
	files, _ := generate(t, demoSchema)
	src := files[RouterFile]

	assert.Contains(t, src, "func Decode(typeID int, data []byte) (*model.CommonData, bool) {")
	assert.Contains(t, src, "case 21:")
	assert.Contains(t, src, "return decodeSRInfo26(data)")
	assert.Contains(t, src, "if err := msg.Unmarshal(data); err != nil {")
	assert.Contains(t, src, "return []int{21, 26}")
	assert.Contains(t, src, "func Register(t *router.Table) error {")
	assert.Contains(t, src, "map[int]router.DecodeFunc{")
}

func TestGenerate_NestedPathWarns(t *testing.T) {
	src := strings.Replace(demoSchema, `      - proto: Longitude
        common: Longitude`, `      - proto: Longitude
        common: Pose.Longitude`, 1)

	files, diags := generate(t, src)

	assert.NotContains(t, files[TypeFile], "Pose.Longitude")

	skipped := diags.ByCode("nested_path_skipped")
	require.Len(t, skipped, 1)
	assert.Equal(t, "EgoPose", skipped[0].Mapping)
	assert.Equal(t, "Pose.Longitude", skipped[0].FieldPath)
}

func TestGenerate_NestedPathCoveredByParent(t *testing.T) {
	src := strings.Replace(demoSchema, `        converter: DynamicObjectPosition
`, `        converter: DynamicObjectPosition
      - proto: PosX
        common: Position.X
`, 1)

	files, diags := generate(t, src)

	assert.NotContains(t, files[TypeFile], "out.Position.X")
	assert.Empty(t, diags.ByCode("nested_path_skipped"))

	covered := diags.ByCode("nested_path_covered")
	require.Len(t, covered, 1)
	assert.Equal(t, "DynamicObstacle", covered[0].Mapping)
	assert.Contains(t, covered[0].Message, "mapping of Position")
}

func TestGenerate_ReferentialErrorsBlockOutput(t *testing.T) {
	src := strings.Replace(demoSchema, "mapping: DynamicObstacles", "mapping: DynamicObstacle_s", 1)

	s, err := mapping.Parse([]byte(src))
	require.NoError(t, err)

	files, diags, err := NewGenerator(DefaultGeneratorConfig()).Generate(s)
	require.Error(t, err)
	assert.Nil(t, files)
	require.True(t, diags.HasErrors())

	unknown := diags.ByCode("unknown_mapping")
	require.Len(t, unknown, 1)
	assert.Contains(t, unknown[0].Suggestions, "DynamicObstacles")
}

func TestGenerate_NilSchema(t *testing.T) {
	files, diags, err := NewGenerator(DefaultGeneratorConfig()).Generate(nil)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, diags.HasErrors())
}

func TestGenerate_EmptySections(t *testing.T) {
	files, _ := generate(t, `
namespace: Empty
typeMappings:
  - id: EgoPose
    protoType: EgoPose
    commonType: EgoPose
`)

	src := files[CollectionFile]
	assert.Contains(t, src, "package empty")
	assert.NotContains(t, src, "import")

	router := files[RouterFile]
	assert.Contains(t, router, "return nil, false")
	assert.Contains(t, router, "return []int{}")
}
