package mapping

import (
	"strings"
	"unicode"

	"framemap/internal/common"
)

// Default import paths of the packages generated code refers to.
const (
	DefaultWireImport    = "framemap/internal/wire"
	DefaultModelImport   = "framemap/internal/model"
	DefaultRouterImport  = "framemap/internal/router"
	DefaultConvertImport = "framemap/internal/convert"
)

// Converter kinds.
const (
	ConverterEnumMap    = "enumMap"
	ConverterEnumDirect = "enumDirect"
	ConverterCustom     = "custom"
)

// Transform kinds of custom converters.
const (
	TransformScalePoint  = "scalePoint"
	TransformScalePoints = "scalePoints"
	TransformPoint       = "point"
	TransformIdentity    = "identity"
	TransformExpr        = "expr"
)

// Roles tie an enum converter's codomain to a membership test
// (IsDynamicType / IsStaticType) used by collection filters.
const (
	RoleDynamic = "dynamic"
	RoleStatic  = "static"
)

// Reserved converter names that imply a role when none is declared.
const (
	DynamicTypeConverter = "DynamicObjectTypeConverter"
	StaticTypeConverter  = "StaticObjectTypeConverter"
)

// Extractor modes.
const (
	ModeAssign   = "assign"
	ModeAddRange = "addRange"
)

// WholeMessage is the proto path that passes the entire source message to a
// point converter.
const WholeMessage = "."

// Schema is the root of a mapping schema document.
type Schema struct {
	PluginName string `yaml:"pluginName"`
	// Namespace becomes the package clause of generated code. A dotted
	// namespace uses its last segment.
	Namespace     string `yaml:"namespace"`
	Version       string `yaml:"version"`
	WireImport    string `yaml:"wireImport"`
	ModelImport   string `yaml:"modelImport"`
	RouterImport  string `yaml:"routerImport"`
	ConvertImport string `yaml:"convertImport"`

	DataIDRouting      RoutingTable            `yaml:"dataIdRouting"`
	TypeMappings       []TypeMapping           `yaml:"typeMappings"`
	CollectionMappings []CollectionMapping     `yaml:"collectionMappings"`
	Converters         map[string]ConverterDef `yaml:"converters"`
	AggregateMappings  []AggregateMapping      `yaml:"aggregateMappings"`

	// Source holds the document bytes the schema was parsed from.
	Source []byte `yaml:"-"`
}

// RoutingTable maps a frame type id to the wire type carried under it.
type RoutingTable map[int]string

// TypeMapping pairs one wire message with one normalized type.
type TypeMapping struct {
	ID          string `yaml:"id"`
	ProtoType   string `yaml:"protoType"`
	CommonType  string `yaml:"commonType"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	// CommonConstructor, when set, names a function of the normalized
	// package returning a CommonType value to start from instead of its zero
	// value.
	CommonConstructor string         `yaml:"commonConstructor"`
	FieldMappings     []FieldMapping `yaml:"fieldMappings"`
	DefaultValues     DefaultValues  `yaml:"defaultValues"`
}

// DefaultValues are assigned after the field mappings of a non-nil input,
// so a default wins over a mapped value. A nil input yields the bare
// starting value without defaults. A value of the form
// "Type.Member" names an enum member or package-level value of the target
// package; anything else is a Go literal.
type DefaultValues struct {
	Common map[string]string `yaml:"common"`
	Proto  map[string]string `yaml:"proto"`
}

// FieldMapping routes one wire field to one normalized field.
type FieldMapping struct {
	Proto     string `yaml:"proto"`
	Common    string `yaml:"common"`
	Converter string `yaml:"converter"`
	// ToCommon and ToProto are expression templates; {0} is the source value.
	ToCommon string `yaml:"toCommon"`
	ToProto  string `yaml:"toProto"`
}

// ConverterDef describes a named value converter.
type ConverterDef struct {
	Type       string `yaml:"type"`
	ProtoType  string `yaml:"protoType"`
	CommonType string `yaml:"commonType"`

	// Mappings keys are wire values (decimal or 0x hex), values are members
	// of CommonType.
	Mappings        map[string]string `yaml:"mappings"`
	DefaultToCommon string            `yaml:"defaultToCommon"`
	DefaultToProto  string            `yaml:"defaultToProto"`
	Role            string            `yaml:"role"`

	Transform string `yaml:"transform"`
	// Axes name the wire fields of point kinds, in X, Y, Z order.
	Axes  []string `yaml:"-"`
	Scale float64  `yaml:"scale"`

	ToCommonCode string `yaml:"toCommonCode"`
	ToProtoCode  string `yaml:"toProtoCode"`
}

// CollectionMapping converts a repeated wire field wrapped in a message to a
// slice of normalized items.
type CollectionMapping struct {
	ID             string `yaml:"id"`
	ProtoType      string `yaml:"protoType"`
	ProtoItemsPath string `yaml:"protoItemsPath"`
	ItemMapping    string `yaml:"itemMapping"`
	// ToProtoFilter is either a role ("dynamic", "static") resolved through
	// the role's membership test, or a Go boolean expression over item.
	ToProtoFilter string `yaml:"toProtoFilter"`
	FilterField   string `yaml:"filterField"`
}

// AggregateMapping composes a routed wire root from type and collection
// mappings. CommonConstructor must return a pointer to CommonRoot.
type AggregateMapping struct {
	ProtoRoot         string      `yaml:"protoRoot"`
	CommonRoot        string      `yaml:"commonRoot"`
	CommonConstructor string      `yaml:"commonConstructor"`
	Extractors        []Extractor `yaml:"extractors"`
}

// Extractor moves one wire field of the root into the normalized root.
type Extractor struct {
	ProtoPath  string `yaml:"protoPath"`
	CommonPath string `yaml:"commonPath"`
	Mapping    string `yaml:"mapping"`
	Mode       string `yaml:"mode"`
}

// PackageName returns the Go package name for generated code.
func (s *Schema) PackageName() string {
	ns := s.Namespace
	if i := strings.LastIndex(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}

	var b strings.Builder

	for _, r := range ns {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		return "generated"
	}

	return name
}

// WireAlias returns the package qualifier of wire types.
func (s *Schema) WireAlias() string {
	return common.PkgAlias(s.WireImport)
}

// ModelAlias returns the package qualifier of normalized types.
func (s *Schema) ModelAlias() string {
	return common.PkgAlias(s.ModelImport)
}

// RouterAlias returns the package qualifier of the router package.
func (s *Schema) RouterAlias() string {
	return common.PkgAlias(s.RouterImport)
}

// ConvertAlias returns the package qualifier of the numeric conversions.
func (s *Schema) ConvertAlias() string {
	return common.PkgAlias(s.ConvertImport)
}

// TypeMapping returns the type mapping with the given id.
func (s *Schema) TypeMapping(id string) (*TypeMapping, bool) {
	for i := range s.TypeMappings {
		if s.TypeMappings[i].ID == id {
			return &s.TypeMappings[i], true
		}
	}

	return nil, false
}

// CollectionMapping returns the collection mapping with the given id.
func (s *Schema) CollectionMapping(id string) (*CollectionMapping, bool) {
	for i := range s.CollectionMappings {
		if s.CollectionMappings[i].ID == id {
			return &s.CollectionMappings[i], true
		}
	}

	return nil, false
}

// Aggregate returns the aggregate mapping rooted at the given wire type.
func (s *Schema) Aggregate(protoRoot string) (*AggregateMapping, bool) {
	for i := range s.AggregateMappings {
		if s.AggregateMappings[i].ProtoRoot == protoRoot {
			return &s.AggregateMappings[i], true
		}
	}

	return nil, false
}

// ConverterNames returns converter names in generation order.
func (s *Schema) ConverterNames() []string {
	return common.SortedKeys(s.Converters)
}

// RoutedIDs returns routed type ids in ascending order.
func (s *Schema) RoutedIDs() []int {
	return common.SortedKeys(s.DataIDRouting)
}

// MappingIDs returns every type and collection mapping id in schema order.
func (s *Schema) MappingIDs() []string {
	ids := make([]string, 0, len(s.TypeMappings)+len(s.CollectionMappings))
	for _, tm := range s.TypeMappings {
		ids = append(ids, tm.ID)
	}

	for _, cm := range s.CollectionMappings {
		ids = append(ids, cm.ID)
	}

	return ids
}

// ConverterFor returns the converter whose role is role.
func (s *Schema) ConverterFor(role string) (string, bool) {
	for _, name := range s.ConverterNames() {
		if s.Converters[name].EffectiveRole(name) == role {
			return name, true
		}
	}

	return "", false
}

// EffectiveRole returns the declared role, or the role implied by a reserved
// converter name.
func (c ConverterDef) EffectiveRole(name string) string {
	if c.Role != "" {
		return c.Role
	}

	switch name {
	case DynamicTypeConverter:
		return RoleDynamic
	case StaticTypeConverter:
		return RoleStatic
	}

	return ""
}

// IsWholeMessage reports whether the field mapping passes the entire source
// message to its converter.
func (fm FieldMapping) IsWholeMessage() bool {
	return fm.Proto == WholeMessage
}

// IsRoleFilter reports whether the filter names a role rather than an
// expression.
func (cm CollectionMapping) IsRoleFilter() bool {
	return cm.ToProtoFilter == RoleDynamic || cm.ToProtoFilter == RoleStatic
}

// RoleMembershipFunc returns the generated membership test for role.
func RoleMembershipFunc(role string) string {
	switch role {
	case RoleDynamic:
		return "IsDynamicType"
	case RoleStatic:
		return "IsStaticType"
	}

	return ""
}

// FilterRole returns the role a collection's ToWire filter tests, or "" when
// the filter is absent or an expression. A role keyword wins; otherwise a set
// filter on an item mapping categorized dynamic or static uses that category.
func (s *Schema) FilterRole(cm *CollectionMapping) string {
	if cm.ToProtoFilter == "" {
		return ""
	}

	if cm.IsRoleFilter() {
		return cm.ToProtoFilter
	}

	if tm, ok := s.TypeMapping(cm.ItemMapping); ok {
		if tm.Category == RoleDynamic || tm.Category == RoleStatic {
			return tm.Category
		}
	}

	return ""
}
