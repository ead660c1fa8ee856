package mapping

import (
	"fmt"
	"go/parser"
	"slices"
	"strconv"
	"strings"

	"framemap/internal/diagnostic"
	"framemap/internal/match"
)

// Placeholder is the template token replaced by the source value.
const Placeholder = "{0}"

// Validate checks required fields and cross references of a schema. It does
// not look at Go types; the generated code is left to the compiler for that.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	v := &validator{schema: s, res: res, owners: map[string]string{}}

	for _, name := range s.ConverterNames() {
		v.claim(name, "converter")
		v.converter(name, s.Converters[name])
	}

	v.roles()

	for i := range s.TypeMappings {
		tm := &s.TypeMappings[i]
		v.claim(tm.ID, "type mapping")
		v.typeMapping(tm)
	}

	for i := range s.CollectionMappings {
		cm := &s.CollectionMappings[i]
		v.claim(cm.ID, "collection mapping")
		v.collection(cm)
	}

	for i := range s.AggregateMappings {
		am := &s.AggregateMappings[i]
		v.claim(am.ProtoRoot, "aggregate mapping")
		v.aggregate(am)
	}

	v.routing()

	return res
}

type validator struct {
	schema *Schema
	res    *diagnostic.Diagnostics
	// owners records which section first used a generated function prefix.
	owners map[string]string
}

// claim reserves name as the prefix of <name>ToModel / <name>ToWire.
func (v *validator) claim(name, kind string) {
	if name == "" {
		return
	}

	if prev, ok := v.owners[name]; ok {
		v.res.AddError("duplicate_id",
			fmt.Sprintf("%s id %q is already used by a %s", kind, name, prev), name, "")

		return
	}

	v.owners[name] = kind
}

func (v *validator) ident(value, what, mapping, field string) bool {
	if value == "" {
		v.res.AddError("missing_field", what+" is required", mapping, field)
		return false
	}

	if !IsIdent(value) {
		v.res.AddError("invalid_identifier",
			fmt.Sprintf("%s %q is not a valid identifier", what, value), mapping, field)

		return false
	}

	return true
}

func (v *validator) path(value, what, mapping string) (FieldPath, bool) {
	if value == "" {
		v.res.AddError("missing_field", what+" is required", mapping, "")
		return FieldPath{}, false
	}

	fp, err := ParsePath(value)
	if err != nil {
		v.res.AddError("invalid_path", fmt.Sprintf("%s: %v", what, err), mapping, value)
		return FieldPath{}, false
	}

	return fp, true
}

func (v *validator) typeMapping(tm *TypeMapping) {
	id := tm.ID
	if !v.ident(tm.ID, "type mapping id", "", "") {
		id = "typeMappings"
	}

	v.ident(tm.ProtoType, "protoType", id, "")
	v.ident(tm.CommonType, "commonType", id, "")

	if tm.CommonConstructor != "" {
		v.ident(tm.CommonConstructor, "commonConstructor", id, "")
	}

	for _, fm := range tm.FieldMappings {
		v.fieldMapping(id, fm)
	}

	for _, field := range sortedMapKeys(tm.DefaultValues.Common) {
		v.defaultValue(id, field, tm.DefaultValues.Common[field])
	}

	for _, field := range sortedMapKeys(tm.DefaultValues.Proto) {
		v.defaultValue(id, field, tm.DefaultValues.Proto[field])
	}
}

func (v *validator) fieldMapping(id string, fm FieldMapping) {
	field := fm.Common
	if _, ok := v.path(fm.Common, "common path", id); !ok {
		return
	}

	if fm.IsWholeMessage() {
		def, ok := v.schema.Converters[fm.Converter]
		if !ok || def.Type != ConverterCustom || def.Transform != TransformPoint {
			v.res.AddError("invalid_whole_message",
				fmt.Sprintf("proto %q requires a converter with transform %q", WholeMessage, TransformPoint),
				id, field)

			return
		}
	} else if _, ok := v.path(fm.Proto, "proto path", id); !ok {
		return
	} else if def, ok := v.schema.Converters[fm.Converter]; ok && def.Transform == TransformPoint {
		v.res.AddError("invalid_whole_message",
			fmt.Sprintf("converter %q builds geometry from the whole message; set proto to %q", fm.Converter, WholeMessage),
			id, field)

		return
	}

	if fm.Converter != "" {
		if _, ok := v.schema.Converters[fm.Converter]; !ok {
			v.res.AddError("unknown_converter",
				fmt.Sprintf("unknown converter %q", fm.Converter), id, field,
				match.Suggest(fm.Converter, v.schema.ConverterNames())...)
		}

		return
	}

	v.template(fm.ToCommon, id, field)
	v.template(fm.ToProto, id, field)
}

func (v *validator) defaultValue(id, field, value string) {
	if _, ok := v.path(field, "default field", id); !ok {
		return
	}

	if value == "" {
		v.res.AddError("missing_field", "default value is empty", id, field)
		return
	}

	if _, err := parser.ParseExpr(value); err != nil {
		v.res.AddError("invalid_expression",
			fmt.Sprintf("default value %q is not a Go expression: %v", value, err), id, field)
	}
}

// template syntax-checks an expression template after substituting {0}.
func (v *validator) template(tmpl, id, field string) {
	if tmpl == "" {
		return
	}

	if err := CheckTemplate(tmpl); err != nil {
		v.res.AddError("invalid_expression", err.Error(), id, field)
	}
}

// CheckTemplate reports whether tmpl is a single Go expression once its
// placeholder is substituted.
func CheckTemplate(tmpl string) error {
	expr := strings.ReplaceAll(tmpl, Placeholder, "in")
	if _, err := parser.ParseExpr(expr); err != nil {
		return fmt.Errorf("template %q is not a Go expression: %w", tmpl, err)
	}

	return nil
}

func (v *validator) collection(cm *CollectionMapping) {
	id := cm.ID
	if !v.ident(cm.ID, "collection mapping id", "", "") {
		id = "collectionMappings"
	}

	v.ident(cm.ProtoType, "protoType", id, "")
	v.ident(cm.ProtoItemsPath, "protoItemsPath", id, "")
	v.ident(cm.FilterField, "filterField", id, "")

	if cm.ItemMapping == "" {
		v.res.AddError("missing_field", "itemMapping is required", id, "")
	} else if _, ok := v.schema.TypeMapping(cm.ItemMapping); !ok {
		v.res.AddError("unknown_mapping",
			fmt.Sprintf("unknown item mapping %q", cm.ItemMapping), id, "itemMapping",
			match.Suggest(cm.ItemMapping, typeMappingIDs(v.schema))...)
	}

	if cm.ToProtoFilter == "" {
		return
	}

	if role := v.schema.FilterRole(cm); role != "" {
		if _, ok := v.schema.ConverterFor(role); !ok {
			v.res.AddError("missing_role_converter",
				fmt.Sprintf("filter needs a converter with role %q", role), id, "toProtoFilter")
		}

		return
	}

	v.template(cm.ToProtoFilter, id, "toProtoFilter")
}

func (v *validator) aggregate(am *AggregateMapping) {
	id := am.ProtoRoot
	if !v.ident(am.ProtoRoot, "protoRoot", "", "") {
		id = "aggregateMappings"
	}

	v.ident(am.CommonRoot, "commonRoot", id, "")
	v.ident(am.CommonConstructor, "commonConstructor", id, "")

	for _, ex := range am.Extractors {
		if !v.ident(ex.ProtoPath, "protoPath", id, ex.CommonPath) {
			continue
		}

		if _, ok := v.path(ex.CommonPath, "commonPath", id); !ok {
			continue
		}

		_, isType := v.schema.TypeMapping(ex.Mapping)
		_, isCollection := v.schema.CollectionMapping(ex.Mapping)

		switch {
		case ex.Mapping == "":
			v.res.AddError("missing_field", "mapping is required", id, ex.CommonPath)
		case !isType && !isCollection:
			v.res.AddError("unknown_mapping",
				fmt.Sprintf("unknown mapping %q", ex.Mapping), id, ex.CommonPath,
				match.Suggest(ex.Mapping, v.schema.MappingIDs())...)
		}

		switch ex.Mode {
		case ModeAssign:
		case ModeAddRange:
			if isType {
				v.res.AddError("invalid_mode",
					fmt.Sprintf("mode %q needs a collection mapping, %q is a type mapping", ModeAddRange, ex.Mapping),
					id, ex.CommonPath)
			}
		default:
			v.res.AddError("invalid_mode", fmt.Sprintf("unknown mode %q", ex.Mode), id, ex.CommonPath,
				match.Suggest(ex.Mode, []string{ModeAssign, ModeAddRange})...)
		}
	}
}

func (v *validator) routing() {
	roots := make([]string, 0, len(v.schema.AggregateMappings))
	for _, am := range v.schema.AggregateMappings {
		roots = append(roots, am.ProtoRoot)
	}

	commonRoot := ""

	for _, typeID := range v.schema.RoutedIDs() {
		wireType := v.schema.DataIDRouting[typeID]
		where := "dataIdRouting[" + strconv.Itoa(typeID) + "]"

		if !v.ident(wireType, "routed wire type", where, "") {
			continue
		}

		am, ok := v.schema.Aggregate(wireType)
		if !ok {
			v.res.AddError("unknown_routed_type",
				fmt.Sprintf("no aggregate mapping has protoRoot %q", wireType), where, "",
				match.Suggest(wireType, roots)...)

			continue
		}

		switch {
		case commonRoot == "":
			commonRoot = am.CommonRoot
		case am.CommonRoot != commonRoot:
			v.res.AddError("mixed_common_roots",
				fmt.Sprintf("routed aggregates must share one commonRoot, got %q and %q", commonRoot, am.CommonRoot),
				where, "")
		}
	}
}

func typeMappingIDs(s *Schema) []string {
	ids := make([]string, 0, len(s.TypeMappings))
	for _, tm := range s.TypeMappings {
		ids = append(ids, tm.ID)
	}

	return ids
}

func sortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
