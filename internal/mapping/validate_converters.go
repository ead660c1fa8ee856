package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"framemap/internal/match"
)

var (
	converterKinds = []string{ConverterEnumMap, ConverterEnumDirect, ConverterCustom}
	transformKinds = []string{
		TransformScalePoint, TransformScalePoints, TransformPoint, TransformIdentity, TransformExpr,
	}
)

func (v *validator) converter(name string, c ConverterDef) {
	if !v.ident(name, "converter name", "converters", "") {
		return
	}

	switch c.Type {
	case ConverterEnumMap:
		v.enumMap(name, c)
	case ConverterEnumDirect:
		v.ident(c.CommonType, "commonType", name, "")
		v.ident(c.ProtoType, "protoType", name, "")
	case ConverterCustom:
		v.custom(name, c)
	case "":
		v.res.AddError("missing_field", "converter type is required", name, "type")
	default:
		v.res.AddError("unknown_converter_type",
			fmt.Sprintf("unknown converter type %q", c.Type), name, "type",
			match.Suggest(c.Type, converterKinds)...)
	}

	if c.Role != "" && c.Role != RoleDynamic && c.Role != RoleStatic {
		v.res.AddError("unknown_role", fmt.Sprintf("unknown role %q", c.Role), name, "role",
			match.Suggest(c.Role, []string{RoleDynamic, RoleStatic})...)
	}

	if c.EffectiveRole(name) != "" && c.Type != ConverterEnumMap {
		v.res.AddError("invalid_role", "only enumMap converters can carry a role", name, "role")
	}
}

func (v *validator) enumMap(name string, c ConverterDef) {
	v.ident(c.CommonType, "commonType", name, "")
	v.ident(c.ProtoType, "protoType", name, "")
	v.ident(c.DefaultToCommon, "defaultToCommon", name, "")

	if _, err := ParseWireValue(c.DefaultToProto); err != nil {
		v.res.AddError("invalid_enum_value", err.Error(), name, "defaultToProto")
	}

	if len(c.Mappings) == 0 {
		v.res.AddWarning("empty_enum_map", "enum map has no entries; every value maps to the default", name, "")
	}

	for _, key := range sortedMapKeys(c.Mappings) {
		if _, err := ParseWireValue(key); err != nil {
			v.res.AddError("invalid_enum_value", err.Error(), name, key)
		}

		v.ident(c.Mappings[key], "enum member", name, key)
	}
}

func (v *validator) custom(name string, c ConverterDef) {
	switch c.Transform {
	case TransformScalePoint, TransformScalePoints, TransformPoint:
		v.ident(c.ProtoType, "protoType", name, "")

		if len(c.Axes) != 3 {
			v.res.AddError("invalid_axes", fmt.Sprintf("need 3 axes, got %d", len(c.Axes)), name, "axes")
		}

		for _, axis := range c.Axes {
			v.ident(axis, "axis", name, "axes")
		}

		if c.Scale <= 0 {
			v.res.AddError("invalid_scale", fmt.Sprintf("scale must be positive, got %v", c.Scale), name, "scale")
		}
	case TransformIdentity:
		if c.ProtoType == "" {
			v.res.AddError("missing_field", "protoType is required", name, "")
		}
	case TransformExpr:
		if c.ProtoType == "" || c.CommonType == "" {
			v.res.AddError("missing_field", "expr converters need protoType and commonType", name, "")
		}

		if c.ToCommonCode == "" || c.ToProtoCode == "" {
			v.res.AddError("missing_field", "expr converters need toCommonCode and toProtoCode", name, "")
		}

		v.template(c.ToCommonCode, name, "toCommonCode")
		v.template(c.ToProtoCode, name, "toProtoCode")
	case "":
		v.res.AddError("missing_field", "custom converter needs a transform", name, "transform")
	default:
		v.res.AddError("unknown_transform",
			fmt.Sprintf("unknown transform %q", c.Transform), name, "transform",
			match.Suggest(c.Transform, transformKinds)...)
	}
}

// roles checks that each role is carried by at most one converter.
func (v *validator) roles() {
	seen := map[string]string{}

	for _, name := range v.schema.ConverterNames() {
		role := v.schema.Converters[name].EffectiveRole(name)
		if role == "" {
			continue
		}

		if prev, ok := seen[role]; ok {
			v.res.AddError("duplicate_role",
				fmt.Sprintf("role %q is already carried by %s", role, prev), name, "role")

			continue
		}

		seen[role] = name
	}
}

// ParseWireValue parses an enum wire value written in decimal or 0x hex.
func ParseWireValue(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("wire value %q is not a non-negative integer", s)
	}

	return v, nil
}
