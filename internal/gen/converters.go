package gen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"framemap/internal/mapping"
)

type enumEntry struct {
	Wire   string
	Member string
}

type enumMapData struct {
	Var           string
	Name          string
	Proto         string
	Common        string
	Entries       []enumEntry
	Inverse       []enumEntry
	DefaultCommon string
	DefaultProto  string
}

type membershipData struct {
	Func      string
	Converter string
	Common    string
	Members   []string
}

type convData struct {
	Name   string
	Proto  string
	Common string
}

type pointData struct {
	Name   string
	Wire   string
	Common string
	AxisX  string
	AxisY  string
	AxisZ  string
	Scale  string
}

type exprData struct {
	Name       string
	Proto      string
	Common     string
	ToModel    string
	ToWire     string
	ToModelSrc string
	ToWireSrc  string
}

// buildConverters emits every named converter in name order.
func (g *Generator) buildConverters(f *fileBuilder) error {
	for _, name := range g.schema.ConverterNames() {
		def := g.schema.Converters[name]

		var err error

		switch def.Type {
		case mapping.ConverterEnumMap:
			err = g.enumMap(f, name, def)
		case mapping.ConverterEnumDirect:
			err = f.add("enumDirect", convData{
				Name:   name,
				Proto:  f.wireType(def.ProtoType),
				Common: f.modelType(def.CommonType),
			})
		case mapping.ConverterCustom:
			err = g.custom(f, name, def)
		default:
			err = fmt.Errorf("converter %s: unsupported type %q", name, def.Type)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) enumMap(f *fileBuilder, name string, def mapping.ConverterDef) error {
	type pair struct {
		wire   uint64
		member string
	}

	pairs := make([]pair, 0, len(def.Mappings))

	for key, member := range def.Mappings {
		v, err := mapping.ParseWireValue(key)
		if err != nil {
			return fmt.Errorf("converter %s: %w", name, err)
		}

		pairs = append(pairs, pair{wire: v, member: member})
	}

	slices.SortFunc(pairs, func(a, b pair) int {
		switch {
		case a.wire < b.wire:
			return -1
		case a.wire > b.wire:
			return 1
		}

		return 0
	})

	defaultProto, err := mapping.ParseWireValue(def.DefaultToProto)
	if err != nil {
		return fmt.Errorf("converter %s: default: %w", name, err)
	}

	data := enumMapData{
		Var:           lowerFirst(name),
		Name:          name,
		Proto:         f.wireType(def.ProtoType),
		Common:        f.modelType(def.CommonType),
		DefaultCommon: f.modelMember(def.CommonType, def.DefaultToCommon),
		DefaultProto:  strconv.FormatUint(defaultProto, 10),
	}

	// Several wire values may share a member; the inverse keeps the lowest.
	kept := map[string]uint64{}
	dropped := map[string][]string{}
	members := make([]string, 0, len(pairs))

	for _, p := range pairs {
		e := enumEntry{Wire: strconv.FormatUint(p.wire, 10), Member: f.modelMember(def.CommonType, p.member)}
		data.Entries = append(data.Entries, e)

		if _, ok := kept[p.member]; ok {
			dropped[p.member] = append(dropped[p.member], e.Wire)
			continue
		}

		kept[p.member] = p.wire
		members = append(members, p.member)
		data.Inverse = append(data.Inverse, e)
	}

	for _, m := range members {
		if values, ok := dropped[m]; ok {
			g.diags.AddWarning("enum_inverse_collision",
				fmt.Sprintf("member %s is mapped from several wire values; %sToWire returns %d, not %s",
					m, name, kept[m], strings.Join(values, ", ")),
				name, "")
		}
	}

	if err := f.add("enumMap", data); err != nil {
		return err
	}

	role := def.EffectiveRole(name)
	if role == "" {
		return nil
	}

	if !slices.Contains(members, def.DefaultToCommon) {
		members = append(members, def.DefaultToCommon)
	}

	qualified := make([]string, 0, len(members))
	for _, m := range members {
		qualified = append(qualified, f.modelMember(def.CommonType, m))
	}

	return f.add("membership", membershipData{
		Func:      mapping.RoleMembershipFunc(role),
		Converter: name,
		Common:    data.Common,
		Members:   qualified,
	})
}

func (g *Generator) custom(f *fileBuilder, name string, def mapping.ConverterDef) error {
	switch def.Transform {
	case mapping.TransformScalePoint, mapping.TransformScalePoints, mapping.TransformPoint:
		return f.add(def.Transform, pointData{
			Name:   name,
			Wire:   f.wireType(def.ProtoType),
			Common: f.modelType(def.CommonType),
			AxisX:  def.Axes[0],
			AxisY:  def.Axes[1],
			AxisZ:  def.Axes[2],
			Scale:  strconv.FormatFloat(def.Scale, 'g', -1, 64),
		})
	case mapping.TransformIdentity:
		return f.add("identity", convData{
			Name:   name,
			Proto:  f.wireType(def.ProtoType),
			Common: f.modelType(def.CommonType),
		})
	case mapping.TransformExpr:
		g.diags.AddWarning("verbatim_expression",
			"converter code is emitted verbatim and only checked for syntax", name, "")

		return f.add("expr", exprData{
			Name:       name,
			Proto:      f.wireType(def.ProtoType),
			Common:     f.modelType(def.CommonType),
			ToModel:    f.expand(def.ToCommonCode, "v"),
			ToWire:     f.expand(def.ToProtoCode, "v"),
			ToModelSrc: oneLine(def.ToCommonCode),
			ToWireSrc:  oneLine(def.ToProtoCode),
		})
	}

	return fmt.Errorf("converter %s: unsupported transform %q", name, def.Transform)
}
