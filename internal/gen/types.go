package gen

import (
	"fmt"

	"framemap/internal/common"
	"framemap/internal/mapping"
)

type typeMappingData struct {
	ID            string
	Wire          string
	Model         string
	Description   string
	Constructor   string
	ModelDefaults []string
	ToModel       []string
	WireDefaults  []string
	ToWire        []string
}

// buildTypeMappings emits a ToModel/ToWire pair per type mapping in schema
// order.
func (g *Generator) buildTypeMappings(f *fileBuilder) error {
	for i := range g.schema.TypeMappings {
		if err := g.typeMapping(f, &g.schema.TypeMappings[i]); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) typeMapping(f *fileBuilder, tm *mapping.TypeMapping) error {
	data := typeMappingData{
		ID:          tm.ID,
		Wire:        f.wireType(tm.ProtoType),
		Model:       f.modelType(tm.CommonType),
		Description: oneLine(tm.Description),
	}

	if tm.CommonConstructor != "" {
		data.Constructor = f.modelType(tm.CommonConstructor)
	}

	data.ModelDefaults = g.defaults(f, tm.ID, tm.DefaultValues.Common, f.modelPkg())
	data.WireDefaults = g.defaults(f, tm.ID, tm.DefaultValues.Proto, f.wirePkg())

	written := map[string]bool{}

	var skipped []mapping.FieldMapping

	for _, fm := range tm.FieldMappings {
		commonPath, _ := mapping.ParsePath(fm.Common)

		protoSimple := fm.IsWholeMessage()
		if !protoSimple {
			protoPath, _ := mapping.ParsePath(fm.Proto)
			protoSimple = protoPath.IsSimple()
		}

		if !commonPath.IsSimple() || !protoSimple {
			skipped = append(skipped, fm)
			continue
		}

		written[fm.Common] = true
		toModel, toWire := g.fieldStatements(f, tm.ID, fm)
		data.ToModel = append(data.ToModel, toModel)
		data.ToWire = append(data.ToWire, toWire)
	}

	for _, fm := range skipped {
		commonPath, _ := mapping.ParsePath(fm.Common)
		if owner, ok := writtenAncestor(commonPath, written); ok {
			g.diags.AddInfo("nested_path_covered",
				fmt.Sprintf("%s -> %s is covered by the mapping of %s", fm.Proto, fm.Common, owner),
				tm.ID, fm.Common)

			continue
		}

		g.diags.AddWarning("nested_path_skipped",
			fmt.Sprintf("%s -> %s uses a nested path and is not generated", fm.Proto, fm.Common),
			tm.ID, fm.Common)
	}

	return f.add("typeMapping", data)
}

// writtenAncestor returns the closest ancestor of p that the type mapping
// assigns as a whole.
func writtenAncestor(p mapping.FieldPath, written map[string]bool) (string, bool) {
	for anc := p.Parent(); !anc.IsEmpty(); anc = anc.Parent() {
		if written[anc.String()] {
			return anc.String(), true
		}
	}

	return "", false
}

// fieldStatements returns the ToModel and ToWire assignments of one field.
func (g *Generator) fieldStatements(f *fileBuilder, id string, fm mapping.FieldMapping) (string, string) {
	if fm.Converter != "" {
		def := g.schema.Converters[fm.Converter]
		if def.Type == mapping.ConverterCustom && def.Transform == mapping.TransformPoint {
			return fmt.Sprintf("out.%s = %sToModel(in)", fm.Common, fm.Converter),
				fmt.Sprintf("%sToWire(in.%s, out)", fm.Converter, fm.Common)
		}

		return fmt.Sprintf("out.%s = %sToModel(in.%s)", fm.Common, fm.Converter, fm.Proto),
			fmt.Sprintf("out.%s = %sToWire(in.%s)", fm.Proto, fm.Converter, fm.Common)
	}

	toModel := g.fieldExpr(f, id, fm.Common, fm.ToCommon, "in."+fm.Proto)
	toWire := g.fieldExpr(f, id, fm.Common, fm.ToProto, "in."+fm.Common)

	return "out." + fm.Common + " = " + toModel, "out." + fm.Proto + " = " + toWire
}

func (g *Generator) fieldExpr(f *fileBuilder, id, field, tmpl, src string) string {
	if tmpl == "" {
		return src
	}

	g.diags.AddWarning("verbatim_expression",
		fmt.Sprintf("template %q is emitted verbatim and only checked for syntax", tmpl), id, field)

	return f.expand(tmpl, src)
}

// defaults renders the default assignments of one side in field order.
// Nested targets are reported and skipped.
func (g *Generator) defaults(f *fileBuilder, id string, values map[string]string, pkg pkgRef) []string {
	stmts := make([]string, 0, len(values))

	for _, field := range common.SortedKeys(values) {
		fp, _ := mapping.ParsePath(field)
		if !fp.IsSimple() {
			g.diags.AddWarning("nested_path_skipped",
				fmt.Sprintf("default for %s uses a nested path and is not generated", field), id, field)

			continue
		}

		stmts = append(stmts, "out."+field+" = "+f.value(pkg, values[field]))
	}

	return stmts
}
