package gen

import (
	"fmt"

	"framemap/internal/mapping"
)

type aggregateData struct {
	Root        string
	Wire        string
	Model       string
	Constructor string
	ToModel     []string
	ToWire      []string
}

// buildAggregates emits one ToModel/ToWire pair per aggregate root. Type
// mapping extractors are skipped when the wire field is absent; collection
// extractors either assign or append, per their mode.
func (g *Generator) buildAggregates(f *fileBuilder) error {
	for i := range g.schema.AggregateMappings {
		am := &g.schema.AggregateMappings[i]
		data := aggregateData{
			Root:        am.ProtoRoot,
			Wire:        f.wireType(am.ProtoRoot),
			Model:       f.modelType(am.CommonRoot),
			Constructor: f.modelType(am.CommonConstructor),
		}

		for _, ex := range am.Extractors {
			toModel, toWire, err := g.extractor(ex)
			if err != nil {
				return fmt.Errorf("aggregate %s: %w", am.ProtoRoot, err)
			}

			data.ToModel = append(data.ToModel, toModel)
			data.ToWire = append(data.ToWire, toWire)
		}

		if err := f.add("aggregate", data); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) extractor(ex mapping.Extractor) (string, string, error) {
	if _, ok := g.schema.TypeMapping(ex.Mapping); ok {
		toModel := fmt.Sprintf("if in.%s != nil {\n\t\tout.%s = %sToModel(in.%s)\n\t}",
			ex.ProtoPath, ex.CommonPath, ex.Mapping, ex.ProtoPath)

		return toModel, fmt.Sprintf("out.%s = %sToWire(&in.%s)", ex.ProtoPath, ex.Mapping, ex.CommonPath), nil
	}

	if _, ok := g.schema.CollectionMapping(ex.Mapping); !ok {
		return "", "", fmt.Errorf("unknown mapping %q", ex.Mapping)
	}

	toWire := fmt.Sprintf("out.%s = %sToWire(in.%s)", ex.ProtoPath, ex.Mapping, ex.CommonPath)

	if ex.Mode == mapping.ModeAddRange {
		return fmt.Sprintf("out.%s = append(out.%s, %sToModel(in.%s)...)",
			ex.CommonPath, ex.CommonPath, ex.Mapping, ex.ProtoPath), toWire, nil
	}

	return fmt.Sprintf("out.%s = %sToModel(in.%s)", ex.CommonPath, ex.Mapping, ex.ProtoPath), toWire, nil
}
