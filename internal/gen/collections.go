package gen

import (
	"fmt"

	"framemap/internal/mapping"
)

type collectionData struct {
	ID         string
	Wrapper    string
	Items      string
	Item       string
	Model      string
	WireItem   string
	Filter     string
	FilterExpr string
	FilterDoc  string
}

func (g *Generator) buildCollections(f *fileBuilder) error {
	for i := range g.schema.CollectionMappings {
		cm := &g.schema.CollectionMappings[i]

		item, ok := g.schema.TypeMapping(cm.ItemMapping)
		if !ok {
			return fmt.Errorf("collection %s: unknown item mapping %q", cm.ID, cm.ItemMapping)
		}

		data := collectionData{
			ID:       cm.ID,
			Wrapper:  f.wireType(cm.ProtoType),
			Items:    cm.ProtoItemsPath,
			Item:     item.ID,
			Model:    f.modelType(item.CommonType),
			WireItem: f.wireType(item.ProtoType),
		}

		switch role := g.schema.FilterRole(cm); {
		case role != "":
			data.Filter = fmt.Sprintf("%s(item.%s)", mapping.RoleMembershipFunc(role), cm.FilterField)
			data.FilterDoc = data.Filter
		case cm.ToProtoFilter != "":
			g.diags.AddWarning("verbatim_expression",
				fmt.Sprintf("filter %q is emitted verbatim and only checked for syntax", cm.ToProtoFilter), cm.ID, "")

			data.FilterExpr = f.expand(cm.ToProtoFilter, "item")
			data.Filter = "keep(item)"
			data.FilterDoc = oneLine(data.FilterExpr)
		}

		if err := f.add("collection", data); err != nil {
			return err
		}
	}

	return nil
}
