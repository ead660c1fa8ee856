package gen

import "strconv"

type route struct {
	ID   int
	Func string
	Wire string
	Root string
}

type routerData struct {
	Result     string
	Routes     []route
	Table      string
	DecodeFunc string
}

// buildRouter emits Decode, one decoder per routed id, TypeIDs and Register.
func (g *Generator) buildRouter(f *fileBuilder) error {
	result := "CommonData"
	routes := make([]route, 0, len(g.schema.DataIDRouting))

	for _, id := range g.schema.RoutedIDs() {
		wireType := g.schema.DataIDRouting[id]
		if am, ok := g.schema.Aggregate(wireType); ok {
			result = am.CommonRoot
		}

		routes = append(routes, route{
			ID:   id,
			Func: "decode" + wireType + strconv.Itoa(id),
			Wire: f.wireType(wireType),
			Root: wireType,
		})
	}

	return f.add("router", routerData{
		Result:     f.modelType(result),
		Routes:     routes,
		Table:      f.routerType("Table"),
		DecodeFunc: f.routerType("DecodeFunc"),
	})
}

