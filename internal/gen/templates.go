package gen

import "text/template"

var codeTemplates = template.Must(template.New("framemap").Parse(fileTmpl + enumTmpl + customTmpl + mappingTmpl + routerTmpl))

const fileTmpl = `
{{define "file"}}// Code generated by framemap-gen from schema {{.Plugin}} version {{.Version}} (blake3 {{.Fingerprint}}). DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}{{range .Blocks}}
{{.}}{{end}}{{end}}
`

const enumTmpl = `
{{define "enumMap"}}var {{.Var}}ToModel = map[{{.Proto}}]{{.Common}}{
{{range .Entries}}	{{.Wire}}: {{.Member}},
{{end}}}

var {{.Var}}ToWire = map[{{.Common}}]{{.Proto}}{
{{range .Inverse}}	{{.Member}}: {{.Wire}},
{{end}}}

// {{.Name}}ToModel maps a wire value to {{.Common}}. Unmapped values yield {{.DefaultCommon}}.
func {{.Name}}ToModel(v {{.Proto}}) {{.Common}} {
	if out, ok := {{.Var}}ToModel[v]; ok {
		return out
	}

	return {{.DefaultCommon}}
}

// {{.Name}}ToWire maps {{.Common}} to its wire value. Unmapped members yield {{.DefaultProto}}.
func {{.Name}}ToWire(v {{.Common}}) {{.Proto}} {
	if out, ok := {{.Var}}ToWire[v]; ok {
		return out
	}

	return {{.DefaultProto}}
}
{{end}}
{{define "membership"}}// {{.Func}} reports whether v is in the range of {{.Converter}}ToModel.
func {{.Func}}(v {{.Common}}) bool {
	switch v {
	case {{range $i, $m := .Members}}{{if $i}}, {{end}}{{$m}}{{end}}:
		return true
	}

	return false
}
{{end}}
{{define "enumDirect"}}// {{.Name}}ToModel reinterprets a wire value as {{.Common}}.
func {{.Name}}ToModel(v {{.Proto}}) {{.Common}} {
	return {{.Common}}(v)
}

// {{.Name}}ToWire reinterprets {{.Common}} as a wire value.
func {{.Name}}ToWire(v {{.Common}}) {{.Proto}} {
	return {{.Proto}}(v)
}
{{end}}`

const customTmpl = `
{{define "scalePoint"}}// {{.Name}}ToModel converts {{.Wire}} to {{.Common}}, dividing each axis by {{.Scale}}.
func {{.Name}}ToModel(in *{{.Wire}}) {{.Common}} {
	if in == nil {
		return {{.Common}}{}
	}

	return {{.Common}}{X: in.{{.AxisX}} / {{.Scale}}, Y: in.{{.AxisY}} / {{.Scale}}, Z: in.{{.AxisZ}} / {{.Scale}}}
}

// {{.Name}}ToWire converts {{.Common}} to {{.Wire}}, multiplying each axis by {{.Scale}}.
func {{.Name}}ToWire(v {{.Common}}) *{{.Wire}} {
	return &{{.Wire}}{ {{- .AxisX}}: v.X * {{.Scale}}, {{.AxisY}}: v.Y * {{.Scale}}, {{.AxisZ}}: v.Z * {{.Scale}}}
}
{{end}}
{{define "scalePoints"}}// {{.Name}}ToModel converts every {{.Wire}} to {{.Common}}, dividing each axis by {{.Scale}}.
// Nil elements become the origin.
func {{.Name}}ToModel(in []*{{.Wire}}) []{{.Common}} {
	out := make([]{{.Common}}, 0, len(in))
	for _, p := range in {
		if p == nil {
			out = append(out, {{.Common}}{})
			continue
		}

		out = append(out, {{.Common}}{X: p.{{.AxisX}} / {{.Scale}}, Y: p.{{.AxisY}} / {{.Scale}}, Z: p.{{.AxisZ}} / {{.Scale}}})
	}

	return out
}

// {{.Name}}ToWire converts every {{.Common}} to {{.Wire}}, multiplying each axis by {{.Scale}}.
func {{.Name}}ToWire(in []{{.Common}}) []*{{.Wire}} {
	out := make([]*{{.Wire}}, 0, len(in))
	for _, v := range in {
		out = append(out, &{{.Wire}}{ {{- .AxisX}}: v.X * {{.Scale}}, {{.AxisY}}: v.Y * {{.Scale}}, {{.AxisZ}}: v.Z * {{.Scale}}})
	}

	return out
}
{{end}}
{{define "point"}}// {{.Name}}ToModel builds {{.Common}} from the {{.AxisX}}, {{.AxisY}} and {{.AxisZ}} fields of in, divided by {{.Scale}}.
func {{.Name}}ToModel(in *{{.Wire}}) {{.Common}} {
	if in == nil {
		return {{.Common}}{}
	}

	return {{.Common}}{X: in.{{.AxisX}} / {{.Scale}}, Y: in.{{.AxisY}} / {{.Scale}}, Z: in.{{.AxisZ}} / {{.Scale}}}
}

// {{.Name}}ToWire writes v, multiplied by {{.Scale}}, into the axis fields of out.
func {{.Name}}ToWire(v {{.Common}}, out *{{.Wire}}) {
	out.{{.AxisX}} = v.X * {{.Scale}}
	out.{{.AxisY}} = v.Y * {{.Scale}}
	out.{{.AxisZ}} = v.Z * {{.Scale}}
}
{{end}}
{{define "identity"}}func {{.Name}}ToModel(v {{.Proto}}) {{.Common}} {
	return v
}

func {{.Name}}ToWire(v {{.Common}}) {{.Proto}} {
	return v
}
{{end}}
{{define "expr"}}// {{.Name}}ToModel evaluates {{printf "%q" .ToModelSrc}}.
func {{.Name}}ToModel(v {{.Proto}}) {{.Common}} {
	return {{.ToModel}}
}

// {{.Name}}ToWire evaluates {{printf "%q" .ToWireSrc}}.
func {{.Name}}ToWire(v {{.Common}}) {{.Proto}} {
	return {{.ToWire}}
}
{{end}}`

const mappingTmpl = `
{{define "typeMapping"}}// {{.ID}}ToModel converts {{.Wire}} to {{.Model}}.{{if .Description}}
// {{.Description}}{{end}}
func {{.ID}}ToModel(in *{{.Wire}}) {{.Model}} {
	{{if .Constructor}}out := {{.Constructor}}(){{else}}var out {{.Model}}{{end}}
	if in == nil {
		return out
	}
{{if .ToModel}}
{{range .ToModel}}	{{.}}
{{end}}{{end}}{{if .ModelDefaults}}
{{range .ModelDefaults}}	{{.}}
{{end}}{{end}}
	return out
}

// {{.ID}}ToWire converts {{.Model}} to {{.Wire}}.
func {{.ID}}ToWire(in *{{.Model}}) *{{.Wire}} {
	out := &{{.Wire}}{}
	if in == nil {
		return out
	}
{{if .ToWire}}
{{range .ToWire}}	{{.}}
{{end}}{{end}}{{if .WireDefaults}}
{{range .WireDefaults}}	{{.}}
{{end}}{{end}}
	return out
}
{{end}}
{{define "collection"}}// {{.ID}}ToModel converts every element of in.{{.Items}} with {{.Item}}ToModel.
func {{.ID}}ToModel(in *{{.Wrapper}}) []{{.Model}} {
	if in == nil {
		return []{{.Model}}{}
	}

	out := make([]{{.Model}}, 0, len(in.{{.Items}}))
	for _, item := range in.{{.Items}} {
		out = append(out, {{.Item}}ToModel(item))
	}

	return out
}

// {{.ID}}ToWire converts {{if .FilterDoc}}the elements of in for which {{.FilterDoc}} holds{{else}}every element of in{{end}} with {{.Item}}ToWire.
func {{.ID}}ToWire(in []{{.Model}}) *{{.Wrapper}} {
{{- if .FilterExpr}}
	keep := func(item *{{.Model}}) bool {
		return {{.FilterExpr}}
	}
{{end}}
	out := &{{.Wrapper}}{ {{- .Items}}: make([]*{{.WireItem}}, 0, len(in))}
	for i := range in {
		item := &in[i]
{{- if .Filter}}
		if !{{.Filter}} {
			continue
		}
{{end}}
		out.{{.Items}} = append(out.{{.Items}}, {{.Item}}ToWire(item))
	}

	return out
}
{{end}}
{{define "aggregate"}}// {{.Root}}ToModel converts {{.Wire}} to {{.Model}}.
func {{.Root}}ToModel(in *{{.Wire}}) *{{.Model}} {
	out := {{.Constructor}}()
	if in == nil {
		return out
	}
{{range .ToModel}}
	{{.}}{{end}}

	return out
}

// {{.Root}}ToWire converts {{.Model}} to {{.Wire}}.
func {{.Root}}ToWire(in *{{.Model}}) *{{.Wire}} {
	out := &{{.Wire}}{}
	if in == nil {
		return out
	}
{{range .ToWire}}
	{{.}}{{end}}

	return out
}
{{end}}`

const routerTmpl = `
{{define "router"}}// Decode parses data as the wire type routed for typeID and converts it.
// Unknown ids and malformed payloads report false.
func Decode(typeID int, data []byte) (*{{.Result}}, bool) {
{{- if .Routes}}
	switch typeID {
{{- range .Routes}}
	case {{.ID}}:
		return {{.Func}}(data)
{{- end}}
	}
{{end}}
	return nil, false
}
{{range .Routes}}
func {{.Func}}(data []byte) (*{{$.Result}}, bool) {
	var msg {{.Wire}}
	if err := msg.Unmarshal(data); err != nil {
		return nil, false
	}

	return {{.Root}}ToModel(&msg), true
}
{{end}}
// TypeIDs returns the routed type ids in ascending order.
func TypeIDs() []int {
	return []int{ {{- range $i, $r := .Routes}}{{if $i}}, {{end}}{{$r.ID}}{{end -}} }
}

// Register installs one decoder per routed type id into t.
func Register(t *{{.Table}}) error {
	return t.RegisterAll(map[int]{{.DecodeFunc}}{
{{- range .Routes}}
		{{.ID}}: {{.Func}},
{{- end}}
	})
}
{{end}}`
