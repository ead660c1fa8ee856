package gen

import (
	"regexp"
	"strings"
	"unicode"

	"framemap/internal/mapping"
)

var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true, "int": true, "int8": true,
	"int16": true, "int32": true, "int64": true, "rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true,
}

// convertCall matches schema calls to the saturating conversions that are
// not already qualified.
var convertCall = regexp.MustCompile(`(^|[^\w.])(ToInt32|ToInt64|ToUInt32|ToUInt64)\(`)

// memberRef matches "Type.Member" default values.
var memberRef = regexp.MustCompile(`^([A-Za-z_]\w*)\.([A-Za-z_]\w*)$`)

// pkgRef is an import path together with the qualifier generated code uses
// for it.
type pkgRef struct {
	path  string
	alias string
}

func (f *fileBuilder) wirePkg() pkgRef {
	return pkgRef{path: f.schema.WireImport, alias: f.schema.WireAlias()}
}

func (f *fileBuilder) modelPkg() pkgRef {
	return pkgRef{path: f.schema.ModelImport, alias: f.schema.ModelAlias()}
}

// qualify prefixes a type expression with the package alias unless it is
// predeclared or already qualified. Leading "*" and "[]" are preserved.
func (f *fileBuilder) qualify(pkg pkgRef, typ string) string {
	switch {
	case strings.HasPrefix(typ, "*"):
		return "*" + f.qualify(pkg, typ[1:])
	case strings.HasPrefix(typ, "[]"):
		return "[]" + f.qualify(pkg, typ[2:])
	case predeclared[typ] || strings.Contains(typ, "."):
		return typ
	}

	f.use(pkg.path)

	return pkg.alias + "." + typ
}

func (f *fileBuilder) wireType(typ string) string {
	return f.qualify(f.wirePkg(), typ)
}

func (f *fileBuilder) modelType(typ string) string {
	return f.qualify(f.modelPkg(), typ)
}

func (f *fileBuilder) routerType(typ string) string {
	return f.qualify(pkgRef{path: f.schema.RouterImport, alias: f.schema.RouterAlias()}, typ)
}

// modelMember names the constant for member of enum typ: model.<Type><Member>.
func (f *fileBuilder) modelMember(typ, member string) string {
	f.use(f.schema.ModelImport)

	return f.schema.ModelAlias() + "." + typ + member
}

// value renders a default value. "Type.Member" becomes the qualified
// constant <Type><Member> of pkg; other text is a literal.
func (f *fileBuilder) value(pkg pkgRef, v string) string {
	m := memberRef.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return v
	}

	f.use(pkg.path)

	return pkg.alias + "." + m[1] + m[2]
}

// expand substitutes arg for the placeholder and qualifies calls to the
// saturating conversions.
func (f *fileBuilder) expand(tmpl, arg string) string {
	out := strings.ReplaceAll(tmpl, mapping.Placeholder, arg)
	if !convertCall.MatchString(out) {
		return out
	}

	f.use(f.schema.ConvertImport)

	return convertCall.ReplaceAllString(out, "${1}"+f.schema.ConvertAlias()+".${2}(")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// oneLine flattens free text for use in a line comment.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
