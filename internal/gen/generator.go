package gen

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"go/format"
	"path/filepath"
	"slices"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/tools/imports"

	"framemap/internal/diagnostic"
	"framemap/internal/mapping"
)

// Generated file names.
const (
	EnumFile       = "enum_converters.gen.go"
	TypeFile       = "type_converters.gen.go"
	CollectionFile = "collection_converters.gen.go"
	AggregateFile  = "aggregate_converters.gen.go"
	RouterFile     = "router.gen.go"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package derived from the schema namespace.
	PackageName string
	// OutputDir is where the files will be written. It anchors import
	// resolution and receives .unformatted.go.txt sidecars.
	OutputDir string
	// DebugUnformatted writes source that fails to format as a sidecar file.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		DebugUnformatted: true,
	}
}

// Generator compiles a schema into converter source.
type Generator struct {
	config GeneratorConfig
	schema *mapping.Schema
	diags  *diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file, e.g. "router.gen.go".
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate validates s and emits the five converter files. When the schema
// has errors no files are returned and the error summarizes the diagnostics.
// Warnings are returned alongside successful output.
func (g *Generator) Generate(s *mapping.Schema) ([]GeneratedFile, *diagnostic.Diagnostics, error) {
	g.schema = s
	g.diags = mapping.Validate(s)

	if g.diags.HasErrors() {
		return nil, g.diags, fmt.Errorf("schema has %d error(s): %w", len(g.diags.Errors), g.diags.Error())
	}

	steps := []struct {
		name  string
		build func(*fileBuilder) error
	}{
		{EnumFile, g.buildConverters},
		{TypeFile, g.buildTypeMappings},
		{CollectionFile, g.buildCollections},
		{AggregateFile, g.buildAggregates},
		{RouterFile, g.buildRouter},
	}

	files := make([]GeneratedFile, 0, len(steps))

	for _, step := range steps {
		fb := g.newFile()
		if err := step.build(fb); err != nil {
			return nil, g.diags, fmt.Errorf("generating %s: %w", step.name, err)
		}

		content, err := g.render(step.name, fb)
		if err != nil {
			return nil, g.diags, err
		}

		files = append(files, GeneratedFile{Filename: step.name, Content: content})
	}

	if g.diags.HasErrors() {
		return nil, g.diags, fmt.Errorf("schema has %d error(s): %w", len(g.diags.Errors), g.diags.Error())
	}

	return files, g.diags, nil
}

func (g *Generator) packageName() string {
	if g.config.PackageName != "" {
		return g.config.PackageName
	}

	return g.schema.PackageName()
}

type fileData struct {
	Plugin      string
	Version     string
	Fingerprint string
	Package     string
	Imports     []string
	Blocks      []string
}

func (g *Generator) render(name string, fb *fileBuilder) ([]byte, error) {
	plugin := g.schema.PluginName
	if plugin == "" {
		plugin = g.packageName()
	}

	data := fileData{
		Plugin:      plugin,
		Version:     g.schema.Version,
		Fingerprint: Fingerprint(g.schema.Source),
		Package:     g.packageName(),
		Imports:     fb.importList(),
		Blocks:      fb.blocks,
	}

	var buf bytes.Buffer
	if err := codeTemplates.ExecuteTemplate(&buf, "file", data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", name, err)
	}

	return g.format(name, buf.Bytes())
}

// format runs goimports over src, falling back to gofmt. Source neither can
// parse is kept as a sidecar for inspection.
func (g *Generator) format(name string, src []byte) ([]byte, error) {
	path := filepath.Join(g.config.OutputDir, name)

	out, err := imports.Process(path, src, &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err == nil {
		return out, nil
	}

	if out, ferr := format.Source(src); ferr == nil {
		return out, nil
	}

	if g.config.DebugUnformatted {
		_ = writeDebugUnformatted(g.config.OutputDir, name, src)
	}

	return nil, fmt.Errorf("formatting %s: %w", name, err)
}

// Fingerprint returns the first 8 bytes of the BLAKE3 digest of src in hex.
func Fingerprint(src []byte) string {
	sum := blake3.Sum256(src)

	return hex.EncodeToString(sum[:8])
}

// fileBuilder accumulates the blocks and imports of one output file.
type fileBuilder struct {
	schema  *mapping.Schema
	imports map[string]struct{}
	blocks  []string
}

func (g *Generator) newFile() *fileBuilder {
	return &fileBuilder{schema: g.schema, imports: map[string]struct{}{}}
}

func (f *fileBuilder) use(importPath string) {
	f.imports[importPath] = struct{}{}
}

func (f *fileBuilder) importList() []string {
	list := make([]string, 0, len(f.imports))
	for p := range f.imports {
		list = append(list, p)
	}

	slices.Sort(list)

	return list
}

// add executes the named template and appends the result as a block.
func (f *fileBuilder) add(tmpl string, data any) error {
	var buf strings.Builder
	if err := codeTemplates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return fmt.Errorf("executing %s template: %w", tmpl, err)
	}

	f.blocks = append(f.blocks, buf.String())

	return nil
}
