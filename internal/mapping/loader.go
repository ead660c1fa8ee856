package mapping

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a schema from path. YAML, JSON and JSON with
// comments are accepted.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		s, err := parse(jsonc.ToJSON(data))
		if err != nil {
			return nil, err
		}

		s.Source = data

		return s, nil
	}

	return Parse(data)
}

// Parse parses a schema document. A document starting with '{' is treated
// as JSON and may carry comments and trailing commas.
func Parse(data []byte) (*Schema, error) {
	doc := data
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		doc = jsonc.ToJSON(data)
	}

	s, err := parse(doc)
	if err != nil {
		return nil, err
	}

	s.Source = data

	return s, nil
}

func parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Schema) {
	if s.Version == "" {
		s.Version = "1"
	}

	if s.WireImport == "" {
		s.WireImport = DefaultWireImport
	}

	if s.ModelImport == "" {
		s.ModelImport = DefaultModelImport
	}

	if s.RouterImport == "" {
		s.RouterImport = DefaultRouterImport
	}

	if s.ConvertImport == "" {
		s.ConvertImport = DefaultConvertImport
	}

	if s.DataIDRouting == nil {
		s.DataIDRouting = RoutingTable{}
	}

	for name, c := range s.Converters {
		switch c.Type {
		case ConverterEnumMap:
			if c.ProtoType == "" {
				c.ProtoType = "uint32"
			}

			if c.DefaultToCommon == "" {
				c.DefaultToCommon = "Unknown"
			}

			if c.DefaultToProto == "" {
				c.DefaultToProto = "0"
			}
		case ConverterEnumDirect:
			if c.ProtoType == "" {
				c.ProtoType = "uint32"
			}
		case ConverterCustom:
			if c.Transform == "" && (c.ToCommonCode != "" || c.ToProtoCode != "") {
				c.Transform = TransformExpr
			}

			if len(c.Axes) == 0 {
				c.Axes = []string{"X", "Y", "Z"}
			}

			if c.Scale == 0 {
				c.Scale = 100
			}

			switch c.Transform {
			case TransformScalePoint, TransformScalePoints, TransformPoint:
				if c.CommonType == "" {
					c.CommonType = "Vector3"
				}
			case TransformIdentity:
				if c.CommonType == "" {
					c.CommonType = c.ProtoType
				}
			}
		}

		s.Converters[name] = c
	}

	for i := range s.CollectionMappings {
		if s.CollectionMappings[i].FilterField == "" {
			s.CollectionMappings[i].FilterField = "Type"
		}
	}

	for i := range s.AggregateMappings {
		am := &s.AggregateMappings[i]
		if am.CommonConstructor == "" && am.CommonRoot != "" {
			am.CommonConstructor = "New" + am.CommonRoot
		}

		for j := range am.Extractors {
			if am.Extractors[j].Mode == "" {
				am.Extractors[j].Mode = ModeAssign
			}
		}
	}
}
