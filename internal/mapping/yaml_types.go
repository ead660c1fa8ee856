package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts integer keys as well as quoted ones, which is what
// JSON documents produce.
func (r *RoutingTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: dataIdRouting: expected mapping, got %v", node.Line, node.Kind)
	}

	out := make(RoutingTable, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		id, err := strconv.Atoi(strings.TrimSpace(key.Value))
		if err != nil {
			return fmt.Errorf("line %d: dataIdRouting: type id %q is not an integer", key.Line, key.Value)
		}

		if _, dup := out[id]; dup {
			return fmt.Errorf("line %d: dataIdRouting: duplicate type id %d", key.Line, id)
		}

		var wireType string
		if err := val.Decode(&wireType); err != nil {
			return fmt.Errorf("line %d: dataIdRouting[%d]: %w", val.Line, id, err)
		}

		out[id] = wireType
	}

	*r = out

	return nil
}

// UnmarshalYAML accepts "a, b, c" as well as a sequence.
func (c *ConverterDef) UnmarshalYAML(node *yaml.Node) error {
	type plain ConverterDef

	var raw struct {
		plain `yaml:",inline"`
		Axes  yaml.Node `yaml:"axes"`
	}

	if err := node.Decode(&raw); err != nil {
		return err
	}

	*c = ConverterDef(raw.plain)

	switch raw.Axes.Kind {
	case 0:
	case yaml.ScalarNode:
		c.Axes = nil

		for axis := range strings.SplitSeq(raw.Axes.Value, ",") {
			if axis = strings.TrimSpace(axis); axis != "" {
				c.Axes = append(c.Axes, axis)
			}
		}
	case yaml.SequenceNode:
		if err := raw.Axes.Decode(&c.Axes); err != nil {
			return fmt.Errorf("line %d: axes: %w", raw.Axes.Line, err)
		}
	default:
		return fmt.Errorf("line %d: axes: expected string or list", raw.Axes.Line)
	}

	return nil
}
