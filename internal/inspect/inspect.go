// Package inspect projects decoded frames into display trees.
//
// This is the only place that walks normalized values reflectively; decoding
// and conversion never do.
package inspect

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"framemap/internal/frame"
	"framemap/internal/model"
)

// Node is one row of a display tree. ID is unique within a tree.
type Node struct {
	Name     string
	Value    string
	ID       string
	Children []*Node
}

func (n *Node) add(name, value, id string) *Node {
	c := &Node{Name: name, Value: value, ID: id}
	n.Children = append(n.Children, c)

	return c
}

// Find returns the first descendant whose path of names matches, or nil.
func (n *Node) Find(names ...string) *Node {
	cur := n
	for _, name := range names {
		var next *Node

		for _, c := range cur.Children {
			if c.Name == name {
				next = c
				break
			}
		}

		if next == nil {
			return nil
		}

		cur = next
	}

	return cur
}

// Build returns the display tree of f rooted at a node called name. Frames
// without a decoded object get a single Raw child describing the payload.
func Build(f frame.Frame, name string) *Node {
	id := strconv.Itoa(f.Index) + "_" + strconv.Itoa(f.Seq)
	root := &Node{
		Name:  name,
		Value: fmt.Sprintf("type %d, %d bytes", f.Triplet.TypeID, len(f.Data)),
		ID:    id,
	}

	if f.Common == nil {
		root.add("Raw", fmt.Sprintf("[%d bytes] not decoded", len(f.Data)), id+"_Raw")
		return root
	}

	buildCommon(root, f.Common, id)

	return root
}

func buildCommon(root *Node, c *model.CommonData, id string) {
	walkStruct(root.add("EgoPose", "", id+"_EgoPose"), reflect.ValueOf(c.EgoPose), id+"_EgoPose")

	section(root, "Obstacles", reflect.ValueOf(c.Obstacles.Obstacles), id, func(v reflect.Value) (string, string) {
		o := v.Interface().(model.Obstacle)
		return fmt.Sprintf("Obstacle_%d", o.ID), formatValue(reflect.ValueOf(o.Type))
	})
	section(root, "LaneLines", reflect.ValueOf(c.LaneLines.LaneLines), id, func(v reflect.Value) (string, string) {
		l := v.Interface().(model.LaneLine)
		return fmt.Sprintf("LaneLine_%d", l.LineID), formatValue(reflect.ValueOf(l.LineType))
	})
	section(root, "RoadMarkers", reflect.ValueOf(c.RoadMarkers.RoadMarkers), id, nil)
	section(root, "ParkingSlots", reflect.ValueOf(c.SlotList.Slots), id, func(v reflect.Value) (string, string) {
		p := v.Interface().(model.ParkingSlot)
		return fmt.Sprintf("Slot_%d", p.ID), formatValue(reflect.ValueOf(p.Type))
	})
	section(root, "TrajectoryPoints", reflect.ValueOf(c.TrajectoryPoints.Points), id, nil)

	walkStruct(root.add("HPAData", "", id+"_HPAData"), reflect.ValueOf(c.HPAData), id+"_HPAData")
	walkStruct(root.add("StateInfo", "", id+"_StateInfo"), reflect.ValueOf(c.StateInfo), id+"_StateInfo")
}

// section adds a list node unless the list is empty. label names each item;
// nil falls back to [i].
func section(root *Node, name string, list reflect.Value, id string, label func(reflect.Value) (string, string)) {
	if list.Len() == 0 {
		return
	}

	sid := id + "_" + name
	node := root.add(name, fmt.Sprintf("[%d]", list.Len()), sid)

	for i := range list.Len() {
		item := list.Index(i)
		itemID := sid + "_" + strconv.Itoa(i)

		if label == nil || item.Kind() != reflect.Struct || isLeaf(item.Type()) {
			addValue(node, fmt.Sprintf("[%d]", i), item, itemID)
			continue
		}

		n, v := label(item)
		walkStruct(node.add(n, v, itemID), item, itemID)
	}
}

func addValue(parent *Node, name string, v reflect.Value, id string) {
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	child := parent.add(name, formatValue(v), id)

	switch {
	case v.Kind() == reflect.Struct && !isLeaf(v.Type()):
		walkStruct(child, v, id)
	case v.Kind() == reflect.Slice && !isLeaf(v.Type().Elem()):
		for i := range v.Len() {
			addValue(child, fmt.Sprintf("[%d]", i), v.Index(i), id+"_"+strconv.Itoa(i))
		}
	case v.Kind() == reflect.Slice:
		for i := range v.Len() {
			child.add(fmt.Sprintf("[%d]", i), formatValue(v.Index(i)), id+"_"+strconv.Itoa(i))
		}
	}
}

func walkStruct(parent *Node, v reflect.Value, id string) {
	for _, f := range fieldsOf(v.Type()) {
		addValue(parent, f.Name, v.FieldByIndex(f.Index), id+"_"+f.Name)
	}
}

var fieldCache sync.Map // reflect.Type -> []reflect.StructField

func fieldsOf(t reflect.Type) []reflect.StructField {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]reflect.StructField)
	}

	fields := make([]reflect.StructField, 0, t.NumField())
	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			fields = append(fields, f)
		}
	}

	fieldCache.Store(t, fields)

	return fields
}

var vector3Type = reflect.TypeFor[model.Vector3]()

// isLeaf reports types shown on a single row.
func isLeaf(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		return t == vector3Type
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Pointer, reflect.Interface:
		return false
	default:
		return true
	}
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return "<null>"
	}

	if v.Type() == vector3Type {
		p := v.Interface().(model.Vector3)
		return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "<null>"
		}

		return formatValue(v.Elem())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d]", v.Len())
	case reflect.Struct:
		return ""
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', 4, v.Type().Bits())
	}

	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprint(v.Interface())
}

// Render writes the tree indented by depth, one node per line.
func Render(w io.Writer, n *Node) error {
	return render(w, n, 0)
}

func render(w io.Writer, n *Node, depth int) error {
	line := strings.Repeat("  ", depth) + n.Name
	if n.Value != "" {
		line += ": " + n.Value
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, c := range n.Children {
		if err := render(w, c, depth+1); err != nil {
			return err
		}
	}

	return nil
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a deep, stable textual dump of v.
func Dump(v any) string {
	return dumper.Sdump(v)
}
