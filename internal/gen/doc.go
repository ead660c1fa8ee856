// Package gen compiles a mapping schema into Go converter source.
//
// Generation uses text/template, then golang.org/x/tools/imports for
// formatting. Output is deterministic: converters are emitted in sorted name
// order, mappings in schema order, routes by ascending type id.
//
// Five files are produced:
//   - enum_converters.gen.go: one ToModel/ToWire pair per converter, plus
//     IsDynamicType / IsStaticType membership tests for role converters
//   - type_converters.gen.go: one pair per type mapping
//   - collection_converters.gen.go: one pair per collection mapping, with
//     role or expression filters on the way back to wire
//   - aggregate_converters.gen.go: one pair per aggregate mapping
//   - router.gen.go: Decode, TypeIDs and Register over the routing table
//
// Point transforms assume the wire axis fields and model.Vector3 share a
// numeric type.
package gen
