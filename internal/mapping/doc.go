// Package mapping provides the mapping schema definitions, parsing and
// validation for the converter compiler.
//
// A schema pins every decision about which wire field feeds which normalized
// field, so decoding never walks fields dynamically.
//
// # Schema Overview
//
//	pluginName: E01
//	namespace: e01
//	version: "1.0.0"
//	dataIdRouting:
//	  26: SRInfo
//	typeMappings:
//	  - id: EgoPose
//	    protoType: EgoPose
//	    commonType: EgoPose
//	    fieldMappings:
//	      - proto: Longitude
//	        common: Longitude
//	  - id: DynamicObstacle
//	    protoType: DynamicObject
//	    commonType: Obstacle
//	    category: dynamic
//	    fieldMappings:
//	      - proto: ID
//	        common: ID
//	        toCommon: "ToInt32({0})"
//	        toProto: "uint32({0})"
//	      - proto: "."
//	        common: Position
//	        converter: DynamicObjectPosition
//	collectionMappings:
//	  - id: DynamicObstacles
//	    protoType: DynamicObjectArray
//	    protoItemsPath: Objects
//	    itemMapping: DynamicObstacle
//	    toProtoFilter: dynamic
//	converters:
//	  ColorConverter:
//	    type: enumMap
//	    commonType: Color
//	    mappings: {0: None, 1: Gray}
//	    defaultToCommon: None
//	  DynamicObjectPosition:
//	    type: custom
//	    transform: point
//	    protoType: DynamicObject
//	    axes: [PosX, PosY, PosZ]
//	aggregateMappings:
//	  - protoRoot: SRInfo
//	    commonRoot: CommonData
//	    extractors:
//	      - protoPath: DynamicObjects
//	        commonPath: Obstacles.Obstacles
//	        mapping: DynamicObstacles
//	        mode: addRange
//
// # Converters
//
//   - enumMap: lookup table from wire values to members, with defaults both ways
//   - enumDirect: numeric reinterpretation between same-valued enums
//   - custom: one of the named transforms scalePoint, scalePoints, point,
//     identity, or expr (author-supplied expressions, syntax checked)
//
// The reserved names DynamicObjectTypeConverter and StaticObjectTypeConverter
// carry the dynamic and static roles unless a role is declared.
//
// # Path Syntax
//
// Field paths are dotted Go identifiers: "Position", "Obstacles.Obstacles".
// Proto paths of field mappings may also be "." for the whole message.
package mapping
