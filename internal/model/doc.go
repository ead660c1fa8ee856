// Package model defines the normalized, protocol-agnostic representation that
// every wire message projects to and from.
//
// All aggregate types are value types so a section can never be nil. Use
// NewCommonData to get a frame whose every list is allocated and empty, which
// keeps consumers from distinguishing "absent" from "empty".
//
// Enum constants are named <Type><Member> (ColorWhite, ObjectTypeCar). The
// mapping compiler relies on that convention when it qualifies enum members
// and "Type.Member" default values from a schema. String methods come from
// stringer with the type name trimmed, so ObjectTypeCar prints as "Car".
package model

