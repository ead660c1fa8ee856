// Package e01 holds the converters and decoder registry generated from
// schemas/e01.yaml. Everything except this file and the tests is generated;
// edit the schema and regenerate instead.
package e01

//go:generate go run ../../cmd/framemap-gen ../../schemas/e01.yaml .
