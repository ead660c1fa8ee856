// Package diagnostic collects the errors, warnings and notes produced while
// compiling a mapping schema.
//
// Key capabilities:
//   - Referential faults (unknown mapping ids, converters, routed types)
//   - "Did you mean" suggestions for misspelled references
//   - Warnings for field mappings no generated code path handles
//   - Notes on verbatim expressions spliced into generated code
package diagnostic
