// Package match ranks known schema identifiers against a misspelled reference
// so compile diagnostics can offer "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: folds case and separators before comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest known names above a similarity threshold
package match
