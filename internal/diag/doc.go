// Package diag provides the resolution error taxonomy and structured
// diagnostics for the schema compiler.
//
// Key capabilities:
//   - Recoverable missing-definition errors driving the retry loop
//   - Ambiguous reference reports with candidate kinds
//   - Grammar violation errors raised during parsing
//   - Aggregated unresolved-reference reports after a no-progress pass
package diag
