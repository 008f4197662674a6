// Package gen renders completed type descriptors as Go source.
//
// The contract with resolution is strict: every descriptor renders using
// only itself and its owned nested descriptors. The generator performs no
// symbol table lookups.
package gen
