// Package symbols holds the per-compile symbol table (the Context): every
// discovered definition keyed by namespace, local name and construct kind,
// the namespace prefix table, and the built-in primitive seed.
//
// A Context is exclusively owned by one in-progress compile. The only
// sharing is the one-directional ownership transfer in SpliceImport, which
// runs after the imported schema's own resolution fully completes.
package symbols
