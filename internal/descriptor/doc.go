// Package descriptor defines the unit produced by schema resolution and
// the merge engine that unifies independently-derived fragments of a type.
//
// A Descriptor is mutated only while merging; once stored in the symbol
// table it is treated as immutable. Cross-descriptor references are plain
// rendered type names, never pointers, so recursive type graphs need no
// ownership cycles.
package descriptor
