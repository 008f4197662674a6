// Package resolve builds every top-level schema definition into type
// descriptors via a fixed-point retry loop.
//
// Definitions may reference each other out of declaration order, including
// forward references and references crossing imported documents. The
// driver keeps a work-list of pending definitions and retries entries that
// fail with a missing-definition error until either everything resolves or
// a full pass makes no progress, at which point it raises one aggregated
// unresolvable report. Progress strictly bounds the number of remaining
// passes, so the loop always terminates.
package resolve
