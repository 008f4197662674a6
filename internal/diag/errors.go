package diag

import (
	"fmt"
	"strings"
)

// Ref identifies a schema definition by namespace, local name and construct
// kind. Kind may be empty when a reference could target more than one kind.
type Ref struct {
	Space string
	Local string
	Kind  string
}

// String returns a human-readable representation of the Ref.
func (r Ref) String() string {
	name := r.Local
	if r.Space != "" {
		name = "{" + r.Space + "}" + r.Local
	}

	if r.Kind != "" {
		return name + " (" + r.Kind + ")"
	}

	return name
}

// NotFoundError reports a reference to a definition that is not (yet)
// present in the symbol table. It is the only recoverable resolution error:
// the driver re-queues the referencing definition and retries it on the
// next pass.
type NotFoundError struct {
	Ref Ref
}

// Error returns the error message.
func (e *NotFoundError) Error() string {
	return "definition not found: " + e.Ref.String()
}

// AmbiguousError reports a reference that resolves to more than one
// construct kind. Retrying cannot fix ambiguity, so it is always fatal.
type AmbiguousError struct {
	Ref        Ref
	Candidates []string
}

// Error returns the error message.
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous reference %s: matches %s",
		e.Ref.String(), strings.Join(e.Candidates, ", "))
}

// ViolationError reports schema input that breaks an expected construct
// shape (mutually exclusive children both present, required attribute
// missing, name and ref both given). Detected eagerly, always fatal.
type ViolationError struct {
	Construct string
	Message   string
}

// Error returns the error message.
func (e *ViolationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Construct, e.Message)
}

// Violationf builds a ViolationError with a formatted message.
func Violationf(construct, format string, args ...any) *ViolationError {
	return &ViolationError{
		Construct: construct,
		Message:   fmt.Sprintf(format, args...),
	}
}

// PendingRef is one unresolved definition in an UnresolvedError report.
type PendingRef struct {
	Ref     Ref
	Retries int
}

// UnresolvedError is the terminal aggregate raised when a full resolution
// pass makes no progress. It lists every pending definition with its kind
// and retry count.
type UnresolvedError struct {
	Pending []PendingRef
}

// Error returns the aggregated report.
func (e *UnresolvedError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("unresolvable schema: %d definition(s) pending", len(e.Pending)))

	for _, p := range e.Pending {
		sb.WriteString(fmt.Sprintf("\n  %s after %d attempt(s)", p.Ref.String(), p.Retries))
	}

	return sb.String()
}
