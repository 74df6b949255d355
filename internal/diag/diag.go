// Package diag turns the textual output of the external compiler and runtime
// into structured, enriched reports. For unknown-symbol compile errors it
// consults a read-only documentation source for "did you mean" suggestions.
package diag

// MethodSig is one method name/signature pair from the documentation source.
type MethodSig struct {
	Name      string
	Signature string
}

// DocSource is the documentation collaborator queried for suggestions. The
// payload behind it is opaque here; only lookups matter.
type DocSource interface {
	// Methods enumerates the methods of a class looked up by simple or
	// fully-qualified name, one entry per overload. ok is false when the
	// class is unknown.
	Methods(class string) (methods []MethodSig, ok bool)
}
