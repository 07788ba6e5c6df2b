package ast

import "errors"

var (
	// ErrUnknownDescriptor is returned for descriptors with no kind field set.
	ErrUnknownDescriptor = errors.New("unknown node type in node creation")
	// ErrAmbiguousDescriptor is returned when fields of several kinds are set.
	ErrAmbiguousDescriptor = errors.New("ambiguous node descriptor")
	// ErrNotChild is returned when a node is not a child of the container.
	ErrNotChild = errors.New("node is not a child of this container")
	// ErrNoParent is returned by operations that need the node's parent.
	ErrNoParent = errors.New("node has no parent")
	// ErrCycle is returned when a container would be inserted into itself.
	ErrCycle = errors.New("node cannot be inserted into its own subtree")
)
