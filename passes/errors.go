package passes

import "errors"

// ErrUnsupported marks graph or descriptor shapes the recompiler does
// not model: unrecognized descriptor indirection, nested indirect
// loads, swizzled or thread-id-indexed buffers.
var ErrUnsupported = errors.New("unsupported resource pattern")

// ErrInvariant marks logic invariant violations: conflicting shapes
// merged into one descriptor entry, or a descriptor table exceeding
// the hardware binding-slot limit.
var ErrInvariant = errors.New("resource invariant violation")
