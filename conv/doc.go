// Package conv implements the default mapping engine: a configurable,
// reflection-based object-graph copier. It handles primitives, slices, maps,
// structs, pointer cloning, time parsing, and custom conversion functions
// registered per source/destination type pair. Destination population is
// best effort; a conversion that cannot be performed reports ErrUnsupported.
package conv
