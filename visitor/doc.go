// Package visitor offers generic callback traversal over common container
// shapes. Slice, map, and struct visitors feed the untyped collection and
// tabular adapters.
package visitor
