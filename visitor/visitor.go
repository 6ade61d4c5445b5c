package visitor

// Visitor traverses (key, element) pairs, invoking the supplied callback for
// each. A (false, nil) callback result stops the traversal; a returned error
// stops it and propagates.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
