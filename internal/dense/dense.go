// Package dense assigns compact integer ids to arbitrary comparable elements.
//
// Ids are handed out in first-seen order: the first distinct element gets 0,
// the next unseen one gets 1, and so on. The resulting mapping is a bijection
// between the distinct elements and [0, Len()).
//
// Elements must equal themselves: a floating-point NaN never matches an
// earlier occurrence and is assigned a fresh id every time.
package dense

import "iter"

// Index is an element-to-dense-id mapping. It is not safe for concurrent use.
type Index[T comparable] struct {
	ids      map[T]uint32
	elements []T
}

// New creates an empty index. hint pre-sizes the mapping.
func New[T comparable](hint int) *Index[T] {
	return &Index[T]{
		ids:      make(map[T]uint32, hint),
		elements: make([]T, 0, hint),
	}
}

// Build creates an index over every element yielded by seq.
func Build[T comparable](seq iter.Seq[T]) *Index[T] {
	idx := New[T](0)
	for e := range seq {
		idx.Add(e)
	}
	return idx
}

// Add returns the id of e, assigning the next unused id if e is new.
func (x *Index[T]) Add(e T) uint32 {
	if id, ok := x.ids[e]; ok {
		return id
	}
	id := uint32(len(x.elements))
	x.ids[e] = id
	x.elements = append(x.elements, e)
	return id
}

// ID returns the id of e and whether e is mapped.
func (x *Index[T]) ID(e T) (uint32, bool) {
	id, ok := x.ids[e]
	return id, ok
}

// Element returns the element mapped to id. It panics if id >= Len().
func (x *Index[T]) Element(id uint32) T {
	return x.elements[id]
}

// Len returns the number of distinct elements.
func (x *Index[T]) Len() int {
	return len(x.elements)
}
