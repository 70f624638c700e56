// Package category assigns stable integer indices to opaque labels and
// regroups stacked samples by category.
//
// Category identity is defined by first-occurrence order, never by sorting:
// the first distinct label seen gets index 0, the next new one index 1, and so
// on. Labels only need to be comparable (usable as map keys); they are never
// required to be ordered. The same label sequence always yields the same
// indices.
//
// ⚙️ Usage:
//
//	idx := category.GroupByCategory([]string{"b", "a", "b"}) // [0 1 0]
//	groups, err := category.ReshapeData(stacked, labels)     // one matrix per category
package category
