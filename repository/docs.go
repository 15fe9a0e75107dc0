// Package repository offers a generic, ordered, in-memory repository.
//
// MemoryRepository keeps its entities in insertion order and looks them up by
// linear scan, so "first match" has a well-defined meaning. It is safe for
// concurrent use. Lookups report absence with a bool instead of an error.
//
// A MemoryRepository offers a set of methods out of the box. It is possible to
// overwrite an existing method to change the behaviour as well as extend the
// repository with new methods, by embedding it. There are examples for both.
//
// Programmer errors, like an entity without the configured id field, panic.
package repository
