// Package aassert provides assertions for struct mappings, e.g. between
// the domain model and a DTO, that go beyond what testify is offering.
// It follows the design decisions of testify/assert as close as possible:
// every assertion reports to t and returns whether it was successful.
package aassert
