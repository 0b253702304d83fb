// Package kernel provides the value objects shared by every entity of the clinic domain.
//
// The package includes:
//   - ID: the identity of an entity, either new (not persisted) or existing (a positive number)
//
// Values in this package are immutable and safe for concurrent use.
package kernel
