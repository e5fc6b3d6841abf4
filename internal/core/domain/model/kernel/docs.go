// Package kernel provides core domain primitives for the coffee order
// system. It implements the fundamental building blocks used throughout
// the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - Price: a value object for a non-negative amount of money rounded to
//     two decimal places
//
// These primitives enforce domain invariants through their constructors,
// so domain objects composed from them are always in a valid state. They
// are immutable value types and safe for concurrent reads.
package kernel
