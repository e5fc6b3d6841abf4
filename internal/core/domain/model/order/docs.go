// Package order provides the domain model for composing a coffee order.
// It implements the Builder pattern: a mutable Builder accumulates
// selections with eager validation, and Build produces an immutable Order
// with a derived price and human-readable description.
//
// The package includes:
//   - Base, Size, Milk: closed enum sets with validation, string forms,
//     and the pricing data attached to each variant
//   - Order: the immutable result of a successful build
//   - Builder: the mutable accumulator with chain-friendly mutators
//
// Key business rules:
//   - Base and size are mandatory; everything else has a default
//   - At most 4 distinct syrups; duplicate names are silently ignored
//   - Sugar is limited to 0..5 teaspoons
//   - Price = basePrice × sizeMultiplier + milkPrice + syrups + iced
//     surcharge, rounded to two decimals
//   - A failed mutation or build leaves the builder state unchanged
//
// The builder assumes exclusive single-owner access during a mutation
// sequence; concurrent callers must serialize externally.
package order
