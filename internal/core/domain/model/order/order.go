package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/12PUFFS/Practic16/internal/core/domain/model/kernel"
	"github.com/12PUFFS/Practic16/internal/pkg/errs"
	"github.com/12PUFFS/Practic16/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the immutable result of a successful build. Once created it
// never changes: accessors return copies of mutable data, and two orders
// produced by the same builder are fully independent of each other and of
// the builder's further mutations.
//
// Order invariants:
//   - Valid unique identifier
//   - Base, size, and milk belong to their closed sets
//   - Syrups are distinct lowercase names, sorted lexicographically,
//     at most 4 of them
//   - Sugar is within 0..5 teaspoons
//   - Price is a constructed, non-negative two-decimal amount
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// base is the coffee foundation
	base Base

	// size is the cup size
	size Size

	// milk is the milk option, MilkNone when the order has no milk
	milk Milk

	// syrups are distinct lowercase syrup names in lexicographic order
	syrups []string

	// sugar is the number of teaspoons, 0..5
	sugar int

	// iced marks an order served with ice
	iced bool

	// price is the derived total
	price kernel.Price

	// description is the derived human-readable text
	description string

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates an Order with validation of every attribute. The
// builder is the usual caller, but the constructor does not trust it:
// enum membership, syrup normalization, sugar bounds, and price
// construction are all re-checked here so an Order can never exist in an
// invalid state.
//
// The syrups slice is normalized defensively (lowercased, deduplicated,
// sorted) and copied, so the caller keeps ownership of its argument.
func NewOrder(
	id kernel.UUID,
	base Base,
	size Size,
	milk Milk,
	syrups []string,
	sugar int,
	iced bool,
	price kernel.Price,
	description string,
) (*Order, error) {
	order := &Order{
		iced:        iced,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setBase(base),
		order.setSize(size),
		order.setMilk(milk),
		order.setSyrups(syrups),
		order.setSugar(sugar),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was constructed through NewOrder. The zero
// value and a nil pointer both fail with ErrOrderIsNotConstructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers. Orders built
// sequentially from the same builder state are equivalent in attributes
// but never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Base returns the coffee foundation.
func (o *Order) Base() Base {
	return o.base
}

// Size returns the cup size.
func (o *Order) Size() Size {
	return o.size
}

// Milk returns the milk option.
func (o *Order) Milk() Milk {
	return o.milk
}

// Syrups returns the syrup names in lexicographic order. The returned
// slice is a copy; mutating it does not affect the order.
func (o *Order) Syrups() []string {
	return slices.Clone(o.syrups)
}

// Sugar returns the number of sugar teaspoons.
func (o *Order) Sugar() int {
	return o.sugar
}

// Iced reports whether the order is served with ice.
func (o *Order) Iced() bool {
	return o.iced
}

// Price returns the derived total price.
func (o *Order) Price() kernel.Price {
	return o.price
}

// Description returns the derived human-readable description.
func (o *Order) Description() string {
	return o.description
}

// String returns the description, or the "{size} {base} - {price}"
// fallback when the description is empty. A successfully built order
// always carries a description, so the fallback only shows for orders
// restored with an empty one.
func (o *Order) String() string {
	if o.description != "" {
		return o.description
	}
	return fmt.Sprintf("%s %s - %s", o.size, o.base, o.price)
}

// setID validates and sets the order's unique identifier.
// Private setters are only used during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBase validates and sets the coffee foundation.
func (o *Order) setBase(base Base) error {
	if err := base.Validate(); err != nil {
		return err
	}
	o.base = base
	return nil
}

// setSize validates and sets the cup size.
func (o *Order) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	o.size = size
	return nil
}

// setMilk validates and sets the milk option.
func (o *Order) setMilk(milk Milk) error {
	if err := milk.Validate(); err != nil {
		return err
	}
	o.milk = milk
	return nil
}

// setSyrups normalizes and stores the syrup names: lowercased,
// deduplicated, sorted, and counted against the cap after deduplication.
func (o *Order) setSyrups(syrups []string) error {
	normalized := make([]string, 0, len(syrups))
	for _, name := range syrups {
		if name == "" {
			return errs.NewValueIsRequiredError("syrup name")
		}
		normalized = append(normalized, strings.ToLower(name))
	}

	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	if len(normalized) > maxSyrups {
		return ErrSyrupLimitExceeded
	}

	o.syrups = normalized
	return nil
}

// setSugar validates and sets the sugar amount.
func (o *Order) setSugar(sugar int) error {
	if sugar < 0 || sugar > maxSugar {
		return errs.NewValueIsOutOfRangeError("sugar", sugar, 0, maxSugar)
	}
	o.sugar = sugar
	return nil
}

// setPrice validates and sets the derived price.
func (o *Order) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}
