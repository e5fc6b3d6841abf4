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

const (
	// syrupUnitPrice is charged once per distinct syrup.
	syrupUnitPrice = 40.0
	// icedSurcharge is added when the order is served with ice.
	icedSurcharge = 0.2
	// maxSugar is the inclusive upper bound on sugar teaspoons.
	maxSugar = 5
	// maxSyrups is the cap on distinct syrups per order.
	maxSyrups = 4
)

var (
	// ErrSyrupLimitExceeded is returned when adding a syrup to a builder
	// that already holds the maximum number of distinct syrups.
	ErrSyrupLimitExceeded = fmt.Errorf("cannot add more than %d syrups", maxSyrups)

	// ErrBuilderIsNotConstructed is returned when using an improperly
	// initialized Builder.
	ErrBuilderIsNotConstructed = errors.New("Builder must be created via NewBuilder constructor")
)

// Builder accumulates the attributes of a coffee order and produces
// immutable Order values on demand. Every mutator validates its argument
// eagerly: a rejected call returns an error and leaves the builder state
// untouched, so the builder never holds an invalid selection.
//
// Failable mutators return an error in the usual Go convention; call sites
// that want chaining combine them with errors.Join:
//
//	builder := order.NewBuilder()
//	if err := errors.Join(
//	    builder.SetBase(order.BaseLatte),
//	    builder.SetSize(order.SizeMedium),
//	    builder.SetMilk(order.MilkOat),
//	); err != nil {
//	    // handle validation error
//	}
//	o, err := builder.Build()
//
// Infallible mutators (SetIced, Reset, ClearExtras) return the builder for
// chaining. Build does not mutate the builder, which may be reused to
// produce further independent orders.
//
// Builder is not safe for concurrent use; callers must serialize access.
type Builder struct {
	// base is the mandatory coffee foundation, BaseUnknown until set
	base Base

	// size is the mandatory cup size, SizeUnknown until set
	size Size

	// milk defaults to MilkNone
	milk Milk

	// syrups holds distinct lowercase syrup names
	syrups map[string]struct{}

	// sugar is the number of teaspoons, defaults to 0
	sugar int

	// iced defaults to false
	iced bool

	// guard ensures the builder was created via NewBuilder
	guard guard.ConstructorGuard
}

// NewBuilder creates a Builder in its default state: base and size unset,
// no milk, no syrups, no sugar, not iced.
func NewBuilder() *Builder {
	builder := &Builder{
		guard: guard.NewConstructorGuard(),
	}
	return builder.Reset()
}

// Validate ensures the Builder was constructed through NewBuilder.
func (b *Builder) Validate() error {
	if b == nil {
		return ErrBuilderIsNotConstructed
	}
	return b.guard.Validate(ErrBuilderIsNotConstructed)
}

// SetBase selects the coffee foundation. Values outside the closed base
// set are rejected and the current selection is kept.
func (b *Builder) SetBase(base Base) error {
	if err := base.Validate(); err != nil {
		return err
	}
	b.base = base
	return nil
}

// SetSize selects the cup size. Values outside the closed size set are
// rejected and the current selection is kept.
func (b *Builder) SetSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	b.size = size
	return nil
}

// SetMilk selects the milk option. Values outside the closed milk set are
// rejected and the current selection is kept.
func (b *Builder) SetMilk(milk Milk) error {
	if err := milk.Validate(); err != nil {
		return err
	}
	b.milk = milk
	return nil
}

// AddSyrup adds a syrup by name, lowercasing it before storage. Adding a
// name already present is a silent no-op. Once the builder holds maxSyrups
// distinct syrups every further call fails, duplicates included: the cap
// is checked before the duplicate lookup.
func (b *Builder) AddSyrup(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("syrup name")
	}
	if len(b.syrups) >= maxSyrups {
		return ErrSyrupLimitExceeded
	}

	b.syrups[strings.ToLower(name)] = struct{}{}
	return nil
}

// SetSugar sets the sugar amount in teaspoons, 0 through maxSugar
// inclusive. Out-of-range values are rejected and the current amount is
// kept.
func (b *Builder) SetSugar(teaspoons int) error {
	if teaspoons < 0 || teaspoons > maxSugar {
		return errs.NewValueIsOutOfRangeError("sugar", teaspoons, 0, maxSugar)
	}
	b.sugar = teaspoons
	return nil
}

// SetIced marks the order as served with ice (or not). Always succeeds and
// returns the builder for chaining.
func (b *Builder) SetIced(iced bool) *Builder {
	b.iced = iced
	return b
}

// Reset restores the builder to its construction-time defaults: base and
// size unset, milk none, no syrups, no sugar, not iced. Returns the
// builder for chaining.
func (b *Builder) Reset() *Builder {
	b.base = BaseUnknown
	b.size = SizeUnknown
	b.syrups = make(map[string]struct{})
	return b.ClearExtras()
}

// ClearExtras resets milk, syrups, sugar, and iced to their defaults while
// keeping base and size. Returns the builder for chaining.
func (b *Builder) ClearExtras() *Builder {
	b.milk = MilkNone
	clear(b.syrups)
	b.sugar = 0
	b.iced = false
	return b
}

// Build produces a new immutable Order from the current builder state.
//
// Base and size are mandatory; a missing base is reported before a missing
// size, and both are reported together when both are absent. Sugar and
// syrup limits are re-checked defensively even though the mutators already
// enforce them. On success the price and description are derived from the
// current state and a fresh Order with its own identity is returned; the
// builder itself is left untouched and repeated calls yield equivalent but
// distinct orders.
func (b *Builder) Build() (*Order, error) {
	if err := errors.Join(
		b.requireBase(),
		b.requireSize(),
		b.checkLimits(),
	); err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(b.calculatePrice())
	if err != nil {
		return nil, err
	}

	return NewOrder(
		kernel.NewUUID(),
		b.base,
		b.size,
		b.milk,
		b.sortedSyrups(),
		b.sugar,
		b.iced,
		price,
		b.Description(),
	)
}

// Description derives the human-readable description from the current
// builder state without building. It returns the empty string while base
// or size is unset, which makes it usable as a preview on an unfinished
// builder.
//
// The text is assembled from space-joined segments in a fixed order:
// "{size} {base}", the milk segment, the sorted syrup list, the ice mark,
// and the sugar amount with a count-aware spoon word.
func (b *Builder) Description() string {
	if b.base == BaseUnknown || b.size == SizeUnknown {
		return ""
	}

	parts := []string{fmt.Sprintf("%s %s", b.size, b.base)}

	if b.milk != MilkNone {
		parts = append(parts, fmt.Sprintf("с %s молоком", b.milk.LocalName()))
	}

	if len(b.syrups) > 0 {
		parts = append(parts, "+ сиропы: "+strings.Join(b.sortedSyrups(), ", "))
	}

	if b.iced {
		parts = append(parts, "(со льдом)")
	}

	if b.sugar > 0 {
		parts = append(parts, fmt.Sprintf("%d %s сахара", b.sugar, sugarSpoonsWord(b.sugar)))
	}

	return strings.Join(parts, " ")
}

// String returns a short preview of the builder state.
// It implements the fmt.Stringer interface.
func (b *Builder) String() string {
	if b.base == BaseUnknown || b.size == SizeUnknown {
		return "OrderBuilder (не заполнен)"
	}
	return "OrderBuilder -> " + b.Description()
}

// requireBase reports a missing mandatory base.
func (b *Builder) requireBase() error {
	if b.base == BaseUnknown {
		return errs.NewValueIsRequiredError("base")
	}
	return nil
}

// requireSize reports a missing mandatory size.
func (b *Builder) requireSize() error {
	if b.size == SizeUnknown {
		return errs.NewValueIsRequiredError("size")
	}
	return nil
}

// checkLimits re-validates the sugar and syrup caps. The mutators keep the
// builder within bounds, but Build does not trust prior state blindly.
func (b *Builder) checkLimits() error {
	if b.sugar < 0 || b.sugar > maxSugar {
		return errs.NewValueIsOutOfRangeError("sugar", b.sugar, 0, maxSugar)
	}
	if len(b.syrups) > maxSyrups {
		return ErrSyrupLimitExceeded
	}
	return nil
}

// calculatePrice derives the raw total from the current state. Rounding to
// two decimals happens in kernel.NewPrice.
func (b *Builder) calculatePrice() float64 {
	price := b.base.Price()
	price *= b.size.Multiplier()
	price += b.milk.Price()
	price += float64(len(b.syrups)) * syrupUnitPrice
	if b.iced {
		price += icedSurcharge
	}
	return price
}

// sortedSyrups returns the syrup names as a fresh lexicographically sorted
// slice. Each call allocates, so orders built sequentially never share the
// underlying array.
func (b *Builder) sortedSyrups() []string {
	syrups := make([]string, 0, len(b.syrups))
	for name := range b.syrups {
		syrups = append(syrups, name)
	}
	slices.Sort(syrups)
	return syrups
}

// sugarSpoonsWord picks the Russian spoon word agreeing with the count:
// 1 -> "ложка", 2..4 -> "ложки", everything else -> "ложек".
func sugarSpoonsWord(teaspoons int) string {
	switch {
	case teaspoons == 1:
		return "ложка"
	case teaspoons >= 2 && teaspoons <= 4:
		return "ложки"
	default:
		return "ложек"
	}
}
