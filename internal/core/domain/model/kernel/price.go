package kernel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/12PUFFS/Practic16/internal/pkg/errs"
	"github.com/12PUFFS/Practic16/internal/pkg/guard"
)

// CurrencySymbol is the fixed currency symbol appended by Price.String.
const CurrencySymbol = "₽"

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via the NewPrice constructor.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice constructor")

// Price represents a non-negative amount of money rounded to two decimal
// places. Price is an immutable value object; the zero value is invalid and
// fails validation, so instances must come from NewPrice.
//
// Rounding rule: half away from zero (math.Round on the amount scaled to
// kopecks). None of the menu arithmetic produces tie cases, so the rule is
// unobservable through prices derived from the menu tables, but it is fixed
// here so the behavior is deterministic.
//
// Example:
//
//	price, err := kernel.NewPrice(528.2000000000001)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 528.2₽
type Price struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a raw amount, rounding it to two decimal
// places. The amount must not be negative.
func NewPrice(amount float64) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setAmount(amount); err != nil {
		return Price{}, err
	}

	return price, nil
}

// Validate checks that the Price was constructed via NewPrice.
// The zero value fails with ErrPriceIsNotConstructed.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the rounded amount.
func (p Price) Amount() float64 {
	return p.amount
}

// Add returns a new Price increased by the given surcharge.
// The surcharge may be negative as long as the result stays non-negative.
func (p Price) Add(surcharge float64) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}

	return NewPrice(p.amount + surcharge)
}

// IsEqual compares two prices by their rounded amounts. Both prices must be
// properly constructed for the comparison to succeed.
func (p Price) IsEqual(other Price) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return p.amount == other.amount, nil
}

// String renders the amount with its shortest decimal representation
// followed by the currency symbol, e.g. "528.2₽" or "200₽".
// This method implements the fmt.Stringer interface.
func (p Price) String() string {
	return strconv.FormatFloat(p.amount, 'f', -1, 64) + CurrencySymbol
}

// setAmount validates and stores the amount, rounding to two decimals.
// Pointer receiver is intentional: private setters self-encapsulate the
// validation performed during construction.
func (p *Price) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is negative", amount),
		)
	}

	p.amount = math.Round(amount*100) / 100
	return nil
}
