package order

import (
	"fmt"
	"strings"

	"github.com/12PUFFS/Practic16/internal/pkg/errs"
)

// Base represents the coffee foundation of an order. It is a closed enum:
// only the four menu positions below are valid, and adding a new one means
// extending the lookup tables in this file.
//
// The zero value (BaseUnknown) is invalid and helps catch uninitialized
// Base values.
type Base int

const (
	// BaseUnknown represents an unset or invalid base.
	BaseUnknown Base = iota

	// BaseEspresso is a plain espresso shot.
	BaseEspresso

	// BaseAmericano is an espresso diluted with hot water.
	BaseAmericano

	// BaseLatte is an espresso with steamed milk.
	BaseLatte

	// BaseCappuccino is an espresso with steamed milk foam.
	BaseCappuccino
)

// getBaseStrings returns a map of Base values to their wire words,
// including the invalid zero value for string conversion.
func getBaseStrings() map[Base]string {
	return map[Base]string{
		BaseUnknown:    "unknown",
		BaseEspresso:   "espresso",
		BaseAmericano:  "americano",
		BaseLatte:      "latte",
		BaseCappuccino: "cappuccino",
	}
}

// getBasePrices returns the menu price for each valid base.
// BaseUnknown is intentionally excluded, which also makes this map the
// source of truth for validation.
func getBasePrices() map[Base]float64 {
	return map[Base]float64{
		BaseEspresso:   200,
		BaseAmericano:  250,
		BaseLatte:      300,
		BaseCappuccino: 320,
	}
}

// validBaseNames lists the wire words of every valid base in menu order,
// used to enumerate the allowed set in error messages.
func validBaseNames() []string {
	return []string{"espresso", "americano", "latte", "cappuccino"}
}

// ParseBase converts a wire word such as "latte" into a Base.
// Unrecognized words are rejected with an error enumerating the allowed set.
func ParseBase(s string) (Base, error) {
	for base := range getBasePrices() {
		if base.String() == s {
			return base, nil
		}
	}
	return BaseUnknown, errs.NewValueIsInvalidErrorWithCause(
		"base is invalid",
		fmt.Errorf("%q is not a valid coffee base, allowed values are: %s", s, strings.Join(validBaseNames(), ", ")),
	)
}

// Validate checks that the Base belongs to the closed set of menu bases.
// BaseUnknown and out-of-range values are rejected with an error that
// enumerates the allowed set.
func (b Base) Validate() error {
	if _, ok := getBasePrices()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"base is invalid",
			fmt.Errorf("%d is not a valid coffee base, allowed values are: %s", b, strings.Join(validBaseNames(), ", ")),
		)
	}
	return nil
}

// Price returns the menu price of the base, or 0 for an invalid value.
func (b Base) Price() float64 {
	return getBasePrices()[b]
}

// String returns the lowercase wire word of the base ("espresso", ...).
// It implements the fmt.Stringer interface and is safe to call on any
// Base value, including invalid ones.
func (b Base) String() string {
	if str, ok := getBaseStrings()[b]; ok {
		return str
	}
	return "unknown"
}
