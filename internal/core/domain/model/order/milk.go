package order

import (
	"fmt"
	"strings"

	"github.com/12PUFFS/Practic16/internal/pkg/errs"
)

// Milk represents the milk option of an order. The set is closed and
// includes MilkNone as an explicit "no milk" sentinel, which is the builder
// default. The zero value (MilkUnknown) is invalid.
type Milk int

const (
	// MilkUnknown represents an unset or invalid milk option.
	MilkUnknown Milk = iota

	// MilkNone means the order has no milk. This is the builder default.
	MilkNone

	// MilkWhole is regular whole milk.
	MilkWhole

	// MilkSkim is skim milk.
	MilkSkim

	// MilkOat is oat milk.
	MilkOat

	// MilkSoy is soy milk.
	MilkSoy
)

// getMilkStrings returns a map of Milk values to their wire words,
// including the invalid zero value for string conversion.
func getMilkStrings() map[Milk]string {
	return map[Milk]string{
		MilkUnknown: "unknown",
		MilkNone:    "none",
		MilkWhole:   "whole",
		MilkSkim:    "skim",
		MilkOat:     "oat",
		MilkSoy:     "soy",
	}
}

// getMilkPrices returns the surcharge for each valid milk option.
// MilkUnknown is intentionally excluded; the map doubles as the source of
// truth for validation.
func getMilkPrices() map[Milk]float64 {
	return map[Milk]float64{
		MilkNone:  0,
		MilkWhole: 30,
		MilkSkim:  30,
		MilkOat:   60,
		MilkSoy:   50,
	}
}

// getMilkLocalNames returns the Russian adjectives used in the order
// description. MilkNone has no adjective because the description omits the
// milk segment entirely for it.
func getMilkLocalNames() map[Milk]string {
	return map[Milk]string{
		MilkWhole: "цельное",
		MilkSkim:  "обезжиренное",
		MilkOat:   "овсяное",
		MilkSoy:   "соевое",
	}
}

// validMilkNames lists the wire words of every valid milk option, used to
// enumerate the allowed set in error messages.
func validMilkNames() []string {
	return []string{"none", "whole", "skim", "oat", "soy"}
}

// ParseMilk converts a wire word such as "oat" into a Milk.
// Unrecognized words are rejected with an error enumerating the allowed set.
func ParseMilk(s string) (Milk, error) {
	for milk := range getMilkPrices() {
		if milk.String() == s {
			return milk, nil
		}
	}
	return MilkUnknown, errs.NewValueIsInvalidErrorWithCause(
		"milk is invalid",
		fmt.Errorf("%q is not a valid milk type, allowed values are: %s", s, strings.Join(validMilkNames(), ", ")),
	)
}

// Validate checks that the Milk belongs to the closed set of milk options.
func (m Milk) Validate() error {
	if _, ok := getMilkPrices()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"milk is invalid",
			fmt.Errorf("%d is not a valid milk type, allowed values are: %s", m, strings.Join(validMilkNames(), ", ")),
		)
	}
	return nil
}

// Price returns the surcharge of the milk option, or 0 for an invalid
// value.
func (m Milk) Price() float64 {
	return getMilkPrices()[m]
}

// LocalName returns the Russian adjective used in the order description.
// Milk options without a mapped adjective fall back to the raw wire word.
func (m Milk) LocalName() string {
	if name, ok := getMilkLocalNames()[m]; ok {
		return name
	}
	return m.String()
}

// String returns the lowercase wire word of the milk option ("none", ...).
// It implements the fmt.Stringer interface and is safe to call on any
// Milk value, including invalid ones.
func (m Milk) String() string {
	if str, ok := getMilkStrings()[m]; ok {
		return str
	}
	return "unknown"
}
