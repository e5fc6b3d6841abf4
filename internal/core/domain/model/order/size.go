package order

import (
	"fmt"
	"strings"

	"github.com/12PUFFS/Practic16/internal/pkg/errs"
)

// Size represents the cup size of an order. Like Base, it is a closed enum
// whose zero value (SizeUnknown) is invalid.
type Size int

const (
	// SizeUnknown represents an unset or invalid size.
	SizeUnknown Size = iota

	// SizeSmall is the smallest cup; the base price applies unchanged.
	SizeSmall

	// SizeMedium scales the base price by 1.2.
	SizeMedium

	// SizeLarge scales the base price by 1.4.
	SizeLarge
)

// getSizeStrings returns a map of Size values to their wire words,
// including the invalid zero value for string conversion.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "unknown",
		SizeSmall:   "small",
		SizeMedium:  "medium",
		SizeLarge:   "large",
	}
}

// getSizeMultipliers returns the price multiplier for each valid size.
// SizeUnknown is intentionally excluded; the map doubles as the source of
// truth for validation.
func getSizeMultipliers() map[Size]float64 {
	return map[Size]float64{
		SizeSmall:  1.0,
		SizeMedium: 1.2,
		SizeLarge:  1.4,
	}
}

// validSizeNames lists the wire words of every valid size from smallest to
// largest, used to enumerate the allowed set in error messages.
func validSizeNames() []string {
	return []string{"small", "medium", "large"}
}

// ParseSize converts a wire word such as "medium" into a Size.
// Unrecognized words are rejected with an error enumerating the allowed set.
func ParseSize(s string) (Size, error) {
	for size := range getSizeMultipliers() {
		if size.String() == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size is invalid",
		fmt.Errorf("%q is not a valid size, allowed values are: %s", s, strings.Join(validSizeNames(), ", ")),
	)
}

// Validate checks that the Size belongs to the closed set of cup sizes.
func (s Size) Validate() error {
	if _, ok := getSizeMultipliers()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"size is invalid",
			fmt.Errorf("%d is not a valid size, allowed values are: %s", s, strings.Join(validSizeNames(), ", ")),
		)
	}
	return nil
}

// Multiplier returns the price multiplier of the size, or 0 for an invalid
// value.
func (s Size) Multiplier() float64 {
	return getSizeMultipliers()[s]
}

// String returns the lowercase wire word of the size ("small", ...).
// It implements the fmt.Stringer interface and is safe to call on any
// Size value, including invalid ones.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
