package cmd

import (
	"github.com/12PUFFS/Practic16/internal/core/domain/model/order"
)

// CompositionRoot wires the application's dependencies. The coffee order
// domain is purely in-memory, so the root only hands out builders; it still
// exists so the entry point depends on one wiring point rather than on the
// domain packages directly.
type CompositionRoot struct {
	configs Config
}

// NewCompositionRoot creates the application wiring from the given config.
func NewCompositionRoot(configs Config) CompositionRoot {
	return CompositionRoot{
		configs: configs,
	}
}

// NewOrderBuilder creates a fresh order builder in its default state.
func (c *CompositionRoot) NewOrderBuilder() *order.Builder {
	return order.NewBuilder()
}
