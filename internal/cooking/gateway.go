package cooking

import (
	"context"

	"souschef/internal/recipe"
)

// DeductionGateway removes a recipe's ingredients from wherever the cook
// tracks their stock. The session controller invokes it at most once per
// explicit confirmation, only after every step is completed. A failed call
// must leave the backing store untouched so the user can retry.
type DeductionGateway interface {
	Deduct(ctx context.Context, ingredients []recipe.Ingredient) error
}

// GatewayFunc adapts a function to the DeductionGateway interface.
type GatewayFunc func(ctx context.Context, ingredients []recipe.Ingredient) error

// Deduct calls f.
func (f GatewayFunc) Deduct(ctx context.Context, ingredients []recipe.Ingredient) error {
	return f(ctx, ingredients)
}

// NopGateway returns a gateway that accepts every deduction without doing
// anything. Used when no pantry is configured.
func NopGateway() DeductionGateway {
	return GatewayFunc(func(context.Context, []recipe.Ingredient) error {
		return nil
	})
}
