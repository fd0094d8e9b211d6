package service

import (
	"context"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/repository"
)

// IngredientResolver turns ingredient names into resolved catalog records.
//
// Strict resolution fails on the first unknown name and is used wherever a
// bad reference must abort the whole operation (pizza composition, order
// extras). Lenient resolution silently drops unknown names and is used for
// pizza search filters, where an unmatched name just narrows nothing.
type IngredientResolver interface {
	// Resolve maps each name to its ingredient record. Duplicate names
	// resolve to duplicate entries; no de-duplication is performed.
	Resolve(ctx context.Context, names []string, strict bool) ([]model.Ingredient, error)
}

// ingredientResolver implements IngredientResolver against the catalog store.
type ingredientResolver struct {
	ingredients repository.IngredientRepositoryInterface
}

// NewIngredientResolver creates a new ingredient resolver.
func NewIngredientResolver(ingredients repository.IngredientRepositoryInterface) IngredientResolver {
	return &ingredientResolver{ingredients: ingredients}
}

func (r *ingredientResolver) Resolve(ctx context.Context, names []string, strict bool) ([]model.Ingredient, error) {
	resolved := make([]model.Ingredient, 0, len(names))
	for _, name := range names {
		ing, err := r.ingredients.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			if strict {
				return nil, &UnknownIngredientError{Name: name}
			}
			continue
		}
		resolved = append(resolved, *ing)
	}
	return resolved, nil
}
