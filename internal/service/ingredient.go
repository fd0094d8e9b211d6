package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/repository"
)

// IngredientService provides catalog ingredient operations.
type IngredientService interface {
	Create(ctx context.Context, ingredient model.Ingredient) (*model.Ingredient, error)
	FindAll(ctx context.Context) ([]model.Ingredient, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error)
	FindByName(ctx context.Context, name string) (*model.Ingredient, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateIngredientRequest) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// IngredientServiceImpl implements IngredientService.
type IngredientServiceImpl struct {
	ingredientRepo repository.IngredientRepositoryInterface
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(ingredientRepo repository.IngredientRepositoryInterface) IngredientService {
	return &IngredientServiceImpl{ingredientRepo: ingredientRepo}
}

// Create validates and persists a new ingredient. Spicy level bounds are
// enforced before any write; duplicate names map to ErrIngredientExists.
func (s *IngredientServiceImpl) Create(ctx context.Context, ingredient model.Ingredient) (*model.Ingredient, error) {
	if !ingredient.SpicyLevelInRange() {
		return nil, ErrSpicyLevelOutOfRange
	}

	if err := s.ingredientRepo.Create(ctx, &ingredient); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrIngredientExists
		}
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientServiceImpl) FindAll(ctx context.Context) ([]model.Ingredient, error) {
	return s.ingredientRepo.FindAll(ctx)
}

func (s *IngredientServiceImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	ing, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, ErrIngredientNotFound
	}
	return ing, nil
}

func (s *IngredientServiceImpl) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	ing, err := s.ingredientRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, ErrIngredientNotFound
	}
	return ing, nil
}

// Update applies a partial update. Omitted fields are left untouched; a
// supplied spicy level is bounds-checked before the write.
func (s *IngredientServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateIngredientRequest) error {
	existing, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrIngredientNotFound
	}

	if req.SpicyLevel != nil && (*req.SpicyLevel < model.SpicyLevelMin || *req.SpicyLevel > model.SpicyLevelMax) {
		return ErrSpicyLevelOutOfRange
	}

	set := make(map[string]interface{})
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.IsGlutenFree != nil {
		set["is_gluten_free"] = *req.IsGlutenFree
	}
	if req.IsNutFree != nil {
		set["is_nut_free"] = *req.IsNutFree
	}
	if req.IsLactoseFree != nil {
		set["is_lactose_free"] = *req.IsLactoseFree
	}
	if req.IsFishFree != nil {
		set["is_fish_free"] = *req.IsFishFree
	}
	if req.IsVegetarian != nil {
		set["is_vegetarian"] = *req.IsVegetarian
	}
	if req.IsVegan != nil {
		set["is_vegan"] = *req.IsVegan
	}
	if req.SpicyLevel != nil {
		set["spicy_level"] = *req.SpicyLevel
	}
	if req.ExtraPrice != nil {
		set["extra_price"] = *req.ExtraPrice
	}
	if len(set) == 0 {
		return nil
	}

	if err := s.ingredientRepo.Update(ctx, id, set); err != nil {
		if repository.IsDuplicateKey(err) {
			return ErrIngredientExists
		}
		return err
	}
	return nil
}

// Delete removes an ingredient. Orders and pizzas referencing it keep their
// now-dangling reference; no cascade runs.
func (s *IngredientServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrIngredientNotFound
	}
	return s.ingredientRepo.Delete(ctx, id)
}

func (s *IngredientServiceImpl) DeleteAll(ctx context.Context) error {
	return s.ingredientRepo.DeleteAll(ctx)
}
