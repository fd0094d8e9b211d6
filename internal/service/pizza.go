package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/repository"
)

// PizzaService provides catalog pizza operations.
type PizzaService interface {
	Create(ctx context.Context, name string, basicPrice float64, ingredientNames []string) (*model.Pizza, error)
	FindAll(ctx context.Context) ([]model.Pizza, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pizza, error)
	FindByName(ctx context.Context, name string) (*model.Pizza, error)
	// FindByIngredients returns pizzas whose composition contains every
	// resolvable name in the filter. Unknown names are dropped (lenient
	// resolution); an entirely unknown filter matches no pizzas.
	FindByIngredients(ctx context.Context, ingredientNames []string) ([]model.Pizza, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdatePizzaRequest) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// PizzaServiceImpl implements PizzaService.
type PizzaServiceImpl struct {
	pizzaRepo repository.PizzaRepositoryInterface
	resolver  IngredientResolver
}

// NewPizzaService creates a new pizza service.
func NewPizzaService(pizzaRepo repository.PizzaRepositoryInterface, resolver IngredientResolver) PizzaService {
	return &PizzaServiceImpl{
		pizzaRepo: pizzaRepo,
		resolver:  resolver,
	}
}

// Create resolves the ingredient names strictly and persists a new pizza.
// A pizza with no ingredients is rejected before any lookup.
func (s *PizzaServiceImpl) Create(ctx context.Context, name string, basicPrice float64, ingredientNames []string) (*model.Pizza, error) {
	if len(ingredientNames) == 0 {
		return nil, ErrTastelessPizza
	}

	ingredients, err := s.resolver.Resolve(ctx, ingredientNames, true)
	if err != nil {
		return nil, err
	}

	doc := model.PizzaDocument{
		Name:          name,
		IngredientIDs: ingredientIDs(ingredients),
		BasicPrice:    basicPrice,
	}
	if err := s.pizzaRepo.Create(ctx, &doc); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrPizzaExists
		}
		return nil, err
	}

	return &model.Pizza{
		ID:          doc.ID,
		Name:        doc.Name,
		Ingredients: ingredients,
		BasicPrice:  doc.BasicPrice,
	}, nil
}

func (s *PizzaServiceImpl) FindAll(ctx context.Context) ([]model.Pizza, error) {
	return s.pizzaRepo.FindAll(ctx)
}

func (s *PizzaServiceImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pizza, error) {
	pizza, err := s.pizzaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, ErrPizzaNotFound
	}
	return pizza, nil
}

func (s *PizzaServiceImpl) FindByName(ctx context.Context, name string) (*model.Pizza, error) {
	pizza, err := s.pizzaRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, ErrPizzaNotFound
	}
	return pizza, nil
}

func (s *PizzaServiceImpl) FindByIngredients(ctx context.Context, ingredientNames []string) ([]model.Pizza, error) {
	ingredients, err := s.resolver.Resolve(ctx, ingredientNames, false)
	if err != nil {
		return nil, err
	}
	// An empty resolved filter matches nothing, not everything.
	if len(ingredients) == 0 {
		return []model.Pizza{}, nil
	}
	return s.pizzaRepo.FindByIngredientIDs(ctx, ingredientIDs(ingredients))
}

// Update applies a partial update. A supplied ingredients list replaces the
// whole composition: it is re-resolved strictly and must not be empty.
func (s *PizzaServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdatePizzaRequest) error {
	existing, err := s.pizzaRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPizzaNotFound
	}

	set := make(map[string]interface{})
	if req.Ingredients != nil {
		if len(*req.Ingredients) == 0 {
			return ErrTastelessPizza
		}
		ingredients, err := s.resolver.Resolve(ctx, *req.Ingredients, true)
		if err != nil {
			return err
		}
		set["ingredients"] = ingredientIDs(ingredients)
	}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.BasicPrice != nil {
		set["basic_price"] = *req.BasicPrice
	}
	if len(set) == 0 {
		return nil
	}

	if err := s.pizzaRepo.Update(ctx, id, set); err != nil {
		if repository.IsDuplicateKey(err) {
			return ErrPizzaExists
		}
		return err
	}
	return nil
}

func (s *PizzaServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.pizzaRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPizzaNotFound
	}
	return s.pizzaRepo.Delete(ctx, id)
}

func (s *PizzaServiceImpl) DeleteAll(ctx context.Context) error {
	return s.pizzaRepo.DeleteAll(ctx)
}

func ingredientIDs(ingredients []model.Ingredient) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(ingredients))
	for _, ing := range ingredients {
		ids = append(ids, ing.ID)
	}
	return ids
}
