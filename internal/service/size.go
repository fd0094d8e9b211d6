package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/repository"
)

// SizeService provides catalog pizza size operations.
type SizeService interface {
	Create(ctx context.Context, size model.PizzaSize) (*model.PizzaSize, error)
	FindAll(ctx context.Context) ([]model.PizzaSize, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.PizzaSize, error)
	FindByName(ctx context.Context, name string) (*model.PizzaSize, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdatePizzaSizeRequest) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// SizeServiceImpl implements SizeService.
type SizeServiceImpl struct {
	sizeRepo repository.SizeRepositoryInterface
}

// NewSizeService creates a new pizza size service.
func NewSizeService(sizeRepo repository.SizeRepositoryInterface) SizeService {
	return &SizeServiceImpl{sizeRepo: sizeRepo}
}

// Create persists a new pizza size. Name and centimeters are both unique;
// either collision maps to ErrSizeExists.
func (s *SizeServiceImpl) Create(ctx context.Context, size model.PizzaSize) (*model.PizzaSize, error) {
	if err := s.sizeRepo.Create(ctx, &size); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrSizeExists
		}
		return nil, err
	}
	return &size, nil
}

func (s *SizeServiceImpl) FindAll(ctx context.Context) ([]model.PizzaSize, error) {
	return s.sizeRepo.FindAll(ctx)
}

func (s *SizeServiceImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PizzaSize, error) {
	size, err := s.sizeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if size == nil {
		return nil, ErrSizeNotFound
	}
	return size, nil
}

func (s *SizeServiceImpl) FindByName(ctx context.Context, name string) (*model.PizzaSize, error) {
	size, err := s.sizeRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if size == nil {
		return nil, ErrSizeNotFound
	}
	return size, nil
}

// Update applies a partial update to a pizza size.
func (s *SizeServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdatePizzaSizeRequest) error {
	existing, err := s.sizeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSizeNotFound
	}

	set := make(map[string]interface{})
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Centimeters != nil {
		set["centimeters"] = *req.Centimeters
	}
	if req.PriceIncPct != nil {
		set["price_inc_pct"] = *req.PriceIncPct
	}
	if len(set) == 0 {
		return nil
	}

	if err := s.sizeRepo.Update(ctx, id, set); err != nil {
		if repository.IsDuplicateKey(err) {
			return ErrSizeExists
		}
		return err
	}
	return nil
}

func (s *SizeServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.sizeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSizeNotFound
	}
	return s.sizeRepo.Delete(ctx, id)
}

func (s *SizeServiceImpl) DeleteAll(ctx context.Context) error {
	return s.sizeRepo.DeleteAll(ctx)
}
