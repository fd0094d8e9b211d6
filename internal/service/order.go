package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/repository"
)

// OrderService resolves order requests against the catalog, prices them,
// and manages the order lifecycle.
type OrderService interface {
	// Create resolves and prices every requested line, then persists the
	// order with discount 0 and state Received. Any resolution failure
	// aborts the whole create; nothing is written.
	Create(ctx context.Context, customer model.Customer, lines []dto.PizzaOrderRequest) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	// Update applies a partial update. A supplied line list replaces the
	// existing lines wholesale and is re-resolved from scratch.
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateOrderRequest) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	orderRepo repository.OrderRepositoryInterface
	pizzaRepo repository.PizzaRepositoryInterface
	sizeRepo  repository.SizeRepositoryInterface
	ingRepo   repository.IngredientRepositoryInterface
	resolver  IngredientResolver
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepositoryInterface,
	pizzaRepo repository.PizzaRepositoryInterface,
	sizeRepo repository.SizeRepositoryInterface,
	ingRepo repository.IngredientRepositoryInterface,
	resolver IngredientResolver,
) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		pizzaRepo: pizzaRepo,
		sizeRepo:  sizeRepo,
		ingRepo:   ingRepo,
		resolver:  resolver,
	}
}

// linePrice computes one line's price. The accumulation order is fixed:
// extras are summed first, the base price added, and the size factor applied
// last. Reordering changes the least-significant float digits.
func linePrice(extras []model.Ingredient, pizza *model.Pizza, size *model.PizzaSize) float64 {
	sum := 0.0
	for _, ing := range extras {
		sum += ing.ExtraPrice
	}
	return (sum + pizza.BasicPrice) * (1 + size.PriceIncPct/100)
}

// resolveLine turns one line request into a resolved, priced order line.
// Each step fails fast: extras first, then pizza, then size.
func (s *OrderServiceImpl) resolveLine(ctx context.Context, req dto.PizzaOrderRequest) (*model.OrderLine, error) {
	extras, err := s.resolver.Resolve(ctx, req.ExtraIngredients, true)
	if err != nil {
		return nil, err
	}

	pizza, err := s.pizzaRepo.FindByName(ctx, req.Pizza)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, &UnknownPizzaError{Name: req.Pizza}
	}

	size, err := s.sizeRepo.FindByName(ctx, req.Size)
	if err != nil {
		return nil, err
	}
	if size == nil {
		return nil, &UnknownSizeError{Name: req.Size}
	}

	return &model.OrderLine{
		Pizza:            *pizza,
		Size:             *size,
		ExtraIngredients: extras,
		Price:            linePrice(extras, pizza, size),
	}, nil
}

// resolveLines resolves every requested line or none.
func (s *OrderServiceImpl) resolveLines(ctx context.Context, reqs []dto.PizzaOrderRequest) ([]model.OrderLine, error) {
	lines := make([]model.OrderLine, 0, len(reqs))
	for _, req := range reqs {
		line, err := s.resolveLine(ctx, req)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}
	return lines, nil
}

func (s *OrderServiceImpl) Create(ctx context.Context, customer model.Customer, lineReqs []dto.PizzaOrderRequest) (*model.Order, error) {
	lines, err := s.resolveLines(ctx, lineReqs)
	if err != nil {
		return nil, err
	}

	price := 0.0
	for _, line := range lines {
		price += line.Price
	}

	doc := model.OrderDocument{
		Customer: customer,
		Lines:    lineDocuments(lines),
		Discount: 0,
		Price:    price,
		State:    model.OrderStateReceived,
	}
	if err := s.orderRepo.Create(ctx, &doc); err != nil {
		return nil, err
	}

	return &model.Order{
		ID:       doc.ID,
		Customer: customer,
		Lines:    lines,
		Discount: doc.Discount,
		Price:    doc.Price,
		State:    doc.State,
	}, nil
}

func (s *OrderServiceImpl) FindAll(ctx context.Context) ([]model.Order, error) {
	docs, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(docs))
	for _, doc := range docs {
		ord, err := s.hydrate(ctx, doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *ord)
	}
	return orders, nil
}

func (s *OrderServiceImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	doc, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrOrderNotFound
	}
	return s.hydrate(ctx, *doc)
}

// Update re-resolves a supplied line list from scratch and recomputes the
// price as sum(new line prices) * (1 - discount/100), where the discount is
// the one in this request when present, else no discount is applied. A
// previously stored discount does not participate in the recomputation.
// Without a new line list the price is left untouched, even when the
// discount field changes.
func (s *OrderServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateOrderRequest) error {
	doc, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrOrderNotFound
	}

	set := make(map[string]interface{})
	if req.Customer != nil {
		set["customer"] = req.Customer.ToModel()
	}
	if req.Discount != nil {
		set["discount"] = *req.Discount
	}
	if req.State != nil {
		set["state"] = *req.State
	}

	if req.PizzaOrders != nil {
		lines, err := s.resolveLines(ctx, *req.PizzaOrders)
		if err != nil {
			return err
		}

		discFactor := 1.0
		if req.Discount != nil {
			discFactor = 1 - *req.Discount/100
		}

		price := 0.0
		for _, line := range lines {
			price += line.Price
		}

		set["pizza_orders"] = lineDocuments(lines)
		set["price"] = price * discFactor
	}

	if len(set) == 0 {
		return nil
	}
	return s.orderRepo.Update(ctx, id, set)
}

func (s *OrderServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	doc, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderServiceImpl) DeleteAll(ctx context.Context) error {
	return s.orderRepo.DeleteAll(ctx)
}

// hydrate resolves the stored catalog references of an order at read time.
// Names therefore reflect the current catalog; prices stay as snapshotted.
// A reference whose catalog document has been deleted hydrates to a
// zero-value entity rather than failing the read.
func (s *OrderServiceImpl) hydrate(ctx context.Context, doc model.OrderDocument) (*model.Order, error) {
	lines := make([]model.OrderLine, 0, len(doc.Lines))
	for _, lineDoc := range doc.Lines {
		line := model.OrderLine{Price: lineDoc.Price}

		pizza, err := s.pizzaRepo.FindByID(ctx, lineDoc.PizzaID)
		if err != nil {
			return nil, err
		}
		if pizza != nil {
			line.Pizza = *pizza
		}

		size, err := s.sizeRepo.FindByID(ctx, lineDoc.SizeID)
		if err != nil {
			return nil, err
		}
		if size != nil {
			line.Size = *size
		}

		found, err := s.ingRepo.FindByIDs(ctx, lineDoc.ExtraIngredientIDs)
		if err != nil {
			return nil, err
		}
		byID := make(map[primitive.ObjectID]model.Ingredient, len(found))
		for _, ing := range found {
			byID[ing.ID] = ing
		}
		// Walk the stored reference list so duplicate extras survive the
		// round trip.
		extras := make([]model.Ingredient, 0, len(lineDoc.ExtraIngredientIDs))
		for _, ingID := range lineDoc.ExtraIngredientIDs {
			if ing, ok := byID[ingID]; ok {
				extras = append(extras, ing)
			}
		}
		line.ExtraIngredients = extras

		lines = append(lines, line)
	}

	return &model.Order{
		ID:       doc.ID,
		Customer: doc.Customer,
		Lines:    lines,
		Discount: doc.Discount,
		Price:    doc.Price,
		State:    doc.State,
	}, nil
}

func lineDocuments(lines []model.OrderLine) []model.OrderLineDocument {
	docs := make([]model.OrderLineDocument, 0, len(lines))
	for _, line := range lines {
		ids := make([]primitive.ObjectID, 0, len(line.ExtraIngredients))
		for _, ing := range line.ExtraIngredients {
			ids = append(ids, ing.ID)
		}
		docs = append(docs, model.OrderLineDocument{
			PizzaID:            line.Pizza.ID,
			ExtraIngredientIDs: ids,
			SizeID:             line.Size.ID,
			Price:              line.Price,
		})
	}
	return docs
}
