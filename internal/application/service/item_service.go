package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/prasety/kasirku-api/pkg/money"
	"github.com/prasety/kasirku-api/pkg/pagination"
)

// ItemService manages the reusable product catalog.
type ItemService struct {
	items domainRepo.ItemRepository
	carts *CartService
}

// NewItemService creates a new item service
func NewItemService(items domainRepo.ItemRepository, carts *CartService) *ItemService {
	return &ItemService{items: items, carts: carts}
}

func validateItem(name, buyingRaw, sellingRaw string) (string, money.Amount, money.Amount, []apperror.FieldError) {
	name, selling, fieldErrors := ValidateCandidate(name, sellingRaw)

	buying := money.Parse(buyingRaw)
	if !strings.ContainsAny(buyingRaw, "0123456789") {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "buying_price",
			Message: "Harga beli wajib diisi",
		})
	} else if buying <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "buying_price",
			Message: "Harga beli harus lebih dari 0",
		})
	} else if buying > money.MaxUnitPrice {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "buying_price",
			Message: "Harga beli terlalu besar (maksimal Rp 99.999.999)",
		})
	}

	return name, buying, selling, fieldErrors
}

// Create validates and stores a new catalog item. Names are unique
// case-insensitively.
func (s *ItemService) Create(ctx context.Context, name, buyingRaw, sellingRaw string) (*entity.Item, error) {
	name, buying, selling, fieldErrors := validateItem(name, buyingRaw, sellingRaw)
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if existing, err := s.items.GetByName(ctx, name); err == nil && existing != nil {
		return nil, apperror.NewBadRequestError("Barang dengan nama tersebut sudah ada")
	}

	item := &entity.Item{
		Name:         name,
		BuyingPrice:  buying,
		SellingPrice: selling,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, apperror.ErrInternalServer
	}
	return item, nil
}

// Get returns one catalog item.
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewNotFoundError("Barang")
	}
	return item, nil
}

// Update validates and replaces an item's name and prices.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, name, buyingRaw, sellingRaw string) (*entity.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewNotFoundError("Barang")
	}

	name, buying, selling, fieldErrors := validateItem(name, buyingRaw, sellingRaw)
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if existing, err := s.items.GetByName(ctx, name); err == nil && existing != nil && existing.ID != id {
		return nil, apperror.NewBadRequestError("Barang dengan nama tersebut sudah ada")
	}

	item.Name = name
	item.BuyingPrice = buying
	item.SellingPrice = selling
	if err := s.items.Update(ctx, item); err != nil {
		return nil, apperror.ErrInternalServer
	}
	return item, nil
}

// Delete removes an item from the catalog. Lines already in a cart keep
// their snapshot of the name and price.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.items.GetByID(ctx, id); err != nil {
		return apperror.NewNotFoundError("Barang")
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return apperror.ErrInternalServer
	}
	return nil
}

// List returns catalog items, optionally filtered by a name search.
func (s *ItemService) List(ctx context.Context, params *domainRepo.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	params.Pagination.Validate()

	items, total, err := s.items.List(ctx, params)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, meta), nil
}

// AddToCart drops a catalog item into the register's cart using its stored
// name and selling price.
func (s *ItemService) AddToCart(ctx context.Context, registerID string, id uuid.UUID) (*AddResult, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewNotFoundError("Barang")
	}
	return s.carts.Add(ctx, registerID, item.Name, money.Format(item.SellingPrice))
}
